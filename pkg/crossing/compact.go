package crossing

// compact merges neighbouring records at the very same point where one region is left
// and another entered into a single record carrying both.
func compact(records []Crossing) []Crossing {
	if len(records) < 2 {
		return records
	}
	out := records[:0]
	for i := 0; i < len(records); i++ {
		r := records[i]
		if i+1 < len(records) {
			if merged, ok := merge(r, records[i+1]); ok {
				out = append(out, merged)
				i++
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func merge(a, b Crossing) (Crossing, bool) {
	if a.Point.Distance(b.Point) != 0 {
		return Crossing{}, false
	}
	switch {
	case a.In == nil && b.Out == nil && a.Out != nil && b.In != nil && a.Out != b.In:
		return Crossing{Point: a.Point, Out: a.Out, In: b.In}, true
	case a.Out == nil && b.In == nil && a.In != nil && b.Out != nil && a.In != b.Out:
		return Crossing{Point: a.Point, Out: b.Out, In: a.In}, true
	}
	return Crossing{}, false
}
