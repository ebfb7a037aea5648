// Package crossing finds where a path enters and leaves a set of regions.
//
// Crossings come out in path order. Within a path segment, crossings of different
// regions are ordered by their distance from the segment start. When the boundaries of
// two regions meet at a crossing, the exit from one and the entry into the other are
// reported as a single record.
package crossing

import (
	"fmt"
	"iter"
	"slices"

	"github.com/golang/geo/s1"

	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/extentindex"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// Crossing is a point where the path leaves the region Out and enters the region In.
// Either may be nil. A record with only In set is an entry with no matching exit at the
// same point.
type Crossing struct {
	Point geo.Point
	Out   *extent.Region
	In    *extent.Region
}

func (c Crossing) String() string {
	name := func(r *extent.Region) string {
		if r == nil {
			return "-"
		}
		return r.ID().String()
	}
	return fmt.Sprintf("crossing %v out=%s in=%s", c.Point, name(c.Out), name(c.In))
}

// Option configures a crossing search.
type Option func(*detector)

// WithIndex narrows the regions tested against each path segment to the candidates
// returned by q. Regions missing from the list passed to the search are ignored even if
// q returns them.
func WithIndex(q extentindex.Querier) Option {
	return func(d *detector) { d.index = q }
}

// WithTolerance sets how close a segment must come to a region boundary before the
// region is examined for crossings. The default is zero.
func WithTolerance(tolerance s1.Angle) Option {
	return func(d *detector) { d.tolerance = tolerance }
}

// Crossings returns every boundary crossing of path over regions, in path order.
func Crossings(path *extent.Path, regions []*extent.Region, opts ...Option) []Crossing {
	return slices.Collect(Iterator(path, regions, opts...))
}

// Iterator yields every boundary crossing of path over regions, in path order. Each
// segment is examined when the iteration reaches it.
func Iterator(path *extent.Path, regions []*extent.Region, opts ...Option) iter.Seq[Crossing] {
	d := &detector{order: make(map[extent.ID]int, len(regions))}
	for _, opt := range opts {
		opt(d)
	}
	for _, r := range regions {
		if _, ok := d.order[r.ID()]; !ok {
			d.order[r.ID()] = len(d.regions)
			d.regions = append(d.regions, r)
		}
	}

	return func(yield func(Crossing) bool) {
		d.run(path, yield)
	}
}

type detector struct {
	regions   []*extent.Region
	order     map[extent.ID]int
	index     extentindex.Querier
	tolerance s1.Angle
}

func (d *detector) run(path *extent.Path, yield func(Crossing) bool) {
	var (
		buf    buffer
		inside = make(map[*extent.Region]bool)
		out    []Crossing
	)

	flush := func() bool {
		out = out[:0]
		for _, c := range buf.drain() {
			in := !inside[c.region]
			// a path vertex touching the boundary without changing side
			if c.next != nil && c.region.Contains(ahead(c.next)) != in {
				continue
			}
			inside[c.region] = in
			if in {
				out = append(out, Crossing{Point: c.point, In: c.region})
			} else {
				out = append(out, Crossing{Point: c.point, Out: c.region})
			}
		}
		for _, c := range compact(out) {
			if !yield(c) {
				return false
			}
		}
		return true
	}

	last := path.NumSegments() - 1
	for i, seg := range path.Segments() {
		a, b := seg.Start(), seg.End()
		length := seg.Length()
		var next *extent.Segment
		if i < last {
			next = path.Segment(i + 1)
		}
		for _, r := range d.candidates(seg) {
			if !extent.SegmentNearRegion(seg, r, d.tolerance) {
				continue
			}
			if _, seen := inside[r]; !seen {
				inside[r] = r.Contains(a)
			}
			if !buf.at(a) {
				if buf.open && !flush() {
					return
				}
				buf.reset(a)
			}
			for _, edge := range r.Segments() {
				p, ok := edgeCrossing(a, b, edge.Start(), edge.End())
				if !ok {
					continue
				}
				dist := a.Distance(p)
				// a crossing at a shared vertex was already reported by the previous segment
				if i > 0 && dist <= sameCrossing {
					continue
				}
				c := candidate{point: p, dist: dist, region: r}
				if dist >= length-sameCrossing {
					c.next = next
				}
				buf.insert(c)
			}
		}
	}
	if buf.open {
		flush()
	}
}

// candidates returns the regions to test against seg, in the order they were given.
func (d *detector) candidates(seg *extent.Segment) []*extent.Region {
	if d.index == nil {
		return d.regions
	}
	var found []int
	for e := range d.index.Iterator(seg) {
		if _, ok := e.(*extent.Region); !ok {
			continue
		}
		if i, ok := d.order[e.ID()]; ok {
			found = append(found, i)
		}
	}
	slices.Sort(found)
	regions := make([]*extent.Region, len(found))
	for i, n := range found {
		regions[i] = d.regions[n]
	}
	return regions
}

// edgeCrossing returns where the segment a→b crosses the boundary edge c→d. Edges on
// the great circle of the segment are not crossed. Crossings at the very end of the
// segment are kept despite rounding.
func edgeCrossing(a, b, c, d geo.Point) (geo.Point, bool) {
	n1 := a.CrossNormalize(b)
	n2 := c.CrossNormalize(d)
	if n1.Cross(n2).Norm2() == 0 {
		return geo.Point{}, false
	}
	return geo.SegmentIntersection(a, b, c, d, sameCrossing)
}
