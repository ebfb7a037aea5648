package crossing

import (
	"sort"

	"github.com/golang/geo/s1"

	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// sameCrossing is the distance under which two candidates on the same region are one
// crossing. It happens when the path goes through a region vertex and both adjacent
// edges report it.
const sameCrossing s1.Angle = 1e-12

// lookAhead is how far along the following segment a crossing at a path vertex is
// checked for a change of side.
const lookAhead s1.Angle = 1e-7

type candidate struct {
	point  geo.Point
	dist   s1.Angle
	region *extent.Region
	// next is the following path segment when the candidate lies at the end of its
	// segment. The candidate is only a crossing if the region contains the start of next
	// differently than before.
	next *extent.Segment
}

// ahead returns a point lookAhead past the start of s, or its midpoint when s is shorter.
func ahead(s *extent.Segment) geo.Point {
	length := s.Length()
	if length == 0 {
		return s.Start()
	}
	step := min(lookAhead, length/2)
	return s.Start().Interpolate(s.End(), float64(step/length))
}

// buffer holds the candidates of one path segment sorted by distance from the segment
// start. Candidates of different regions arrive region by region; sorting them here
// gives the order along the path.
type buffer struct {
	start geo.Point
	open  bool
	items []candidate
}

// at reports whether the buffer collects candidates for a segment starting at p.
func (b *buffer) at(p geo.Point) bool {
	return b.open && b.start == p
}

func (b *buffer) reset(start geo.Point) {
	b.start = start
	b.open = true
	b.items = b.items[:0]
}

// insert places c after every candidate not farther from the start. A candidate of the
// same region within sameCrossing of one already buffered is dropped.
func (b *buffer) insert(c candidate) {
	i := sort.Search(len(b.items), func(i int) bool { return b.items[i].dist > c.dist })
	for j := i - 1; j >= 0 && c.dist-b.items[j].dist <= sameCrossing; j-- {
		if b.items[j].region == c.region {
			return
		}
	}
	for j := i; j < len(b.items) && b.items[j].dist-c.dist <= sameCrossing; j++ {
		if b.items[j].region == c.region {
			return
		}
	}
	b.items = append(b.items, candidate{})
	copy(b.items[i+1:], b.items[i:])
	b.items[i] = c
}

// drain returns the buffered candidates in order and closes the buffer. The returned
// slice is only valid until the next reset.
func (b *buffer) drain() []candidate {
	b.open = false
	return b.items
}
