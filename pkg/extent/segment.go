package extent

import (
	"fmt"
	"sync"

	"github.com/golang/geo/s1"

	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// Segment is the shorter great circle arc between two points. The arc must be shorter
// than π: antipodal endpoints do not define a unique arc.
type Segment struct {
	a, b geo.Point
	id   ID

	once sync.Once
	bc   geo.BoundingCircle
}

// NewSegment builds the segment a→b.
func NewSegment(a, b geo.Point) *Segment {
	return &Segment{a: a, b: b, id: newID(KindSegment)}
}

func newSegmentView(a, b geo.Point, id ID) *Segment {
	return &Segment{a: a, b: b, id: id}
}

func (s *Segment) Start() geo.Point { return s.a }
func (s *Segment) End() geo.Point   { return s.b }

// Length returns the arc length of the segment.
func (s *Segment) Length() s1.Angle { return s.a.Distance(s.b) }

// Normal returns the unit normal of the great circle carrying the segment.
func (s *Segment) Normal() geo.Point { return s.a.CrossNormalize(s.b) }

// BoundingCircle returns the circle centered on the arc midpoint reaching both endpoints.
func (s *Segment) BoundingCircle() geo.BoundingCircle {
	s.once.Do(func() {
		s.bc = geo.BoundingCircleOf([]geo.Point{s.a, s.b})
	})
	return s.bc
}

func (s *Segment) ID() ID     { return s.id }
func (s *Segment) Kind() Kind { return KindSegment }
func (s *Segment) sealed()    {}

func (s *Segment) String() string {
	return fmt.Sprintf("segment[%v -> %v]", s.a, s.b)
}
