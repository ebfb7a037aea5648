package extent

import (
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// Point is an extent made of a single location.
type Point struct {
	p  geo.Point
	id ID
}

// NewPoint wraps p as an extent.
func NewPoint(p geo.Point) *Point {
	return &Point{p: p, id: newID(KindPoint)}
}

// Location returns the wrapped point.
func (e *Point) Location() geo.Point { return e.p }

// BoundingCircle returns the zero-radius circle centered on the point.
func (e *Point) BoundingCircle() geo.BoundingCircle {
	return geo.NewBoundingCircle(e.p, 0)
}

func (e *Point) ID() ID     { return e.id }
func (e *Point) Kind() Kind { return KindPoint }
func (e *Point) sealed()    {}

func (e *Point) String() string { return "point" + e.p.String() }
