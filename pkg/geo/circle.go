package geo

import (
	"fmt"

	"github.com/golang/geo/s1"
)

// BoundingCircle is a conservative circular approximation of an extent: every defining
// point of the extent lies within Radius of Center. It is only meant for fast overlap
// rejection and is not a minimal enclosing circle.
type BoundingCircle struct {
	Center Point
	Radius s1.Angle
}

// NewBoundingCircle builds a circle of the given radius around center.
func NewBoundingCircle(center Point, radius s1.Angle) BoundingCircle {
	return BoundingCircle{Center: center, Radius: radius}
}

// BoundingCircleOf returns the circle centered on the normalized vector mean of points,
// with a radius reaching the farthest of them. The mean is not a true spherical centroid,
// which is fine for a superset test. An empty slice yields the zero circle.
func BoundingCircleOf(points []Point) BoundingCircle {
	if len(points) == 0 {
		return BoundingCircle{}
	}
	center := Centroid(points)

	var radius s1.Angle
	for _, p := range points {
		if d := center.Distance(p); d > radius {
			radius = d
		}
	}
	return BoundingCircle{Center: center, Radius: radius}
}

// Intersects reports whether the two circles overlap or touch.
func (c BoundingCircle) Intersects(other BoundingCircle) bool {
	return c.IntersectsPoint(other.Center, other.Radius)
}

// IntersectsPoint reports whether the circle overlaps the circle of the given radius
// centered on p.
func (c BoundingCircle) IntersectsPoint(p Point, radius s1.Angle) bool {
	return c.Center.Distance(p) <= c.Radius+radius
}

// ContainsPoint reports whether p lies within the circle.
func (c BoundingCircle) ContainsPoint(p Point) bool {
	return c.Center.Distance(p) <= c.Radius
}

func (c BoundingCircle) String() string {
	return fmt.Sprintf("circle{center: %v, radius: %.6f°}", c.Center, c.Radius.Degrees())
}
