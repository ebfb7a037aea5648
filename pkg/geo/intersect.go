package geo

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// All tolerances below are angles on the unit sphere. A zero tolerance asks for a strict
// intersection.

// Centroid returns the normalized vector mean of points.
func Centroid(points []Point) Point {
	var sum r3.Vector
	for _, p := range points {
		sum = sum.Add(p.v)
	}
	return PointFromVector(sum)
}

// SegmentsIntersect reports whether the great circle segments a1→a2 and b1→b2 cross, or
// come within tolerance r of crossing. The result does not depend on the order of the two
// segments nor on the order of their endpoints.
func SegmentsIntersect(a1, a2, b1, b2 Point, r s1.Angle) bool {
	_, ok := SegmentIntersection(a1, a2, b1, b2, r)
	return ok
}

// SegmentIntersection returns the point where the segments a1→a2 and b1→b2 meet, within
// tolerance r.
//
// The two great circles carrying the segments meet at two antipodal candidates. A
// candidate lies on a segment when its distance to both endpoints is at most the segment
// length plus r. Segments lying on the same great circle intersect when an endpoint of one
// lies on the other.
func SegmentIntersection(a1, a2, b1, b2 Point, r s1.Angle) (Point, bool) {
	alen := a1.Distance(a2) + r
	blen := b1.Distance(b2) + r

	ac := a1.CrossNormalize(a2)
	bc := b1.CrossNormalize(b2)
	iv := ac.Cross(bc)
	if iv.Norm2() == 0 {
		for _, c := range [4]Point{b1, b2, a1, a2} {
			if onSegment(c, a1, a2, alen) && onSegment(c, b1, b2, blen) {
				return c, true
			}
		}
		return Point{}, false
	}

	i := PointFromVector(iv)
	for _, c := range [2]Point{i, i.Antipode()} {
		if onSegment(c, a1, a2, alen) && onSegment(c, b1, b2, blen) {
			return c, true
		}
	}
	return Point{}, false
}

// onSegment reports whether c is no farther than limit from both a and b.
func onSegment(c, a, b Point, limit s1.Angle) bool {
	return c.Distance(a) <= limit && c.Distance(b) <= limit
}

// IsPointInPolygon reports whether p lies inside the closed polygon whose boundary is
// poly (the last vertex connects back to the first).
//
// The test counts the polygon edges crossed by the arc from p to the antipode of the
// polygon centroid, which lies outside any polygon smaller than a hemisphere. The result
// is unspecified for polygons that enclose a pole or span more than a hemisphere.
func IsPointInPolygon(p Point, poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	ref := Centroid(poly).Antipode()
	if p.Distance(ref) > math.Pi-1e-9 {
		// p sits on the centroid: move the reference off the antipode so the arc is defined
		ref = PointFromVector(ref.v.Add(ref.v.Ortho().Mul(1e-3)))
	}

	a := s2.Point{Vector: p.v}
	b := s2.Point{Vector: ref.v}
	inside := false
	for i := 0; i < n; i++ {
		c := s2.Point{Vector: poly[i].v}
		d := s2.Point{Vector: poly[(i+1)%n].v}
		if s2.EdgeOrVertexCrossing(a, b, c, d) {
			inside = !inside
		}
	}
	return inside
}

// SegmentNearPolygon reports whether the segment a→b crosses or comes within tolerance of
// any edge of poly, or starts inside it. The second case covers segments lying entirely
// inside the polygon.
func SegmentNearPolygon(a, b Point, poly []Point, tolerance s1.Angle) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		if SegmentsIntersect(a, b, poly[i], poly[(i+1)%n], tolerance) {
			return true
		}
	}
	return IsPointInPolygon(a, poly)
}

// PointToGreatCircleDistance returns the angular distance from p to the great circle
// whose unit normal is normal.
func PointToGreatCircleDistance(p, normal Point) s1.Angle {
	d := p.Dot(normal)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return s1.Angle(math.Abs(math.Asin(d)))
}

// SegmentIntersectsCircle reports whether the segment a→b passes within radius of center.
func SegmentIntersectsCircle(a, b, center Point, radius s1.Angle) bool {
	if a.Distance(center) <= radius || b.Distance(center) <= radius {
		return true
	}

	n := a.CrossNormalize(b)
	if PointToGreatCircleDistance(center, n) > radius {
		return false
	}

	// foot of the perpendicular from center onto the great circle
	foot := PointFromVector(center.v.Sub(n.v.Mul(center.Dot(n))))
	return onSegment(foot, a, b, a.Distance(b))
}

// PointNearSegment reports whether p lies within tolerance of the segment a→b.
func PointNearSegment(p, a, b Point, tolerance s1.Angle) bool {
	return SegmentIntersectsCircle(a, b, p, tolerance)
}
