package extent

import (
	"github.com/golang/geo/s1"

	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// IsPointInRegion reports whether p lies inside r.
func IsPointInRegion(p geo.Point, r *Region) bool {
	return geo.IsPointInPolygon(p, r.points)
}

// SegmentNearRegion reports whether s comes within tolerance of an edge of r, or starts
// inside r.
func SegmentNearRegion(s *Segment, r *Region, tolerance s1.Angle) bool {
	return geo.SegmentNearPolygon(s.a, s.b, r.points, tolerance)
}

// Intersects reports whether two extents touch or come within tolerance of each other.
// A region counts as its interior as well as its boundary; paths and segments are
// their arcs only. Bounding circles are compared first.
func Intersects(a, b Extent, tolerance s1.Angle) bool {
	ca, cb := a.BoundingCircle(), b.BoundingCircle()
	if !ca.IntersectsPoint(cb.Center, cb.Radius+tolerance) {
		return false
	}

	pa, pb := Vertices(a), Vertices(b)
	if len(pa) == 0 || len(pb) == 0 {
		return false
	}
	if r, ok := b.(*Region); ok && r.Contains(pa[0]) {
		return true
	}
	if r, ok := a.(*Region); ok && r.Contains(pb[0]) {
		return true
	}

	ea, eb := edges(a, pa), edges(b, pb)
	switch {
	case ea == 0 && eb == 0:
		return pa[0].Distance(pb[0]) <= tolerance
	case ea == 0:
		return nearAnyEdge(pa[0], pb, eb, tolerance)
	case eb == 0:
		return nearAnyEdge(pb[0], pa, ea, tolerance)
	}
	for i := range ea {
		a1, a2 := pa[i], pa[(i+1)%len(pa)]
		for j := range eb {
			if geo.SegmentsIntersect(a1, a2, pb[j], pb[(j+1)%len(pb)], tolerance) {
				return true
			}
		}
	}
	return false
}

// edges returns the number of arcs in the boundary of e.
func edges(e Extent, pts []geo.Point) int {
	if len(pts) < 2 {
		return 0
	}
	if _, ok := e.(*Region); ok {
		return len(pts)
	}
	return len(pts) - 1
}

func nearAnyEdge(p geo.Point, pts []geo.Point, n int, tolerance s1.Angle) bool {
	for i := range n {
		if geo.PointNearSegment(p, pts[i], pts[(i+1)%len(pts)], tolerance) {
			return true
		}
	}
	return false
}
