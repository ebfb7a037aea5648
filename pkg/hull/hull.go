// Package hull computes the convex hull of points on the sphere with a Graham scan.
//
// Points are sorted by azimuth around the northernmost point. Azimuths seen from a
// point are preserved by the gnomonic projection centered on it, which also maps great
// circles to straight lines, so the planar scan carries over as long as the input fits
// in a hemisphere.
package hull

import (
	"cmp"
	"slices"

	"github.com/golang/geo/s1"
	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// ErrDegenerate is returned when the input does not span at least three distinct,
// non collinear points.
var ErrDegenerate = errors.New("convex hull needs at least 3 distinct non collinear points")

type candidate struct {
	p       geo.Point
	azimuth s1.Angle
	dist    s1.Angle
}

// ConvexHull returns the region enclosing points. Points closer than tolerance to the
// previously accepted hull point are treated as duplicates. The region winds
// clockwise and does not repeat its first vertex.
//
// Every input point ends up either as a vertex of the region or inside it, up to
// points lying on a hull edge. The vertex set does not depend on the input order.
func ConvexHull(points []geo.Point, tolerance s1.Angle) (*extent.Region, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrDegenerate, "got %d points", len(points))
	}

	pivot := 0
	for i, p := range points {
		if p.Z() > points[pivot].Z() {
			pivot = i
		}
	}
	origin := points[pivot]

	sorted := make([]candidate, 0, len(points)-1)
	for i, p := range points {
		if i == pivot {
			continue
		}
		d := origin.Distance(p)
		if d <= tolerance || d == 0 {
			continue
		}
		sorted = append(sorted, candidate{p: p, azimuth: origin.Azimuth(p), dist: d})
	}
	slices.SortStableFunc(sorted, func(a, b candidate) int {
		if c := cmp.Compare(b.azimuth, a.azimuth); c != 0 {
			return c
		}
		return cmp.Compare(a.dist, b.dist)
	})

	stack := make([]geo.Point, 1, len(sorted)+1)
	stack[0] = origin
	for i := 0; i <= len(sorted); i++ {
		closing := i == len(sorted)
		next := origin
		if !closing {
			next = sorted[i].p
			if stack[len(stack)-1].Distance(next) <= tolerance {
				continue
			}
		}
		for len(stack) >= 2 && !leftTurn(stack[len(stack)-2], stack[len(stack)-1], next) {
			stack = stack[:len(stack)-1]
		}
		if !closing {
			stack = append(stack, next)
		}
	}

	if len(stack) < 3 {
		return nil, errors.Wrapf(ErrDegenerate, "%d hull points left", len(stack))
	}
	slices.Reverse(stack)
	return extent.NewRegion(stack), nil
}

// HullOfExtents returns the convex hull of every defining point of extents.
func HullOfExtents(extents []extent.Extent, tolerance s1.Angle) (*extent.Region, error) {
	var points []geo.Point
	for _, e := range extents {
		points = append(points, extent.Vertices(e)...)
	}
	return ConvexHull(points, tolerance)
}

// leftTurn reports whether the path end→mid→next turns left at mid. The great circles
// end→mid and mid→next meet at mid and at its antipode; the turn is to the left when
// the intersection taken in that order is within a quarter turn of mid. Collinear
// points do not turn left.
func leftTurn(end, mid, next geo.Point) bool {
	n1 := geo.PointFromVector(end.Cross(mid))
	n2 := geo.PointFromVector(mid.Cross(next))
	i := n1.Cross(n2)
	if i.Norm2() == 0 {
		return false
	}
	return mid.Vector().Dot(i) > 0
}
