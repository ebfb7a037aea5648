package extent

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// Region is a closed boundary of at least three points. The edge from the last vertex
// back to the first is implicit. Vertices are expected in clockwise order so that the
// inside lies to the right of each edge; a region must enclose less than a hemisphere
// and must not contain a pole. Neither condition is checked.
type Region struct {
	polyline
}

// NewRegion builds a region from its boundary. The slice is copied, and a final vertex
// repeating the first one is dropped so closed rings can be passed as they are.
func NewRegion(points []geo.Point) *Region {
	pts := slices.Clone(points)
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	return &Region{polyline{points: pts, id: newID(KindRegion)}}
}

// Len returns the number of distinct boundary vertices.
func (r *Region) Len() int { return len(r.points) }

// Point returns the i-th vertex.
func (r *Region) Point(i int) geo.Point { return r.points[i] }

// Vertices returns the boundary without the closing vertex. The returned slice must not
// be modified.
func (r *Region) Vertices() []geo.Point { return r.points }

// NumSegments returns the number of boundary edges, the closing edge included.
func (r *Region) NumSegments() int {
	if len(r.points) < 2 {
		return 0
	}
	return len(r.points)
}

// Segment returns the i-th boundary edge. The last edge joins the final vertex to the
// first.
func (r *Region) Segment(i int) *Segment {
	j := i + 1
	if j == len(r.points) {
		j = 0
	}
	return newSegmentView(r.points[i], r.points[j], r.id.view(KindSegment, i))
}

// Segments yields every boundary edge, the closing edge last.
func (r *Region) Segments() iter.Seq2[int, *Segment] {
	return func(yield func(int, *Segment) bool) {
		for i := range r.NumSegments() {
			if !yield(i, r.Segment(i)) {
				return
			}
		}
	}
}

// Points yields every boundary vertex as a point extent.
func (r *Region) Points() iter.Seq2[int, *Point] { return r.pointViews() }

// Contains reports whether p lies inside the region.
func (r *Region) Contains(p geo.Point) bool {
	return geo.IsPointInPolygon(p, r.points)
}

// BoundingCircle returns the centroid circle of the boundary. It is computed once.
func (r *Region) BoundingCircle() geo.BoundingCircle { return r.boundingCircle() }

func (r *Region) ID() ID     { return r.id }
func (r *Region) Kind() Kind { return KindRegion }
func (r *Region) sealed()    {}

func (r *Region) String() string { return fmt.Sprintf("region(%d points)", len(r.points)) }
