package extent

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// polyline holds the vertex list shared by paths and regions along with the lazily
// computed bounding circle.
type polyline struct {
	points []geo.Point
	id     ID

	once sync.Once
	bc   geo.BoundingCircle
}

func (l *polyline) boundingCircle() geo.BoundingCircle {
	l.once.Do(func() {
		l.bc = geo.BoundingCircleOf(l.points)
	})
	return l.bc
}

// pointViews yields every vertex as a *Point carrying the owner's identity and the
// vertex position.
func (l *polyline) pointViews() iter.Seq2[int, *Point] {
	return func(yield func(int, *Point) bool) {
		for i, p := range l.points {
			if !yield(i, &Point{p: p, id: l.id.view(KindPoint, i)}) {
				return
			}
		}
	}
}

// Path is an ordered, open sequence of at least two points joined by great circle
// segments.
type Path struct {
	polyline
}

// NewPath builds a path through points. The slice is copied. Callers are expected to
// supply at least two points; shorter paths have no segments.
func NewPath(points []geo.Point) *Path {
	return &Path{polyline{points: slices.Clone(points), id: newID(KindPath)}}
}

// Len returns the number of vertices.
func (p *Path) Len() int { return len(p.points) }

// Point returns the i-th vertex.
func (p *Path) Point(i int) geo.Point { return p.points[i] }

// Vertices returns the vertex list. The returned slice must not be modified.
func (p *Path) Vertices() []geo.Point { return p.points }

// NumSegments returns the number of segments between consecutive vertices.
func (p *Path) NumSegments() int { return max(len(p.points)-1, 0) }

// Segment returns the i-th segment as a view whose ID records i.
func (p *Path) Segment(i int) *Segment {
	return newSegmentView(p.points[i], p.points[i+1], p.id.view(KindSegment, i))
}

// Segments yields every segment of the path in order.
func (p *Path) Segments() iter.Seq2[int, *Segment] {
	return func(yield func(int, *Segment) bool) {
		for i := range p.NumSegments() {
			if !yield(i, p.Segment(i)) {
				return
			}
		}
	}
}

// Points yields every vertex as a point extent.
func (p *Path) Points() iter.Seq2[int, *Point] { return p.pointViews() }

// BoundingCircle returns the centroid circle of the vertices. It is computed once.
func (p *Path) BoundingCircle() geo.BoundingCircle { return p.boundingCircle() }

func (p *Path) ID() ID     { return p.id }
func (p *Path) Kind() Kind { return KindPath }
func (p *Path) sealed()    {}

func (p *Path) String() string { return fmt.Sprintf("path(%d points)", len(p.points)) }
