package extentindex

import (
	"iter"

	"github.com/golang/geo/s1"

	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// layout abstracts the storage of an Index and a Snapshot so both answer queries the
// same way.
type layout interface {
	nbuckets() int
	margin() s1.Angle
	bucket(b int) iter.Seq[*entry]
	overflow() iter.Seq[*entry]
	everything() iter.Seq[*entry]
}

// query returns, in insertion order, the entries that might intersect e.
func query(l layout, e extent.Extent) []*entry {
	found := make(map[extent.ID]*entry)
	switch q := e.(type) {
	case *extent.Segment:
		collectSegment(l, q, found)
	case *extent.Region:
		collectCircle(l, q.BoundingCircle(), found)
	case *extent.Path:
		for _, s := range q.Segments() {
			collectSegment(l, s, found)
		}
		if q.Len() == 1 {
			collectCircle(l, geo.NewBoundingCircle(q.Point(0), 0), found)
		}
	case *extent.Point:
		collectCircle(l, geo.NewBoundingCircle(q.Location(), 0), found)
	}
	for en := range l.overflow() {
		found[en.extent.ID()] = en
	}

	out := make([]*entry, 0, len(found))
	for _, en := range found {
		out = append(out, en)
	}
	return sortBySeq(out)
}

func collectSegment(l layout, s *extent.Segment, found map[extent.ID]*entry) {
	bc := s.BoundingCircle()
	collect(l, segmentCoverage(s.Start(), s.End(), l.nbuckets()), bc, found)
}

func collectCircle(l layout, bc geo.BoundingCircle, found map[extent.ID]*entry) {
	collect(l, circleCoverage(bc, 0, nil, l.nbuckets()), bc, found)
}

// collect adds the bucketed entries of cov whose circles come within the margin of bc.
// A query too wide for the buckets falls back to every entry.
func collect(l layout, cov coverage, bc geo.BoundingCircle, found map[extent.ID]*entry) {
	keep := func(en *entry) {
		if en.cov.kind != bucketed {
			return
		}
		if _, ok := found[en.extent.ID()]; ok {
			return
		}
		if en.bc.IntersectsPoint(bc.Center, bc.Radius+l.margin()) {
			found[en.extent.ID()] = en
		}
	}

	if cov.kind != bucketed {
		for en := range l.everything() {
			keep(en)
		}
		return
	}
	for b := range cov.buckets(l.nbuckets()) {
		for en := range l.bucket(b) {
			keep(en)
		}
	}
}
