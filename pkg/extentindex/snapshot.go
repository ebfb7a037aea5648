package extentindex

import (
	"iter"
	"slices"

	"github.com/golang/geo/s1"

	"github.com/ecopia-map/geo_extents/pkg/extent"
)

// Snapshot is a read-only copy of an Index. Its methods may be called from any number
// of goroutines.
type Snapshot struct {
	nbuckets int
	margin   s1.Angle

	buckets   [][]*entry
	all       []*entry
	polar     []*entry
	discarded []*entry
}

// Len returns the number of extents in the snapshot.
func (s *Snapshot) Len() int { return len(s.all) }

// All yields every extent in insertion order.
func (s *Snapshot) All() iter.Seq[extent.Extent] { return extents(s.all) }

// Polar yields the extents kept in the polar set.
func (s *Snapshot) Polar() iter.Seq[extent.Extent] { return extents(s.polar) }

// Discarded yields the extents kept in the discarded set.
func (s *Snapshot) Discarded() iter.Seq[extent.Extent] { return extents(s.discarded) }

// Iterator yields the candidates that might intersect e.
func (s *Snapshot) Iterator(e extent.Extent) iter.Seq[extent.Extent] {
	return extents(query(sliceLayout{s}, e))
}

// Query returns the candidates that might intersect e.
func (s *Snapshot) Query(e extent.Extent) []extent.Extent {
	return slices.Collect(s.Iterator(e))
}

type sliceLayout struct {
	s *Snapshot
}

func (l sliceLayout) nbuckets() int    { return l.s.nbuckets }
func (l sliceLayout) margin() s1.Angle { return l.s.margin }

func (l sliceLayout) bucket(b int) iter.Seq[*entry] { return slices.Values(l.s.buckets[b]) }

func (l sliceLayout) overflow() iter.Seq[*entry] {
	return func(yield func(*entry) bool) {
		for _, en := range l.s.polar {
			if !yield(en) {
				return
			}
		}
		for _, en := range l.s.discarded {
			if !yield(en) {
				return
			}
		}
	}
}

func (l sliceLayout) everything() iter.Seq[*entry] { return slices.Values(l.s.all) }
