// Package extentindex keeps extents in longitude buckets so that the ones that might
// overlap a query shape can be found without scanning the whole collection.
//
// Each extent is placed by its bounding circle. Circles too wide in longitude, which
// happens near the poles where a degree of longitude shrinks to nothing, go to a polar
// set; circles covering a quarter of the sphere or more, or centered on a sentinel
// location, go to a discarded set. Both sets are returned by every query, so results
// are always a superset of the extents that actually intersect the query. Callers run
// an exact test on the candidates.
//
// An Index is not safe for concurrent use. Writers must be serialized against each
// other and against readers. Once populated, Snapshot returns an immutable copy that
// any number of goroutines can query.
package extentindex

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/golang/geo/s1"
	"github.com/golang/glog"

	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// Querier returns candidate extents for a query shape.
type Querier interface {
	// Iterator yields, in insertion order, every indexed extent that might intersect e.
	Iterator(e extent.Extent) iter.Seq[extent.Extent]
	// Query collects the result of Iterator.
	Query(e extent.Extent) []extent.Extent
}

type entry struct {
	extent extent.Extent
	bc     geo.BoundingCircle
	cov    coverage
	seq    uint64
}

type entrySet map[extent.ID]*entry

// Index is a mutable collection of extents bucketed by longitude.
type Index struct {
	nbuckets int
	margin   s1.Angle
	sentinel *geo.Point

	buckets   []entrySet
	all       entrySet
	polar     entrySet
	discarded entrySet
	seq       uint64
}

// New returns an empty index.
func New(opts ...Option) *Index {
	idx := &Index{nbuckets: DefaultBuckets}
	for _, opt := range opts {
		opt(idx)
	}
	idx.Clear()
	return idx
}

// Buckets returns the number of longitude buckets.
func (idx *Index) Buckets() int { return idx.nbuckets }

// Margin returns the extra radius added to every extent.
func (idx *Index) Margin() s1.Angle { return idx.margin }

// Add indexes e and reports whether it went to the buckets or the polar set. A false
// return means e was kept in the discarded set: it is still returned by every query.
// Adding an extent already present replaces it.
func (idx *Index) Add(e extent.Extent) bool {
	if _, ok := idx.all[e.ID()]; ok {
		idx.Remove(e)
	}

	bc := e.BoundingCircle()
	idx.seq++
	en := &entry{
		extent: e,
		bc:     bc,
		cov:    circleCoverage(bc, idx.margin, idx.sentinel, idx.nbuckets),
		seq:    idx.seq,
	}

	idx.all[e.ID()] = en
	switch en.cov.kind {
	case discarded:
		glog.V(2).Infof("extentindex: %v discarded, %v", e.ID(), bc)
		idx.discarded[e.ID()] = en
		return false
	case polar:
		glog.V(2).Infof("extentindex: %v polar, %v", e.ID(), bc)
		idx.polar[e.ID()] = en
	default:
		for b := range en.cov.buckets(idx.nbuckets) {
			idx.buckets[b][e.ID()] = en
		}
	}
	return true
}

// Remove takes e out of every structure Add placed it in and reports whether it was
// present.
func (idx *Index) Remove(e extent.Extent) bool {
	en, ok := idx.all[e.ID()]
	if !ok {
		return false
	}
	delete(idx.all, e.ID())
	switch en.cov.kind {
	case discarded:
		delete(idx.discarded, e.ID())
	case polar:
		delete(idx.polar, e.ID())
	default:
		for b := range en.cov.buckets(idx.nbuckets) {
			delete(idx.buckets[b], e.ID())
		}
	}
	return true
}

// Clear empties the index.
func (idx *Index) Clear() {
	idx.buckets = make([]entrySet, idx.nbuckets)
	for i := range idx.buckets {
		idx.buckets[i] = make(entrySet)
	}
	idx.all = make(entrySet)
	idx.polar = make(entrySet)
	idx.discarded = make(entrySet)
}

// Len returns the number of indexed extents.
func (idx *Index) Len() int { return len(idx.all) }

// Contains reports whether e is indexed.
func (idx *Index) Contains(e extent.Extent) bool {
	_, ok := idx.all[e.ID()]
	return ok
}

// All yields every indexed extent in insertion order.
func (idx *Index) All() iter.Seq[extent.Extent] { return extents(sorted(idx.all)) }

// Polar yields the extents kept in the polar set.
func (idx *Index) Polar() iter.Seq[extent.Extent] { return extents(sorted(idx.polar)) }

// Discarded yields the extents kept in the discarded set.
func (idx *Index) Discarded() iter.Seq[extent.Extent] { return extents(sorted(idx.discarded)) }

// Iterator yields the candidates that might intersect e.
func (idx *Index) Iterator(e extent.Extent) iter.Seq[extent.Extent] {
	return extents(query(idx.layout(), e))
}

// Query returns the candidates that might intersect e.
func (idx *Index) Query(e extent.Extent) []extent.Extent {
	return slices.Collect(idx.Iterator(e))
}

// Snapshot returns an immutable copy of the index for concurrent readers. Later changes
// to the index do not affect it.
func (idx *Index) Snapshot() *Snapshot {
	s := &Snapshot{
		nbuckets:  idx.nbuckets,
		margin:    idx.margin,
		buckets:   make([][]*entry, idx.nbuckets),
		all:       sorted(idx.all),
		polar:     sorted(idx.polar),
		discarded: sorted(idx.discarded),
	}
	for i, b := range idx.buckets {
		s.buckets[i] = sorted(b)
	}
	return s
}

func (idx *Index) layout() layout {
	return mapLayout{idx: idx}
}

type mapLayout struct {
	idx *Index
}

func (l mapLayout) nbuckets() int    { return l.idx.nbuckets }
func (l mapLayout) margin() s1.Angle { return l.idx.margin }

func (l mapLayout) bucket(b int) iter.Seq[*entry] { return maps.Values(l.idx.buckets[b]) }

func (l mapLayout) overflow() iter.Seq[*entry] {
	return func(yield func(*entry) bool) {
		for _, set := range []entrySet{l.idx.polar, l.idx.discarded} {
			for en := range maps.Values(set) {
				if !yield(en) {
					return
				}
			}
		}
	}
}

func (l mapLayout) everything() iter.Seq[*entry] { return maps.Values(l.idx.all) }

// sorted returns the entries of set in insertion order.
func sorted(set entrySet) []*entry {
	return sortBySeq(slices.Collect(maps.Values(set)))
}

func sortBySeq(entries []*entry) []*entry {
	slices.SortFunc(entries, func(a, b *entry) int { return cmp.Compare(a.seq, b.seq) })
	return entries
}

func extents(entries []*entry) iter.Seq[extent.Extent] {
	return func(yield func(extent.Extent) bool) {
		for _, en := range entries {
			if !yield(en.extent) {
				return
			}
		}
	}
}
