package extentindex

import (
	"github.com/golang/geo/s1"

	"github.com/ecopia-map/geo_extents/pkg/geo"
)

const (
	// DefaultBuckets gives buckets about one degree of longitude wide.
	DefaultBuckets = 360

	// polarLimit is the longitude half-width, in degrees, past which an extent is kept in
	// the polar set instead of the buckets.
	polarLimit = 45.0
)

// Option configures an Index.
type Option func(*Index)

// WithBuckets sets the number of longitude buckets. Values below 1 are ignored.
func WithBuckets(n int) Option {
	return func(idx *Index) {
		if n > 0 {
			idx.nbuckets = n
		}
	}
}

// WithMargin widens the footprint of every extent by margin.
func WithMargin(margin s1.Angle) Option {
	return func(idx *Index) {
		if margin > 0 {
			idx.margin = margin
		}
	}
}

// WithDiscardSentinel sends every extent whose bounding circle is centered exactly on p
// to the discarded set. Callers use it for placeholder coordinates that do not describe
// a real location.
func WithDiscardSentinel(p geo.Point) Option {
	return func(idx *Index) {
		idx.sentinel = &p
	}
}
