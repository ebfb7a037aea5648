package algorithm_manager

import (
	"github.com/ecopia-map/geo_extents/internal/converters"
	"github.com/ecopia-map/geo_extents/internal/engine"
	"github.com/ecopia-map/geo_extents/pkg/extentindex"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

type AlgorithmManager interface {
	GetCoordinateConverterAlgorithm() converters.CoordinateConverter
	// GetIndexAlgorithm returns a new empty index configured from the command options.
	GetIndexAlgorithm() *extentindex.Index
}

// IndexOptions translates the query options of opts into index options.
func IndexOptions(opts *engine.Options) []extentindex.Option {
	if opts.QueryOptions == nil {
		return nil
	}
	return []extentindex.Option{
		extentindex.WithBuckets(opts.QueryOptions.Buckets),
		extentindex.WithMargin(geo.NMToAngle(opts.QueryOptions.MarginNM)),
	}
}
