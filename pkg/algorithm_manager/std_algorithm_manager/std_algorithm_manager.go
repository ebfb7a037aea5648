package std_algorithm_manager

import (
	"github.com/ecopia-map/geo_extents/internal/converters"
	"github.com/ecopia-map/geo_extents/internal/converters/proj4_converter"
	"github.com/ecopia-map/geo_extents/internal/converters/wgs84_converter"
	"github.com/ecopia-map/geo_extents/internal/engine"
	"github.com/ecopia-map/geo_extents/pkg/algorithm_manager"
	"github.com/ecopia-map/geo_extents/pkg/extentindex"
)

type StandardAlgorithmManager struct {
	options             *engine.Options
	coordinateConverter converters.CoordinateConverter
}

func NewAlgorithmManager(opts *engine.Options) algorithm_manager.AlgorithmManager {
	var converter converters.CoordinateConverter
	if opts.Srid == converters.WGS84 {
		converter = wgs84_converter.NewWGS84Converter()
	} else {
		converter = proj4_converter.NewProj4CoordinateConverter()
	}

	return &StandardAlgorithmManager{
		options:             opts,
		coordinateConverter: converter,
	}
}

func (m *StandardAlgorithmManager) GetCoordinateConverterAlgorithm() converters.CoordinateConverter {
	return m.coordinateConverter
}

func (m *StandardAlgorithmManager) GetIndexAlgorithm() *extentindex.Index {
	return extentindex.New(algorithm_manager.IndexOptions(m.options)...)
}
