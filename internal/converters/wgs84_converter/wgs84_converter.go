// Package wgs84_converter accepts coordinates that are already geographic WGS84 and rejects every other
// reference system. It needs no native projection library.
package wgs84_converter

import (
	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/internal/converters"
)

var ErrUnsupportedSrid = errors.New("only EPSG:4326 coordinates are supported")

type wgs84Converter struct{}

func NewWGS84Converter() converters.CoordinateConverter {
	return &wgs84Converter{}
}

func (c *wgs84Converter) ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord converters.Coordinate) (converters.Coordinate, error) {
	if sourceSrid != converters.WGS84 || targetSrid != converters.WGS84 {
		return coord, errors.Wrapf(ErrUnsupportedSrid, "converting EPSG:%d to EPSG:%d", sourceSrid, targetSrid)
	}
	if coord.Y < -90 || coord.Y > 90 {
		return coord, errors.Errorf("latitude %v out of range", coord.Y)
	}
	return coord, nil
}

func (c *wgs84Converter) ConvertToWGS84(coord converters.Coordinate, sourceSrid int) (converters.Coordinate, error) {
	return c.ConvertCoordinateSrid(sourceSrid, converters.WGS84, coord)
}

func (c *wgs84Converter) Cleanup() {}
