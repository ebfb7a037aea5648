package converters

// WGS84 is the EPSG code of geographic longitude/latitude coordinates, the reference system every extent
// is built from.
const WGS84 = 4326

// Coordinate is a planar pair as found in input files: longitude and latitude in degrees for geographic
// systems, easting and northing for projected ones.
type Coordinate struct {
	X float64
	Y float64
}

type CoordinateConverter interface {
	ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord Coordinate) (Coordinate, error)
	ConvertToWGS84(coord Coordinate, sourceSrid int) (Coordinate, error)
	Cleanup()
}
