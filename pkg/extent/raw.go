package extent

import (
	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// PointFromDegrees builds a point extent from a geographic latitude and longitude.
func PointFromDegrees(lat, lon float64) *Point {
	return NewPoint(geo.PointFromDegrees(lat, lon))
}

// SegmentFromDegrees builds a segment from lat1, lon1, lat2, lon2.
func SegmentFromDegrees(latlons ...float64) (*Segment, error) {
	if len(latlons) != 4 {
		return nil, errors.Errorf("segment needs exactly 4 coordinates, got %d", len(latlons))
	}
	pts, err := pointsFromDegrees(latlons, 2)
	if err != nil {
		return nil, err
	}
	return NewSegment(pts[0], pts[1]), nil
}

// PathFromDegrees builds a path from alternating latitudes and longitudes.
func PathFromDegrees(latlons ...float64) (*Path, error) {
	pts, err := pointsFromDegrees(latlons, 2)
	if err != nil {
		return nil, errors.Wrap(err, "path")
	}
	return NewPath(pts), nil
}

// RegionFromDegrees builds a region from alternating latitudes and longitudes of its
// boundary.
func RegionFromDegrees(latlons ...float64) (*Region, error) {
	pts, err := pointsFromDegrees(latlons, 3)
	if err != nil {
		return nil, errors.Wrap(err, "region")
	}
	r := NewRegion(pts)
	if r.Len() < 3 {
		return nil, errors.Errorf("region: closed ring has %d distinct points, need 3", r.Len())
	}
	return r, nil
}

func pointsFromDegrees(latlons []float64, minPoints int) ([]geo.Point, error) {
	if len(latlons)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates: %d", len(latlons))
	}
	if n := len(latlons) / 2; n < minPoints {
		return nil, errors.Errorf("need at least %d points, got %d", minPoints, n)
	}
	pts := make([]geo.Point, 0, len(latlons)/2)
	for i := 0; i < len(latlons); i += 2 {
		pts = append(pts, geo.PointFromDegrees(latlons[i], latlons[i+1]))
	}
	return pts, nil
}
