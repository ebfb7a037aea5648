// Package geomio converts between extents and go-geom geometries, and reads and writes them as GeoJSON
// feature collections.
//
// GeoJSON positions are longitude first. Polygon holes are not representable as regions and are
// dropped. Multi geometries become one feature per part, with the part number appended to the id.
package geomio

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/ecopia-map/geo_extents/internal/converters"
	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

// Feature is an extent with the identity and properties of the GeoJSON feature it came from.
type Feature struct {
	ID         string
	Extent     extent.Extent
	Properties map[string]interface{}
}

// Source converts input coordinates to WGS84 before building extents.
type Source struct {
	Converter converters.CoordinateConverter
	Srid      int
}

func (s Source) point(c geom.Coord) (geo.Point, error) {
	if len(c) < 2 {
		return geo.Point{}, errors.Errorf("coordinate %v has fewer than 2 dimensions", c)
	}
	coord := converters.Coordinate{X: c[0], Y: c[1]}
	if s.Converter != nil && s.Srid != converters.WGS84 {
		var err error
		coord, err = s.Converter.ConvertToWGS84(coord, s.Srid)
		if err != nil {
			return geo.Point{}, err
		}
	}
	return geo.PointFromDegrees(coord.Y, coord.X), nil
}

func (s Source) points(coords []geom.Coord) ([]geo.Point, error) {
	points := make([]geo.Point, len(coords))
	for i, c := range coords {
		p, err := s.point(c)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// FromGeom converts g to extents. A two point LineString becomes a Segment.
func (s Source) FromGeom(g geom.T) ([]extent.Extent, error) {
	switch g := g.(type) {
	case *geom.Point:
		p, err := s.point(g.Coords())
		if err != nil {
			return nil, err
		}
		return []extent.Extent{extent.NewPoint(p)}, nil
	case *geom.LineString:
		e, err := s.lineString(g.Coords())
		if err != nil {
			return nil, err
		}
		return []extent.Extent{e}, nil
	case *geom.Polygon:
		e, err := s.polygon(g)
		if err != nil {
			return nil, err
		}
		return []extent.Extent{e}, nil
	case *geom.MultiPoint:
		extents := make([]extent.Extent, 0, g.NumPoints())
		for i := range g.NumPoints() {
			p, err := s.point(g.Point(i).Coords())
			if err != nil {
				return nil, err
			}
			extents = append(extents, extent.NewPoint(p))
		}
		return extents, nil
	case *geom.MultiLineString:
		extents := make([]extent.Extent, 0, g.NumLineStrings())
		for i := range g.NumLineStrings() {
			e, err := s.lineString(g.LineString(i).Coords())
			if err != nil {
				return nil, err
			}
			extents = append(extents, e)
		}
		return extents, nil
	case *geom.MultiPolygon:
		extents := make([]extent.Extent, 0, g.NumPolygons())
		for i := range g.NumPolygons() {
			e, err := s.polygon(g.Polygon(i))
			if err != nil {
				return nil, err
			}
			extents = append(extents, e)
		}
		return extents, nil
	case nil:
		return nil, errors.New("missing geometry")
	}
	return nil, errors.Errorf("unsupported geometry %T", g)
}

func (s Source) lineString(coords []geom.Coord) (extent.Extent, error) {
	points, err := s.points(coords)
	if err != nil {
		return nil, err
	}
	switch len(points) {
	case 0, 1:
		return nil, errors.Errorf("line string with %d points", len(points))
	case 2:
		return extent.NewSegment(points[0], points[1]), nil
	}
	return extent.NewPath(points), nil
}

func (s Source) polygon(g *geom.Polygon) (extent.Extent, error) {
	if g.NumLinearRings() == 0 {
		return nil, errors.New("polygon without rings")
	}
	if g.NumLinearRings() > 1 {
		glog.Warningf("dropping %d polygon holes", g.NumLinearRings()-1)
	}
	points, err := s.points(g.LinearRing(0).Coords())
	if err != nil {
		return nil, err
	}
	r := extent.NewRegion(points)
	if r.Len() < 3 {
		return nil, errors.Errorf("polygon ring with %d distinct points", r.Len())
	}
	return r, nil
}

func coord(p geo.Point) geom.Coord {
	return geom.Coord{p.Lon(), p.Lat()}
}

func coords(points []geo.Point) []geom.Coord {
	out := make([]geom.Coord, len(points))
	for i, p := range points {
		out[i] = coord(p)
	}
	return out
}

// ToGeom converts e to a geometry in WGS84 longitude/latitude. Region rings are closed.
func ToGeom(e extent.Extent) geom.T {
	switch e := e.(type) {
	case *extent.Point:
		return geom.NewPoint(geom.XY).MustSetCoords(coord(e.Location()))
	case *extent.Segment:
		return geom.NewLineString(geom.XY).MustSetCoords(coords([]geo.Point{e.Start(), e.End()}))
	case *extent.Path:
		return geom.NewLineString(geom.XY).MustSetCoords(coords(e.Vertices()))
	case *extent.Region:
		ring := coords(e.Vertices())
		if len(ring) > 0 {
			ring = append(ring, ring[0])
		}
		return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring})
	}
	return nil
}

// ReadFeatures decodes a GeoJSON FeatureCollection. Features without an id get their position in the
// collection.
func (s Source) ReadFeatures(r io.Reader) ([]Feature, error) {
	var fc geojson.FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, errors.Wrap(err, "decoding feature collection")
	}

	var features []Feature
	for i, f := range fc.Features {
		id := f.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		extents, err := s.FromGeom(f.Geometry)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %s", id)
		}
		for j, e := range extents {
			partID := id
			if len(extents) > 1 {
				partID = id + "#" + strconv.Itoa(j)
			}
			features = append(features, Feature{ID: partID, Extent: e, Properties: f.Properties})
		}
	}
	return features, nil
}

// WriteFeatures encodes features as a GeoJSON FeatureCollection.
func WriteFeatures(w io.Writer, features []Feature) error {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(features))}
	for _, f := range features {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         f.ID,
			Geometry:   ToGeom(f.Extent),
			Properties: f.Properties,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(fc), "encoding feature collection")
}
