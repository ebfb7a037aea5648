// Package proj4_converter reprojects coordinates through the proj.4 library. It requires cgo and libproj.
package proj4_converter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/xeonx/proj4"

	"github.com/ecopia-map/geo_extents/internal/converters"
	"github.com/ecopia-map/geo_extents/tools"
)

// epsgFile lists extra projection definitions, one per line in the form "<code> +proj=...".
const epsgFile = "assets/epsg"

type proj4CoordinateConverter struct {
	definitions map[int]string
	projections map[int]*proj4.Proj
	mu          sync.Mutex
}

func NewProj4CoordinateConverter() converters.CoordinateConverter {
	cc := &proj4CoordinateConverter{
		definitions: builtinDefinitions(),
		projections: make(map[int]*proj4.Proj),
	}
	cc.loadDefinitionsFile(filepath.Join(tools.GetRootFolder(), epsgFile))
	return cc
}

func builtinDefinitions() map[int]string {
	defs := map[int]string{
		4326: "+proj=longlat +datum=WGS84 +no_defs",
		3857: "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +wktext +no_defs",
		3395: "+proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +datum=WGS84 +units=m +no_defs",
	}
	for zone := 1; zone <= 60; zone++ {
		defs[32600+zone] = fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", zone)
		defs[32700+zone] = fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", zone)
	}
	return defs
}

func (cc *proj4CoordinateConverter) loadDefinitionsFile(path string) {
	file, err := os.Open(path)
	if err != nil {
		glog.V(1).Infof("no epsg definitions file at %s", path)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, def, found := strings.Cut(line, " ")
		if !found {
			continue
		}
		srid, err := strconv.Atoi(strings.Trim(code, "<>"))
		if err != nil {
			continue
		}
		cc.definitions[srid] = strings.TrimSpace(strings.TrimSuffix(def, "<>"))
	}
	if err := scanner.Err(); err != nil {
		glog.Warningf("reading %s: %v", path, err)
	}
}

func (cc *proj4CoordinateConverter) ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord converters.Coordinate) (converters.Coordinate, error) {
	if sourceSrid == targetSrid {
		return coord, nil
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()

	src, err := cc.getProjectionFromSrid(sourceSrid)
	if err != nil {
		return coord, err
	}
	dst, err := cc.getProjectionFromSrid(targetSrid)
	if err != nil {
		return coord, err
	}
	return executeConversion(coord, src, dst)
}

func (cc *proj4CoordinateConverter) ConvertToWGS84(coord converters.Coordinate, sourceSrid int) (converters.Coordinate, error) {
	return cc.ConvertCoordinateSrid(sourceSrid, converters.WGS84, coord)
}

// Releases all projection objects from memory
func (cc *proj4CoordinateConverter) Cleanup() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	for srid, proj := range cc.projections {
		proj.Close()
		delete(cc.projections, srid)
	}
}

func (cc *proj4CoordinateConverter) getProjectionFromSrid(srid int) (*proj4.Proj, error) {
	if proj, ok := cc.projections[srid]; ok {
		return proj, nil
	}
	def, ok := cc.definitions[srid]
	if !ok {
		return nil, errors.Errorf("projection EPSG:%d not found", srid)
	}
	proj, err := proj4.InitPlus(def)
	if err != nil {
		return nil, errors.Wrapf(err, "initializing EPSG:%d", srid)
	}
	cc.projections[srid] = proj
	return proj, nil
}

func executeConversion(coord converters.Coordinate, src, dst *proj4.Proj) (converters.Coordinate, error) {
	x, y := []float64{coord.X}, []float64{coord.Y}
	if src.IsLatLong() {
		x[0], y[0] = proj4.DegToRad(x[0]), proj4.DegToRad(y[0])
	}
	if err := proj4.Transform2(src, dst, x, y); err != nil {
		return coord, errors.Wrap(err, "proj4 transform")
	}
	if dst.IsLatLong() {
		x[0], y[0] = proj4.RadToDeg(x[0]), proj4.RadToDeg(y[0])
	}
	return converters.Coordinate{X: x[0], Y: y[0]}, nil
}
