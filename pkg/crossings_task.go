package pkg

import (
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ecopia-map/geo_extents/internal/engine"
	"github.com/ecopia-map/geo_extents/internal/geomio"
	"github.com/ecopia-map/geo_extents/pkg/algorithm_manager"
	"github.com/ecopia-map/geo_extents/pkg/crossing"
	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
	"github.com/ecopia-map/geo_extents/tools"
)

// coordinatePlaces is the number of decimals of the crossing coordinates written as properties.
const coordinatePlaces = 7

type CrossingsTask struct {
	base
}

func NewCrossingsTask(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) ITask {
	return &CrossingsTask{base{fileFinder: fileFinder, algorithmManager: algorithmManager}}
}

// Walks the path over the input regions and writes a point feature per boundary crossing
func (t *CrossingsTask) Run(opts *engine.Options) error {
	defer t.algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	if opts.CrossingsOptions == nil {
		return errors.New("missing crossings options")
	}

	features, err := t.loadInput(opts)
	if err != nil {
		return err
	}

	names := make(map[*extent.Region]string)
	var regions []*extent.Region
	for _, f := range features {
		r, ok := f.Extent.(*extent.Region)
		if !ok {
			glog.V(1).Infof("skipping %s feature %s", f.Extent.Kind(), f.ID)
			continue
		}
		names[r] = f.ID
		regions = append(regions, r)
	}
	if len(regions) == 0 {
		return errors.Errorf("no regions found in %s", opts.Input)
	}

	path, err := t.readPath(opts)
	if err != nil {
		return err
	}

	crossingOpts := []crossing.Option{crossing.WithTolerance(geo.NMToAngle(opts.CrossingsOptions.ToleranceNM))}
	if opts.CrossingsOptions.UseIndex {
		tools.LogOutput("> building index...")
		idx := t.algorithmManager.GetIndexAlgorithm()
		for _, r := range regions {
			idx.Add(r)
		}
		crossingOpts = append(crossingOpts, crossing.WithIndex(idx))
	}

	tools.LogOutput("> walking path over", len(regions), "regions...")
	var out []geomio.Feature
	for c := range crossing.Iterator(path, regions, crossingOpts...) {
		glog.V(2).Infoln(c)
		out = append(out, geomio.Feature{
			ID:         "crossing-" + strconv.Itoa(len(out)),
			Extent:     extent.NewPoint(c.Point),
			Properties: crossingProperties(c, names),
		})
	}
	glog.Infof("%d crossings over %d regions", len(out), len(regions))

	tools.LogOutput("> exporting data...")
	return writeOutput(opts.CrossingsOptions.Output, out)
}

// readPath returns the first line feature of the path file.
func (t *CrossingsTask) readPath(opts *engine.Options) (*extent.Path, error) {
	features, err := t.readFile(opts.CrossingsOptions.Path, opts)
	if err != nil {
		return nil, err
	}
	for _, f := range features {
		switch e := f.Extent.(type) {
		case *extent.Path:
			return e, nil
		case *extent.Segment:
			return extent.NewPath([]geo.Point{e.Start(), e.End()}), nil
		}
	}
	return nil, errors.Errorf("no LineString found in %s", opts.CrossingsOptions.Path)
}

func crossingProperties(c crossing.Crossing, names map[*extent.Region]string) map[string]interface{} {
	props := map[string]interface{}{
		"lat": decimal.NewFromFloat(c.Point.Lat()).Round(coordinatePlaces),
		"lon": decimal.NewFromFloat(c.Point.Lon()).Round(coordinatePlaces),
	}
	if c.Out != nil {
		props["out"] = names[c.Out]
	}
	if c.In != nil {
		props["in"] = names[c.In]
	}
	return props
}
