package pkg

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/internal/engine"
	"github.com/ecopia-map/geo_extents/internal/geomio"
	"github.com/ecopia-map/geo_extents/pkg/algorithm_manager"
	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
	"github.com/ecopia-map/geo_extents/pkg/hull"
	"github.com/ecopia-map/geo_extents/tools"
)

type HullTask struct {
	base
}

func NewHullTask(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) ITask {
	return &HullTask{base{fileFinder: fileFinder, algorithmManager: algorithmManager}}
}

// Computes the convex hull of every input extent and writes it as a single polygon feature
func (t *HullTask) Run(opts *engine.Options) error {
	defer t.algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	if opts.HullOptions == nil {
		return errors.New("missing hull options")
	}

	features, err := t.loadInput(opts)
	if err != nil {
		return err
	}

	extents := make([]extent.Extent, len(features))
	for i, f := range features {
		extents[i] = f.Extent
	}

	tools.LogOutput("> computing hull...")
	region, err := hull.HullOfExtents(extents, geo.NMToAngle(opts.HullOptions.ToleranceNM))
	if err != nil {
		return errors.Wrapf(err, "hull of %d features", len(features))
	}

	bc := region.BoundingCircle()
	glog.Infof("hull has %d vertices, bounding radius %v", region.Len(), geo.EarthLength(bc.Radius))

	tools.LogOutput("> exporting data...")
	return writeOutput(opts.HullOptions.Output, []geomio.Feature{{
		ID:     "hull",
		Extent: region,
		Properties: map[string]interface{}{
			"vertices": region.Len(),
			"features": len(features),
			"radius":   geo.EarthLength(bc.Radius).String(),
		},
	}})
}
