package pkg

import (
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/internal/engine"
	"github.com/ecopia-map/geo_extents/internal/geomio"
	"github.com/ecopia-map/geo_extents/internal/pipeline"
	"github.com/ecopia-map/geo_extents/pkg/algorithm_manager"
	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
	"github.com/ecopia-map/geo_extents/tools"
)

type QueryTask struct {
	base
}

func NewQueryTask(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) ITask {
	return &QueryTask{base{fileFinder: fileFinder, algorithmManager: algorithmManager}}
}

// Indexes the input extents and writes, for every query shape, the ids of the extents that might
// intersect it
func (t *QueryTask) Run(opts *engine.Options) error {
	defer t.algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	queryOpts := opts.QueryOptions
	if queryOpts == nil {
		return errors.New("missing query options")
	}

	features, err := t.loadInput(opts)
	if err != nil {
		return err
	}

	tools.LogOutput("> building index...")
	idx := t.algorithmManager.GetIndexAlgorithm()
	names := make(map[extent.ID]string, len(features))
	discarded := 0
	for _, f := range features {
		names[f.Extent.ID()] = f.ID
		if !idx.Add(f.Extent) {
			discarded++
		}
	}
	glog.Infof("indexed %d extents in %d buckets, %d discarded", idx.Len(), idx.Buckets(), discarded)

	queries, err := t.readFile(queryOpts.Queries, opts)
	if err != nil {
		return err
	}

	tools.LogOutput("> running", len(queries), "queries...")
	start := time.Now()
	results, err := pipeline.RunQueries(idx.Snapshot(), queries, queryOpts.Workers, queryOpts.Exact, geo.NMToAngle(queryOpts.ToleranceNM))
	if err != nil {
		return errors.Wrap(err, "running queries")
	}
	glog.Infof("%d queries took %s", len(queries), time.Since(start))

	out := make([]geomio.Feature, len(results))
	for i, res := range results {
		ids := make([]string, len(res.Candidates))
		for j, c := range res.Candidates {
			ids[j] = names[c.ID()]
		}
		out[i] = geomio.Feature{
			ID:     res.Query.ID,
			Extent: res.Query.Extent,
			Properties: map[string]interface{}{
				"candidates": ids,
			},
		}
	}

	tools.LogOutput("> exporting data...")
	return writeOutput(queryOpts.Output, out)
}
