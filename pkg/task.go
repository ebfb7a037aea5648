package pkg

import (
	"path/filepath"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/internal/engine"
	"github.com/ecopia-map/geo_extents/internal/geomio"
	"github.com/ecopia-map/geo_extents/pkg/algorithm_manager"
	"github.com/ecopia-map/geo_extents/tools"
)

type ITask interface {
	Run(opts *engine.Options) error
}

// base holds what every task needs to read its input.
type base struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func (t *base) source(opts *engine.Options) geomio.Source {
	return geomio.Source{
		Converter: t.algorithmManager.GetCoordinateConverterAlgorithm(),
		Srid:      opts.Srid,
	}
}

// loadInput reads the features of every input file.
func (t *base) loadInput(opts *engine.Options) ([]geomio.Feature, error) {
	tools.LogOutput("Preparing list of files to process...")

	files, err := t.fileFinder.GetGeoJSONFilesToProcess(opts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no GeoJSON files found in %s", opts.Input)
	}

	var features []geomio.Feature
	for i, filePath := range files {
		tools.LogOutput("Reading file " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(files)))
		read, err := t.readFile(filePath, opts)
		if err != nil {
			return nil, err
		}
		features = append(features, read...)
	}
	glog.Infof("loaded %d features from %d files", len(features), len(files))
	return features, nil
}

func (t *base) readFile(filePath string, opts *engine.Options) ([]geomio.Feature, error) {
	file := tools.OpenFileOrFail(filePath)
	defer file.Close()

	features, err := t.source(opts).ReadFeatures(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filepath.Base(filePath))
	}
	tools.LogOutput("> read", len(features), "features from", filepath.Base(filePath))
	return features, nil
}

func writeOutput(output string, features []geomio.Feature) error {
	w, err := tools.CreateOutput(output)
	if err != nil {
		return err
	}
	if err := geomio.WriteFeatures(w, features); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
