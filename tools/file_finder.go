package tools

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ecopia-map/geo_extents/internal/engine"
)

var geoJSONExtensions = []string{".geojson", ".json"}

type FileFinder interface {
	GetGeoJSONFilesToProcess(opts *engine.Options) ([]string, error)
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func (f *StandardFileFinder) GetGeoJSONFilesToProcess(opts *engine.Options) ([]string, error) {
	// If folder processing is not enabled then the file is given by -input flag, otherwise look for GeoJSON files in
	// -input folder eventually excluding nested folders if Recursive flag is disabled
	if !opts.FolderProcessing {
		return []string{opts.Input}, nil
	}

	return f.getGeoJSONFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getGeoJSONFilesFromInputFolder(opts *engine.Options) ([]string, error) {
	var files = make([]string, 0)

	baseInfo, err := os.Stat(opts.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "reading input folder %s", opts.Input)
	}
	err = filepath.Walk(
		opts.Input,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if !opts.Recursive && !os.SameFile(info, baseInfo) {
					return filepath.SkipDir
				}
				return nil
			}
			if isGeoJSON(info.Name()) {
				files = append(files, path)
			}
			return nil
		},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", opts.Input)
	}

	return files, nil
}

func isGeoJSON(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range geoJSONExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
