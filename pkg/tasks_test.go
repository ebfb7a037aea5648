package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/geo_extents/internal/converters"
	"github.com/ecopia-map/geo_extents/internal/converters/wgs84_converter"
	"github.com/ecopia-map/geo_extents/internal/engine"
	"github.com/ecopia-map/geo_extents/internal/geomio"
	"github.com/ecopia-map/geo_extents/pkg/algorithm_manager"
	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/extentindex"
	"github.com/ecopia-map/geo_extents/tools"
)

type testManager struct {
	opts *engine.Options
}

func (m testManager) GetCoordinateConverterAlgorithm() converters.CoordinateConverter {
	return wgs84_converter.NewWGS84Converter()
}

func (m testManager) GetIndexAlgorithm() *extentindex.Index {
	return extentindex.New(algorithm_manager.IndexOptions(m.opts)...)
}

const regionsJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "west", "geometry": {"type": "Polygon", "coordinates": [[[-5, -5], [5, -5], [5, 5], [-5, 5], [-5, -5]]]}},
    {"type": "Feature", "id": "east", "geometry": {"type": "Polygon", "coordinates": [[[5, -5], [15, -5], [15, 5], [5, 5], [5, -5]]]}},
    {"type": "Feature", "id": "far", "geometry": {"type": "Polygon", "coordinates": [[[100, 35], [110, 35], [110, 45], [100, 45], [100, 35]]]}},
    {"type": "Feature", "id": "buoy", "geometry": {"type": "Point", "coordinates": [0, 0]}}
  ]
}`

const pathJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "route", "geometry": {"type": "LineString", "coordinates": [[-10, 0], [20, 0]]}}
  ]
}`

const queriesJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "near-west", "geometry": {"type": "Point", "coordinates": [-1, 1]}},
    {"type": "Feature", "id": "china", "geometry": {"type": "Point", "coordinates": [105, 40]}},
    {"type": "Feature", "id": "pacific", "geometry": {"type": "Point", "coordinates": [-150, 0]}}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readOutput(t *testing.T, path string) []geomio.Feature {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	features, err := geomio.Source{}.ReadFeatures(file)
	require.NoError(t, err)
	return features
}

func TestMain(m *testing.M) {
	tools.DisableLogger()
	os.Exit(m.Run())
}

func TestHullTask(t *testing.T) {
	dir := t.TempDir()
	opts := &engine.Options{
		Input:       writeFile(t, dir, "regions.geojson", regionsJSON),
		Srid:        converters.WGS84,
		Command:     engine.CommandHull,
		HullOptions: &engine.HullOptions{Output: filepath.Join(dir, "out", "hull.geojson")},
	}

	require.NoError(t, NewHullTask(tools.NewStandardFileFinder(), testManager{opts}).Run(opts))

	out := readOutput(t, opts.HullOptions.Output)
	require.Len(t, out, 1)
	region, ok := out[0].Extent.(*extent.Region)
	require.True(t, ok)
	for _, inside := range [][2]float64{{0, 0}, {40, 105}, {0, 10}} {
		require.True(t, region.Contains(extent.PointFromDegrees(inside[0], inside[1]).Location()))
	}
	require.Equal(t, float64(region.Len()), out[0].Properties["vertices"])
}

func TestCrossingsTask(t *testing.T) {
	for _, useIndex := range []bool{false, true} {
		dir := t.TempDir()
		opts := &engine.Options{
			Input:   writeFile(t, dir, "regions.geojson", regionsJSON),
			Srid:    converters.WGS84,
			Command: engine.CommandCrossings,
			CrossingsOptions: &engine.CrossingsOptions{
				Path:     writeFile(t, dir, "path.geojson", pathJSON),
				Output:   filepath.Join(dir, "crossings.geojson"),
				UseIndex: useIndex,
			},
		}

		require.NoError(t, NewCrossingsTask(tools.NewStandardFileFinder(), testManager{opts}).Run(opts))

		out := readOutput(t, opts.CrossingsOptions.Output)
		require.Len(t, out, 3)
		require.Equal(t, "west", out[0].Properties["in"])
		require.NotContains(t, out[0].Properties, "out")
		require.Equal(t, "west", out[1].Properties["out"])
		require.Equal(t, "east", out[1].Properties["in"])
		require.Equal(t, "east", out[2].Properties["out"])
		require.Equal(t, "15", out[2].Properties["lon"])
	}
}

func TestCrossingsTaskWithoutRegions(t *testing.T) {
	dir := t.TempDir()
	opts := &engine.Options{
		Input: writeFile(t, dir, "path.geojson", pathJSON),
		Srid:  converters.WGS84,
		CrossingsOptions: &engine.CrossingsOptions{
			Path: filepath.Join(dir, "path.geojson"),
		},
	}
	require.Error(t, NewCrossingsTask(tools.NewStandardFileFinder(), testManager{opts}).Run(opts))
}

func TestQueryTask(t *testing.T) {
	for _, exact := range []bool{false, true} {
		dir := t.TempDir()
		opts := &engine.Options{
			Input:   writeFile(t, dir, "regions.geojson", regionsJSON),
			Srid:    converters.WGS84,
			Command: engine.CommandQuery,
			QueryOptions: &engine.QueryOptions{
				Queries: writeFile(t, dir, "queries.geojson", queriesJSON),
				Output:  filepath.Join(dir, "results.geojson"),
				Buckets: 360,
				Exact:   exact,
				Workers: 2,
			},
		}

		require.NoError(t, NewQueryTask(tools.NewStandardFileFinder(), testManager{opts}).Run(opts))

		out := readOutput(t, opts.QueryOptions.Output)
		require.Len(t, out, 3)
		require.Equal(t, "near-west", out[0].ID)
		require.Contains(t, out[0].Properties["candidates"], "west")
		require.Equal(t, []interface{}{"far"}, out[1].Properties["candidates"])
		require.Empty(t, out[2].Properties["candidates"])
		if exact {
			require.Equal(t, []interface{}{"west"}, out[0].Properties["candidates"])
		}
	}
}

func TestTasksRequireOptions(t *testing.T) {
	opts := &engine.Options{Input: "unused"}
	finder := tools.NewStandardFileFinder()
	require.Error(t, NewHullTask(finder, testManager{opts}).Run(opts))
	require.Error(t, NewCrossingsTask(finder, testManager{opts}).Run(opts))
	require.Error(t, NewQueryTask(finder, testManager{opts}).Run(opts))
}
