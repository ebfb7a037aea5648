package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	require.Equal(t, CommandHull, ParseCommand("hull"))
	require.Equal(t, CommandCrossings, ParseCommand(" Crossings "))
	require.Equal(t, CommandQuery, ParseCommand("QUERY"))
	require.Equal(t, Command(""), ParseCommand("index"))
	require.Equal(t, "crossings", CommandCrossings.String())
}

func TestOptionsCopy(t *testing.T) {
	opts := &Options{
		Input:   "in.geojson",
		Srid:    4326,
		Command: CommandQuery,
		QueryOptions: &QueryOptions{
			Queries: "q.geojson",
			Buckets: 360,
		},
		HullOptions: &HullOptions{ToleranceNM: 0.5},
	}

	cp := opts.Copy()
	require.Equal(t, opts, cp)

	cp.QueryOptions.Buckets = 90
	cp.HullOptions.ToleranceNM = 2
	require.Equal(t, 360, opts.QueryOptions.Buckets)
	require.Equal(t, 0.5, opts.HullOptions.ToleranceNM)
	require.Nil(t, cp.CrossingsOptions)
}
