package crossing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/extentindex"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

func region(t *testing.T, latlons ...float64) *extent.Region {
	t.Helper()
	r, err := extent.RegionFromDegrees(latlons...)
	require.NoError(t, err)
	return r
}

func path(t *testing.T, latlons ...float64) *extent.Path {
	t.Helper()
	p, err := extent.PathFromDegrees(latlons...)
	require.NoError(t, err)
	return p
}

// square covers latitudes and longitudes -5..5.
func square(t *testing.T) *extent.Region {
	return region(t, 5, -5, 5, 5, -5, 5, -5, -5)
}

func requireAt(t *testing.T, lat, lon float64, p geo.Point) {
	t.Helper()
	require.InDelta(t, lat, p.Lat(), 1e-6)
	require.InDelta(t, lon, p.Lon(), 1e-6)
}

func TestCrossingSquare(t *testing.T) {
	sq := square(t)
	got := Crossings(path(t, 0, -10, 0, 10), []*extent.Region{sq})

	require.Len(t, got, 2)
	require.Equal(t, sq, got[0].In)
	require.Nil(t, got[0].Out)
	requireAt(t, 0, -5, got[0].Point)

	require.Equal(t, sq, got[1].Out)
	require.Nil(t, got[1].In)
	requireAt(t, 0, 5, got[1].Point)
}

func TestCrossingOutside(t *testing.T) {
	got := Crossings(path(t, 20, -10, 20, 10, 30, 10), []*extent.Region{square(t)})
	require.Empty(t, got)
}

func TestCrossingStartsInside(t *testing.T) {
	sq := square(t)
	got := Crossings(path(t, 0, 0, 0, 10), []*extent.Region{sq})
	require.Len(t, got, 1)
	require.Equal(t, sq, got[0].Out)
	requireAt(t, 0, 5, got[0].Point)

	require.Empty(t, Crossings(path(t, 1, 1, -1, -1), []*extent.Region{sq}))
}

func TestCrossingSharedEdge(t *testing.T) {
	west := square(t)
	east := region(t, 5, 5, 5, 15, -5, 15, -5, 5)

	for _, regions := range [][]*extent.Region{{west, east}, {east, west}} {
		got := Crossings(path(t, 0, -10, 0, 20), regions)
		require.Len(t, got, 3)

		require.Equal(t, west, got[0].In)
		require.Nil(t, got[0].Out)

		require.Equal(t, west, got[1].Out)
		require.Equal(t, east, got[1].In)
		requireAt(t, 0, 5, got[1].Point)

		require.Equal(t, east, got[2].Out)
		require.Nil(t, got[2].In)
		requireAt(t, 0, 15, got[2].Point)
	}
}

func TestCrossingOrderAcrossSegments(t *testing.T) {
	sq := square(t)
	got := Crossings(path(t, 0, -10, 0, -5, 0, 10, 10, 10, 10, 0, -10, 0), []*extent.Region{sq})

	// the vertex on the west edge is reported once
	require.Len(t, got, 4)
	requireAt(t, 0, -5, got[0].Point)
	require.Equal(t, sq, got[0].In)
	requireAt(t, 0, 5, got[1].Point)
	require.Equal(t, sq, got[1].Out)
	require.Equal(t, sq, got[2].In)
	require.Equal(t, sq, got[3].Out)
	require.Nil(t, got[3].In)
	require.Greater(t, got[2].Point.Lat(), 4.0)
}

func TestCrossingThroughVertex(t *testing.T) {
	diamond := region(t, 5, 0, 0, 5, -5, 0, 0, -5)
	got := Crossings(path(t, 0, -10, 0, 10), []*extent.Region{diamond})
	require.Len(t, got, 2)
	requireAt(t, 0, -5, got[0].Point)
	requireAt(t, 0, 5, got[1].Point)
}

func TestCrossingTouchingCorner(t *testing.T) {
	sq := square(t)

	// the second vertex sits on the north-west corner and the path turns back out
	require.Empty(t, Crossings(path(t, 10, -10, 5, -5, 10, 0), []*extent.Region{sq}))

	got := Crossings(path(t, 10, -10, 5, -5, 10, 0, 0, 0), []*extent.Region{sq})
	require.Len(t, got, 1)
	require.Equal(t, sq, got[0].In)
	require.Nil(t, got[0].Out)
	require.InDelta(t, 0, got[0].Point.Lon(), 1e-6)
	require.Greater(t, got[0].Point.Lat(), 5.0)
	require.Less(t, got[0].Point.Lat(), 5.1)
}

func TestCrossingAtPathVertex(t *testing.T) {
	sq := square(t)

	// enters through a vertex on the west edge, leaves through a vertex on the east edge
	got := Crossings(path(t, 0, -10, 0, -5, 0, 5, 0, 10), []*extent.Region{sq})
	require.Len(t, got, 2)
	require.Equal(t, sq, got[0].In)
	requireAt(t, 0, -5, got[0].Point)
	require.Equal(t, sq, got[1].Out)
	requireAt(t, 0, 5, got[1].Point)

	// a crossing at the last vertex is kept
	got = Crossings(path(t, 0, -10, 0, -5), []*extent.Region{sq})
	require.Len(t, got, 1)
	require.Equal(t, sq, got[0].In)
}

func TestCrossingWithIndex(t *testing.T) {
	west := square(t)
	east := region(t, 5, 5, 5, 15, -5, 15, -5, 5)
	unrelated := region(t, 1, -1, 1, 1, -1, 1, -1, -1)
	far := region(t, 45, 100, 45, 110, 35, 110, 35, 100)

	idx := extentindex.New()
	for _, r := range []*extent.Region{far, east, unrelated, west} {
		idx.Add(r)
	}

	p := path(t, 0, -10, 0, 20)
	want := Crossings(p, []*extent.Region{west, east, far})
	got := Crossings(p, []*extent.Region{west, east, far}, WithIndex(idx))
	require.Equal(t, want, got)
	require.Len(t, got, 3)

	got = Crossings(p, []*extent.Region{west, east, far}, WithIndex(idx.Snapshot()))
	require.Equal(t, want, got)
}

func TestIteratorStopsEarly(t *testing.T) {
	sq := square(t)
	n := 0
	for c := range Iterator(path(t, 0, -10, 0, 10, 10, 10, -10, -10), []*extent.Region{sq}) {
		require.Equal(t, sq, c.In)
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestIteratorRestarts(t *testing.T) {
	seq := Iterator(path(t, 0, -10, 0, 10), []*extent.Region{square(t)})
	var first, second []Crossing
	for c := range seq {
		first = append(first, c)
	}
	for c := range seq {
		second = append(second, c)
	}
	require.Equal(t, first, second)
}
