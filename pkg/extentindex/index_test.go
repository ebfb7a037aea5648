package extentindex

import (
	"math/rand"
	"slices"
	"sync"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/geo_extents/pkg/extent"
	"github.com/ecopia-map/geo_extents/pkg/geo"
)

func region(t *testing.T, latlons ...float64) *extent.Region {
	t.Helper()
	r, err := extent.RegionFromDegrees(latlons...)
	require.NoError(t, err)
	return r
}

func box(t *testing.T, lat, lon, half float64) *extent.Region {
	return region(t,
		lat+half, lon-half,
		lat+half, lon+half,
		lat-half, lon+half,
		lat-half, lon-half,
	)
}

func ids(es []extent.Extent) []extent.ID {
	out := make([]extent.ID, len(es))
	for i, e := range es {
		out[i] = e.ID()
	}
	return out
}

func TestAddQueryRemove(t *testing.T) {
	idx := New()
	square := box(t, 0, 0, 5)

	require.True(t, idx.Add(square))
	require.Equal(t, 1, idx.Len())
	require.True(t, idx.Contains(square))
	require.Contains(t, idx.Query(extent.PointFromDegrees(1, 1)), extent.Extent(square))
	require.Contains(t, idx.Query(square), extent.Extent(square))
	require.Empty(t, idx.Query(extent.PointFromDegrees(0, 90)))

	require.True(t, idx.Remove(square))
	require.False(t, idx.Remove(square))
	require.Zero(t, idx.Len())
	require.Empty(t, idx.Query(extent.PointFromDegrees(1, 1)))
	for b := range idx.buckets {
		require.Empty(t, idx.buckets[b])
	}
}

func TestAddTwiceReplaces(t *testing.T) {
	idx := New()
	square := box(t, 0, 0, 5)
	idx.Add(square)
	idx.Add(square)
	require.Equal(t, 1, idx.Len())
	require.Len(t, idx.Query(extent.PointFromDegrees(0, 0)), 1)
}

func TestPolarExtent(t *testing.T) {
	idx := New()
	polarCap := region(t, 60, 0, 60, 120, 60, -120)
	require.True(t, idx.Add(polarCap))
	require.Equal(t, []extent.Extent{polarCap}, slices.Collect(idx.Polar()))

	for lon := -180.0; lon < 180; lon += 15 {
		require.Contains(t, idx.Query(extent.PointFromDegrees(-30, lon)), extent.Extent(polarCap), "lon %v", lon)
	}
}

func TestCoverageNearPole(t *testing.T) {
	for _, lon := range []float64{-170, -45, 0, 33, 179} {
		bc := geo.NewBoundingCircle(geo.PointFromDegrees(89.9, lon), 50*s1.Degree)
		require.Equal(t, polar, circleCoverage(bc, 0, nil, DefaultBuckets).kind)

		bc.Radius = 0.5 * s1.Degree
		require.Equal(t, polar, circleCoverage(bc, 0, nil, DefaultBuckets).kind)
	}

	bc := geo.NewBoundingCircle(geo.PointFromXYZ(0, 0, 1), 0)
	require.Equal(t, polar, circleCoverage(bc, 0, nil, DefaultBuckets).kind)
}

func TestDiscardedExtents(t *testing.T) {
	sentinel := geo.PointFromDegrees(0, 0)
	idx := New(WithDiscardSentinel(sentinel))

	global, err := extent.PathFromDegrees(0, -100, 0, 0, 0, 100)
	require.NoError(t, err)
	require.False(t, idx.Add(global))

	placeholder := extent.NewPoint(sentinel)
	require.False(t, idx.Add(placeholder))

	regular := extent.PointFromDegrees(10, 10)
	require.True(t, idx.Add(regular))

	require.Equal(t, 3, idx.Len())
	require.Equal(t, []extent.ID{global.ID(), placeholder.ID()}, ids(slices.Collect(idx.Discarded())))

	got := idx.Query(extent.PointFromDegrees(-40, 150))
	require.Equal(t, []extent.ID{global.ID(), placeholder.ID()}, ids(got))

	require.True(t, idx.Remove(global))
	require.Len(t, slices.Collect(idx.Discarded()), 1)
}

func TestAntimeridian(t *testing.T) {
	idx := New()
	r := region(t, -5, 175, 5, 175, 5, -175, -5, -175)
	require.True(t, idx.Add(r))

	cov := idx.all[r.ID()].cov
	require.Equal(t, bucketed, cov.kind)
	require.Greater(t, cov.hi, DefaultBuckets-1)

	for _, lon := range []float64{179.5, -179.5, 176, -176} {
		require.Contains(t, idx.Query(extent.PointFromDegrees(0, lon)), extent.Extent(r), "lon %v", lon)
	}
	require.Empty(t, idx.Query(extent.PointFromDegrees(0, 0)))

	crossing, err := extent.SegmentFromDegrees(0, 170, 0, -170)
	require.NoError(t, err)
	require.Equal(t, []extent.Extent{r}, idx.Query(crossing))

	path, err := extent.PathFromDegrees(20, 0, 20, 90, 0, 179)
	require.NoError(t, err)
	require.Equal(t, []extent.Extent{r}, idx.Query(path))

	require.True(t, idx.Remove(r))
	for b := range idx.buckets {
		require.Empty(t, idx.buckets[b])
	}
}

func TestBucketFor(t *testing.T) {
	require.Equal(t, 0, bucketFor(-180, 360))
	require.Equal(t, 0, bucketFor(180, 360))
	require.Equal(t, 180, bucketFor(0, 360))
	require.Equal(t, 179, bucketFor(-0.5, 360))
	require.Equal(t, 359, bucketFor(179.5, 360))
	require.Equal(t, 10, bucketFor(190.5, 360))
	require.Equal(t, 1, bucketFor(0, 2))
}

func TestMargin(t *testing.T) {
	p := extent.PointFromDegrees(0, 10)
	q := extent.PointFromDegrees(0, 10.5)

	plain := New()
	plain.Add(p)
	require.Empty(t, plain.Query(q))

	wide := New(WithMargin(1 * s1.Degree))
	wide.Add(p)
	require.Equal(t, []extent.Extent{p}, wide.Query(q))
}

func TestInsertionOrder(t *testing.T) {
	idx := New(WithBuckets(36))
	var want []extent.ID
	for i := range 10 {
		r := box(t, 0, float64(i)/10, 2)
		idx.Add(r)
		want = append(want, r.ID())
	}
	require.Equal(t, want, ids(slices.Collect(idx.All())))
	require.Equal(t, want, ids(idx.Query(extent.PointFromDegrees(0, 0.5))))
}

func TestClear(t *testing.T) {
	idx := New()
	idx.Add(box(t, 0, 0, 5))
	idx.Add(region(t, 60, 0, 60, 120, 60, -120))
	idx.Clear()
	require.Zero(t, idx.Len())
	require.Empty(t, slices.Collect(idx.Polar()))
	require.Empty(t, idx.Query(extent.PointFromDegrees(0, 0)))
}

func TestQuerySuperset(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	idx := New(WithBuckets(90))

	var regions []*extent.Region
	var segments []*extent.Segment
	for range 300 {
		lat, lon := r.Float64()*140-70, r.Float64()*360-180
		reg := box(t, lat, lon, 0.5+r.Float64()*4)
		regions = append(regions, reg)
		idx.Add(reg)

		s, err := extent.SegmentFromDegrees(lat, lon, lat+r.Float64()*10-5, lon+r.Float64()*10-5)
		require.NoError(t, err)
		segments = append(segments, s)
		idx.Add(s)
	}

	for range 500 {
		p := geo.PointFromDegrees(r.Float64()*140-70, r.Float64()*360-180)
		got := idx.Query(extent.NewPoint(p))
		for _, reg := range regions {
			if reg.Contains(p) {
				require.Contains(t, got, extent.Extent(reg))
			}
		}
	}

	for range 300 {
		lat, lon := r.Float64()*140-70, r.Float64()*360-180
		q, err := extent.SegmentFromDegrees(lat, lon, lat+r.Float64()*20-10, lon+r.Float64()*20-10)
		require.NoError(t, err)
		got := idx.Query(q)
		for _, s := range segments {
			if geo.SegmentsIntersect(q.Start(), q.End(), s.Start(), s.End(), 0) {
				require.Contains(t, got, extent.Extent(s))
			}
		}
	}
}

func TestSnapshot(t *testing.T) {
	idx := New()
	square := box(t, 0, 0, 5)
	polarCap := region(t, 60, 0, 60, 120, 60, -120)
	idx.Add(square)
	idx.Add(polarCap)

	snap := idx.Snapshot()
	idx.Remove(square)
	idx.Clear()

	require.Equal(t, 2, snap.Len())
	require.Equal(t, []extent.Extent{square, polarCap}, snap.Query(extent.PointFromDegrees(0, 0)))
	require.Equal(t, []extent.Extent{polarCap}, slices.Collect(snap.Polar()))
	require.Empty(t, slices.Collect(snap.Discarded()))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results [][]extent.Extent
	)
	for i := range 16 {
		wg.Add(1)
		go func(lon float64) {
			defer wg.Done()
			got := snap.Query(extent.PointFromDegrees(1, lon))
			mu.Lock()
			results = append(results, got)
			mu.Unlock()
		}(float64(i%4) - 2)
	}
	wg.Wait()

	require.Len(t, results, 16)
	for _, got := range results {
		require.Equal(t, []extent.Extent{square, polarCap}, got)
	}
}

var _ Querier = (*Index)(nil)
var _ Querier = (*Snapshot)(nil)
