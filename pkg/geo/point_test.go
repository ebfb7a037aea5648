package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"
)

func TestPointUnitLength(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		lat := r.Float64()*180 - 90
		lon := r.Float64()*360 - 180
		p := PointFromDegrees(lat, lon)
		require.InDelta(t, 1.0, p.Length(), 1e-9, "lat=%f lon=%f", lat, lon)
	}
	require.InDelta(t, 1.0, PointFromXYZ(3, -4, 12).Length(), 1e-12)
}

func TestPointLatLonRoundTrip(t *testing.T) {
	for lat := -88.5; lat < 89; lat += 3.5 {
		for lon := -178.75; lon < 179; lon += 7.25 {
			p := PointFromDegrees(lat, lon)
			require.InDelta(t, lat, p.Lat(), 1e-6)
			require.InDelta(t, lon, p.Lon(), 1e-6)
		}
	}
}

func TestNewPointUnits(t *testing.T) {
	a := NewPoint(45, 30, true)
	b := NewPoint(math.Pi/4, math.Pi/6, false)
	require.InDelta(t, 0, a.Distance(b).Radians(), 1e-12)
}

func TestGeocentricLatitudeIsFlattened(t *testing.T) {
	lat := 45 * math.Pi / 180
	gc := GeocentricLatitude(lat)
	require.Less(t, gc, lat)
	require.InDelta(t, lat, GeographicLatitude(gc), 1e-12)
	require.Equal(t, 0.0, GeocentricLatitude(0))
}

func TestPointDistance(t *testing.T) {
	a := PointFromDegrees(12, 34)
	b := PointFromDegrees(-56, 78)

	require.Equal(t, s1.Angle(0), a.Distance(a))
	require.Equal(t, a.Distance(b), b.Distance(a))
	require.InDelta(t, math.Pi, a.Distance(a.Antipode()).Radians(), 1e-12)

	equator := PointFromDegrees(0, 0)
	quarter := PointFromDegrees(0, 90)
	require.InDelta(t, math.Pi/2, equator.Distance(quarter).Radians(), 1e-15)
}

func TestPointAzimuth(t *testing.T) {
	origin := PointFromDegrees(0, 0)
	tests := []struct {
		name string
		to   Point
		want float64
	}{
		{"north", PointFromDegrees(10, 0), 0},
		{"east", PointFromDegrees(0, 10), 90},
		{"south", PointFromDegrees(-10, 0), 180},
		{"west", PointFromDegrees(0, -10), 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, origin.Azimuth(tt.to).Degrees(), 1e-9)
		})
	}

	// heading north-east from the equator
	az := origin.Azimuth(PointFromDegrees(5, 5)).Degrees()
	require.Greater(t, az, 0.0)
	require.Less(t, az, 90.0)
}

func TestPointMidPointAndInterpolate(t *testing.T) {
	a := PointFromDegrees(0, 0)
	b := PointFromDegrees(0, 10)

	mid := a.MidPoint(b)
	require.InDelta(t, 0, mid.Lat(), 1e-9)
	require.InDelta(t, 5, mid.Lon(), 1e-9)

	require.InDelta(t, 0, a.Interpolate(b, 0).Distance(a).Radians(), 1e-12)
	require.InDelta(t, 0, a.Interpolate(b, 1).Distance(b).Radians(), 1e-12)
	require.InDelta(t, 0, a.Interpolate(b, 0.5).Distance(mid).Radians(), 1e-12)
}

func TestPointIntersect(t *testing.T) {
	p := PointFromDegrees(0, -10)
	q := PointFromDegrees(0, 10)
	// normal of the prime meridian great circle
	normal := PointFromDegrees(0, 90)

	i := p.Intersect(q, normal)
	require.InDelta(t, 0, i.Lat(), 1e-9)
	require.InDelta(t, 0, i.Lon(), 1e-9)
}

func TestGreatCircleIntersection(t *testing.T) {
	i, j := GreatCircleIntersection(
		PointFromDegrees(0, -10), PointFromDegrees(0, 10),
		PointFromDegrees(-10, 0), PointFromDegrees(10, 0),
	)
	require.InDelta(t, math.Pi, i.Distance(j).Radians(), 1e-12)

	origin := PointFromDegrees(0, 0)
	near := math.Min(i.Distance(origin).Radians(), j.Distance(origin).Radians())
	require.InDelta(t, 0, near, 1e-12)
}

func TestCrossNormalizeIsUnitNormal(t *testing.T) {
	a := PointFromDegrees(10, 20)
	b := PointFromDegrees(-30, 40)
	n := a.CrossNormalize(b)
	require.InDelta(t, 1, n.Length(), 1e-12)
	require.InDelta(t, 0, n.Dot(a), 1e-12)
	require.InDelta(t, 0, n.Dot(b), 1e-12)
}

func TestPointValidity(t *testing.T) {
	require.True(t, PointFromDegrees(1, 2).IsValid())
	require.False(t, Point{}.IsValid())
	require.True(t, Point{}.IsZero())
	require.False(t, PointFromXYZ(math.NaN(), 0, 1).IsValid())
}
