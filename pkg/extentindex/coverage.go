package extentindex

import (
	"fmt"
	"iter"
	"math"

	"github.com/golang/geo/s1"

	"github.com/ecopia-map/geo_extents/pkg/geo"
)

type coverageKind uint8

const (
	bucketed coverageKind = iota
	polar
	discarded
)

func (k coverageKind) String() string {
	switch k {
	case bucketed:
		return "bucketed"
	case polar:
		return "polar"
	}
	return "discarded"
}

// coverage is the part of the index an extent lives in. For bucketed extents lo and hi
// are inclusive bucket numbers; hi exceeds the bucket count when the range wraps across
// the antimeridian.
type coverage struct {
	kind   coverageKind
	lo, hi int
}

func (c coverage) String() string {
	if c.kind != bucketed {
		return c.kind.String()
	}
	return fmt.Sprintf("buckets[%d..%d]", c.lo, c.hi)
}

// buckets yields the bucket numbers of c, reduced modulo n.
func (c coverage) buckets(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if c.kind != bucketed {
			return
		}
		for b := c.lo; b <= c.hi; b++ {
			if !yield(b % n) {
				return
			}
		}
	}
}

// bucketFor returns the bucket holding longitude lon, in degrees. Longitudes outside
// [-180, 180) wrap around.
func bucketFor(lon float64, n int) int {
	b := int(math.Floor((lon + 180) / 360 * float64(n)))
	return ((b % n) + n) % n
}

// npdAtLat returns the nautical miles spanned by one degree of longitude at the
// latitude whose cosine is cosLat. It goes to zero at the poles.
func npdAtLat(cosLat float64) float64 {
	return geo.RadiusNM * math.Pi / 180 * cosLat
}

// longitudeRange returns the coverage of the longitudes [lon-xd, lon+xd], in degrees.
func longitudeRange(lon, xd float64, n int) coverage {
	lo := bucketFor(lon-xd, n)
	hi := bucketFor(lon+xd, n)
	if hi < lo {
		hi += n
	}
	return coverage{kind: bucketed, lo: lo, hi: hi}
}

// circleCoverage returns where a circle widened by margin belongs. Circles reaching a
// quarter of the sphere, or centered on an undefined point or on sentinel, are
// discarded. Circles whose longitude half-width is at least polarLimit, which includes
// every circle containing a pole, go to the polar set.
func circleCoverage(bc geo.BoundingCircle, margin s1.Angle, sentinel *geo.Point, n int) coverage {
	c := bc.Center
	if !c.IsValid() || math.IsNaN(float64(bc.Radius)) || bc.Radius >= math.Pi/2 {
		return coverage{kind: discarded}
	}
	if sentinel != nil && *sentinel == c {
		return coverage{kind: discarded}
	}

	r := bc.Radius + margin
	cosLat := math.Hypot(c.X(), c.Y())
	scale := npdAtLat(cosLat)
	if scale == 0 {
		return coverage{kind: polar}
	}
	xd := geo.AngleToNM(r) / scale

	// the longitude half-width of a spherical cap is asin(sin r / cos lat), never less
	// than the linear estimate above
	s := math.Sin(r.Radians()) / cosLat
	if s >= 1 || r >= math.Pi/2 {
		return coverage{kind: polar}
	}
	xd = max(xd, s1.Angle(math.Asin(s)).Degrees())
	if xd >= polarLimit {
		return coverage{kind: polar}
	}

	lon := math.Atan2(c.Y(), c.X()) * 180 / math.Pi
	return longitudeRange(lon, xd, n)
}

// segmentCoverage returns the buckets spanned by the longitudes of the arc a→b. The
// longitude of a great circle arc shorter than π moves monotonically between those of
// its endpoints, along the shorter way around.
func segmentCoverage(a, b geo.Point, n int) coverage {
	lonA := math.Atan2(a.Y(), a.X()) * 180 / math.Pi
	lonB := math.Atan2(b.Y(), b.X()) * 180 / math.Pi
	span := math.Remainder(lonB-lonA, 360)
	start := lonA
	if span < 0 {
		start, span = lonB, -span
	}
	lo := bucketFor(start, n)
	hi := bucketFor(start+span, n)
	if hi < lo {
		hi += n
	}
	return coverage{kind: bucketed, lo: lo, hi: hi}
}
