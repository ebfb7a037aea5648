package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// north is the unit vector of the north pole, used by the azimuth construction.
var north = r3.Vector{X: 0, Y: 0, Z: 1}

// Point is a location on the unit sphere. The latitude used to build it is converted to
// geocentric latitude so that angular distances approximate the oblate spheroid while
// every vector operation stays on the unit sphere.
//
// Point is a value type: no operation mutates its receiver.
type Point struct {
	v r3.Vector
}

// NewPoint builds a Point from a latitude/longitude pair expressed either in degrees or
// in radians.
func NewPoint(lat, lon float64, isDegrees bool) Point {
	if isDegrees {
		return PointFromDegrees(lat, lon)
	}
	return PointFromRadians(lat, lon)
}

// PointFromDegrees builds a Point from a geographic latitude and longitude in degrees.
func PointFromDegrees(lat, lon float64) Point {
	return PointFromRadians(lat*math.Pi/180, lon*math.Pi/180)
}

// PointFromRadians builds a Point from a geographic latitude and longitude in radians.
func PointFromRadians(lat, lon float64) Point {
	rlat := GeocentricLatitude(lat)
	c := math.Cos(rlat)
	return Point{v: r3.Vector{
		X: c * math.Cos(lon),
		Y: c * math.Sin(lon),
		Z: math.Sin(rlat),
	}}
}

// PointFromXYZ builds a Point from raw cartesian components, normalizing them onto the
// unit sphere.
func PointFromXYZ(x, y, z float64) Point {
	return PointFromVector(r3.Vector{X: x, Y: y, Z: z})
}

// PointFromVector normalizes v onto the unit sphere. The zero vector stays zero and
// yields an undefined Point.
func PointFromVector(v r3.Vector) Point {
	return Point{v: v.Normalize()}
}

// GeocentricLatitude converts a geographic latitude (radians) to geocentric latitude.
func GeocentricLatitude(lat float64) float64 {
	return math.Atan(math.Tan(lat) * FlatteningC)
}

// GeographicLatitude converts a geocentric latitude (radians) to geographic latitude.
func GeographicLatitude(lat float64) float64 {
	return math.Atan(math.Tan(lat) / FlatteningC)
}

func (p Point) X() float64 { return p.v.X }
func (p Point) Y() float64 { return p.v.Y }
func (p Point) Z() float64 { return p.v.Z }

// Vector returns the cartesian representation of the point.
func (p Point) Vector() r3.Vector { return p.v }

// LatRadians returns the geographic latitude in radians.
func (p Point) LatRadians() float64 {
	return GeographicLatitude(math.Atan2(p.v.Z, math.Sqrt(p.v.X*p.v.X+p.v.Y*p.v.Y)))
}

// LonRadians returns the longitude in radians, in (-π, π].
func (p Point) LonRadians() float64 {
	return math.Atan2(p.v.Y, p.v.X)
}

// Lat returns the geographic latitude in degrees.
func (p Point) Lat() float64 { return p.LatRadians() * 180 / math.Pi }

// Lon returns the longitude in degrees.
func (p Point) Lon() float64 { return p.LonRadians() * 180 / math.Pi }

func (p Point) Dot(q Point) float64 { return p.v.Dot(q.v) }

// Cross returns the raw cross product, which is not a unit vector.
func (p Point) Cross(q Point) r3.Vector { return p.v.Cross(q.v) }

// CrossNormalize returns the unit normal of the great circle through p and q. The result
// is undefined when p and q are equal or antipodal.
func (p Point) CrossNormalize(q Point) Point {
	return Point{v: p.v.Cross(q.v).Normalize()}
}

// Length is the euclidean norm of the underlying vector, 1 for every well formed Point.
func (p Point) Length() float64 { return p.v.Norm() }

func (p Point) Normalize() Point { return Point{v: p.v.Normalize()} }

func (p Point) Scale(s float64) r3.Vector { return p.v.Mul(s) }

func (p Point) Add(q Point) r3.Vector { return p.v.Add(q.v) }

func (p Point) Subtract(q Point) r3.Vector { return p.v.Sub(q.v) }

// Antipode returns the point diametrically opposite p.
func (p Point) Antipode() Point { return Point{v: p.v.Mul(-1)} }

// Distance returns the great circle angle between p and q in [0, π]. It is computed as
// atan2(|p×q|, p·q), which stays accurate for nearly coincident and nearly antipodal
// points.
func (p Point) Distance(q Point) s1.Angle {
	return s1.Angle(math.Atan2(p.v.Cross(q.v).Norm(), p.v.Dot(q.v)))
}

// DistanceKM returns the distance between p and q in kilometers.
func (p Point) DistanceKM(q Point) float64 { return AngleToKM(p.Distance(q)) }

// DistanceNM returns the distance between p and q in nautical miles.
func (p Point) DistanceNM(q Point) float64 { return AngleToNM(p.Distance(q)) }

// Azimuth returns the initial bearing from p toward q, measured clockwise from north in
// [0, 2π). It is undefined at the poles, where north has no direction.
func (p Point) Azimuth(q Point) s1.Angle {
	n1 := north.Cross(p.v)
	n2 := q.v.Cross(p.v)
	az := math.Atan2(-north.Dot(n2), n1.Dot(n2))
	if az < 0 {
		az += 2 * math.Pi
	}
	return s1.Angle(az)
}

// MidPoint returns the point halfway along the shorter arc between p and q.
func (p Point) MidPoint(q Point) Point {
	return Point{v: p.v.Add(q.v).Normalize()}
}

// Interpolate returns the normalized convex combination p·(1-t) + q·t.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{v: p.v.Mul(1 - t).Add(q.v.Mul(t)).Normalize()}
}

// Intersect returns the point on the segment p→q that also lies on the great circle whose
// normal is r. The dot products of both endpoints with r are interpolated linearly; the
// result is undefined when the segment is parallel to that great circle.
func (p Point) Intersect(q Point, r Point) Point {
	d1 := p.v.Dot(r.v)
	d2 := q.v.Dot(r.v)
	t := d1 / (d1 - d2)
	return Point{v: p.v.Add(q.v.Sub(p.v).Mul(t)).Normalize()}
}

// GreatCircleIntersection returns the two antipodal points where the great circle through
// a1,a2 meets the great circle through b1,b2. Both results are undefined when the
// circles coincide.
func GreatCircleIntersection(a1, a2, b1, b2 Point) (Point, Point) {
	ac := a1.CrossNormalize(a2)
	bc := b1.CrossNormalize(b2)
	i := ac.CrossNormalize(bc)
	return i, i.Antipode()
}

// IsZero reports whether p is the zero vector, i.e. an undefined Point.
func (p Point) IsZero() bool { return p.v == r3.Vector{} }

// IsValid reports whether every component of p is finite and p is not the zero vector.
func (p Point) IsValid() bool {
	for _, c := range []float64{p.v.X, p.v.Y, p.v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return !p.IsZero()
}

// ApproxEqual reports whether p and q are within tolerance of each other.
func (p Point) ApproxEqual(q Point, tolerance s1.Angle) bool {
	return p.Distance(q) <= tolerance
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat(), p.Lon())
}
