package lathe

import (
	"fmt"
	"math"
)

// Point represents a 2D position. Points are values; two vertices at the same
// place are still distinct vertices.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies each coordinate of p by the matching component of s.
func (p Point) Scale(s Point) Point {
	return Point{X: p.X * s.X, Y: p.Y * s.Y}
}

// Mul returns the point scaled uniformly about the origin.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceSq returns the squared distance between two points.
func (p Point) DistanceSq(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X*(1-t) + q.X*t,
		Y: p.Y*(1-t) + q.Y*t,
	}
}

// Azimuth returns the angle of p seen from the origin, normalized to [0, 2π).
func (p Point) Azimuth() float64 {
	a := math.Atan2(p.Y, p.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// Approx reports whether p and q are within epsilon on both axes.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// String formats the point the way SVG path data expects it.
func (p Point) String() string {
	return fmt.Sprintf("%g %g", p.X, p.Y)
}

// UnitCircle returns the point on the unit circle at angle radians.
func UnitCircle(angle float64) Point {
	s, c := math.Sincos(angle)
	return Point{X: c, Y: s}
}
