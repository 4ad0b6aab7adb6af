package lathe

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Curve primitives backing the side variants of a Polyline.
// Based on kurbo patterns, adapted for Go idioms.

// legendreOrder is the number of Gauss-Legendre nodes used for arc length.
// 24 nodes integrate the speed of typical editor curves far below pixel error.
const legendreOrder = 24

// nearestSamples is the number of uniform samples seeding the closest-point search.
const nearestSamples = 32

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Expand returns r grown to include p.
func (r Rect) Expand(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// hull returns the bounding box of a control polygon. Bezier curves lie inside
// the convex hull of their control points, so this is a conservative bound.
func hull(pts ...Point) Rect {
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Expand(p)
	}
	return r
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Nearest returns the point of the segment closest to p, its distance to p and
// its parameter.
func (l Line) Nearest(p Point) (Point, float64, float64) {
	d := l.P1.Sub(l.P0)
	lenSq := d.LengthSq()
	var t float64
	if lenSq > 0 {
		t = clamp01(p.Sub(l.P0).Dot(d) / lenSq)
	}
	q := l.Eval(t)
	return q, q.Distance(p), t
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Deriv returns the first derivative at t.
func (q QuadBez) Deriv(t float64) Vec2 {
	a := q.P1.Sub(q.P0)
	b := q.P2.Sub(q.P1)
	return a.Mul(2 * (1 - t)).Add(b.Mul(2 * t))
}

// Deriv2 returns the (constant) second derivative.
func (q QuadBez) Deriv2(float64) Vec2 {
	return q.P2.Sub(q.P1).Sub(q.P1.Sub(q.P0)).Mul(2)
}

// Length returns the arc length of the curve.
func (q QuadBez) Length() float64 {
	return arcLength(q)
}

// Nearest returns the point of the curve closest to p, its distance to p and
// its parameter.
func (q QuadBez) Nearest(p Point) (Point, float64, float64) {
	return nearest(q, p)
}

// SubdivideAt splits the curve at t using de Casteljau's construction.
func (q QuadBez) SubdivideAt(t float64) (QuadBez, QuadBez) {
	p01 := q.P0.Lerp(q.P1, t)
	p12 := q.P1.Lerp(q.P2, t)
	mid := p01.Lerp(p12, t)
	return QuadBez{P0: q.P0, P1: p01, P2: mid}, QuadBez{P0: mid, P1: p12, P2: q.P2}
}

// BoundingBox returns a conservative bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	return hull(q.P0, q.P1, q.P2)
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Deriv returns the first derivative at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// Deriv2 returns the second derivative at t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	a := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	b := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}

// Length returns the arc length of the curve.
func (c CubicBez) Length() float64 {
	return arcLength(c)
}

// Nearest returns the point of the curve closest to p, its distance to p and
// its parameter.
func (c CubicBez) Nearest(p Point) (Point, float64, float64) {
	return nearest(c, p)
}

// SubdivideAt splits the curve at t using de Casteljau's construction.
func (c CubicBez) SubdivideAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// BoundingBox returns a conservative bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	return hull(c.P0, c.P1, c.P2, c.P3)
}

// -------------------------------------------------------------------
// Shared Bezier numerics
// -------------------------------------------------------------------

// bezier is the evaluation interface shared by QuadBez and CubicBez.
type bezier interface {
	Eval(t float64) Point
	Deriv(t float64) Vec2
	Deriv2(t float64) Vec2
}

// arcLength integrates the speed |B'(t)| over [0, 1] with Gauss-Legendre quadrature.
func arcLength(b bezier) float64 {
	speed := func(t float64) float64 { return b.Deriv(t).Length() }
	return quad.Fixed(speed, 0, 1, legendreOrder, quad.Legendre{}, 0)
}

// nearest seeds with uniform samples and polishes the best one with Newton
// steps on the squared distance. Steps that do not improve the distance are
// rejected, so the result is never worse than the best sample.
func nearest(b bezier, p Point) (Point, float64, float64) {
	bestT, bestD := 0.0, math.Inf(1)
	for i := 0; i <= nearestSamples; i++ {
		t := float64(i) / nearestSamples
		if d := b.Eval(t).DistanceSq(p); d < bestD {
			bestT, bestD = t, d
		}
	}

	t := bestT
	for range 8 {
		diff := b.Eval(t).Sub(p)
		d1 := b.Deriv(t)
		den := d1.LengthSq() + diff.Dot(b.Deriv2(t))
		if den == 0 {
			break
		}
		next := clamp01(t - diff.Dot(d1)/den)
		d := b.Eval(next).DistanceSq(p)
		if d >= bestD {
			break
		}
		t, bestD = next, d
	}

	q := b.Eval(t)
	return q, q.Distance(p), t
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
