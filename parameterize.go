package lathe

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Curve maps a normalized arc-length parameter r in [0, 1] to a point.
type Curve func(r float64) Point

// Perimeter maps a point on the unit circle to the matching point of a
// cross-section outline.
type Perimeter func(p Point) Point

// CurveOfSide returns the parametric form of a side, evaluated with the
// endpoint and control positions at the time of the call.
func CurveOfSide(s Side) Curve {
	switch s := s.(type) {
	case *StraightSide:
		l := s.Line()
		return l.Eval
	case *BezierSide:
		if s.Quadratic() {
			return s.quad().Eval
		}
		return s.cubic().Eval
	default:
		panic("lathe: unsupported side type")
	}
}

// LengthOfSide returns the arc length of a side.
func LengthOfSide(s Side) float64 {
	switch s := s.(type) {
	case *StraightSide:
		return s.Line().Length()
	case *BezierSide:
		return s.segment().Length()
	default:
		panic("lathe: unsupported side type")
	}
}

// CurveOfPolyline parameterizes a polyline by normalized arc length: r=0 is
// the head, r=1 the end of the last side (the head again when welded).
//
// A query that lands exactly on the boundary between two sides is evaluated
// at the end of the earlier side. r is clamped to [0, 1].
//
// CurveOfPolyline panics if the polyline has no sides or zero total length;
// such an outline cannot be parameterized and indicates a caller bug.
func CurveOfPolyline(pl *Polyline) Curve {
	sides := pl.Sides()
	if len(sides) == 0 {
		panic("lathe: curve of polyline without sides")
	}

	lengths := make([]float64, len(sides))
	curves := make([]Curve, len(sides))
	for i, s := range sides {
		lengths[i] = LengthOfSide(s)
		curves[i] = CurveOfSide(s)
	}
	cumulative := floats.CumSum(make([]float64, len(lengths)), lengths)
	total := cumulative[len(cumulative)-1]
	if !(total > 0) {
		panic("lathe: curve of polyline with zero length")
	}

	return func(r float64) Point {
		atlen := clamp01(r) * total
		// First side whose cumulative length reaches atlen.
		i := sort.SearchFloat64s(cumulative, atlen)
		if i == len(cumulative) {
			i--
		}
		var start float64
		if i > 0 {
			start = cumulative[i-1]
		}
		var local float64
		if lengths[i] > 0 {
			local = clamp01((atlen - start) / lengths[i])
		}
		return curves[i](local)
	}
}

// RevolveOfShape returns the perimeter function of a cross-section shape.
// It panics for a shape outside the closed Shape variant set.
func RevolveOfShape(shape Shape) Perimeter {
	switch s := shape.(type) {
	case Oval:
		return RevolveOfOval(s)
	case *Oval:
		return RevolveOfOval(*s)
	case *Polyline:
		return RevolveOfCurve(CurveOfPolyline(s))
	case Polylineable:
		return RevolveOfCurve(CurveOfPolyline(s.ToPolyline()))
	default:
		panic("lathe: invalid shape for revolution perimeter")
	}
}

// RevolveOfOval scales the unit circle by the radii and moves it to the center.
func RevolveOfOval(o Oval) Perimeter {
	return func(p Point) Point {
		return o.Center.Add(Vec2(p.Scale(o.Radii)))
	}
}

// RevolveOfCurve walks curve once per turn: the azimuth of p, as a fraction
// of a full turn, is the curve parameter.
func RevolveOfCurve(curve Curve) Perimeter {
	return func(p Point) Point {
		return curve(p.Azimuth() / (2 * math.Pi))
	}
}

// Length returns the total arc length of the polyline's sides.
func (pl *Polyline) Length() float64 {
	var total float64
	for _, s := range pl.Sides() {
		total += LengthOfSide(s)
	}
	return total
}

// ValidateCurve returns ErrNoSides when CurveOfPolyline would reject pl.
func ValidateCurve(pl *Polyline) error {
	if !(pl.Length() > 0) {
		return ErrNoSides
	}
	return nil
}

// ValidatePerimeter returns an error when RevolveOfShape would reject shape.
func ValidatePerimeter(shape Shape) error {
	switch s := shape.(type) {
	case Oval, *Oval:
		return nil
	case *Polyline:
		return ValidateCurve(s)
	case Polylineable:
		return ValidateCurve(s.ToPolyline())
	default:
		return fmt.Errorf("lathe: invalid perimeter shape %T", shape)
	}
}
