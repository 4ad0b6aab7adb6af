package lathe

// Side is an edge between two vertices of a Polyline.
//
// The variant set is closed: *StraightSide and *BezierSide are the only
// implementations. Code that dispatches on the concrete type must handle both
// and treat anything else as a broken invariant.
//
// A side references its endpoints but does not own them; the vertices belong
// to the Polyline. A detached side (not yet added, or replaced) has nil
// endpoints and must not be evaluated.
type Side interface {
	// Endpoints returns the start and end vertices.
	Endpoints() (start, end *Vertex)

	// Eval evaluates the side at parameter t in [0, 1].
	Eval(t float64) Point

	// Length returns the arc length of the side.
	Length() float64

	// Nearest returns the point of the side closest to p, its distance to p and
	// the parameter at which it lies.
	Nearest(p Point) (Point, float64, float64)

	// PathElement returns the drawing command that continues a path from the
	// start vertex to the end vertex along this side.
	PathElement() PathElement

	// BoundingBox returns a bounding box of the side.
	BoundingBox() Rect

	setEndpoints(start, end *Vertex)
}

// segment is implemented by Line, QuadBez and CubicBez.
type segment interface {
	Eval(t float64) Point
	Length() float64
	Nearest(p Point) (Point, float64, float64)
	BoundingBox() Rect
}

// endpoints is embedded by both side variants.
type endpoints struct {
	start, end *Vertex
}

func (e *endpoints) Endpoints() (*Vertex, *Vertex) { return e.start, e.end }

func (e *endpoints) setEndpoints(start, end *Vertex) {
	e.start, e.end = start, end
}

func (e *endpoints) attached() bool { return e.start != nil || e.end != nil }

// -------------------------------------------------------------------
// StraightSide
// -------------------------------------------------------------------

// StraightSide is the line segment between its endpoints.
type StraightSide struct {
	endpoints
}

// NewStraightSide returns a detached straight side.
func NewStraightSide() *StraightSide {
	return &StraightSide{}
}

// Line returns the segment for the current endpoint positions.
func (s *StraightSide) Line() Line {
	return Line{P0: s.start.At, P1: s.end.At}
}

func (s *StraightSide) Eval(t float64) Point { return s.Line().Eval(t) }
func (s *StraightSide) Length() float64      { return s.Line().Length() }
func (s *StraightSide) BoundingBox() Rect    { return s.Line().BoundingBox() }

func (s *StraightSide) Nearest(p Point) (Point, float64, float64) {
	return s.Line().Nearest(p)
}

func (s *StraightSide) PathElement() PathElement {
	return LineTo{Point: s.end.At}
}

// -------------------------------------------------------------------
// BezierSide
// -------------------------------------------------------------------

// BezierSide is a curved side. One control point makes it a quadratic Bezier,
// two make it a cubic. Controls are absolute positions and may be moved by
// the editor, but their count must not change.
type BezierSide struct {
	endpoints
	Controls []Point
}

// NewBezierSide returns a detached Bezier side with the given control points.
// It panics unless one or two control points are given.
func NewBezierSide(controls ...Point) *BezierSide {
	if len(controls) != 1 && len(controls) != 2 {
		panic("lathe: bezier side needs 1 or 2 control points")
	}
	return &BezierSide{Controls: append([]Point(nil), controls...)}
}

// Quadratic reports whether the side is a quadratic Bezier.
func (s *BezierSide) Quadratic() bool {
	return len(s.Controls) == 1
}

// segment returns the QuadBez or CubicBez for the current positions.
func (s *BezierSide) segment() segment {
	switch len(s.Controls) {
	case 1:
		return s.quad()
	case 2:
		return s.cubic()
	default:
		panic("lathe: bezier side has an invalid control point count")
	}
}

func (s *BezierSide) quad() QuadBez {
	return QuadBez{P0: s.start.At, P1: s.Controls[0], P2: s.end.At}
}

func (s *BezierSide) cubic() CubicBez {
	return CubicBez{P0: s.start.At, P1: s.Controls[0], P2: s.Controls[1], P3: s.end.At}
}

func (s *BezierSide) Eval(t float64) Point { return s.segment().Eval(t) }
func (s *BezierSide) Length() float64      { return s.segment().Length() }
func (s *BezierSide) BoundingBox() Rect    { return s.segment().BoundingBox() }

func (s *BezierSide) Nearest(p Point) (Point, float64, float64) {
	return s.segment().Nearest(p)
}

func (s *BezierSide) PathElement() PathElement {
	if s.Quadratic() {
		return QuadTo{Control: s.Controls[0], Point: s.end.At}
	}
	return CubicTo{Control1: s.Controls[0], Control2: s.Controls[1], Point: s.end.At}
}

// split returns the two detached halves of s at parameter t.
func (s *BezierSide) split(t float64) (*BezierSide, *BezierSide) {
	if s.Quadratic() {
		a, b := s.quad().SubdivideAt(t)
		return NewBezierSide(a.P1), NewBezierSide(b.P1)
	}
	a, b := s.cubic().SubdivideAt(t)
	return NewBezierSide(a.P1, a.P2), NewBezierSide(b.P1, b.P2)
}

// isAttached reports whether a side currently has endpoints.
func isAttached(s Side) bool {
	switch s := s.(type) {
	case *StraightSide:
		return s.attached()
	case *BezierSide:
		return s.attached()
	default:
		panic("lathe: unsupported side type")
	}
}
