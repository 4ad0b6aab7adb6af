package lathe

import "strings"

// PathElement represents a single drawing command of a shape outline.
type PathElement interface {
	isPathElement()
	command() string
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement()    {}
func (e MoveTo) command() string { return "M" + e.Point.String() }

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement()    {}
func (e LineTo) command() string { return "L" + e.Point.String() }

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}
func (e QuadTo) command() string {
	return "Q" + e.Control.String() + " " + e.Point.String()
}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}
func (e CubicTo) command() string {
	return "C" + e.Control1.String() + " " + e.Control2.String() + " " + e.Point.String()
}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement()  {}
func (Close) command() string { return "z" }

// Path is the drawable outline of a shape, handed to the 2D editor.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// Append adds elements to the path.
func (p *Path) Append(elems ...PathElement) {
	p.elements = append(p.elements, elems...)
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Ellipse adds an axis-aligned ellipse approximated by four cubic Beziers.
func (p *Path) Ellipse(center Point, rx, ry float64) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k
	cx, cy := center.X, center.Y

	p.Append(
		MoveTo{Pt(cx+rx, cy)},
		CubicTo{Pt(cx+rx, cy+oy), Pt(cx+ox, cy+ry), Pt(cx, cy+ry)},
		CubicTo{Pt(cx-ox, cy+ry), Pt(cx-rx, cy+oy), Pt(cx-rx, cy)},
		CubicTo{Pt(cx-rx, cy-oy), Pt(cx-ox, cy-ry), Pt(cx, cy-ry)},
		CubicTo{Pt(cx+ox, cy-ry), Pt(cx+rx, cy-oy), Pt(cx+rx, cy)},
		Close{},
	)
}

// String renders the path as SVG path data, e.g. "M0 0L10 0z".
func (p *Path) String() string {
	var sb strings.Builder
	for _, e := range p.elements {
		sb.WriteString(e.command())
	}
	return sb.String()
}
