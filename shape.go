package lathe

// Shape is a 2D outline usable as a profile curve or a revolution
// perimeter. The variant set is closed: *Polyline, Oval and Parallelogram.
type Shape interface {
	// Bounds returns the bounding box of the outline.
	Bounds() Rect

	// Path returns the outline as drawing commands.
	Path() *Path

	isShape()
}

// Polylineable is implemented by shapes with an equivalent polygonal outline.
type Polylineable interface {
	ToPolyline() *Polyline
}

// Oval is an axis-aligned ellipse.
type Oval struct {
	Center Point `toml:"center"`
	Radii  Point `toml:"radii"`
}

func (Oval) isShape() {}

// Bounds returns the bounding box of the ellipse.
func (o Oval) Bounds() Rect {
	return NewRect(
		Pt(o.Center.X-o.Radii.X, o.Center.Y-o.Radii.Y),
		Pt(o.Center.X+o.Radii.X, o.Center.Y+o.Radii.Y),
	)
}

// Path returns the ellipse as four cubic Beziers.
func (o Oval) Path() *Path {
	p := NewPath()
	p.Ellipse(o.Center, o.Radii.X, o.Radii.Y)
	return p
}

// Parallelogram is spanned by two edge vectors from an origin corner.
type Parallelogram struct {
	Origin Point `toml:"origin"`
	U      Vec2  `toml:"u"`
	V      Vec2  `toml:"v"`
}

func (Parallelogram) isShape() {}

// Corners returns the four corners in order origin, origin+U, origin+U+V, origin+V.
func (g Parallelogram) Corners() [4]Point {
	return [4]Point{
		g.Origin,
		g.Origin.Add(g.U),
		g.Origin.Add(g.U).Add(g.V),
		g.Origin.Add(g.V),
	}
}

// ToPolyline returns the equivalent welded four-sided polyline.
func (g Parallelogram) ToPolyline() *Polyline {
	c := g.Corners()
	pl := NewPolyline(c[:]...)
	pl.Weld()
	return pl
}

// Bounds returns the bounding box of the corners.
func (g Parallelogram) Bounds() Rect {
	c := g.Corners()
	return hull(c[:]...)
}

// Path returns the closed outline of the corners.
func (g Parallelogram) Path() *Path {
	return g.ToPolyline().Path()
}
