package lathe

import (
	"errors"
	"slices"
)

var (
	// ErrForeignVertex is returned when a vertex does not belong to the polyline.
	ErrForeignVertex = errors.New("lathe: vertex does not belong to polyline")

	// ErrForeignSide is returned when a side is not part of the polyline.
	ErrForeignSide = errors.New("lathe: side does not belong to polyline")

	// ErrSlotOccupied is returned when linking would give a vertex a second
	// incoming or outgoing side.
	ErrSlotOccupied = errors.New("lathe: vertex side slot already occupied")

	// ErrSideInUse is returned when a side that is already attached is added again.
	ErrSideInUse = errors.New("lathe: side is already attached")

	// ErrNoSides is returned when a polyline cannot be parameterized because
	// it has no sides or its sides have zero total length.
	ErrNoSides = errors.New("lathe: polyline has no measurable sides")
)

// Direction selects where SplitSide inserts the new vertex in the vertex
// sequence. The two directions only differ when splitting the closing side of
// a welded polyline.
type Direction int

const (
	// Forward inserts the new vertex right after the side's start vertex.
	// Splitting the closing side makes the new vertex the tail.
	Forward Direction = iota

	// Backward inserts the new vertex right before the side's end vertex.
	// Splitting the closing side makes the new vertex the head.
	Backward
)

// Vertex is a corner of a Polyline. Its side slots are non-owning references
// maintained by the Polyline.
type Vertex struct {
	At Point

	in, out Side
}

// In returns the incoming side, or nil at the start of an open chain.
func (u *Vertex) In() Side { return u.in }

// Out returns the outgoing side, or nil at the end of an open chain.
func (u *Vertex) Out() Side { return u.out }

// Polyline is an ordered chain of vertices linked by straight or curved sides.
// It may be open or welded (closed).
//
// Sides visited in vertex order always chain start to end: the outgoing side
// of each vertex ends at the next vertex, and the outgoing side of the tail,
// if any, ends at the head.
type Polyline struct {
	vertices []*Vertex
}

// NewPolyline creates a polyline through the given points, linked by
// straight sides.
func NewPolyline(pts ...Point) *Polyline {
	pl := &Polyline{}
	for _, p := range pts {
		pl.CreateVertex(p)
	}
	return pl
}

func (*Polyline) isShape() {}

// Vertices returns the vertex sequence. The slice must not be modified.
func (pl *Polyline) Vertices() []*Vertex {
	return pl.vertices
}

// Head returns the first vertex, or nil for an empty polyline.
func (pl *Polyline) Head() *Vertex {
	if len(pl.vertices) == 0 {
		return nil
	}
	return pl.vertices[0]
}

// Tail returns the last vertex, or nil for an empty polyline.
func (pl *Polyline) Tail() *Vertex {
	if len(pl.vertices) == 0 {
		return nil
	}
	return pl.vertices[len(pl.vertices)-1]
}

// Closed reports whether the polyline is welded.
func (pl *Polyline) Closed() bool {
	head, tail := pl.Head(), pl.Tail()
	return head != nil && head.in != nil && head.in == tail.out
}

// Sides returns the sides in traversal order: the outgoing side of every
// vertex, in vertex order. The closing side of a welded polyline comes last.
func (pl *Polyline) Sides() []Side {
	sides := make([]Side, 0, len(pl.vertices))
	for _, u := range pl.vertices {
		if u.out != nil {
			sides = append(sides, u.out)
		}
	}
	return sides
}

// CreateVertex appends a vertex at the given position and links it from the
// previous tail with a straight side. On a welded polyline the closing side is
// redirected to the new vertex, which is then welded back to the head.
func (pl *Polyline) CreateVertex(at Point) *Vertex {
	u := &Vertex{At: at}
	tail := pl.Tail()
	closed := pl.Closed()
	pl.vertices = append(pl.vertices, u)

	switch {
	case tail == nil:
	case closed:
		head := pl.vertices[0]
		closing := tail.out
		head.in = nil
		closing.setEndpoints(tail, u)
		u.in = closing
		pl.link(u, head, NewStraightSide())
	default:
		pl.link(tail, u, NewStraightSide())
	}
	return u
}

// Weld closes the polyline with a straight side from the tail to the head.
// It returns nil and does nothing when there are fewer than two vertices or
// the polyline is already welded.
func (pl *Polyline) Weld() Side {
	head, tail := pl.Head(), pl.Tail()
	if head == tail || pl.Closed() || tail.out != nil || head.in != nil {
		return nil
	}
	s := NewStraightSide()
	pl.link(tail, head, s)
	return s
}

// AddSide links u to v with side. A nil side means a straight side.
// It fails if either vertex is foreign, if u already has an outgoing side or
// v an incoming side, or if side is attached elsewhere.
func (pl *Polyline) AddSide(u, v *Vertex, side Side) (Side, error) {
	if !pl.owns(u) || !pl.owns(v) {
		return nil, ErrForeignVertex
	}
	if u.out != nil || v.in != nil {
		return nil, ErrSlotOccupied
	}
	if side == nil {
		side = NewStraightSide()
	} else if isAttached(side) {
		return nil, ErrSideInUse
	}
	pl.link(u, v, side)
	return side, nil
}

// ReplaceSide swaps old for a detached side with the same endpoint vertices,
// typically to turn a straight side into a Bezier. The old side is detached.
func (pl *Polyline) ReplaceSide(old, side Side) error {
	if !pl.hasSide(old) {
		return ErrForeignSide
	}
	if isAttached(side) {
		return ErrSideInUse
	}
	u, v := old.Endpoints()
	old.setEndpoints(nil, nil)
	side.setEndpoints(u, v)
	u.out = side
	v.in = side
	return nil
}

// SplitSide inserts a vertex on side at the point nearest to at. The side is
// replaced by two new sides of the same kind; Bezier sides are subdivided
// exactly so the outline keeps its shape.
func (pl *Polyline) SplitSide(side Side, at Point, dir Direction) (*Vertex, error) {
	if !pl.hasSide(side) {
		return nil, ErrForeignSide
	}
	u, v := side.Endpoints()
	q, _, t := side.Nearest(at)

	var first, second Side
	switch s := side.(type) {
	case *StraightSide:
		first, second = NewStraightSide(), NewStraightSide()
	case *BezierSide:
		first, second = s.split(t)
	default:
		panic("lathe: unsupported side type")
	}

	m := &Vertex{At: q}
	idx := pl.indexOf(u) + 1
	if dir == Backward {
		idx = pl.indexOf(v)
	}
	pl.vertices = slices.Insert(pl.vertices, idx, m)

	side.setEndpoints(nil, nil)
	u.out, v.in = nil, nil
	pl.link(u, m, first)
	pl.link(m, v, second)
	return m, nil
}

// RemoveVertex deletes u. When u has both an incoming and an outgoing side,
// the incoming side is stretched to the far end of the outgoing one so the
// chain stays connected; otherwise the neighbour is left with a dangling end.
func (pl *Polyline) RemoveVertex(u *Vertex) error {
	idx := pl.indexOf(u)
	if idx < 0 {
		return ErrForeignVertex
	}
	in, out := u.in, u.out

	switch {
	case in != nil && out != nil:
		a, _ := in.Endpoints()
		_, b := out.Endpoints()
		out.setEndpoints(nil, nil)
		if a == b {
			// Two-vertex loop collapses to a lone vertex.
			in.setEndpoints(nil, nil)
			a.in, a.out = nil, nil
		} else {
			in.setEndpoints(a, b)
			b.in = in
		}
	case in != nil:
		a, _ := in.Endpoints()
		in.setEndpoints(nil, nil)
		a.out = nil
	case out != nil:
		_, b := out.Endpoints()
		out.setEndpoints(nil, nil)
		b.in = nil
	}

	u.in, u.out = nil, nil
	pl.vertices = slices.Delete(pl.vertices, idx, idx+1)
	return nil
}

// Path returns the outline as drawing commands.
func (pl *Polyline) Path() *Path {
	p := NewPath()
	head := pl.Head()
	if head == nil {
		return p
	}
	p.Append(MoveTo{Point: head.At})
	for _, s := range pl.Sides() {
		p.Append(s.PathElement())
	}
	if pl.Closed() {
		p.Append(Close{})
	}
	return p
}

// Bounds returns the bounding box of all vertices and sides.
func (pl *Polyline) Bounds() Rect {
	head := pl.Head()
	if head == nil {
		return Rect{}
	}
	r := Rect{Min: head.At, Max: head.At}
	for _, u := range pl.vertices {
		r = r.Expand(u.At)
	}
	for _, s := range pl.Sides() {
		r = r.Union(s.BoundingBox())
	}
	return r
}

func (pl *Polyline) link(u, v *Vertex, side Side) {
	side.setEndpoints(u, v)
	u.out = side
	v.in = side
}

func (pl *Polyline) indexOf(u *Vertex) int {
	return slices.Index(pl.vertices, u)
}

func (pl *Polyline) owns(u *Vertex) bool {
	return u != nil && pl.indexOf(u) >= 0
}

func (pl *Polyline) hasSide(s Side) bool {
	if s == nil || !isAttached(s) {
		return false
	}
	u, _ := s.Endpoints()
	return pl.owns(u) && u.out == s
}
