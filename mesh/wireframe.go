package mesh

import "golang.org/x/image/math/f32"

// Lines is a line-segment overlay of a Geometry, two indices per segment.
type Lines struct {
	Positions []f32.Vec3
	Indices   []uint32
}

// Wireframe returns the unique edges of g's triangles in first-seen order.
func Wireframe(g *Geometry) *Lines {
	l := &Lines{
		Positions: make([]f32.Vec3, len(g.Positions)),
		Indices:   make([]uint32, 0, len(g.Indices)),
	}
	copy(l.Positions, g.Positions)

	seen := make(map[[2]uint32]struct{}, len(g.Indices))
	add := func(a, b uint32) {
		if a > b {
			a, b = b, a
		}
		key := [2]uint32{a, b}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		l.Indices = append(l.Indices, a, b)
	}
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
		add(a, b)
		add(b, c)
		add(c, a)
	}
	return l
}

// Update refreshes the overlay positions from g. When the vertex count
// matches, the existing buffer is reused; otherwise the overlay is rebuilt.
func (l *Lines) Update(g *Geometry) {
	if len(l.Positions) == len(g.Positions) {
		copy(l.Positions, g.Positions)
		return
	}
	*l = *Wireframe(g)
}

// Segments returns the number of line segments.
func (l *Lines) Segments() int {
	return len(l.Indices) / 2
}
