package mesh

import "golang.org/x/image/math/f32"

// Box returns an axis-aligned box centered at the origin. Deform leaves a
// box untouched because it has no lattice.
func Box(width, height, depth float32) *Geometry {
	hx, hy, hz := width/2, height/2, depth/2
	pos := []f32.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	idx := []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
	return &Geometry{Positions: pos, Indices: idx, opts: defaultOptions()}
}
