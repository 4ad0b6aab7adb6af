// Package mesh turns a lathe profile curve and perimeter into a triangle mesh.
//
// Generation starts from a unit cylinder lattice: rows run from y=+0.5 at the
// top to y=-0.5 at the bottom, and each row holds angular+1 vertices so the
// seam column is duplicated and texture coordinates stay continuous. Every
// lattice vertex is then deformed by sampling the profile at its height and
// the perimeter at its angle.
//
// Positions are float32 and laid out for direct upload to a vertex buffer.
package mesh

import (
	"math"
	"slices"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/lathe"
	"github.com/gogpu/lathe/internal/lru"
)

// Geometry is an indexed triangle mesh built over a cylindrical lattice.
//
// Positions is rewritten in place by Deform, so a renderer holding on to the
// Geometry keeps pointing at current data.
type Geometry struct {
	// Positions holds one vertex per lattice point, row-major from the top row.
	Positions []f32.Vec3

	// Indices lists triangles, three entries each.
	Indices []uint32

	// Angular is the number of segments around the axis.
	Angular int

	// Height is the number of segments along the axis.
	Height int

	lattice []f32.Vec3
	opts    options
}

// latticeCacheSize bounds the number of distinct resolutions kept.
const latticeCacheSize = 32

type latticeKey struct {
	angular, height int
}

// template is the read-only unit cylinder shared by every Geometry of one
// resolution.
type template struct {
	positions []f32.Vec3
	indices   []uint32
}

var lattices = lru.New[latticeKey, *template](latticeCacheSize)

// Lattice returns the unit radius, unit height cylinder with angular segments
// around and height segments along the y axis.
//
// It panics if angular < 3 or height < 1.
func Lattice(angular, height int) *Geometry {
	if angular < 3 {
		panic("mesh: lattice needs at least 3 angular segments")
	}
	if height < 1 {
		panic("mesh: lattice needs at least 1 height segment")
	}

	t := lattices.GetOrCreate(latticeKey{angular, height}, func() *template {
		return buildLattice(angular, height)
	})
	return &Geometry{
		Positions: slices.Clone(t.positions),
		Indices:   slices.Clone(t.indices),
		Angular:   angular,
		Height:    height,
		lattice:   t.positions,
		opts:      defaultOptions(),
	}
}

func buildLattice(angular, height int) *template {
	cols := angular + 1
	pos := make([]f32.Vec3, 0, cols*(height+1))
	for y := 0; y <= height; y++ {
		v := float32(y) / float32(height)
		for x := 0; x <= angular; x++ {
			// The seam column reuses angle 0 so it matches column 0 exactly.
			theta := 2 * math32.Pi * float32(x%angular) / float32(angular)
			pos = append(pos, f32.Vec3{
				math32.Cos(theta),
				0.5 - v,
				math32.Sin(theta),
			})
		}
	}

	idx := make([]uint32, 0, 6*angular*height)
	for y := 0; y < height; y++ {
		for x := 0; x < angular; x++ {
			v1 := uint32(y*cols + x)
			v2 := uint32((y+1)*cols + x)
			v3 := uint32((y+1)*cols + x + 1)
			v4 := uint32(y*cols + x + 1)
			idx = append(idx, v1, v2, v4, v2, v3, v4)
		}
	}
	lathe.Logger().Debug("mesh: lattice built", "angular", angular, "height", height)
	return &template{positions: pos, indices: idx}
}

// SurfaceOfRevolution builds the mesh obtained by sweeping profile around the
// y axis while following perimeter.
//
// For a lattice vertex (x, y, z) the profile is sampled at r = y+0.5 giving
// p, and the perimeter at (x, z) giving q. The vertex becomes
//
//	(q.X*p.X*ps, -p.Y, q.Y*p.X*ps) * scale
//
// where ps is the perimeter scale. The y axis is flipped because outlines are
// drawn with y pointing down. The result depends only on its inputs.
func SurfaceOfRevolution(profile lathe.Curve, perimeter lathe.Perimeter, angular, height int, opts ...Option) *Geometry {
	g := Lattice(angular, height)
	g.opts = applyOptions(opts)
	g.Deform(profile, perimeter)
	return g
}

// Deform recomputes every position from profile and perimeter, writing into
// the existing Positions slice. Topology is unchanged.
func (g *Geometry) Deform(profile lathe.Curve, perimeter lathe.Perimeter) {
	scale := g.opts.scale
	ps := g.opts.perimeterScale
	for i, l := range g.lattice {
		p := profile(float64(l[1]) + 0.5)
		q := perimeter(lathe.Pt(float64(l[0]), float64(l[2])))
		g.Positions[i] = f32.Vec3{
			float32(q.X * p.X * ps * scale),
			float32(-p.Y * scale),
			float32(q.Y * p.X * ps * scale),
		}
	}
	lathe.Logger().Debug("mesh: deformed",
		"vertices", len(g.Positions),
		"triangles", len(g.Indices)/3)
}

// Bounds returns the axis-aligned box enclosing all positions. An empty
// geometry yields two zero vectors.
func (g *Geometry) Bounds() (lo, hi f32.Vec3) {
	if len(g.Positions) == 0 {
		return lo, hi
	}
	lo = f32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	hi = f32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for _, p := range g.Positions {
		for k := range 3 {
			lo[k] = math32.Min(lo[k], p[k])
			hi[k] = math32.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

// VertexIndex returns the index into Positions of lattice column x on row y.
func (g *Geometry) VertexIndex(x, y int) int {
	return y*(g.Angular+1) + x
}
