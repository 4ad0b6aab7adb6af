package mesh

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/lathe"
)

func identity(p lathe.Point) lathe.Point { return p }

func radius(v [3]float32) float64 {
	return math.Hypot(float64(v[0]), float64(v[2]))
}

func TestLattice(t *testing.T) {
	g := Lattice(8, 4)

	require.Len(t, g.Positions, 9*5)
	assert.Len(t, g.Indices, 6*8*4)
	assert.Equal(t, 8, g.Angular)
	assert.Equal(t, 4, g.Height)

	top := g.Positions[g.VertexIndex(0, 0)]
	bottom := g.Positions[g.VertexIndex(0, 4)]
	assert.InDelta(t, 0.5, top[1], 1e-6)
	assert.InDelta(t, -0.5, bottom[1], 1e-6)

	for y := 0; y <= 4; y++ {
		assert.Equal(t, g.Positions[g.VertexIndex(0, y)], g.Positions[g.VertexIndex(8, y)],
			"seam column must duplicate column 0 on row %d", y)
	}
	for i, p := range g.Positions {
		assert.InDelta(t, 1, radius(p), 1e-6, "vertex %d off the unit cylinder", i)
	}
	for _, i := range g.Indices {
		assert.Less(t, int(i), len(g.Positions))
	}
}

func TestLattice_Panics(t *testing.T) {
	assert.Panics(t, func() { Lattice(2, 4) })
	assert.Panics(t, func() { Lattice(8, 0) })
}

func TestSurfaceOfRevolution_ConstantRingRadius(t *testing.T) {
	// Vertical profile at x=2: every ring has radius 2.
	profile := func(r float64) lathe.Point { return lathe.Pt(2, -4*r) }
	g := SurfaceOfRevolution(profile, identity, 16, 8, WithScale(1))

	for y := 0; y <= g.Height; y++ {
		want := 4 * (0.5 - float64(y)/float64(g.Height) + 0.5)
		for x := 0; x <= g.Angular; x++ {
			p := g.Positions[g.VertexIndex(x, y)]
			assert.InDelta(t, 2, radius(p), 1e-5, "ring %d column %d", y, x)
			assert.InDelta(t, want, float64(p[1]), 1e-5, "height of ring %d", y)
		}
	}
}

func TestSurfaceOfRevolution_Options(t *testing.T) {
	profile := func(r float64) lathe.Point { return lathe.Pt(100, -100*r) }

	def := SurfaceOfRevolution(profile, identity, 4, 1)
	assert.InDelta(t, 100*DefaultScale, radius(def.Positions[0]), 1e-5)

	scaled := SurfaceOfRevolution(profile, identity, 4, 1, WithScale(0.01), WithPerimeterScale(0.5))
	assert.InDelta(t, 0.5, radius(scaled.Positions[0]), 1e-5)
	assert.InDelta(t, 1, float64(scaled.Positions[0][1]), 1e-5, "perimeter scale must not touch y")

	ignored := SurfaceOfRevolution(profile, identity, 4, 1, WithScale(-1), WithPerimeterScale(0))
	assert.Equal(t, def.Positions, ignored.Positions)
}

func TestSurfaceOfRevolution_OvalPerimeter(t *testing.T) {
	profile := func(r float64) lathe.Point { return lathe.Pt(1, 0) }
	oval := lathe.RevolveOfShape(lathe.Oval{Radii: lathe.Pt(3, 2)})
	g := SurfaceOfRevolution(profile, oval, 4, 1, WithScale(1))

	// Column 0 sits at angle 0, column 1 at pi/2.
	assert.InDelta(t, 3, g.Positions[g.VertexIndex(0, 0)][0], 1e-5)
	assert.InDelta(t, 2, g.Positions[g.VertexIndex(1, 0)][2], 1e-5)
}

func TestSurfaceOfRevolution_Deterministic(t *testing.T) {
	pl := lathe.NewPolyline(lathe.Pt(40, 0), lathe.Pt(60, 50), lathe.Pt(30, 100))
	profile := lathe.CurveOfPolyline(pl)
	perimeter := lathe.RevolveOfShape(lathe.Oval{Radii: lathe.Pt(1, 1)})

	a := SurfaceOfRevolution(profile, perimeter, 24, 12)
	b := SurfaceOfRevolution(profile, perimeter, 24, 12)
	assert.Equal(t, a.Positions, b.Positions)
	assert.Equal(t, a.Indices, b.Indices)
}

func TestDeform_InPlace(t *testing.T) {
	g := SurfaceOfRevolution(func(r float64) lathe.Point { return lathe.Pt(1, -r) }, identity, 8, 2, WithScale(1))
	before := &g.Positions[0]
	indices := g.Indices

	g.Deform(func(r float64) lathe.Point { return lathe.Pt(5, -r) }, identity)

	assert.Same(t, before, &g.Positions[0], "positions must be rewritten in place")
	assert.Equal(t, indices, g.Indices)
	assert.InDelta(t, 5, radius(g.Positions[0]), 1e-5)
}

func TestBounds(t *testing.T) {
	profile := func(r float64) lathe.Point { return lathe.Pt(2, -r) }
	g := SurfaceOfRevolution(profile, identity, 4, 1, WithScale(1))
	lo, hi := g.Bounds()
	assert.InDelta(t, -2, lo[0], 1e-5)
	assert.InDelta(t, 2, hi[0], 1e-5)
	assert.InDelta(t, 0, lo[1], 1e-5)
	assert.InDelta(t, 1, hi[1], 1e-5)

	lo, hi = (&Geometry{}).Bounds()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestWriteOBJ(t *testing.T) {
	g := Lattice(3, 1)
	var buf bytes.Buffer
	require.NoError(t, g.WriteOBJ(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var verts, faces int
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "v "):
			verts++
		case strings.HasPrefix(l, "f "):
			faces++
		}
	}
	assert.Equal(t, len(g.Positions), verts)
	assert.Equal(t, len(g.Indices)/3, faces)
	assert.Contains(t, buf.String(), "f 1 5 2\n")
}

func TestBox(t *testing.T) {
	g := Box(7, 0.03, 7)
	require.Len(t, g.Positions, 8)
	assert.Len(t, g.Indices, 36)

	lo, hi := g.Bounds()
	assert.InDelta(t, -3.5, lo[0], 1e-6)
	assert.InDelta(t, 0.015, hi[1], 1e-6)
	assert.InDelta(t, 3.5, hi[2], 1e-6)

	before := append([]f32.Vec3(nil), g.Positions...)
	g.Deform(func(r float64) lathe.Point { return lathe.Pt(9, 9) }, identity)
	assert.Equal(t, before, g.Positions)
	assert.Equal(t, 18, Wireframe(g).Segments())
}

func TestLattice_SharesTemplate(t *testing.T) {
	lattices.Clear()
	lattices.ResetStats()

	a := Lattice(7, 3)
	b := Lattice(7, 3)
	stats := lattices.Stats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(1), stats.Hits)

	assert.Same(t, &a.lattice[0], &b.lattice[0], "unit cylinder must be shared")
	assert.NotSame(t, &a.Positions[0], &b.Positions[0], "positions must be private")

	a.Indices[0] = 99
	assert.NotEqual(t, uint32(99), b.Indices[0])
	assert.NotEqual(t, uint32(99), Lattice(7, 3).Indices[0])
}
