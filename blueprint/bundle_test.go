package blueprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/lathe"
	"github.com/gogpu/lathe/mesh"
)

func newTestBundle(t *testing.T) (*Blueprint, *Bundle, *[]*Mesh) {
	t.Helper()
	bp := New(WithSegments(8, 4), WithMeshOptions(mesh.WithScale(1)))
	var added []*Mesh
	bp.Observe(SceneListener{MeshAdded: func(m *Mesh) { added = append(added, m) }})

	curve := NewEditor(lathe.NewPolyline(lathe.Pt(2, 0), lathe.Pt(2, -4)))
	revolve := NewEditor(&lathe.Oval{Radii: lathe.Pt(1, 1)})
	b, err := NewBundle(bp, curve, revolve, 0.5)
	require.NoError(t, err)
	return bp, b, &added
}

func ringRadius(g *mesh.Geometry, row int) float64 {
	p := g.Positions[g.VertexIndex(0, row)]
	return math.Hypot(float64(p[0]), float64(p[2]))
}

func TestNewBundle_AddsMeshOnce(t *testing.T) {
	bp, b, added := newTestBundle(t)

	require.Len(t, *added, 1)
	assert.Same(t, b.Mesh.Obj, (*added)[0])
	assert.Len(t, bp.Objects(), 2)
	assert.Equal(t, 0.5, b.Mesh.Obj.Y)
	assert.InDelta(t, 2, ringRadius(b.Mesh.Obj.Geometry, 0), 1e-5)

	require.NoError(t, b.Curve.Edit(func(s lathe.Shape) error {
		s.(*lathe.Polyline).CreateVertex(lathe.Pt(3, -6))
		return nil
	}))
	assert.Len(t, *added, 1, "regeneration must not add another mesh")
	assert.Len(t, bp.Objects(), 2)
}

func TestBundle_EditsDeformInPlace(t *testing.T) {
	_, b, _ := newTestBundle(t)
	m := b.Mesh.Obj
	g := m.Geometry
	pos := &g.Positions[0]
	wire := &m.Wireframe.Positions[0]

	oval := b.Revolve.Shape().(*lathe.Oval)
	require.NoError(t, b.Revolve.Edit(func(lathe.Shape) error {
		oval.Radii = lathe.Pt(3, 3)
		return nil
	}))

	assert.Same(t, m, b.Mesh.Obj)
	assert.Same(t, g, m.Geometry)
	assert.Same(t, pos, &g.Positions[0])
	assert.Same(t, wire, &m.Wireframe.Positions[0])
	assert.InDelta(t, 6, ringRadius(g, 0), 1e-5)
	assert.Equal(t, g.Positions, m.Wireframe.Positions)
}

func TestBundle_InvalidEditKeepsMesh(t *testing.T) {
	_, b, _ := newTestBundle(t)
	g := b.Mesh.Obj.Geometry
	before := ringRadius(g, 0)

	b.Curve.Replace(lathe.NewPolyline(lathe.Pt(5, 5)))
	assert.InDelta(t, before, ringRadius(g, 0), 1e-9)
	assert.ErrorIs(t, b.Refresh(), lathe.ErrNoSides)

	b.Curve.Replace(lathe.Oval{Radii: lathe.Pt(1, 1)})
	assert.ErrorIs(t, b.Refresh(), ErrNotPolyline)

	b.Curve.Replace(lathe.NewPolyline(lathe.Pt(4, 0), lathe.Pt(4, -4)))
	assert.NoError(t, b.Refresh())
	assert.InDelta(t, 4, ringRadius(g, 0), 1e-5)
}

func TestNewBundle_InvalidShapes(t *testing.T) {
	bp := New()
	oval := NewEditor(lathe.Oval{Radii: lathe.Pt(1, 1)})

	_, err := NewBundle(bp, NewEditor(lathe.NewPolyline()), oval, 0)
	assert.ErrorIs(t, err, lathe.ErrNoSides)

	_, err = NewBundle(bp, oval, oval, 0)
	assert.ErrorIs(t, err, ErrNotPolyline)

	assert.Len(t, bp.Objects(), 1, "failed bundles must not add meshes")
}

func TestBundle_ParallelogramPerimeter(t *testing.T) {
	bp := New(WithSegments(8, 2), WithMeshOptions(mesh.WithScale(1)))
	curve := NewEditor(lathe.NewPolyline(lathe.Pt(1, 0), lathe.Pt(1, -1)))
	square := lathe.Parallelogram{Origin: lathe.Pt(-1, -1), U: lathe.V2(2, 0), V: lathe.V2(0, 2)}

	b, err := NewBundle(bp, curve, NewEditor(square), 0)
	require.NoError(t, err)

	// Column 0 sits at angle 0, the square's origin corner.
	p := b.Mesh.Obj.Geometry.Positions[0]
	assert.InDelta(t, -1, p[0], 1e-5)
	assert.InDelta(t, -1, p[2], 1e-5)
}
