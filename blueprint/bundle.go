package blueprint

import (
	"errors"
	"fmt"

	"github.com/gogpu/lathe"
	"github.com/gogpu/lathe/mesh"
	"github.com/gogpu/lathe/reactive"
)

// ErrNotPolyline is returned when the profile editor does not hold a polyline.
var ErrNotPolyline = errors.New("blueprint: profile shape is not a polyline")

// Spec is the input of a surface of revolution.
type Spec struct {
	Curve   *lathe.Polyline
	Revolve lathe.Shape
}

// Validate reports whether s can be turned into geometry.
func (s Spec) Validate() error {
	if err := lathe.ValidateCurve(s.Curve); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := lathe.ValidatePerimeter(s.Revolve); err != nil {
		return fmt.Errorf("perimeter: %w", err)
	}
	return nil
}

// Bundle keeps one surface-of-revolution mesh in sync with a profile editor
// and a perimeter editor.
//
// Edits flow through a reactive graph: a Source of Spec feeds an intermediate
// stage that deforms a single Geometry in place, which feeds the Mesh sink.
// The Mesh is added to the Blueprint once and never replaced.
type Bundle struct {
	Curve   *Editor
	Revolve *Editor
	Mesh    *RMesh

	source *reactive.Source[Spec]
	build  *reactive.Source[*mesh.Geometry]
}

// NewBundle builds the initial surface from the editors' current shapes, adds
// it to bp at height y and subscribes to both editors.
func NewBundle(bp *Blueprint, curve, revolve *Editor, y float64) (*Bundle, error) {
	b := &Bundle{Curve: curve, Revolve: revolve, source: &reactive.Source[Spec]{}}
	spec, err := b.spec()
	if err != nil {
		return nil, err
	}

	f := bp.Factory()
	b.build = reactive.Intermediate(b.source, reactive.Maintain(
		func(s Spec) *mesh.Geometry {
			return f.SurfaceOfRevolution(s.Curve, s.Revolve)
		},
		func(g *mesh.Geometry, s Spec) {
			g.Deform(lathe.CurveOfPolyline(s.Curve), lathe.RevolveOfShape(s.Revolve))
		},
	))
	b.source.Set(spec)

	g, _ := b.build.Value()
	b.Mesh = f.WithWireframe(f.Mesh(g))
	reactive.Connect(b.build, b.Mesh.Updater(), func(g *mesh.Geometry) *mesh.Geometry { return g })
	bp.Add(b.Mesh, y)

	curve.OnChange(b.onChange)
	revolve.OnChange(b.onChange)
	return b, nil
}

// Refresh regenerates the mesh from the editors' current shapes. An invalid
// shape leaves the mesh as it was and returns the reason.
func (b *Bundle) Refresh() error {
	spec, err := b.spec()
	if err != nil {
		return err
	}
	b.source.Set(spec)
	return nil
}

func (b *Bundle) onChange(lathe.Shape) {
	if err := b.Refresh(); err != nil {
		lathe.Logger().Warn("blueprint: mesh not regenerated", "err", err)
	}
}

func (b *Bundle) spec() (Spec, error) {
	pl, ok := b.Curve.Shape().(*lathe.Polyline)
	if !ok {
		return Spec{}, ErrNotPolyline
	}
	s := Spec{Curve: pl, Revolve: b.Revolve.Shape()}
	if err := s.Validate(); err != nil {
		return Spec{}, fmt.Errorf("blueprint: %w", err)
	}
	return s, nil
}
