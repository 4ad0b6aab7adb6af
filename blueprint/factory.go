package blueprint

import (
	"github.com/gogpu/lathe"
	"github.com/gogpu/lathe/mesh"
	"github.com/gogpu/lathe/reactive"
)

// Default lattice resolution for surfaces of revolution.
const (
	DefaultAngularSegments = 60
	DefaultHeightSegments  = 40
)

// Option configures a Factory.
type Option func(*factoryOptions)

type factoryOptions struct {
	angular, height int
	mesh            []mesh.Option
}

func defaultFactoryOptions() factoryOptions {
	return factoryOptions{
		angular: DefaultAngularSegments,
		height:  DefaultHeightSegments,
	}
}

// WithSegments sets the lattice resolution. Values below the lattice minimum
// (3 around, 1 along) are ignored.
func WithSegments(angular, height int) Option {
	return func(o *factoryOptions) {
		if angular >= 3 {
			o.angular = angular
		}
		if height >= 1 {
			o.height = height
		}
	}
}

// WithMeshOptions appends options passed to mesh.SurfaceOfRevolution.
func WithMeshOptions(opts ...mesh.Option) Option {
	return func(o *factoryOptions) {
		o.mesh = append(o.mesh, opts...)
	}
}

// Factory builds geometry and reactive meshes.
type Factory struct {
	opts factoryOptions
}

// NewFactory returns a factory configured by opts.
func NewFactory(opts ...Option) *Factory {
	o := defaultFactoryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Factory{opts: o}
}

// Segments returns the configured lattice resolution.
func (f *Factory) Segments() (angular, height int) {
	return f.opts.angular, f.opts.height
}

// SurfaceOfRevolution sweeps curve around the vertical axis following the
// revolve shape. Both shapes must be valid; see lathe.ValidateCurve and
// lathe.ValidatePerimeter.
func (f *Factory) SurfaceOfRevolution(curve *lathe.Polyline, revolve lathe.Shape) *mesh.Geometry {
	return mesh.SurfaceOfRevolution(
		lathe.CurveOfPolyline(curve),
		lathe.RevolveOfShape(revolve),
		f.opts.angular, f.opts.height,
		f.opts.mesh...)
}

// Mesh wraps g in a reactive mesh whose Update replaces the geometry.
// Updating with the same geometry pointer keeps the Mesh unchanged.
func (f *Factory) Mesh(g *mesh.Geometry) *RMesh {
	m := &Mesh{Geometry: g}
	return reactive.NewReactiveSink(m, func(g *mesh.Geometry) {
		m.Geometry = g
	})
}

// WithWireframe attaches a wireframe overlay to rm's mesh and returns a sink
// that refreshes the overlay after every geometry update.
func (f *Factory) WithWireframe(rm *RMesh) *RMesh {
	m := rm.Obj
	m.Wireframe = mesh.Wireframe(m.Geometry)
	return reactive.Par(rm, func(*mesh.Geometry) {
		m.Wireframe.Update(m.Geometry)
	})
}
