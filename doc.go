// Package lathe turns 2D sketches into surfaces of revolution.
//
// # Overview
//
// A profile outline (a polyline with straight and Bezier sides) and a
// cross-section perimeter (an oval, a parallelogram or another polyline) are
// parameterized into pure functions, which the mesh package then applies to a
// cylindrical lattice. The reactive and blueprint packages keep the mesh in
// step with live edits.
//
// # Quick Start
//
//	import "github.com/gogpu/lathe"
//
//	profile := lathe.NewPolyline(lathe.Pt(60, 0), lathe.Pt(40, 50), lathe.Pt(70, 100))
//	curve := lathe.CurveOfPolyline(profile)
//	perimeter := lathe.RevolveOfShape(lathe.Oval{Radii: lathe.Pt(1, 1)})
//
//	g := mesh.SurfaceOfRevolution(curve, perimeter, 32, 16)
//
// # Architecture
//
// The library is organized into:
//   - Geometry model: Point, Vec2, Vertex, Side, Polyline, Oval, Parallelogram
//   - Parameterization: CurveOfSide, CurveOfPolyline, RevolveOfShape
//   - mesh: lattice, surface of revolution, wireframe, OBJ export
//   - reactive: push-based dataflow with identity-preserving sinks
//   - blueprint: editors, scene collection and mesh factory glue
//   - preview: outline rasterization for thumbnails
//
// # Errors
//
// Editing operations return sentinel errors (ErrForeignVertex, ErrSlotOccupied,
// ...). Parameterizing a degenerate outline or an unknown shape variant is a
// programming error and panics; use ValidateCurve and ValidatePerimeter to
// check live input first.
//
// # Coordinate System
//
// Sketch coordinates follow SVG: X increases right, Y increases down.
// Angles are in radians, 0 is +X and increases toward +Y.
package lathe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"
)
