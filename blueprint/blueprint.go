// Package blueprint connects lathe sketches to renderer-facing meshes.
//
// A Blueprint is the scene's object collection. A Factory turns geometry into
// reactive meshes, and a Bundle ties a profile editor and a perimeter editor
// to one surface of revolution that is regenerated in place whenever either
// outline changes.
//
// Typical use:
//
//	bp := blueprint.New()
//	bp.Observe(blueprint.SceneListener{MeshAdded: upload})
//	curve := blueprint.NewEditor(outline)
//	revolve := blueprint.NewEditor(&lathe.Oval{Radii: lathe.Pt(1, 1)})
//	b, err := blueprint.NewBundle(bp, curve, revolve)
package blueprint

import (
	"slices"

	"github.com/gogpu/lathe"
	"github.com/gogpu/lathe/mesh"
	"github.com/gogpu/lathe/reactive"
)

// Floor dimensions in scene units.
const (
	FloorSize      = 7
	FloorThickness = 0.03
)

// Mesh is the renderer-facing object. Geometry and Wireframe are updated in
// place, so a renderer may keep GPU resources keyed on the Mesh pointer.
type Mesh struct {
	Geometry  *mesh.Geometry
	Wireframe *mesh.Lines
	Y         float64
}

// RMesh is a reactive mesh: Update swaps in or refreshes its geometry.
type RMesh = reactive.ReactiveSink[*mesh.Geometry, *Mesh]

// SceneListener receives collection changes. Either callback may be nil.
type SceneListener struct {
	MeshAdded   func(*Mesh)
	MeshRemoved func(*Mesh)
}

// Blueprint is the collection of scene objects. It always contains a floor.
type Blueprint struct {
	objects   []*RMesh
	floor     *RMesh
	factory   *Factory
	listeners []SceneListener
}

// New returns a Blueprint holding only the floor. Options configure the
// Factory used by bundles created on this Blueprint.
func New(opts ...Option) *Blueprint {
	bp := &Blueprint{factory: NewFactory(opts...)}
	bp.floor = bp.Add(bp.factory.Mesh(mesh.Box(FloorSize, FloorThickness, FloorSize)), 0)
	return bp
}

// Factory returns the factory shared by this Blueprint.
func (bp *Blueprint) Factory() *Factory {
	return bp.factory
}

// Floor returns the floor mesh.
func (bp *Blueprint) Floor() *RMesh {
	return bp.floor
}

// Observe registers l for future add and remove events.
func (bp *Blueprint) Observe(l SceneListener) {
	bp.listeners = append(bp.listeners, l)
}

// Add places rm at height y, appends it to the collection and notifies
// listeners. It returns rm.
func (bp *Blueprint) Add(rm *RMesh, y float64) *RMesh {
	rm.Obj.Y = y
	bp.objects = append(bp.objects, rm)
	lathe.Logger().Info("blueprint: mesh added",
		"objects", len(bp.objects),
		"vertices", len(rm.Obj.Geometry.Positions))
	for _, l := range bp.listeners {
		if l.MeshAdded != nil {
			l.MeshAdded(rm.Obj)
		}
	}
	return rm
}

// Clear removes every object except the floor, notifying listeners for each.
func (bp *Blueprint) Clear() {
	for _, rm := range bp.objects {
		if rm == bp.floor {
			continue
		}
		lathe.Logger().Info("blueprint: mesh removed")
		for _, l := range bp.listeners {
			if l.MeshRemoved != nil {
				l.MeshRemoved(rm.Obj)
			}
		}
	}
	bp.objects = []*RMesh{bp.floor}
}

// Objects returns a copy of the collection, floor first.
func (bp *Blueprint) Objects() []*RMesh {
	return slices.Clone(bp.objects)
}
