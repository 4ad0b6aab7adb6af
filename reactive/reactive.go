// Package reactive is a small push-based dataflow graph.
//
// A Source fans a value out to its dependencies. Each dependency transforms
// the value and hands the result to a target Value, which may itself be a
// Source (an intermediate stage) or a ReactiveSink (a leaf that owns a
// renderer-facing object). Propagation is synchronous: Set returns after
// every reachable target has been updated.
//
// The graph is not safe for concurrent use; drive it from one goroutine.
package reactive

import "github.com/gogpu/lathe"

// Value is anything that accepts a new value.
type Value[T any] interface {
	Set(v T)
}

// Dependency is an edge of the graph: Update maps the source value into the
// value handed to Target.
type Dependency[From, To any] struct {
	Update func(From) To
	Target Value[To]
}

func (d Dependency[From, To]) propagate(v From) {
	d.Target.Set(d.Update(v))
}

type propagator[T any] interface {
	propagate(v T)
}

// Source is a graph node with outgoing dependencies. The zero value is a
// Source with no value and no dependencies.
type Source[T any] struct {
	out   []propagator[T]
	value T
	has   bool
}

// Set records v and pushes it through every dependency in the order they
// were connected.
func (s *Source[T]) Set(v T) {
	s.value, s.has = v, true
	lathe.Logger().Debug("reactive: propagate", "targets", len(s.out))
	for _, d := range s.out {
		d.propagate(v)
	}
}

// Value returns the last value set, and false if Set was never called.
func (s *Source[T]) Value() (T, bool) {
	return s.value, s.has
}

// Dependents returns the number of outgoing dependencies.
func (s *Source[T]) Dependents() int {
	return len(s.out)
}

// Connect adds a dependency from source to target and returns target.
// Existing values are not replayed; target sees the next Set.
func Connect[From, To any, V Value[To]](source *Source[From], target V, update func(From) To) V {
	source.out = append(source.out, Dependency[From, To]{Update: update, Target: target})
	return target
}

// Intermediate returns a new Source fed by update applied to source values.
func Intermediate[From, To any](source *Source[From], update func(From) To) *Source[To] {
	return Connect(source, &Source[To]{}, update)
}

// Sink returns a leaf holding the latest update result in its Obj field.
func Sink[From, To any](source *Source[From], update func(From) To) *ReactiveSink[To, To] {
	var zero To
	s := NewReactiveSink[To](zero, nil)
	s.update = func(v To) { s.Obj = v }
	return Connect(source, s, update)
}

// Maintain returns a function that creates its object on the first call and
// mutates that same object on every later call, so downstream consumers keep
// a stable identity.
func Maintain[G, Obj any](create func(G) Obj, update func(Obj, G)) func(G) Obj {
	var (
		obj Obj
		has bool
	)
	return func(g G) Obj {
		if has {
			update(obj, g)
		} else {
			obj, has = create(g), true
		}
		return obj
	}
}
