package blueprint

import (
	"fmt"

	"github.com/gogpu/lathe"
)

// Editor owns a live shape and tells listeners when it changes.
//
// All mutation goes through Edit or Replace so that listeners never miss an
// update. Listeners run synchronously, in registration order, on the
// goroutine that made the change.
type Editor struct {
	shape     lathe.Shape
	listeners []func(lathe.Shape)
}

// NewEditor returns an editor around shape.
func NewEditor(shape lathe.Shape) *Editor {
	return &Editor{shape: shape}
}

// Shape returns the current shape.
func (e *Editor) Shape() lathe.Shape {
	return e.shape
}

// OnChange registers fn to run after every successful change.
func (e *Editor) OnChange(fn func(lathe.Shape)) {
	e.listeners = append(e.listeners, fn)
}

// Edit runs fn against the current shape and notifies listeners if it
// succeeds. A failing fn does not notify.
func (e *Editor) Edit(fn func(lathe.Shape) error) error {
	if err := fn(e.shape); err != nil {
		return fmt.Errorf("blueprint: edit: %w", err)
	}
	e.Changed()
	return nil
}

// Replace swaps in a new shape and notifies listeners.
func (e *Editor) Replace(shape lathe.Shape) {
	e.shape = shape
	e.Changed()
}

// Changed notifies listeners without modifying the shape. Use it after
// mutating the shape directly.
func (e *Editor) Changed() {
	for _, fn := range e.listeners {
		fn(e.shape)
	}
}
