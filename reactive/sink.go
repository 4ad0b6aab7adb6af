package reactive

// ReactiveSink owns an object and knows how to refresh it from a Spec.
//
// Set replaces the object outright, which is what a Source does when the
// sink is connected as a target. Update applies a Spec without replacing it.
type ReactiveSink[Spec, Obj any] struct {
	Obj    Obj
	update func(Spec)
}

// NewReactiveSink returns a sink around obj. A nil update makes Update a no-op.
func NewReactiveSink[Spec, Obj any](obj Obj, update func(Spec)) *ReactiveSink[Spec, Obj] {
	return &ReactiveSink[Spec, Obj]{Obj: obj, update: update}
}

// Set replaces the held object.
func (s *ReactiveSink[Spec, Obj]) Set(obj Obj) {
	s.Obj = obj
}

// Update refreshes the held object from spec.
func (s *ReactiveSink[Spec, Obj]) Update(spec Spec) {
	if s.update != nil {
		s.update(spec)
	}
}

// Seq builds a sink from mk(f(init)) and returns a sink over the same object
// that accepts the pre-image type: Update(pre) becomes inner.Update(f(pre)).
func Seq[Pre, Spec, Obj any](init Pre, f func(Pre) Spec, mk func(Spec) *ReactiveSink[Spec, Obj]) *ReactiveSink[Pre, Obj] {
	inner := mk(f(init))
	return NewReactiveSink(inner.Obj, func(pre Pre) {
		inner.Update(f(pre))
	})
}

// Par returns a sink over the same object whose Update runs sink.Update and
// then f with the same spec.
func Par[Spec, Obj any](sink *ReactiveSink[Spec, Obj], f func(Spec)) *ReactiveSink[Spec, Obj] {
	return NewReactiveSink(sink.Obj, func(spec Spec) {
		sink.Update(spec)
		f(spec)
	})
}

type updater[Spec, Obj any] struct {
	sink *ReactiveSink[Spec, Obj]
}

func (u updater[Spec, Obj]) Set(spec Spec) { u.sink.Update(spec) }

// Updater returns a Value whose Set calls s.Update. Connect it to a Source
// to refresh the held object instead of replacing it.
func (s *ReactiveSink[Spec, Obj]) Updater() Value[Spec] {
	return updater[Spec, Obj]{sink: s}
}
