package reactive

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder[T any] struct {
	got []T
}

func (r *recorder[T]) Set(v T) { r.got = append(r.got, v) }

func TestSource_ValueBeforeSet(t *testing.T) {
	var s Source[int]
	v, ok := s.Value()
	assert.False(t, ok)
	assert.Zero(t, v)

	s.Set(7)
	v, ok = s.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestSource_PropagatesInConnectionOrder(t *testing.T) {
	var (
		s     Source[int]
		order []string
	)
	first := Connect(&s, &recorder[string]{}, func(v int) string {
		order = append(order, "first")
		return strconv.Itoa(v)
	})
	second := Connect(&s, &recorder[int]{}, func(v int) int {
		order = append(order, "second")
		return v * v
	})
	require.Equal(t, 2, s.Dependents())

	s.Set(3)
	s.Set(4)

	assert.Equal(t, []string{"3", "4"}, first.got)
	assert.Equal(t, []int{9, 16}, second.got)
	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestConnect_NoReplay(t *testing.T) {
	var s Source[int]
	s.Set(1)
	r := Connect(&s, &recorder[int]{}, func(v int) int { return v })
	assert.Empty(t, r.got)
	s.Set(2)
	assert.Equal(t, []int{2}, r.got)
}

func TestIntermediate_Chains(t *testing.T) {
	var s Source[int]
	doubled := Intermediate(&s, func(v int) int { return 2 * v })
	label := Sink(doubled, func(v int) string { return "n=" + strconv.Itoa(v) })

	_, ok := doubled.Value()
	assert.False(t, ok)
	assert.Equal(t, "", label.Obj)

	s.Set(5)

	v, ok := doubled.Value()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, "n=10", label.Obj)
}

func TestMaintain_PreservesIdentity(t *testing.T) {
	type box struct{ n int }
	var creates, updates int
	f := Maintain(
		func(n int) *box { creates++; return &box{n: n} },
		func(b *box, n int) { updates++; b.n = n },
	)

	a := f(1)
	b := f(2)
	c := f(3)

	assert.Same(t, a, b)
	assert.Same(t, a, c)
	assert.Equal(t, 3, c.n)
	assert.Equal(t, 1, creates)
	assert.Equal(t, 2, updates)
}

func TestMaintain_ZeroValueObject(t *testing.T) {
	// A created object equal to its zero value still counts as created.
	var creates int
	f := Maintain(
		func(int) int { creates++; return 0 },
		func(int, int) {},
	)
	f(1)
	f(2)
	assert.Equal(t, 1, creates)
}

func TestSinkInGraph_KeepsObjectWithMaintain(t *testing.T) {
	type geom struct{ v []int }
	var s Source[int]
	build := Intermediate(&s, Maintain(
		func(n int) *geom { return &geom{v: []int{n}} },
		func(g *geom, n int) { g.v[0] = n },
	))
	out := Sink(build, func(g *geom) *geom { return g })

	s.Set(1)
	first := out.Obj
	s.Set(2)

	assert.Same(t, first, out.Obj)
	assert.Equal(t, []int{2}, out.Obj.v)
}
