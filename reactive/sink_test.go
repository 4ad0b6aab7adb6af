package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	n     int
	label string
}

func TestReactiveSink_UpdateAndSet(t *testing.T) {
	c := &counter{}
	s := NewReactiveSink(c, func(n int) { c.n = n })

	s.Update(4)
	assert.Equal(t, 4, c.n)

	other := &counter{}
	s.Set(other)
	assert.Same(t, other, s.Obj)

	noop := NewReactiveSink[int](c, nil)
	assert.NotPanics(t, func() { noop.Update(1) })
}

func TestSeq(t *testing.T) {
	var specs []int
	mk := func(n int) *ReactiveSink[int, *counter] {
		c := &counter{n: n}
		return NewReactiveSink(c, func(n int) {
			specs = append(specs, n)
			c.n = n
		})
	}
	s := Seq("ab", func(s string) int { return len(s) }, mk)

	assert.Equal(t, 2, s.Obj.n, "initial object built from f(init)")
	s.Update("abcde")
	assert.Equal(t, 5, s.Obj.n)
	assert.Equal(t, []int{5}, specs)
}

func TestPar(t *testing.T) {
	c := &counter{}
	var order []string
	base := NewReactiveSink(c, func(n int) {
		order = append(order, "base")
		c.n = n
	})
	both := Par(base, func(n int) {
		order = append(order, "extra")
		c.label = "updated"
	})

	assert.Same(t, c, both.Obj)
	both.Update(9)
	assert.Equal(t, 9, c.n)
	assert.Equal(t, "updated", c.label)
	assert.Equal(t, []string{"base", "extra"}, order)
}

func TestUpdater_RefreshesInsteadOfReplacing(t *testing.T) {
	c := &counter{}
	s := NewReactiveSink(c, func(n int) { c.n = n })

	var src Source[int]
	Connect(&src, s.Updater(), func(v int) int { return v + 1 })
	src.Set(41)

	assert.Same(t, c, s.Obj)
	assert.Equal(t, 42, c.n)
}
