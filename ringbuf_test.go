package reactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostRingFIFOOrder(t *testing.T) {
	r := newPostRing(2)
	var order []int
	r.Push(func() { order = append(order, 1) })
	r.Push(func() { order = append(order, 2) })
	r.Push(func() { order = append(order, 3) })
	r.Push(func() { order = append(order, 4) })
	require.Equal(t, 4, r.Len())
	for !r.Empty() {
		r.Pop()()
	}
	require.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestPostRingGrowsAcrossWraparound(t *testing.T) {
	r := newPostRing(2)
	r.Push(func() {})
	r.Pop()
	r.Push(func() {})
	r.Push(func() {})
	r.Push(func() {})
	require.Equal(t, 3, r.Len())
	n := 0
	for !r.Empty() {
		r.Pop()
		n++
	}
	require.Equal(t, 3, n)
}
