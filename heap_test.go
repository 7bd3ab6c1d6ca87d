package reactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type heapItem struct {
	val int
	idx int
}

func newIntHeap() *indexedHeap[heapItem] {
	return newIndexedHeap(
		func(a, b *heapItem) bool { return a.val < b.val },
		func(item *heapItem, i int) { item.idx = i },
	)
}

func TestIndexedHeapOrdering(t *testing.T) {
	h := newIntHeap()
	for _, v := range []int{5, 3, 8, 1, 9, 2, 7} {
		h.Push(heapItem{val: v})
	}
	require.Equal(t, 7, h.Len())
	var popped []int
	for h.Len() > 0 {
		popped = append(popped, h.Pop().val)
	}
	require.Equal(t, []int{1, 2, 3, 5, 7, 8, 9}, popped)
}

func TestIndexedHeapBackIndexStaysConsistent(t *testing.T) {
	h := newIntHeap()
	for _, v := range []int{10, 20, 30, 40, 50} {
		h.Push(heapItem{val: v})
	}
	for i := 0; i < h.Len(); i++ {
		require.Equal(t, i, h.At(i).idx)
	}
	mid := h.At(h.Len() / 2).val
	for i := 0; i < h.Len(); i++ {
		if h.At(i).val == mid {
			h.RemoveAt(i)
			break
		}
	}
	for i := 0; i < h.Len(); i++ {
		require.Equal(t, i, h.At(i).idx, "back-index must track the slot every survivor settles into")
	}
}

func TestIndexedHeapRemoveAtLastElement(t *testing.T) {
	h := newIntHeap()
	h.Push(heapItem{val: 1})
	h.Push(heapItem{val: 2})
	h.RemoveAt(1)
	require.Equal(t, 1, h.Len())
	require.Equal(t, 1, h.Top().val)
}

func TestIndexedHeapTopNilWhenEmpty(t *testing.T) {
	h := newIntHeap()
	require.Nil(t, h.Top())
}
