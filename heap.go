package reactor

// indexedHeap is a generic binary min-heap over a growable slice, with
// an index callback invoked every time an entry's slot changes so that
// a back-index embedded in the entry's owner can be kept in sync. This
// generalizes a C-style heap built from swap/less function pointers
// over a growable array, replacing void* element access with Go
// generics.
type indexedHeap[T any] struct {
	items []T
	less  func(a, b *T) bool
	// index is called with the entry now occupying position i whenever
	// that position changes, so the caller can patch any back-pointer
	// the entry's owner keeps to this heap.
	index func(item *T, i int)
}

func newIndexedHeap[T any](less func(a, b *T) bool, index func(item *T, i int)) *indexedHeap[T] {
	return &indexedHeap[T]{less: less, index: index}
}

func (h *indexedHeap[T]) Len() int { return len(h.items) }

func (h *indexedHeap[T]) Top() *T {
	if len(h.items) == 0 {
		return nil
	}
	return &h.items[0]
}

func (h *indexedHeap[T]) At(i int) *T { return &h.items[i] }

func (h *indexedHeap[T]) set(i int, v T) {
	h.items[i] = v
	h.index(&h.items[i], i)
}

func (h *indexedHeap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index(&h.items[i], i)
	h.index(&h.items[j], j)
}

// Push inserts v and returns its final index (informational only; the
// index callback has already been invoked with the settled position).
func (h *indexedHeap[T]) Push(v T) int {
	h.items = append(h.items, v)
	i := len(h.items) - 1
	h.set(i, v)
	return h.siftUp(i)
}

func (h *indexedHeap[T]) siftUp(i int) int {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(&h.items[i], &h.items[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
	return i
}

func (h *indexedHeap[T]) siftDown(i int) int {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(&h.items[left], &h.items[smallest]) {
			smallest = left
		}
		if right < n && h.less(&h.items[right], &h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return i
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// RemoveAt performs the classic unordered-remove used throughout this
// package: the last entry is swapped into the vacated slot (unless the
// vacated slot was already last), the slice is shortened by one, and
// the moved entry is sifted in whichever direction restores heap order.
func (h *indexedHeap[T]) RemoveAt(i int) {
	n := len(h.items)
	last := n - 1
	if i != last {
		h.items[i] = h.items[last]
		h.index(&h.items[i], i)
	}
	h.items = h.items[:last]
	if i < len(h.items) {
		moved := h.siftDown(i)
		h.siftUp(moved)
	}
}

// Pop removes and returns the top (minimum) entry.
func (h *indexedHeap[T]) Pop() T {
	top := h.items[0]
	h.RemoveAt(0)
	return top
}
