package datastruct

import "golang.org/x/exp/constraints"

// MinHeap is a binary heap stored as an implicit tree in a slice.
// The element at index 0 is the smallest, the children of i are at 2i+1 and 2i+2.
type MinHeap[T any] struct {
	vs   []T
	less func(a, b T) bool
}

// NewMinHeap builds a heap of ordered values.
func NewMinHeap[T constraints.Ordered](vs ...T) *MinHeap[T] {
	return NewMinHeapFunc(func(a, b T) bool { return a < b }, vs...)
}

// NewMinHeapFunc builds a heap ordered by less.
// The given values are copied and heapified in O(n).
func NewMinHeapFunc[T any](less func(a, b T) bool, vs ...T) *MinHeap[T] {
	h := &MinHeap[T]{
		vs:   append(make([]T, 0, len(vs)), vs...),
		less: less,
	}
	for i := len(h.vs)/2 - 1; 0 <= i; i-- {
		h.siftDown(i)
	}
	return h
}

func (h *MinHeap[T]) Len() int {
	return len(h.vs)
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.vs) == 0
}

// Push inserts values, each bubbling up to its place.
func (h *MinHeap[T]) Push(vs ...T) {
	for _, v := range vs {
		h.vs = append(h.vs, v)
		h.siftUp(len(h.vs) - 1)
	}
}

// Peek returns the smallest element without removing it.
func (h *MinHeap[T]) Peek() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrNoSuchElement.F("no elements in the heap")
	}
	return h.vs[0], nil
}

// Pop removes and returns the smallest element.
func (h *MinHeap[T]) Pop() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, ErrNoSuchElement.F("no elements in the heap")
	}
	var (
		last = len(h.vs) - 1
		root = h.vs[0]
	)
	h.vs[0] = h.vs[last]
	var zero T
	h.vs[last] = zero
	h.vs = h.vs[:last]
	h.siftDown(0)
	return root, nil
}

func (h *MinHeap[T]) siftUp(i int) {
	for 0 < i {
		parent := (i - 1) / 2
		if !h.less(h.vs[i], h.vs[parent]) {
			return
		}
		h.vs[i], h.vs[parent] = h.vs[parent], h.vs[i]
		i = parent
	}
}

func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.vs)
	for {
		var (
			smallest = i
			left     = 2*i + 1
			right    = left + 1
		)
		if left < n && h.less(h.vs[left], h.vs[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.vs[right], h.vs[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.vs[i], h.vs[smallest] = h.vs[smallest], h.vs[i]
		i = smallest
	}
}
