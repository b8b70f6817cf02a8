package heap

import (
	"errors"
	"iter"
)

// ErrEmpty is returned by Top when the heap contains no elements.
var ErrEmpty = errors.New("heap: top of empty heap")

// Heap implements a binary max-heap over an injected storage sequence and
// ordering. The element at the top is the one no other element outranks
// under the less function; supplying an inverted comparator (see Greater)
// turns it into a min-heap.
//
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	storage Storage[T]
	less    func(a, b T) bool // returns true if a ranks strictly below b
}

// New creates an empty heap ordered by less, backed by slice storage.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		storage: NewSliceStorage[T](),
		less:    less,
	}
}

// NewFromSlice creates a heap containing items, ordered by less. Capacity
// for all items is reserved up front and each element is inserted through
// the standard push path.
func NewFromSlice[T any](items []T, less func(a, b T) bool) *Heap[T] {
	h := New(less)
	h.storage.Reserve(len(items))
	for _, v := range items {
		h.Push(v)
	}
	return h
}

// NewFromSeq creates a heap containing the elements of seq, ordered by
// less. Each element is inserted through the standard push path.
func NewFromSeq[T any](seq iter.Seq[T], less func(a, b T) bool) *Heap[T] {
	h := New(less)
	for v := range seq {
		h.Push(v)
	}
	return h
}

// NewFromStorage takes ownership of storage, which may hold its elements in
// any order, and imposes the heap property with a single bottom-up heapify
// pass. This is O(n), cheaper than pushing the elements one at a time.
func NewFromStorage[T any](storage Storage[T], less func(a, b T) bool) *Heap[T] {
	h := &Heap[T]{storage: storage, less: less}
	h.heapify()
	return h
}

// NewFromHeapedStorage takes ownership of storage without re-heapifying.
// The caller guarantees storage already satisfies the heap property under
// less; handing over a sequence that does not leaves the heap corrupt.
func NewFromHeapedStorage[T any](storage Storage[T], less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{storage: storage, less: less}
}

// Clone returns a heap with the same ordering and a copy of the elements.
// The copy preserves the source's element order, so no re-heapify is
// needed. The two heaps share no storage.
func (h *Heap[T]) Clone() *Heap[T] {
	s := NewSliceStorage[T]()
	s.Reserve(h.storage.Len())
	for i := 0; i < h.storage.Len(); i++ {
		s.Append(h.storage.At(i))
	}
	return &Heap[T]{storage: s, less: h.less}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.storage.Len()
}

// Empty reports whether the heap contains no elements.
func (h *Heap[T]) Empty() bool {
	return h.storage.Len() == 0
}

// Top returns the element at the top of the heap without removing it.
// It returns ErrEmpty when the heap is empty.
func (h *Heap[T]) Top() (T, error) {
	if h.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return h.storage.At(0), nil
}

// Push inserts v, growing storage by one and restoring the heap property.
// The element is appended at the end, then percolateDown runs at each
// ancestor position in turn, halving the heap index, until a pass makes no
// swap or the root has been fixed.
func (h *Heap[T]) Push(v T) {
	h.storage.Append(v)
	for i := h.storage.Len() / 2; i > 0 && h.percolateDown(i); i /= 2 {
	}
}

// Pop removes the top element. Popping an empty heap is a no-op. The top
// is swapped with the last element, the last slot is discarded, and the
// displaced element percolates down from the root.
func (h *Heap[T]) Pop() {
	if h.Empty() {
		return
	}
	h.storage.Swap(0, h.storage.Len()-1)
	h.storage.RemoveLast()
	h.percolateDown(1)
}

// heapify imposes the heap property on arbitrarily ordered storage by
// running percolateDown at every parent position, from the last parent up
// to the root. Leaves need no fixing, so this is O(n) overall.
func (h *Heap[T]) heapify() {
	for i := h.storage.Len() / 2; i >= 1; i-- {
		h.percolateDown(i)
	}
}

// percolateDown restores the heap property in the subtree rooted at the
// given position, reporting whether anything moved. Positions are 1-based
// heap indices mapped onto 0-based storage: the children of pos are 2*pos
// and 2*pos+1, and storage is read at pos-1. Existence checks compare
// child indices against the 1-based size.
func (h *Heap[T]) percolateDown(pos int) bool {
	n := h.storage.Len()
	left := pos * 2
	right := left + 1

	// The stronger child: right only beats left when it exists and left
	// ranks below it.
	child := left
	if right <= n && h.less(h.storage.At(left-1), h.storage.At(right-1)) {
		child = right
	}

	if child <= n && h.less(h.storage.At(pos-1), h.storage.At(child-1)) {
		h.storage.Swap(pos-1, child-1)
		h.percolateDown(child)
		return true
	}
	return false
}

// Swap exchanges the full state of two heaps, storage and ordering both,
// in constant time.
func Swap[T any](a, b *Heap[T]) {
	a.storage, b.storage = b.storage, a.storage
	a.less, b.less = b.less, a.less
}
