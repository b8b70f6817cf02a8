package heap

// Storage is the sequence contract a Heap maintains its elements in: a
// resizable, zero-based, random-access sequence with O(1) size and index
// operations and amortized O(1) append and remove-last. The Heap takes
// exclusive ownership of any Storage handed to it.
type Storage[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i. i must be in [0, Len()).
	At(i int) T
	// Set replaces the element at index i. i must be in [0, Len()).
	Set(i int, v T)
	// Append adds v after the last element, growing as needed.
	Append(v T)
	// RemoveLast discards the last element. Len must be non-zero.
	RemoveLast()
	// Reserve ensures capacity for at least n elements without growing Len.
	Reserve(n int)
	// Clear removes all elements.
	Clear()
	// Swap exchanges the elements at indices i and j.
	Swap(i, j int)
}

// SliceStorage is the default Storage implementation, a thin wrapper over
// a slice. Growth follows the runtime's append policy.
type SliceStorage[T any] struct {
	items []T
}

// NewSliceStorage creates slice-backed storage holding items in the order
// given.
func NewSliceStorage[T any](items ...T) *SliceStorage[T] {
	return &SliceStorage[T]{items: items}
}

func (s *SliceStorage[T]) Len() int {
	return len(s.items)
}

func (s *SliceStorage[T]) At(i int) T {
	return s.items[i]
}

func (s *SliceStorage[T]) Set(i int, v T) {
	s.items[i] = v
}

func (s *SliceStorage[T]) Append(v T) {
	s.items = append(s.items, v)
}

func (s *SliceStorage[T]) RemoveLast() {
	s.items = s.items[:len(s.items)-1]
}

func (s *SliceStorage[T]) Reserve(n int) {
	if cap(s.items) >= n {
		return
	}
	grown := make([]T, len(s.items), n)
	copy(grown, s.items)
	s.items = grown
}

func (s *SliceStorage[T]) Clear() {
	s.items = s.items[:0]
}

func (s *SliceStorage[T]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
}
