package heap

import (
	"golang.org/x/exp/constraints"
)

// NewOrdered creates an empty max-heap over the natural < ordering.
func NewOrdered[T constraints.Ordered]() *Heap[T] {
	return New(Less[T]())
}

// Less returns the natural < comparator. Used as a heap ordering it keeps
// the maximum at the top.
func Less[T constraints.Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return a < b }
}

// Greater returns the inverted comparator. Used as a heap ordering it
// keeps the minimum at the top.
func Greater[T constraints.Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return a > b }
}
