// Package heap implements a generic binary-heap priority queue that keeps
// the maximum element (under a configurable ordering) available in constant
// time, with logarithmic insertion and removal. The heap is generic over
// the element type, the underlying storage sequence, and the ordering
// predicate.
//
// The ordering is a strict-weak-order "less than": the element no other
// element is less than sits at the top. Supplying the natural < comparator
// (or using NewOrdered) produces a max-heap; supplying > (see Greater)
// inverts it into a min-heap.
//
// Key features:
//   - Generic implementation supporting any element type
//   - Pluggable storage through the Storage interface, with a slice-backed
//     default
//   - O(log n) push and pop, O(1) top
//   - O(n) bulk construction from an existing sequence via bottom-up
//     heapify
//   - Constant-time exchange of two heaps' full state via Swap
//
// Basic usage:
//
//	// Create a max-heap over ints
//	h := heap.NewOrdered[int]()
//
//	// Add items
//	h.Push(5)
//	h.Push(3)
//	h.Push(8)
//
//	// Read the maximum
//	top, err := h.Top()
//	if err == nil {
//	    fmt.Printf("max: %d\n", top) // max: 8
//	}
//
//	// Remove items in non-increasing order
//	for !h.Empty() {
//	    v, _ := h.Top()
//	    h.Pop()
//	    fmt.Println(v)
//	}
//
// Implementation Details:
// The heap is laid out in its storage sequence so that the 1-based heap
// position i has children at 2i and 2i+1, stored at zero-based indices
// i-1, 2i-1 and 2i. Push appends at the end and repairs upward by running
// the percolate-down routine at successive ancestor positions until a pass
// makes no swap. Pop swaps the top with the last element, shrinks the
// sequence by one, and percolates the displaced element down from the
// root. Bulk construction runs percolate-down at every parent position
// from size/2 down to the root, which imposes the heap property in linear
// time.
//
// Top on an empty heap returns ErrEmpty; Pop on an empty heap is a no-op.
// A Heap is not safe for concurrent use; callers must serialize access or
// use one heap per goroutine.
package heap
