package heap_test

import (
	"fmt"

	"github.com/davidvella/heap"
)

// ExampleNewOrdered demonstrates a max-heap over the natural ordering.
func ExampleNewOrdered() {
	h := heap.NewOrdered[int]()

	// Add some items
	h.Push(5)
	h.Push(3)
	h.Push(8)
	h.Push(1)

	// The top is always the current maximum
	top, _ := h.Top()
	fmt.Printf("max: %d\n", top)

	// Pop items in non-increasing order
	for !h.Empty() {
		v, _ := h.Top()
		h.Pop()
		fmt.Printf("%d ", v)
	}

	// Output:
	// max: 8
	// 8 5 3 1
}

// ExampleNew_minHeap shows how an inverted ordering turns the heap into a
// min-heap.
func ExampleNew_minHeap() {
	h := heap.New(heap.Greater[int]())

	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		h.Push(v)
	}

	for !h.Empty() {
		v, _ := h.Top()
		h.Pop()
		fmt.Printf("%d ", v)
	}

	// Output: 1 2 3 5 8 9
}

// ExampleNewFromStorage demonstrates bulk construction from an unordered
// sequence.
func ExampleNewFromStorage() {
	s := heap.NewSliceStorage(5, 3, 8, 1, 9, 2)
	h := heap.NewFromStorage[int](s, heap.Less[int]())

	top, _ := h.Top()
	fmt.Printf("max: %d size: %d\n", top, h.Len())

	// Output: max: 9 size: 6
}

// ExampleNew_custom shows a heap over a struct type with a custom ordering.
func ExampleNew_custom() {
	type task struct {
		name     string
		priority int
	}

	h := heap.New(func(a, b task) bool {
		return a.priority < b.priority
	})

	h.Push(task{name: "compact", priority: 2})
	h.Push(task{name: "flush", priority: 7})
	h.Push(task{name: "gc", priority: 4})

	for !h.Empty() {
		t, _ := h.Top()
		h.Pop()
		fmt.Printf("%s(%d) ", t.name, t.priority)
	}

	// Output: flush(7) gc(4) compact(2)
}

// ExampleSwap demonstrates exchanging the full state of two heaps.
func ExampleSwap() {
	a := heap.NewFromSlice([]int{10, 4}, heap.Less[int]())
	b := heap.NewFromSlice([]int{7}, heap.Less[int]())

	heap.Swap(a, b)

	topA, _ := a.Top()
	topB, _ := b.Top()
	fmt.Printf("a: top=%d size=%d\n", topA, a.Len())
	fmt.Printf("b: top=%d size=%d\n", topB, b.Len())

	// Output:
	// a: top=7 size=1
	// b: top=10 size=2
}
