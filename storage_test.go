package heap_test

import (
	"testing"

	"github.com/davidvella/heap"
	"github.com/stretchr/testify/assert"
)

func TestSliceStorage(t *testing.T) {
	var s heap.Storage[int] = heap.NewSliceStorage(1, 2, 3)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.At(1))

	s.Set(1, 20)
	assert.Equal(t, 20, s.At(1))

	s.Append(4)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.At(3))

	s.Swap(0, 3)
	assert.Equal(t, 4, s.At(0))
	assert.Equal(t, 1, s.At(3))

	s.RemoveLast()
	assert.Equal(t, 3, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())

	// Reserve affects capacity only.
	s.Reserve(64)
	assert.Equal(t, 0, s.Len())
	s.Append(7)
	assert.Equal(t, 7, s.At(0))
}
