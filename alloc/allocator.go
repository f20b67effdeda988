// File: alloc/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Default Go-heap allocator. Free is a no-op: released buffers are left
// to the garbage collector, only the accounting is kept.

package alloc

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/smallvec/api"
)

// Ensure compile-time interface compliance.
var _ api.Allocator[any] = (*Heap[any])(nil)

// Heap allocates backing buffers straight from the Go heap.
type Heap[T any] struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewHeap returns a plain heap-backed allocator.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Alloc returns a zeroed buffer of exactly n elements.
func (h *Heap[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("alloc %d elements: %w", n, api.ErrInvalidArgument)
	}
	h.totalAlloc.Add(1)
	return make([]T, n), nil
}

// Free releases a buffer. The memory itself is reclaimed by the GC.
func (h *Heap[T]) Free(buf []T) {
	if buf == nil {
		return
	}
	h.totalFree.Add(1)
}

// Stats returns allocation counters.
func (h *Heap[T]) Stats() api.AllocStats {
	a, f := h.totalAlloc.Load(), h.totalFree.Load()
	return api.AllocStats{TotalAlloc: a, TotalFree: f, InUse: a - f}
}
