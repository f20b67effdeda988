// File: alloc/recycle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Recycling allocator: released buffers are retained in bounded per-class
// free lists and handed back to later allocations of a fitting size.
// Buffers are carved with capacity rounded up to a power-of-two class and
// resliced to the exact requested length, so containers observing len(buf)
// still see the capacity they asked for.

package alloc

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/momentics/smallvec/api"
)

// Default number of buffers retained per size class.
const defaultRetainPerClass = 64

// Ensure compile-time interface compliance.
var _ api.Allocator[any] = (*Recycling[any])(nil)

// Recycling keeps freed buffers for reuse, grouped by power-of-two
// capacity class.
type Recycling[T any] struct {
	mu      sync.Mutex
	classes map[int]chan []T
	retain  int

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	reuses     atomic.Int64
}

// NewRecycling returns a recycling allocator with default retention.
func NewRecycling[T any]() *Recycling[T] {
	return &Recycling[T]{
		classes: make(map[int]chan []T),
		retain:  defaultRetainPerClass,
	}
}

// class returns the free list for a capacity class, lazily creating it.
func (r *Recycling[T]) class(c int) chan []T {
	r.mu.Lock()
	ch, ok := r.classes[c]
	if !ok {
		ch = make(chan []T, r.retain)
		r.classes[c] = ch
	}
	r.mu.Unlock()
	return ch
}

// Alloc returns a buffer of exactly n elements, reusing a retained buffer
// of the right class when one is available.
func (r *Recycling[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("alloc %d elements: %w", n, api.ErrInvalidArgument)
	}
	r.totalAlloc.Add(1)
	if n == 0 {
		return []T{}, nil
	}
	c := ceilPow2(n)
	select {
	case buf := <-r.class(c):
		r.reuses.Add(1)
		return buf[:n], nil
	default:
		return make([]T, n, c), nil
	}
}

// Free retains the buffer for reuse, or drops it when the class list is
// full. Retained buffers are cleared so they do not pin elements.
func (r *Recycling[T]) Free(buf []T) {
	if cap(buf) == 0 {
		return
	}
	r.totalFree.Add(1)
	full := buf[:cap(buf)]
	clear(full)
	select {
	case r.class(cap(buf)) <- full:
	default:
	}
}

// Stats returns allocation counters.
func (r *Recycling[T]) Stats() api.AllocStats {
	a, f := r.totalAlloc.Load(), r.totalFree.Load()
	return api.AllocStats{TotalAlloc: a, TotalFree: f, InUse: a - f}
}

// Reuses returns how many allocations were served from a free list.
func (r *Recycling[T]) Reuses() int64 {
	return r.reuses.Load()
}

// ceilPow2 rounds n up to the next power of two.
func ceilPow2(n int) int {
	if n < 2 {
		return 1
	}
	v := uint64(n - 1)
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return int(v + 1)
}
