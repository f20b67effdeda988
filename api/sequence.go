// File: api/sequence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core contracts of the smallvec library: the read side of a contiguous
// sequence, and the allocator every heap buffer is acquired through.

package api

import "iter"

// Sequence is the read-side contract of a contiguous container.
type Sequence[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Cap returns the number of slots in the active buffer.
	Cap() int
	// Empty reports whether the sequence holds no elements.
	Empty() bool
	// At returns the element at index i, or ErrOutOfRange.
	At(i int) (T, error)
	// Iter yields the elements of [0, Len()) in order.
	Iter() iter.Seq[T]
}

// Allocator acquires and releases backing buffers for a container.
// Implementations decide where the memory comes from (Go heap, free list,
// mapped pages); the container only relies on len(buf) == n on success.
type Allocator[T any] interface {
	// Alloc returns a buffer of exactly n elements.
	// On failure the error wraps ErrResourceExhausted or ErrInvalidArgument.
	Alloc(n int) ([]T, error)

	// Free returns a buffer previously obtained from Alloc.
	// The buffer must not be used afterwards.
	Free(buf []T)

	// Stats exposes allocation accounting for observability.
	Stats() AllocStats
}

// AllocStats aggregates buffer acquisition/release counters.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
