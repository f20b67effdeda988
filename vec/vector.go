// File: vec/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Container state, constructors, accessors and copy semantics.
//
// Exactly one storage region is active at a time. The tag is implicit:
// the static region is active iff len(data) <= len(static), since every
// heap capacity produced by the growth policy exceeds the static one.

package vec

import (
	"fmt"

	"github.com/momentics/smallvec/alloc"
	"github.com/momentics/smallvec/api"
	"github.com/momentics/smallvec/internal/checks"
)

// DefaultStaticCapacity is the inline capacity used by Default.
const DefaultStaticCapacity = 16

// Ensure compile-time interface compliance.
var _ api.Sequence[any] = (*Vector[any])(nil)

// Vector is a growable sequence that prefers its inline static region.
type Vector[T any] struct {
	static []T // inline region, allocated once, never released
	data   []T // active buffer; len(data) is the current capacity
	size   int
	alloc  api.Allocator[T]
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithAllocator routes heap-buffer acquisition through a custom allocator.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(v *Vector[T]) { v.alloc = a }
}

// New returns an empty vector whose inline region holds staticCapacity
// elements. staticCapacity must be non-negative.
func New[T any](staticCapacity int, opts ...Option[T]) *Vector[T] {
	if staticCapacity < 0 {
		panic(fmt.Sprintf("smallvec: negative static capacity %d", staticCapacity))
	}
	v := &Vector[T]{static: make([]T, staticCapacity)}
	for _, opt := range opts {
		opt(v)
	}
	if v.alloc == nil {
		v.alloc = alloc.NewHeap[T]()
	}
	v.data = v.static
	return v
}

// Default returns an empty vector with DefaultStaticCapacity.
func Default[T any](opts ...Option[T]) *Vector[T] {
	return New[T](DefaultStaticCapacity, opts...)
}

// From builds a vector from an existing slice, equivalent to New followed
// by a bulk insert of items at position 0.
func From[T any](items []T, staticCapacity int, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](staticCapacity, opts...)
	if _, err := v.InsertSlice(0, items); err != nil {
		return nil, err
	}
	return v, nil
}

// inline reports whether the static region is the active buffer.
func (v *Vector[T]) inline() bool {
	return len(v.data) <= len(v.static)
}

// heapBuffer returns the active heap buffer, or nil while inline.
func (v *Vector[T]) heapBuffer() []T {
	if v.inline() {
		return nil
	}
	return v.data
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots in the active buffer.
func (v *Vector[T]) Cap() int { return len(v.data) }

// StaticCap returns the capacity of the inline region.
func (v *Vector[T]) StaticCap() int { return len(v.static) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns the element at index i with bound checking.
func (v *Vector[T]) At(i int) (T, error) {
	if !checks.Index(i, v.size) {
		var zero T
		return zero, api.ErrOutOfRange
	}
	return v.data[i], nil
}

// SetAt stores val at index i with bound checking.
func (v *Vector[T]) SetAt(i int, val T) error {
	if !checks.Index(i, v.size) {
		return api.ErrOutOfRange
	}
	v.data[i] = val
	return nil
}

// Get returns the element at index i without bound checking.
// Behavior outside [0, Len()) is out of contract.
func (v *Vector[T]) Get(i int) T { return v.data[i] }

// Set stores val at index i without bound checking.
// Behavior outside [0, Len()) is out of contract.
func (v *Vector[T]) Set(i int, val T) { v.data[i] = val }

// Data returns the live window of the active buffer. The slice aliases
// the container's storage and is invalidated by any mutation that may
// reallocate or migrate.
func (v *Vector[T]) Data() []T { return v.data[:v.size] }

// Clone returns an independent deep copy sharing the same allocator.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := New[T](len(v.static), WithAllocator[T](v.alloc))
	if err := c.CopyFrom(v); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the contents of dst with a deep copy of src.
// Capacity is part of the copied state: a heap-active source yields a
// heap buffer of the same capacity in dst, never a recomputed one.
// Self-assignment is a no-op. The static capacities must match.
func (dst *Vector[T]) CopyFrom(src *Vector[T]) error {
	if dst == src {
		return nil
	}
	if len(dst.static) != len(src.static) {
		return fmt.Errorf("static capacity %d vs %d: %w",
			len(dst.static), len(src.static), api.ErrInvalidArgument)
	}
	var buf []T
	if !src.inline() {
		b, err := dst.alloc.Alloc(len(src.data))
		if err != nil {
			return err
		}
		buf = b
	}
	retired := dst.heapBuffer()
	if buf != nil {
		dst.data = buf
	} else {
		dst.data = dst.static
	}
	copy(dst.data, src.data[:src.size])
	dst.size = src.size
	if retired != nil {
		dst.alloc.Free(retired)
	}
	return nil
}

// Release returns any heap buffer to the allocator and resets the vector
// to the empty inline state. The vector remains usable afterwards.
func (v *Vector[T]) Release() {
	if retired := v.heapBuffer(); retired != nil {
		v.alloc.Free(retired)
	}
	v.data = v.static
	v.size = 0
}
