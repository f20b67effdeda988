// File: vec/insert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fused insertion path. Reallocation and suffix shifting happen in one
// routine so that when both are needed, every surviving element is still
// copied exactly once. A two-step reallocate-then-shift would copy the
// suffix twice.

package vec

import "github.com/momentics/smallvec/internal/checks"

// pushAt opens a gap of k slots before pos and fills it.
//
// When growth is required the new buffer is acquired first and only the
// prefix [0, pos) is copied into it; the suffix is then shifted directly
// into its final position, reading from whichever buffer still holds it.
// A superseded heap buffer is released only after that read. If the
// allocation fails, the vector is left untouched.
func (v *Vector[T]) pushAt(pos, k int, fill func(dst []T)) error {
	checks.Offset(pos, v.size)
	checks.Count(k)
	if k == 0 {
		return nil
	}
	src := v.data
	var retired []T
	if v.size+k > len(v.data) {
		buf, err := v.alloc.Alloc(v.grow(k))
		if err != nil {
			return err
		}
		copy(buf, src[:pos])
		retired = v.heapBuffer()
		v.data = buf
	}
	// copy has memmove semantics, so the in-place shift is safe when
	// source and destination overlap.
	copy(v.data[pos+k:v.size+k], src[pos:v.size])
	fill(v.data[pos : pos+k])
	v.size += k
	if retired != nil {
		v.alloc.Free(retired)
	}
	return nil
}

// Insert places value before pos and returns the index of the inserted
// element. pos must be in [0, Len()].
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	err := v.pushAt(pos, 1, func(dst []T) { dst[0] = value })
	return pos, err
}

// InsertSlice places a copy of items before pos and returns the index of
// the first inserted element, or pos unchanged when items is empty.
func (v *Vector[T]) InsertSlice(pos int, items []T) (int, error) {
	err := v.pushAt(pos, len(items), func(dst []T) { copy(dst, items) })
	return pos, err
}

// InsertRepeat places n copies of value before pos.
func (v *Vector[T]) InsertRepeat(pos, n int, value T) (int, error) {
	err := v.pushAt(pos, n, func(dst []T) {
		for i := range dst {
			dst[i] = value
		}
	})
	return pos, err
}

// Append places value at the end of the vector.
func (v *Vector[T]) Append(value T) error {
	return v.pushAt(v.size, 1, func(dst []T) { dst[0] = value })
}

// AppendSlice places a copy of items at the end of the vector.
func (v *Vector[T]) AppendSlice(items []T) error {
	return v.pushAt(v.size, len(items), func(dst []T) { copy(dst, items) })
}
