// File: vec/erase.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Erasure path, the mirror image of insertion: storage location is
// re-evaluated on every erase, so the data migrates back to the static
// region as soon as it fits there again.

package vec

import "github.com/momentics/smallvec/internal/checks"

// EraseRange removes the elements in [first, last) and returns first,
// the offset now holding what was previously at last. When the removal
// brings the size back under the static capacity, the data migrates to
// the inline region and the heap buffer is released after its suffix has
// been read out.
func (v *Vector[T]) EraseRange(first, last int) int {
	checks.Range(first, last, v.size)
	removed := last - first
	if removed == 0 {
		return first
	}
	src := v.data
	var retired []T
	if !v.inline() && v.size-removed <= len(v.static) {
		copy(v.static, src[:first])
		retired = v.data
		v.data = v.static
	}
	// Forward copy is safe: destination offset never exceeds source.
	copy(v.data[first:], src[last:v.size])
	v.size -= removed
	if retired != nil {
		v.alloc.Free(retired)
	}
	return first
}

// Erase removes the element at pos and returns pos.
func (v *Vector[T]) Erase(pos int) int {
	return v.EraseRange(pos, pos+1)
}

// Pop removes and returns the last element.
// ok is false when the vector is empty.
func (v *Vector[T]) Pop() (val T, ok bool) {
	if v.size == 0 {
		return val, false
	}
	val = v.data[v.size-1]
	v.EraseRange(v.size-1, v.size)
	return val, true
}

// Clear removes all elements. Equivalent to EraseRange(0, Len()), so a
// heap buffer is released and the inline region becomes active again.
func (v *Vector[T]) Clear() {
	v.EraseRange(0, v.size)
}
