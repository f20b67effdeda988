// File: vec/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

import "slices"

// Equal reports whether a and b hold the same elements in the same
// order. Capacity and storage location do not participate: two vectors
// reaching the same element sequence through different operation
// histories compare equal. Inequality is the negation of Equal.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}
