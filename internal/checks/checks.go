// File: internal/checks/checks.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared domain validation for positions and ranges expressed as offsets
// into a sequence of a given size. Contract violations are programmer
// errors and panic; they are never converted into error values.

package checks

import "fmt"

// Offset panics unless 0 <= pos <= size.
// pos == size addresses the one-past-the-end insertion point.
func Offset(pos, size int) {
	if pos < 0 || pos > size {
		panic(fmt.Sprintf("smallvec: position %d out of range [0, %d]", pos, size))
	}
}

// Count panics when an element count is negative.
func Count(k int) {
	if k < 0 {
		panic(fmt.Sprintf("smallvec: negative element count %d", k))
	}
}

// Range panics unless 0 <= first <= last <= size.
func Range(first, last, size int) {
	if first < 0 || first > last || last > size {
		panic(fmt.Sprintf("smallvec: range [%d, %d) invalid for size %d", first, last, size))
	}
}

// Index reports whether i addresses a live element of a sequence of the
// given size. Used by the checked accessors.
func Index(i, size int) bool {
	return i >= 0 && i < size
}
