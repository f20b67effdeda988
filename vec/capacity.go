// File: vec/capacity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

// Growth ratio applied to the post-insertion size once the data no
// longer fits in the static region.
const (
	growthNum = 3
	growthDen = 2
)

// grow returns the capacity the active buffer must have after inserting
// k more elements: the static capacity while everything still fits
// inline, otherwise floor(1.5 * (size+k)). Integer math computes the
// floor exactly.
func (v *Vector[T]) grow(k int) int {
	n := v.size + k
	if n <= len(v.static) {
		return len(v.static)
	}
	return n * growthNum / growthDen
}
