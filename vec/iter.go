// File: vec/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

import "iter"

// Iter yields the elements of [0, Len()) in order.
// The sequence is valid until the next mutating operation.
func (v *Vector[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// All yields index/element pairs over [0, Len()).
// The sequence is valid until the next mutating operation.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
