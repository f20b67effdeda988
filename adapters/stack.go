// File: adapters/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package adapters provides glue structures that use the vector as
// backing storage for common access disciplines.

package adapters

import "github.com/momentics/smallvec/vec"

// Stack is a LIFO discipline over an inline-first vector. Small stacks
// never touch the heap.
type Stack[T any] struct {
	v *vec.Vector[T]
}

// NewStack returns an empty stack whose first staticCapacity elements
// live inline.
func NewStack[T any](staticCapacity int, opts ...vec.Option[T]) *Stack[T] {
	return &Stack[T]{v: vec.New[T](staticCapacity, opts...)}
}

// Push places val on top of the stack.
func (s *Stack[T]) Push(val T) error {
	return s.v.Append(val)
}

// Pop removes and returns the top element; ok is false when empty.
func (s *Stack[T]) Pop() (T, bool) {
	return s.v.Pop()
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (val T, ok bool) {
	if s.v.Empty() {
		return val, false
	}
	return s.v.Get(s.v.Len() - 1), true
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.v.Len() }

// Cap returns the capacity of the backing buffer.
func (s *Stack[T]) Cap() int { return s.v.Cap() }
