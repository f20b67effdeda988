// File: adapters/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import "github.com/momentics/smallvec/vec"

// Queue is a FIFO discipline over an inline-first vector. Dequeue erases
// at the front, so a drained queue migrates its storage back inline and
// releases any heap buffer.
type Queue[T any] struct {
	v *vec.Vector[T]
}

// NewQueue returns an empty queue whose first staticCapacity elements
// live inline.
func NewQueue[T any](staticCapacity int, opts ...vec.Option[T]) *Queue[T] {
	return &Queue[T]{v: vec.New[T](staticCapacity, opts...)}
}

// Enqueue places val at the back of the queue.
func (q *Queue[T]) Enqueue(val T) error {
	return q.v.Append(val)
}

// Dequeue removes and returns the front element; ok is false when empty.
func (q *Queue[T]) Dequeue() (val T, ok bool) {
	if q.v.Empty() {
		return val, false
	}
	val = q.v.Get(0)
	q.v.Erase(0)
	return val, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (val T, ok bool) {
	if q.v.Empty() {
		return val, false
	}
	return q.v.Get(0), true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.v.Len() }

// Cap returns the capacity of the backing buffer.
func (q *Queue[T]) Cap() int { return q.v.Cap() }
