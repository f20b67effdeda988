// File: pool/vecpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package pool provides reuse of vector instances across request-scoped
// work. Vectors returned to the pool drop any heap buffer first, so the
// pool only ever retains the inline footprint.

package pool

import "github.com/momentics/smallvec/vec"

// VecPool hands out cleared vectors for transient use.
type VecPool[T any] struct {
	pool *SyncPool[*vec.Vector[T]]
}

// NewVecPool returns a pool producing vectors with the given inline
// capacity and options.
func NewVecPool[T any](staticCapacity int, opts ...vec.Option[T]) *VecPool[T] {
	return &VecPool[T]{
		pool: NewSyncPool(func() *vec.Vector[T] {
			return vec.New[T](staticCapacity, opts...)
		}),
	}
}

// Get returns an empty vector from the pool.
func (p *VecPool[T]) Get() *vec.Vector[T] {
	return p.pool.Get()
}

// Put releases the vector's heap buffer and returns it to the pool.
// The vector must not be used afterwards.
func (p *VecPool[T]) Put(v *vec.Vector[T]) {
	v.Release()
	p.pool.Put(v)
}
