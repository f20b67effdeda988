// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

// Get returns an available instance from the pool.
func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

// Put returns an instance for reuse.
func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}
