// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Backing-buffer allocators for the smallvec container.
// Every heap acquisition and release in the container funnels through
// api.Allocator, so the storage source can be swapped without touching
// the container logic: plain Go heap, per-size-class recycling free
// lists, or page-granular mapped regions for byte elements.
// See allocator.go, recycle.go, arena.go for implementation details.
package alloc
