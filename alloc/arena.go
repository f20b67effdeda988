// File: alloc/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Page-granular arena allocator for byte elements. Regions are acquired
// from the OS in whole pages (anonymous mappings on Linux, heap slices
// elsewhere) and resliced to the requested length, so the container still
// observes exact capacities while releases return whole pages.

package alloc

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/momentics/smallvec/api"
)

// Ensure compile-time interface compliance.
var _ api.Allocator[byte] = (*Arena)(nil)

// mapMemory is the platform region mapper; a variable so tests can
// exercise the failure path.
var mapMemory = mapRegion

// Arena allocates byte buffers backed by page-granular OS regions.
type Arena struct {
	pageSize   int
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewArena returns an arena using the system page size.
func NewArena() *Arena {
	return &Arena{pageSize: os.Getpagesize()}
}

// Alloc returns a buffer of exactly n bytes carved from a fresh region.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("alloc %d bytes: %w", n, api.ErrInvalidArgument)
	}
	if n == 0 {
		return []byte{}, nil
	}
	region, err := mapMemory(a.pageCeil(n))
	if err != nil {
		return nil, fmt.Errorf("map %d bytes: %v: %w", a.pageCeil(n), err, api.ErrResourceExhausted)
	}
	a.totalAlloc.Add(1)
	return region[:n], nil
}

// Free returns the whole underlying region to the OS.
// buf must originate from Alloc on the same arena.
func (a *Arena) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	unmapRegion(buf[:cap(buf)])
	a.totalFree.Add(1)
}

// Stats returns allocation counters.
func (a *Arena) Stats() api.AllocStats {
	al, f := a.totalAlloc.Load(), a.totalFree.Load()
	return api.AllocStats{TotalAlloc: al, TotalFree: f, InUse: al - f}
}

// PageSize returns the region granularity in bytes.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// pageCeil rounds n up to a whole number of pages.
func (a *Arena) pageCeil(n int) int {
	return (n + a.pageSize - 1) / a.pageSize * a.pageSize
}
