//go:build !linux

// File: alloc/arena_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback region mapping for platforms without the mmap path.

package alloc

func mapRegion(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func unmapRegion(buf []byte) {}
