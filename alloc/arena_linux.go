//go:build linux

// File: alloc/arena_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux region mapping via anonymous private mmap.

package alloc

import "golang.org/x/sys/unix"

func mapRegion(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmapRegion(buf []byte) {
	_ = unix.Munmap(buf)
}
