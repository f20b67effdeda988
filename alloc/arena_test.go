// File: alloc/arena_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc_test

import (
	"errors"
	"testing"

	"github.com/momentics/smallvec/alloc"
	"github.com/momentics/smallvec/api"
	"github.com/momentics/smallvec/vec"
)

func TestArenaAllocFree(t *testing.T) {
	a := alloc.NewArena()
	buf, err := a.Alloc(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 10 {
		t.Fatalf("len: got %d, want 10", len(buf))
	}
	// Regions are page-granular underneath.
	if cap(buf)%a.PageSize() != 0 {
		t.Fatalf("cap %d not page-aligned (page %d)", cap(buf), a.PageSize())
	}
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		if buf[i] != byte(i) {
			t.Fatalf("readback at %d: got %d", i, buf[i])
		}
	}
	a.Free(buf)
	if s := a.Stats(); s.InUse != 0 || s.TotalAlloc != 1 || s.TotalFree != 1 {
		t.Fatalf("stats: %+v", s)
	}
}

func TestArenaEdgeSizes(t *testing.T) {
	a := alloc.NewArena()
	if _, err := a.Alloc(-1); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("negative alloc: got %v", err)
	}
	zero, err := a.Alloc(0)
	if err != nil || len(zero) != 0 {
		t.Fatalf("zero alloc: %v len=%d", err, len(zero))
	}
	a.Free(zero) // must be a no-op
	if s := a.Stats(); s.TotalAlloc != 0 || s.TotalFree != 0 {
		t.Fatalf("zero alloc counted: %+v", s)
	}
}

// A byte vector running entirely on mapped regions.
func TestVectorOnArena(t *testing.T) {
	a := alloc.NewArena()
	v := vec.New[byte](8, vec.WithAllocator[byte](a))
	for i := 0; i < 100; i++ {
		if err := v.Append(byte(i)); err != nil {
			t.Fatal(err)
		}
	}
	if v.Cap() <= 8 {
		t.Fatal("expected heap-active vector")
	}
	for i := 0; i < 100; i++ {
		if v.Get(i) != byte(i) {
			t.Fatalf("elem %d: got %d", i, v.Get(i))
		}
	}
	v.EraseRange(0, 95)
	if v.Cap() != 8 || v.Len() != 5 {
		t.Fatalf("after shrink: len=%d cap=%d, want 5/8", v.Len(), v.Cap())
	}
	if v.Get(0) != 95 {
		t.Fatalf("first surviving elem: got %d, want 95", v.Get(0))
	}
	if s := a.Stats(); s.InUse != 0 {
		t.Fatalf("mapped regions leaked: %+v", s)
	}
}
