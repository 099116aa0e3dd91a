// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package handles

import (
	"sync"
	"testing"

	"github.com/gogpu/nativegfx/com"
)

type testObject struct {
	com.Object
	destroyed int
}

func newTestObject() *testObject {
	o := &testObject{}
	o.Init(o, nil, func() { o.destroyed++ })
	o.AddRef()
	return o
}

func TestRegisterAndLookup(t *testing.T) {
	tbl := New()
	o := newTestObject()

	h := tbl.Register(o)
	if h == 0 {
		t.Fatal("Register() returned 0")
	}
	if again := tbl.Register(o); again != h {
		t.Errorf("Register() twice = %d, want %d", again, h)
	}

	got, ok := tbl.Lookup(h)
	if !ok || got != com.Unknown(o) {
		t.Errorf("Lookup(%d) = %v, %v; want registered object", h, got, ok)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestRegisterNil(t *testing.T) {
	tbl := New()
	if h := tbl.Register(nil); h != 0 {
		t.Errorf("Register(nil) = %d, want 0", h)
	}
	var typedNil *testObject
	if h := tbl.Register(typedNil); h != 0 {
		t.Errorf("Register(typed nil) = %d, want 0", h)
	}
}

func TestLookupUnknown(t *testing.T) {
	tbl := New()
	if _, ok := tbl.Lookup(42); ok {
		t.Error("Lookup(42) on empty table should fail")
	}
	if _, ok := tbl.AddRef(42); ok {
		t.Error("AddRef(42) on empty table should fail")
	}
	if _, ok := tbl.Release(42); ok {
		t.Error("Release(42) on empty table should fail")
	}
}

func TestReleaseRemovesHandleAtZero(t *testing.T) {
	tbl := New()
	o := newTestObject()
	h := tbl.Register(o)

	if n, ok := tbl.AddRef(h); !ok || n != 2 {
		t.Fatalf("AddRef() = %d, %v; want 2, true", n, ok)
	}
	if n, _ := tbl.Release(h); n != 1 {
		t.Errorf("Release() = %d, want 1", n)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d after partial release, want 1", tbl.Len())
	}
	if n, _ := tbl.Release(h); n != 0 {
		t.Errorf("Release() = %d, want 0", n)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d after final release, want 0", tbl.Len())
	}
	if o.destroyed != 1 {
		t.Errorf("destroyed = %d, want 1", o.destroyed)
	}
	if _, ok := tbl.Lookup(h); ok {
		t.Error("handle should be gone after final release")
	}
}

func TestConcurrentRegister(t *testing.T) {
	tbl := New()
	objs := make([]*testObject, 64)
	for i := range objs {
		objs[i] = newTestObject()
	}

	var wg sync.WaitGroup
	ids := make([]uintptr, len(objs))
	for i := range objs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = tbl.Register(objs[i])
		}(i)
	}
	wg.Wait()

	seen := make(map[uintptr]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate handle %d", id)
		}
		seen[id] = true
	}
	for _, id := range ids {
		tbl.Release(id)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tbl.Len())
	}
}
