// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package handles maps reference-counted objects to opaque integer handles
// that can be stored in C memory.
//
// Go pointers cannot be handed to C code, so objects exported through the
// C entry points are registered here and referred to by handle. A handle
// stays valid while the object has claims; it is dropped by the Release
// that destroys the object.
package handles

import (
	"sync"

	"github.com/gogpu/nativegfx/com"
)

// Table is a thread-safe handle table.
type Table struct {
	mu      sync.RWMutex
	objects map[uintptr]com.Unknown
	ids     map[com.Unknown]uintptr
	next    uintptr
}

// Default is the process-wide table used by the C entry points.
var Default = New()

// New creates an empty table.
func New() *Table {
	return &Table{
		objects: make(map[uintptr]com.Unknown),
		ids:     make(map[com.Unknown]uintptr),
		next:    1,
	}
}

// Register returns the handle for u, allocating one on first use.
// The table does not add a claim: the caller's claim travels with the
// handle.
func (t *Table) Register(u com.Unknown) uintptr {
	if com.IsNil(u) {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[u]; ok {
		return id
	}
	id := t.next
	t.next++
	t.objects[id] = u
	t.ids[u] = id
	return id
}

// Lookup returns the object behind h.
func (t *Table) Lookup(h uintptr) (com.Unknown, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	u, ok := t.objects[h]
	return u, ok
}

// AddRef adds a claim to the object behind h and returns the new count.
func (t *Table) AddRef(h uintptr) (uint32, bool) {
	u, ok := t.Lookup(h)
	if !ok {
		return 0, false
	}
	return u.AddRef(), true
}

// Release drops a claim on the object behind h. When the count reaches
// zero the handle is removed.
//
// The object's destructor runs without the table lock held.
func (t *Table) Release(h uintptr) (uint32, bool) {
	u, ok := t.Lookup(h)
	if !ok {
		return 0, false
	}
	n := u.Release()
	if n == 0 {
		t.mu.Lock()
		if t.objects[h] == u {
			delete(t.objects, h)
			delete(t.ids, u)
		}
		t.mu.Unlock()
	}
	return n, true
}

// Len returns the number of registered handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.objects)
}
