package com

import "fmt"

// Narrower converts an object's outer value into the capability value
// registered for one IID. It is called with the value passed to
// Object.Init and must not return a different object.
type Narrower func(self Unknown) Unknown

// TableEntry pairs an interface identifier with its narrowing function.
type TableEntry struct {
	IID    IID
	Narrow Narrower
}

// Entry returns a TableEntry. A nil narrow returns the object unchanged.
func Entry(iid IID, narrow Narrower) TableEntry {
	if narrow == nil {
		narrow = identity
	}
	return TableEntry{IID: iid, Narrow: narrow}
}

func identity(u Unknown) Unknown { return u }

// Table is the per-type capability lookup: the explicit list of IIDs a
// concrete type answers for. Tables are immutable after construction and
// are meant to be package-level variables shared by every instance.
type Table struct {
	entries map[IID]Narrower
	order   []IID
}

var emptyTable = NewTable()

// NewTable builds a Table. It panics on zero or duplicate identifiers,
// which are programming errors in a type's declaration.
func NewTable(entries ...TableEntry) *Table {
	t := &Table{
		entries: make(map[IID]Narrower, len(entries)),
		order:   make([]IID, 0, len(entries)),
	}
	for _, e := range entries {
		if e.IID.IsZero() {
			panic("com: zero IID in table")
		}
		if e.IID == IIDUnknown {
			panic("com: IIDUnknown is implicit and must not be listed")
		}
		if _, dup := t.entries[e.IID]; dup {
			panic(fmt.Sprintf("com: duplicate IID %s in table", e.IID))
		}
		narrow := e.Narrow
		if narrow == nil {
			narrow = identity
		}
		t.entries[e.IID] = narrow
		t.order = append(t.order, e.IID)
	}
	return t
}

func (t *Table) lookup(iid IID) (Narrower, bool) {
	n, ok := t.entries[iid]
	return n, ok
}

// Supports reports whether the table lists iid. IIDUnknown is always
// supported.
func (t *Table) Supports(iid IID) bool {
	if iid == IIDUnknown {
		return true
	}
	_, ok := t.entries[iid]
	return ok
}

// IIDs returns the listed identifiers in declaration order, excluding
// the implicit IIDUnknown.
func (t *Table) IIDs() []IID {
	out := make([]IID, len(t.order))
	copy(out, t.order)
	return out
}
