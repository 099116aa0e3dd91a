package com

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// Unknown is the base contract of every object crossing the boundary.
//
// Implementations must be safe for concurrent AddRef and Release from
// multiple owners.
type Unknown interface {
	// AddRef registers a new ownership claim and returns the new count.
	AddRef() uint32

	// Release drops one claim and returns the new count. The object is
	// destroyed when the count reaches zero; it must not be used after
	// the caller's last Release.
	Release() uint32

	// QueryInterface returns the object narrowed to the capability named
	// by iid, carrying one new claim. It returns ErrNoInterface and leaves
	// the count unchanged if the capability is not implemented.
	QueryInterface(iid IID) (Unknown, error)
}

// Object lifecycle states.
const (
	stateUninitialized uint32 = iota
	stateLive
	stateDestroyed
)

// liveObjects counts initialized objects that have not been destroyed.
var liveObjects atomic.Int64

// LiveObjects returns the number of objects initialized and not yet
// destroyed in this process. Useful for leak checks in tests.
func LiveObjects() int64 {
	return liveObjects.Load()
}

// Object implements Unknown for embedding types.
//
// The zero value is not usable; call Init from the embedding type's
// constructor. The count starts at zero.
type Object struct {
	refs    atomic.Int32
	state   atomic.Uint32
	self    Unknown
	table   *Table
	destroy func()
}

// Init binds the object to its outer value, its capability table and an
// optional destructor. destroy runs exactly once, synchronously, inside
// the Release call that drops the last claim.
func (o *Object) Init(self Unknown, table *Table, destroy func()) {
	if self == nil {
		panic("com: Init with nil self")
	}
	if table == nil {
		table = emptyTable
	}
	if !o.state.CompareAndSwap(stateUninitialized, stateLive) {
		panic("com: object initialized twice")
	}
	o.self = self
	o.table = table
	o.destroy = destroy
	liveObjects.Add(1)
}

// AddRef implements Unknown.
func (o *Object) AddRef() uint32 {
	if o.state.Load() != stateLive {
		panic("com: AddRef on object that is not live")
	}
	return uint32(o.refs.Add(1))
}

// Release implements Unknown.
func (o *Object) Release() uint32 {
	n := o.refs.Add(-1)
	if n < 0 {
		panic("com: Release without matching claim")
	}
	if n > 0 {
		return uint32(n)
	}
	if o.state.CompareAndSwap(stateLive, stateDestroyed) {
		liveObjects.Add(-1)
		if o.destroy != nil {
			o.destroy()
		}
	}
	return 0
}

// QueryInterface implements Unknown.
func (o *Object) QueryInterface(iid IID) (Unknown, error) {
	if o.state.Load() != stateLive {
		return nil, ErrPointer
	}
	var narrowed Unknown
	if iid == IIDUnknown {
		narrowed = o.self
	} else {
		narrow, ok := o.table.lookup(iid)
		if !ok {
			return nil, ErrNoInterface
		}
		narrowed = narrow(o.self)
		if narrowed == nil {
			return nil, ErrNoInterface
		}
	}
	narrowed.AddRef()
	return narrowed, nil
}

// RefCount returns the current number of claims.
// The value is a snapshot; it is intended for diagnostics and tests.
func (o *Object) RefCount() uint32 {
	n := o.refs.Load()
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// Destroyed reports whether the last claim has been released.
func (o *Object) Destroyed() bool {
	return o.state.Load() == stateDestroyed
}

// Query performs QueryInterface on u and narrows the result to T.
// On success the returned value carries one claim owned by the caller.
// If the returned object does not implement T, the claim is released and
// ErrNoInterface is returned.
func Query[T any](u Unknown, iid IID) (T, error) {
	var zero T
	if IsNil(u) {
		return zero, ErrPointer
	}
	got, err := u.QueryInterface(iid)
	if err != nil {
		return zero, err
	}
	t, ok := got.(T)
	if !ok {
		got.Release()
		return zero, fmt.Errorf("%w: %s does not narrow to %v", ErrNoInterface, iid, reflect.TypeFor[T]())
	}
	return t, nil
}

// Supports reports whether u implements the capability iid without
// leaving a claim behind.
func Supports(u Unknown, iid IID) bool {
	if IsNil(u) {
		return false
	}
	got, err := u.QueryInterface(iid)
	if err != nil {
		return false
	}
	got.Release()
	return true
}

// IsNil reports whether u is nil or an interface holding a nil pointer.
func IsNil(u Unknown) bool {
	if u == nil {
		return true
	}
	v := reflect.ValueOf(u)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// SafeRelease releases u if it is non-nil.
func SafeRelease(u Unknown) {
	if !IsNil(u) {
		u.Release()
	}
}
