// Package com provides the reference-counted object model shared by every
// object that crosses the nativegfx boundary.
//
// Each object exposes three operations:
//
//   - AddRef registers a new ownership claim and returns the new count.
//   - Release drops a claim. The object is destroyed synchronously when the
//     last claim is released.
//   - QueryInterface narrows the object to the capability named by an
//     interface identifier (IID). A successful query returns a new claim.
//
// Capability discovery never relies on Go type switches across the
// boundary. Every concrete type declares an explicit [Table] mapping IIDs to
// narrowing functions, and [Object] answers queries from that table only.
//
// # Embedding
//
// Concrete types embed [Object] and call [Object.Init] from their
// constructor:
//
//	var fooTable = com.NewTable(
//		com.Entry(IIDFoo, func(u com.Unknown) com.Unknown { return u.(Foo) }),
//	)
//
//	type foo struct {
//		com.Object
//	}
//
//	func newFoo() *foo {
//		f := &foo{}
//		f.Init(f, fooTable, f.destroy)
//		return f
//	}
//
// A freshly initialized object has a count of zero; the creator registers
// the first claim with AddRef before handing it out.
//
// # Status codes
//
// Failures are reported as Go errors. [StatusOf] maps an error onto the
// numeric HRESULT convention used at the C boundary: zero is success,
// [StatusInvalidArg] marks null or mismatched inputs.
package com
