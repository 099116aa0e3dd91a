// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(darwin || freebsd || linux || netbsd || windows)

package procaddr

import "github.com/gogpu/nativegfx/interop"

// CFunc is a C function pointer. Calling it is unsupported here.
type CFunc uintptr

// FromCFunc wraps fn as a resolver that resolves nothing.
func FromCFunc(fn uintptr) interop.ProcAddressResolver {
	return CFunc(fn)
}

// GetProcAddress always returns 0.
func (f CFunc) GetProcAddress(name string) uintptr { return 0 }
