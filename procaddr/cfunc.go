// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin || freebsd || linux || netbsd || windows

package procaddr

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/nativegfx/interop"
)

// CFunc calls a C function pointer of type void *(*)(const char *).
type CFunc uintptr

// FromCFunc wraps fn as a resolver. A zero fn resolves nothing.
func FromCFunc(fn uintptr) interop.ProcAddressResolver {
	return CFunc(fn)
}

// GetProcAddress implements interop.ProcAddressResolver.
func (f CFunc) GetProcAddress(name string) uintptr {
	if f == 0 || name == "" {
		return 0
	}
	cname := append([]byte(name), 0)
	r1, _, _ := purego.SyscallN(uintptr(f), uintptr(unsafe.Pointer(&cname[0])))
	runtime.KeepAlive(cname)
	return r1
}
