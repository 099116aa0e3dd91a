// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package procaddr

import "github.com/gogpu/nativegfx/interop"

// Map resolves names from a fixed table.
type Map map[string]uintptr

// GetProcAddress implements interop.ProcAddressResolver.
func (m Map) GetProcAddress(name string) uintptr { return m[name] }

// Chain tries each resolver in order and returns the first non-zero
// address. Nil resolvers are skipped.
func Chain(resolvers ...interop.ProcAddressResolver) interop.ProcAddressResolver {
	return chain(resolvers)
}

type chain []interop.ProcAddressResolver

func (c chain) GetProcAddress(name string) uintptr {
	for _, r := range c {
		if r == nil {
			continue
		}
		if addr := r.GetProcAddress(name); addr != 0 {
			return addr
		}
	}
	return 0
}
