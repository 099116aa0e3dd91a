// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(darwin || freebsd || linux || netbsd)

package procaddr

import "github.com/gogpu/nativegfx/interop"

// Library is unavailable on this platform; Open always fails.
type Library struct{}

// Open returns ErrUnsupported.
func Open(profile interop.GlProfile, opts ...Option) (*Library, error) {
	return nil, ErrUnsupported
}

// GetProcAddress implements interop.ProcAddressResolver.
func (l *Library) GetProcAddress(name string) uintptr { return 0 }

// Profile returns GlProfileFull.
func (l *Library) Profile() interop.GlProfile { return interop.GlProfileFull }

// Path returns "".
func (l *Library) Path() string { return "" }

// Close returns ErrClosed.
func (l *Library) Close() error { return ErrClosed }
