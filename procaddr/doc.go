// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package procaddr provides address resolvers for GL entry points.
//
// [Open] loads the platform GL library with purego and resolves symbols
// with dlsym, falling back to the window system's loader
// (glXGetProcAddressARB or eglGetProcAddress). No cgo is required.
//
//	lib, err := procaddr.Open(interop.GlProfileEmbedded)
//	if err != nil {
//		return err
//	}
//	defer lib.Close()
//
//	gpu, err := factory.CreateGlGpu(interop.GlProfileEmbedded, lib)
//
// [FromCFunc] wraps a raw C function pointer of type
// void *(*)(const char *), such as the value of SDL_GL_GetProcAddress,
// and [Map] serves a fixed table.
package procaddr
