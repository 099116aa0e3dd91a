// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glgpu implements the OpenGL backend family: GPU contexts bound to
// desktop OpenGL or OpenGL ES, and render targets binding a context to a
// platform surface.
//
// # Contexts
//
// [Create] drives a context through its construction state machine:
//
//	Uninitialized -> Initializing -> Ready
//	                              -> Failed
//
// The transition out of Initializing happens once, when every required
// entry point has been resolved through the caller's
// interop.ProcAddressResolver. A context that fails is never returned.
// Ready contexts are immutable and may be shared between goroutines.
//
// # Backend identity
//
// Contexts answer QueryInterface for both interop.IIDGpu and the
// backend-private [IIDGlGpu]. [FromGpu] uses the private identifier to
// reject contexts produced by other backend families.
//
// # Render targets
//
// [NewRenderTarget] holds a structural reference to its context and a
// claim on its surface. Releasing a render target releases the surface
// claim only.
package glgpu
