// Package nativegfx is an object factory that hands GPU contexts and render
// targets to a host process without the host linking against a specific
// GPU backend.
//
// # Overview
//
// The host bootstraps with [CreateNativeGraphics], which returns a Factory
// carrying one claim. The factory exposes two constructions:
//
//	f := nativegfx.CreateNativeGraphics()
//	defer f.Release()
//
//	gpu, err := f.CreateGlGpu(interop.GlProfileFull, resolver)
//	if err != nil {
//		// fall back to another profile
//	}
//	defer gpu.Release()
//
//	rt, err := f.CreateGlGpuRenderTarget(gpu, surface)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer rt.Release()
//
// Every returned object is reference counted (see package com). Each
// handle returned by the factory is one claim the receiver must release
// exactly once. Render targets do not keep their context alive: release
// them before the context.
//
// # Capability checks
//
// CreateGlGpuRenderTarget accepts only contexts that answer
// glgpu.IIDGlGpu. A context produced by a different backend family is
// rejected with com.ErrInvalidArg; com.StatusOf maps it to E_INVALIDARG.
//
// # Resolvers
//
// The resolver maps GL symbol names to addresses. Hosts usually pass the
// windowing system's own lookup (eglGetProcAddress, wglGetProcAddress).
// Package procaddr provides one backed by the platform GL library.
//
// # Logging
//
// nativegfx is silent by default. See [SetLogger].
package nativegfx
