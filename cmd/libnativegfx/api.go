// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/gogpu/nativegfx"
	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/glgpu"
	"github.com/gogpu/nativegfx/interop"
	"github.com/gogpu/nativegfx/internal/handles"
)

// api implements the exported functions over a handle table. The cgo
// exports convert C types and delegate here.
//
// Every method leaves *out untouched when it fails.
type api struct {
	handles *handles.Table
}

var exported = api{handles: handles.Default}

// hostSurface is a surface supplied by the host. disarm withholds the
// host's teardown callback for a surface no render target adopted.
type hostSurface interface {
	interop.GlPlatformSurfaceRenderTarget
	disarm()
}

func (a api) createNativeGraphics() uintptr {
	return a.handles.Register(nativegfx.CreateNativeGraphics())
}

func (a api) addRef(h uintptr) uint32 {
	n, _ := a.handles.AddRef(h)
	return n
}

func (a api) release(h uintptr) uint32 {
	n, _ := a.handles.Release(h)
	return n
}

func (a api) queryInterface(h uintptr, iid com.IID, out *uintptr) com.Status {
	if out == nil {
		return com.StatusPointer
	}
	u, ok := a.handles.Lookup(h)
	if !ok {
		return com.StatusInvalidArg
	}
	got, err := u.QueryInterface(iid)
	if err != nil {
		return com.StatusOf(err)
	}
	*out = a.handles.Register(got)
	return com.StatusOK
}

// getVersion returns -1 for a handle that is not a factory.
func (a api) getVersion(factory uintptr) int32 {
	f, err := lookup[interop.Factory](a.handles, factory, interop.IIDFactory)
	if err != nil {
		return -1
	}
	defer f.Release()
	return f.GetVersion()
}

func (a api) createGlGpu(factory uintptr, profile interop.GlProfile, resolver interop.ProcAddressResolver, out *uintptr) com.Status {
	if out == nil {
		return com.StatusPointer
	}
	f, err := lookup[interop.Factory](a.handles, factory, interop.IIDFactory)
	if err != nil {
		return com.StatusOf(err)
	}
	defer f.Release()

	gpu, err := f.CreateGlGpu(profile, resolver)
	if err != nil {
		return com.StatusOf(err)
	}
	*out = a.handles.Register(gpu)
	return com.StatusOK
}

// createGlGpuRenderTarget validates its handles before newSurface is
// called, so a rejected call never touches the host surface.
func (a api) createGlGpuRenderTarget(factory, gpu uintptr, newSurface func() hostSurface, out *uintptr) com.Status {
	if out == nil {
		return com.StatusPointer
	}
	if newSurface == nil {
		return com.StatusInvalidArg
	}
	f, err := lookup[interop.Factory](a.handles, factory, interop.IIDFactory)
	if err != nil {
		return com.StatusOf(err)
	}
	defer f.Release()

	g, err := lookup[interop.Gpu](a.handles, gpu, interop.IIDGpu)
	if err != nil {
		return com.StatusOf(err)
	}
	defer g.Release()
	if _, err := glgpu.FromGpu(g); err != nil {
		return com.StatusOf(err)
	}

	surface := newSurface()
	rt, err := f.CreateGlGpuRenderTarget(g, surface)
	if err != nil {
		surface.disarm()
		surface.Release()
		return com.StatusOf(err)
	}
	surface.Release()
	*out = a.handles.Register(rt)
	return com.StatusOK
}

// lookup resolves a handle and narrows it to T with one claim. Unknown
// handles and handles of the wrong kind are both invalid arguments.
func lookup[T com.Unknown](t *handles.Table, h uintptr, iid com.IID) (T, error) {
	var zero T
	u, ok := t.Lookup(h)
	if !ok {
		return zero, com.ErrInvalidArg
	}
	v, err := com.Query[T](u, iid)
	if err != nil {
		return zero, com.ErrInvalidArg
	}
	return v, nil
}
