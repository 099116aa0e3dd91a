// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/interop"
)

// surfaceInfoC mirrors NativeGraphicsSurfaceInfo.
type surfaceInfoC struct {
	Width       int32
	Height      int32
	Scaling     float64
	Framebuffer uint32
	SampleCount int32
	StencilBits int32
}

func (c surfaceInfoC) toSurfaceInfo() interop.SurfaceInfo {
	return interop.SurfaceInfo{
		Width:       int(c.Width),
		Height:      int(c.Height),
		Scaling:     c.Scaling,
		Framebuffer: c.Framebuffer,
		SampleCount: int(c.SampleCount),
		StencilBits: int(c.StencilBits),
	}
}

// cSurface is a host surface reached through C callbacks.
type cSurface struct {
	com.Object
	info     uintptr
	release  atomic.Uintptr
	userdata uintptr
}

var cSurfaceTable = com.NewTable(
	com.Entry(interop.IIDGlPlatformSurfaceRenderTarget, nil),
)

// newCSurface returns a surface carrying one claim.
func newCSurface(info, release, userdata uintptr) *cSurface {
	s := &cSurface{info: info, userdata: userdata}
	s.release.Store(release)
	s.Init(s, cSurfaceTable, s.destroy)
	s.AddRef()
	return s
}

// SurfaceInfo implements interop.GlPlatformSurfaceRenderTarget.
func (s *cSurface) SurfaceInfo() interop.SurfaceInfo {
	var out surfaceInfoC
	purego.SyscallN(s.info, s.userdata, uintptr(unsafe.Pointer(&out)))
	runtime.KeepAlive(&out)
	return out.toSurfaceInfo()
}

func (s *cSurface) disarm() { s.release.Store(0) }

func (s *cSurface) destroy() {
	if fn := s.release.Load(); fn != 0 {
		purego.SyscallN(fn, s.userdata)
	}
}
