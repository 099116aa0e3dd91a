// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/interop"
	"github.com/gogpu/nativegfx/internal/logging"
)

// IIDGlRenderTarget identifies the OpenGL backend's own render target type.
var IIDGlRenderTarget = com.MustParseIID("8f0d3c55-1e7b-4a0c-b6d2-3c94e1f2a702")

var renderTargetTable = com.NewTable(
	com.Entry(interop.IIDRenderTarget, func(u com.Unknown) com.Unknown { return u.(interop.RenderTarget) }),
	com.Entry(IIDGlRenderTarget, nil),
)

// RenderTarget binds a Gpu to a platform surface.
//
// It holds a structural reference to the Gpu, which it does not keep
// alive, and one claim on the surface, released when the render target
// is destroyed.
type RenderTarget struct {
	com.Object

	gpu     *Gpu
	surface interop.GlPlatformSurfaceRenderTarget
}

// NewRenderTarget binds gpu to surface. On success the returned render
// target carries one claim owned by the caller; the count on gpu is
// unchanged.
func NewRenderTarget(gpu *Gpu, surface interop.GlPlatformSurfaceRenderTarget) (*RenderTarget, error) {
	if gpu == nil {
		return nil, fmt.Errorf("%w: nil gpu", com.ErrInvalidArg)
	}
	if s := gpu.State(); s != StateReady {
		return nil, fmt.Errorf("%w: %w (state %s)", com.ErrInvalidArg, ErrNotReady, s)
	}
	if gpu.Destroyed() {
		return nil, fmt.Errorf("%w: gpu already released", com.ErrInvalidArg)
	}
	if com.IsNil(surface) {
		return nil, fmt.Errorf("%w: nil platform surface", com.ErrInvalidArg)
	}

	surface.AddRef()
	rt := &RenderTarget{
		gpu:     gpu,
		surface: surface,
	}
	rt.Init(rt, renderTargetTable, rt.destroy)
	gpu.targets.Add(1)
	rt.AddRef()

	logging.L().Debug("glgpu: render target created",
		"gpu", gpu.id, "profile", gpu.profile.String())
	return rt, nil
}

func (rt *RenderTarget) destroy() {
	rt.surface.Release()
	rt.gpu.targets.Add(-1)
	logging.L().Debug("glgpu: render target destroyed", "gpu", rt.gpu.id)
}

// Backend implements interop.RenderTarget.
func (rt *RenderTarget) Backend() string { return BackendName }

// Gpu returns the bound context without adding a claim.
func (rt *RenderTarget) Gpu() *Gpu { return rt.gpu }

// Surface returns the bound platform surface without adding a claim.
func (rt *RenderTarget) Surface() interop.GlPlatformSurfaceRenderTarget { return rt.surface }

// SurfaceInfo implements interop.RenderTarget. Unset fields are filled
// with platform defaults: RGBA8Unorm format, one sample, unit scaling.
func (rt *RenderTarget) SurfaceInfo() interop.SurfaceInfo {
	info := rt.surface.SurfaceInfo()
	if info.Format == gputypes.TextureFormatUndefined {
		info.Format = gputypes.TextureFormatRGBA8Unorm
	}
	if info.SampleCount < 1 {
		info.SampleCount = 1
	}
	if info.Scaling <= 0 {
		info.Scaling = 1
	}
	return info
}

// Extent returns the surface size as a texture extent.
func (rt *RenderTarget) Extent() gputypes.Extent3D {
	info := rt.surface.SurfaceInfo()
	return gputypes.Extent3D{
		Width:              uint32(max(info.Width, 0)),
		Height:             uint32(max(info.Height, 0)),
		DepthOrArrayLayers: 1,
	}
}
