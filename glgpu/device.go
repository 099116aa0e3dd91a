// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glgpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/nativegfx/interop"
)

// DeviceProvider exposes the render target as a gpucontext.DeviceProvider
// so canvas integrations written against gpucontext can target it.
//
// OpenGL has no separate device and queue objects: both are the context.
// There is no adapter object either, so Adapter returns nil and
// AdapterInfo describes the API profile. The provider adds no claims and
// must not be used after the render target is released.
func (rt *RenderTarget) DeviceProvider() gpucontext.DeviceProvider {
	return &deviceProvider{rt: rt}
}

type deviceProvider struct {
	rt *RenderTarget
}

func (p *deviceProvider) Device() gpucontext.Device   { return p.rt.gpu }
func (p *deviceProvider) Queue() gpucontext.Queue     { return p.rt.gpu }
func (p *deviceProvider) Adapter() gpucontext.Adapter { return nil }

func (p *deviceProvider) SurfaceFormat() gputypes.TextureFormat {
	return p.rt.SurfaceInfo().Format
}

// AdapterInfo names the API profile. The GL driver cannot be asked for
// its renderer without a current context, so the type is unknown.
func (p *deviceProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: adapterName(p.rt.gpu.profile),
		Type: gpucontext.AdapterTypeUnknown,
	}
}

func adapterName(p interop.GlProfile) string {
	if p == interop.GlProfileEmbedded {
		return "OpenGL ES"
	}
	return "OpenGL"
}
