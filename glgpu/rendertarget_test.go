// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgpu

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/interop"
)

func newReadyGpu(t *testing.T) *Gpu {
	t.Helper()
	g, err := Create(interop.GlProfileFull, newMockResolver())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return g
}

func TestNewRenderTarget(t *testing.T) {
	g := newReadyGpu(t)
	defer g.Release()
	s := newMockSurface(interop.SurfaceInfo{Width: 800, Height: 600, Scaling: 2})
	defer s.Release()

	rt, err := NewRenderTarget(g, s)
	if err != nil {
		t.Fatalf("NewRenderTarget() error = %v", err)
	}

	if rt.RefCount() != 1 {
		t.Errorf("render target RefCount() = %d, want 1", rt.RefCount())
	}
	if g.RefCount() != 1 {
		t.Errorf("gpu RefCount() = %d, want 1 (structural reference)", g.RefCount())
	}
	if s.RefCount() != 2 {
		t.Errorf("surface RefCount() = %d, want 2 (bound claim)", s.RefCount())
	}
	if g.RenderTargets() != 1 {
		t.Errorf("RenderTargets() = %d, want 1", g.RenderTargets())
	}
	if rt.Gpu() != g {
		t.Error("Gpu() returned a different context")
	}
	if rt.Surface() != interop.GlPlatformSurfaceRenderTarget(s) {
		t.Error("Surface() returned a different surface")
	}
	if rt.Backend() != BackendName {
		t.Errorf("Backend() = %q", rt.Backend())
	}

	rt.Release()

	if s.RefCount() != 1 {
		t.Errorf("surface RefCount() = %d after release, want 1", s.RefCount())
	}
	if g.RefCount() != 1 {
		t.Errorf("gpu RefCount() = %d after release, want 1", g.RefCount())
	}
	if g.RenderTargets() != 0 {
		t.Errorf("RenderTargets() = %d after release, want 0", g.RenderTargets())
	}
}

func TestNewRenderTargetInvalid(t *testing.T) {
	g := newReadyGpu(t)
	defer g.Release()
	s := newMockSurface(interop.SurfaceInfo{})
	defer s.Release()
	var typedNilSurface *mockSurface

	tests := []struct {
		name    string
		gpu     *Gpu
		surface interop.GlPlatformSurfaceRenderTarget
	}{
		{"nil gpu", nil, s},
		{"nil surface", g, nil},
		{"typed nil surface", g, typedNilSurface},
		{"uninitialized gpu", &Gpu{}, s},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := NewRenderTarget(tt.gpu, tt.surface)
			if rt != nil {
				t.Error("NewRenderTarget() returned a render target")
			}
			if !errors.Is(err, com.ErrInvalidArg) {
				t.Errorf("NewRenderTarget() error = %v, want ErrInvalidArg", err)
			}
		})
	}
	if s.RefCount() != 1 {
		t.Errorf("surface RefCount() = %d, failed construction must not keep claims", s.RefCount())
	}
}

func TestNewRenderTargetNotReady(t *testing.T) {
	s := newMockSurface(interop.SurfaceInfo{})
	defer s.Release()

	_, err := NewRenderTarget(&Gpu{}, s)
	if !errors.Is(err, ErrNotReady) {
		t.Errorf("NewRenderTarget() error = %v, want ErrNotReady", err)
	}
}

func TestRenderTargetSurfaceInfoDefaults(t *testing.T) {
	g := newReadyGpu(t)
	defer g.Release()
	s := newMockSurface(interop.SurfaceInfo{Width: 640, Height: 480})
	defer s.Release()

	rt, err := NewRenderTarget(g, s)
	if err != nil {
		t.Fatalf("NewRenderTarget() error = %v", err)
	}
	defer rt.Release()

	info := rt.SurfaceInfo()
	if info.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", info.Format)
	}
	if info.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", info.SampleCount)
	}
	if info.Scaling != 1 {
		t.Errorf("Scaling = %v, want 1", info.Scaling)
	}

	ext := rt.Extent()
	if ext.Width != 640 || ext.Height != 480 || ext.DepthOrArrayLayers != 1 {
		t.Errorf("Extent() = %+v, want 640x480x1", ext)
	}
}

func TestRenderTargetSurfaceInfoPassThrough(t *testing.T) {
	g := newReadyGpu(t)
	defer g.Release()
	want := interop.SurfaceInfo{
		Width:       1024,
		Height:      768,
		Scaling:     1.5,
		Framebuffer: 3,
		Format:      gputypes.TextureFormatBGRA8Unorm,
		SampleCount: 4,
		StencilBits: 8,
	}
	s := newMockSurface(want)
	defer s.Release()

	rt, err := NewRenderTarget(g, s)
	if err != nil {
		t.Fatalf("NewRenderTarget() error = %v", err)
	}
	defer rt.Release()

	if got := rt.SurfaceInfo(); got != want {
		t.Errorf("SurfaceInfo() = %+v, want %+v", got, want)
	}
}

func TestRenderTargetQueryInterface(t *testing.T) {
	g := newReadyGpu(t)
	defer g.Release()
	s := newMockSurface(interop.SurfaceInfo{})
	defer s.Release()
	rt, err := NewRenderTarget(g, s)
	if err != nil {
		t.Fatalf("NewRenderTarget() error = %v", err)
	}
	defer rt.Release()

	got, err := com.Query[interop.RenderTarget](rt, interop.IIDRenderTarget)
	if err != nil {
		t.Fatalf("Query[RenderTarget]() error = %v", err)
	}
	if rt.RefCount() != 2 {
		t.Errorf("RefCount() = %d after query, want 2", rt.RefCount())
	}
	got.Release()

	if !com.Supports(rt, IIDGlRenderTarget) {
		t.Error("render target does not answer IIDGlRenderTarget")
	}
	if com.Supports(rt, interop.IIDGpu) {
		t.Error("render target answers IIDGpu")
	}
}

func TestSharedContextConcurrentRenderTargets(t *testing.T) {
	g := newReadyGpu(t)
	defer g.Release()

	const n = 16
	surfaces := make([]*mockSurface, n)
	for i := range surfaces {
		surfaces[i] = newMockSurface(interop.SurfaceInfo{Width: i + 1, Height: i + 1})
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rt, err := NewRenderTarget(g, surfaces[i])
			if err != nil {
				errs[i] = err
				return
			}
			if rt.Extent().Width != uint32(i+1) {
				errs[i] = errors.New("render target bound to the wrong surface")
			}
			rt.Release()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("goroutine %d: %v", i, err)
		}
	}
	if g.RenderTargets() != 0 {
		t.Errorf("RenderTargets() = %d, want 0", g.RenderTargets())
	}
	for i, s := range surfaces {
		if s.RefCount() != 1 {
			t.Errorf("surface %d RefCount() = %d, want 1", i, s.RefCount())
		}
		s.Release()
		if s.destroyed.Load() != 1 {
			t.Errorf("surface %d destroyed %d times, want 1", i, s.destroyed.Load())
		}
	}
}
