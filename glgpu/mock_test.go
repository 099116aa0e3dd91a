// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgpu

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/interop"
)

// mockResolver resolves every name to a distinct non-zero address except
// those listed in missing. It records every name it is asked for.
type mockResolver struct {
	mu      sync.Mutex
	missing map[string]bool
	calls   []string
	next    uintptr
}

func newMockResolver(missing ...string) *mockResolver {
	m := &mockResolver{missing: make(map[string]bool), next: 0x1000}
	for _, name := range missing {
		m.missing[name] = true
	}
	return m
}

func (m *mockResolver) GetProcAddress(name string) uintptr {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	if m.missing[name] {
		return 0
	}
	m.next += 0x10
	return m.next
}

func (m *mockResolver) called(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.calls {
		if c == name {
			return true
		}
	}
	return false
}

// mockSurface implements interop.GlPlatformSurfaceRenderTarget.
type mockSurface struct {
	com.Object
	info      interop.SurfaceInfo
	destroyed atomic.Int32
}

var mockSurfaceTable = com.NewTable(
	com.Entry(interop.IIDGlPlatformSurfaceRenderTarget, nil),
)

func newMockSurface(info interop.SurfaceInfo) *mockSurface {
	s := &mockSurface{info: info}
	s.Init(s, mockSurfaceTable, func() { s.destroyed.Add(1) })
	s.AddRef()
	return s
}

func (s *mockSurface) SurfaceInfo() interop.SurfaceInfo { return s.info }

// foreignGpu is a context from another backend family: it answers
// interop.IIDGpu but not IIDGlGpu.
type foreignGpu struct {
	com.Object
}

var foreignGpuTable = com.NewTable(
	com.Entry(interop.IIDGpu, nil),
)

func newForeignGpu() *foreignGpu {
	g := &foreignGpu{}
	g.Init(g, foreignGpuTable, nil)
	g.AddRef()
	return g
}

func (g *foreignGpu) Backend() string { return "vulkan" }

// impostorGpu claims IIDGlGpu without being this package's context.
type impostorGpu struct {
	com.Object
}

var impostorGpuTable = com.NewTable(
	com.Entry(interop.IIDGpu, nil),
	com.Entry(IIDGlGpu, nil),
)

func newImpostorGpu() *impostorGpu {
	g := &impostorGpu{}
	g.Init(g, impostorGpuTable, nil)
	g.AddRef()
	return g
}

func (g *impostorGpu) Backend() string { return BackendName }
