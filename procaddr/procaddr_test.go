// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package procaddr

import (
	"slices"
	"testing"

	"github.com/gogpu/nativegfx/interop"
)

func TestLibraryName(t *testing.T) {
	tests := []struct {
		goos    string
		name    string
		version int
		want    string
	}{
		{"linux", "GL", 1, "libGL.so.1"},
		{"linux", "GLESv2", 0, "libGLESv2.so"},
		{"freebsd", "EGL", 1, "libEGL.so.1"},
		{"darwin", "EGL", 0, "libEGL.dylib"},
		{"darwin", "GLESv2", 2, "libGLESv2.2.dylib"},
		{"windows", "GLESv2", 2, "libGLESv2.dll"},
	}
	for _, tt := range tests {
		if got := libraryName(tt.goos, tt.name, tt.version); got != tt.want {
			t.Errorf("libraryName(%q, %q, %d) = %q, want %q", tt.goos, tt.name, tt.version, got, tt.want)
		}
	}
}

func TestSpecFor(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		profile    interop.GlProfile
		wantFirst  string
		wantLoader string
	}{
		{"linux desktop", "linux", interop.GlProfileFull, "libGL.so.1", "glXGetProcAddressARB"},
		{"linux es", "linux", interop.GlProfileEmbedded, "libGLESv2.so.2", "eglGetProcAddress"},
		{"darwin desktop", "darwin", interop.GlProfileFull, darwinOpenGLFramework, ""},
		{"darwin es", "darwin", interop.GlProfileEmbedded, "libGLESv2.2.dylib", "eglGetProcAddress"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := specFor(tt.goos, tt.profile)
			if len(spec.Names) == 0 || spec.Names[0] != tt.wantFirst {
				t.Errorf("Names = %v, want first %q", spec.Names, tt.wantFirst)
			}
			if spec.LoaderSymbol != tt.wantLoader {
				t.Errorf("LoaderSymbol = %q, want %q", spec.LoaderSymbol, tt.wantLoader)
			}
		})
	}
}

func TestSpecForEmbeddedUsesEGLLoader(t *testing.T) {
	spec := specFor("linux", interop.GlProfileEmbedded)
	if !slices.Contains(spec.LoaderNames, "libEGL.so.1") {
		t.Errorf("LoaderNames = %v, want libEGL.so.1", spec.LoaderNames)
	}
	full := specFor("linux", interop.GlProfileFull)
	if len(full.LoaderNames) != 0 {
		t.Errorf("desktop LoaderNames = %v, want none (loader lives in libGL)", full.LoaderNames)
	}
}

func TestMap(t *testing.T) {
	m := Map{"glClear": 0x1000}
	if got := m.GetProcAddress("glClear"); got != 0x1000 {
		t.Errorf("GetProcAddress(glClear) = %#x, want 0x1000", got)
	}
	if got := m.GetProcAddress("glFlush"); got != 0 {
		t.Errorf("GetProcAddress(glFlush) = %#x, want 0", got)
	}
}

func TestChain(t *testing.T) {
	first := Map{"glClear": 0x1000}
	second := Map{"glClear": 0x2000, "glFlush": 0x3000}
	r := Chain(nil, first, second)

	if got := r.GetProcAddress("glClear"); got != 0x1000 {
		t.Errorf("GetProcAddress(glClear) = %#x, want first resolver's 0x1000", got)
	}
	if got := r.GetProcAddress("glFlush"); got != 0x3000 {
		t.Errorf("GetProcAddress(glFlush) = %#x, want 0x3000", got)
	}
	if got := r.GetProcAddress("glFinish"); got != 0 {
		t.Errorf("GetProcAddress(glFinish) = %#x, want 0", got)
	}
}

func TestFromCFuncZero(t *testing.T) {
	r := FromCFunc(0)
	if got := r.GetProcAddress("glClear"); got != 0 {
		t.Errorf("GetProcAddress on zero CFunc = %#x, want 0", got)
	}
}
