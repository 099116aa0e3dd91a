// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgpu

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/nativegfx/interop"
)

// Entry points required by both profiles.
var commonProcs = []string{
	"glActiveTexture",
	"glAttachShader",
	"glBindAttribLocation",
	"glBindBuffer",
	"glBindFramebuffer",
	"glBindRenderbuffer",
	"glBindTexture",
	"glBlendColor",
	"glBlendEquation",
	"glBlendFunc",
	"glBufferData",
	"glBufferSubData",
	"glCheckFramebufferStatus",
	"glClear",
	"glClearColor",
	"glClearStencil",
	"glColorMask",
	"glCompileShader",
	"glCreateProgram",
	"glCreateShader",
	"glCullFace",
	"glDeleteBuffers",
	"glDeleteFramebuffers",
	"glDeleteProgram",
	"glDeleteRenderbuffers",
	"glDeleteShader",
	"glDeleteTextures",
	"glDisable",
	"glDisableVertexAttribArray",
	"glDrawArrays",
	"glDrawElements",
	"glEnable",
	"glEnableVertexAttribArray",
	"glFinish",
	"glFlush",
	"glFramebufferRenderbuffer",
	"glFramebufferTexture2D",
	"glFrontFace",
	"glGenBuffers",
	"glGenFramebuffers",
	"glGenRenderbuffers",
	"glGenTextures",
	"glGetError",
	"glGetIntegerv",
	"glGetProgramInfoLog",
	"glGetProgramiv",
	"glGetShaderInfoLog",
	"glGetShaderiv",
	"glGetString",
	"glGetUniformLocation",
	"glLineWidth",
	"glLinkProgram",
	"glPixelStorei",
	"glReadPixels",
	"glRenderbufferStorage",
	"glScissor",
	"glShaderSource",
	"glStencilFunc",
	"glStencilMask",
	"glStencilOp",
	"glTexImage2D",
	"glTexParameteri",
	"glTexSubImage2D",
	"glUniform1f",
	"glUniform1i",
	"glUniform4fv",
	"glUniformMatrix3fv",
	"glUseProgram",
	"glVertexAttribPointer",
	"glViewport",
}

// Profile-specific required entry points.
var (
	fullProcs = []string{
		"glClearDepth",
		"glDrawBuffer",
		"glReadBuffer",
	}
	embeddedProcs = []string{
		"glClearDepthf",
	}
)

// Entry points resolved when available. Missing ones do not fail
// construction.
var (
	fullOptionalProcs = []string{
		"glBindVertexArray",
		"glBlitFramebuffer",
		"glDebugMessageCallback",
		"glDeleteVertexArrays",
		"glGenVertexArrays",
		"glGetStringi",
		"glInvalidateFramebuffer",
		"glRenderbufferStorageMultisample",
	}
	embeddedOptionalProcs = []string{
		"glBindVertexArray",
		"glBlitFramebuffer",
		"glDebugMessageCallback",
		"glDeleteVertexArrays",
		"glDiscardFramebuffer",
		"glGenVertexArrays",
		"glGetStringi",
		"glInvalidateFramebuffer",
		"glRenderbufferStorageMultisample",
	}
)

// Vendor suffixes tried for optional entry points, in order.
var (
	fullSuffixes     = []string{"ARB", "EXT"}
	embeddedSuffixes = []string{"OES", "EXT", "KHR"}
)

// RequiredProcs returns the entry points a context of the given profile
// must resolve.
func RequiredProcs(p interop.GlProfile) []string {
	out := slices.Clone(commonProcs)
	switch p {
	case interop.GlProfileFull:
		out = append(out, fullProcs...)
	case interop.GlProfileEmbedded:
		out = append(out, embeddedProcs...)
	}
	slices.Sort(out)
	return out
}

// OptionalProcs returns the entry points resolved opportunistically for
// the given profile.
func OptionalProcs(p interop.GlProfile) []string {
	switch p {
	case interop.GlProfileFull:
		return slices.Clone(fullOptionalProcs)
	case interop.GlProfileEmbedded:
		return slices.Clone(embeddedOptionalProcs)
	}
	return nil
}

func vendorSuffixes(p interop.GlProfile) []string {
	if p == interop.GlProfileEmbedded {
		return embeddedSuffixes
	}
	return fullSuffixes
}

// ProcTable holds resolved entry point addresses keyed by canonical name.
// It is immutable once built.
type ProcTable struct {
	profile interop.GlProfile
	addrs   map[string]uintptr
}

// Lookup returns the address of name.
func (t *ProcTable) Lookup(name string) (uintptr, bool) {
	if t == nil {
		return 0, false
	}
	addr, ok := t.addrs[name]
	return addr, ok
}

// Len returns the number of resolved entry points.
func (t *ProcTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.addrs)
}

// Names returns the resolved entry point names in sorted order.
func (t *ProcTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.addrs))
	for name := range t.addrs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// resolveProcs binds every required entry point through r and then the
// optional ones. It returns a *ResolveError listing every missing
// required name. No partial table is returned on failure.
//
// r is foreign code: a panic inside it is converted to ErrResolverPanic.
func resolveProcs(p interop.GlProfile, r interop.ProcAddressResolver, required, optional []string) (t *ProcTable, err error) {
	defer func() {
		if v := recover(); v != nil {
			t = nil
			err = fmt.Errorf("%w: %v", ErrResolverPanic, v)
		}
	}()

	addrs := make(map[string]uintptr, len(required)+len(optional))
	var missing []string
	for _, name := range required {
		if _, done := addrs[name]; done {
			continue
		}
		addr := r.GetProcAddress(name)
		if addr == 0 {
			missing = append(missing, name)
			continue
		}
		addrs[name] = addr
	}
	if len(missing) > 0 {
		return nil, &ResolveError{Profile: p, Missing: missing}
	}

	suffixes := vendorSuffixes(p)
	for _, name := range optional {
		if _, done := addrs[name]; done {
			continue
		}
		if addr := resolveWithSuffixes(r, name, suffixes); addr != 0 {
			addrs[name] = addr
		}
	}
	return &ProcTable{profile: p, addrs: addrs}, nil
}

func resolveWithSuffixes(r interop.ProcAddressResolver, name string, suffixes []string) uintptr {
	if addr := r.GetProcAddress(name); addr != 0 {
		return addr
	}
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			continue
		}
		if addr := r.GetProcAddress(name + s); addr != 0 {
			return addr
		}
	}
	return 0
}
