// Package interop declares the capability contracts exchanged between a
// host process and nativegfx, together with their interface identifiers.
//
// The contracts are stable across versions. Callers discover them with
// com.Unknown.QueryInterface, never with Go type switches.
package interop

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/nativegfx/com"
)

// Interface identifiers of the public contracts.
var (
	IIDFactory                       = com.MustParseIID("2b4a1b0e-56c4-4f31-9a37-6f1e0c8d1a01")
	IIDGpu                           = com.MustParseIID("2b4a1b0e-56c4-4f31-9a37-6f1e0c8d1a02")
	IIDRenderTarget                  = com.MustParseIID("2b4a1b0e-56c4-4f31-9a37-6f1e0c8d1a03")
	IIDGlPlatformSurfaceRenderTarget = com.MustParseIID("2b4a1b0e-56c4-4f31-9a37-6f1e0c8d1a04")
)

// GlProfile selects the OpenGL flavor a GPU context binds to.
type GlProfile uint8

const (
	// GlProfileFull is desktop OpenGL.
	GlProfileFull GlProfile = iota

	// GlProfileEmbedded is OpenGL ES.
	GlProfileEmbedded
)

// String returns "gl" or "gles".
func (p GlProfile) String() string {
	switch p {
	case GlProfileFull:
		return "gl"
	case GlProfileEmbedded:
		return "gles"
	}
	return "unknown"
}

// Valid reports whether p is a known profile.
func (p GlProfile) Valid() bool {
	return p == GlProfileFull || p == GlProfileEmbedded
}

// ProcAddressResolver maps a graphics API symbol name to a callable entry
// point. It is supplied by the host and borrowed only for the duration of
// a single construction call. A zero return means the symbol is
// unavailable.
type ProcAddressResolver interface {
	GetProcAddress(name string) uintptr
}

// ProcAddressFunc adapts a function to ProcAddressResolver.
type ProcAddressFunc func(name string) uintptr

// GetProcAddress implements ProcAddressResolver.
func (f ProcAddressFunc) GetProcAddress(name string) uintptr { return f(name) }

// SurfaceInfo describes a platform presentation surface.
type SurfaceInfo struct {
	// Width and Height are the surface size in physical pixels.
	Width, Height int

	// Scaling is the ratio of physical pixels to logical units.
	Scaling float64

	// Framebuffer is the GL framebuffer object the surface presents from.
	// Zero is the window-system default framebuffer.
	Framebuffer uint32

	// Format is the color format of the framebuffer. TextureFormatUndefined
	// means the platform default (RGBA8Unorm).
	Format gputypes.TextureFormat

	// SampleCount is the MSAA sample count; values below 1 mean 1.
	SampleCount int

	// StencilBits is the stencil buffer depth.
	StencilBits int
}

// GlPlatformSurfaceRenderTarget is the host's presentation surface for
// OpenGL rendering. nativegfx only reads its description; presentation
// belongs to the host's windowing layer.
type GlPlatformSurfaceRenderTarget interface {
	com.Unknown

	// SurfaceInfo returns the current surface description.
	SurfaceInfo() SurfaceInfo
}

// Gpu is an initialized GPU context.
type Gpu interface {
	com.Unknown

	// Backend names the backend family that produced the context
	// (for example "gl"). It is informational; compatibility is checked
	// through QueryInterface.
	Backend() string
}

// RenderTarget is a drawable surface bound to a Gpu.
type RenderTarget interface {
	com.Unknown

	// Backend names the backend family of the bound context.
	Backend() string

	// SurfaceInfo describes the bound platform surface.
	SurfaceInfo() SurfaceInfo
}

// Factory is the root object of the subsystem.
type Factory interface {
	com.Unknown

	// GetVersion returns the interface version. It has no side effects.
	GetVersion() int32

	// CreateGlGpu creates a GPU context bound to the given OpenGL profile.
	// resolver is invoked during the call to bind every required entry
	// point and is not retained. On success the caller owns one claim on
	// the returned context.
	CreateGlGpu(profile GlProfile, resolver ProcAddressResolver) (Gpu, error)

	// CreateGlGpuRenderTarget binds gpu to surface. gpu must come from the
	// OpenGL backend. The render target does not extend the lifetime of
	// gpu. On success the caller owns one claim on the returned target.
	CreateGlGpuRenderTarget(gpu Gpu, surface GlPlatformSurfaceRenderTarget) (RenderTarget, error)
}
