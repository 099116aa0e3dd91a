package nativegfx

import (
	"fmt"

	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/glgpu"
	"github.com/gogpu/nativegfx/interop"
	"github.com/gogpu/nativegfx/internal/logging"
)

// Version is the interface version reported by Factory.GetVersion.
const Version int32 = 0

var factoryTable = com.NewTable(
	com.Entry(interop.IIDFactory, func(u com.Unknown) com.Unknown { return u.(interop.Factory) }),
)

// Factory creates GPU contexts and render targets. It implements
// interop.Factory.
//
// One Factory is expected per process, obtained from
// CreateNativeGraphics, but nothing prevents creating more.
// Factory methods are safe for concurrent use.
type Factory struct {
	com.Object

	opts factoryOptions
}

// NewFactory returns a Factory with a count of zero. The caller registers
// the first claim with AddRef.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&f.opts)
	}
	f.Init(f, factoryTable, f.destroy)
	return f
}

// CreateNativeGraphics is the entry point into the subsystem. It returns
// a Factory carrying one claim owned by the caller.
func CreateNativeGraphics(opts ...Option) interop.Factory {
	f := NewFactory(opts...)
	f.AddRef()
	logging.L().Debug("nativegfx: factory created", "version", Version)
	return f
}

func (f *Factory) destroy() {
	logging.L().Debug("nativegfx: factory destroyed")
}

// GetVersion implements interop.Factory.
func (f *Factory) GetVersion() int32 {
	return Version
}

// CreateGlGpu implements interop.Factory.
func (f *Factory) CreateGlGpu(profile interop.GlProfile, resolver interop.ProcAddressResolver) (interop.Gpu, error) {
	g, err := glgpu.Create(profile, resolver, f.opts.gpu...)
	if err != nil {
		return nil, fmt.Errorf("nativegfx: create %s gpu: %w", profile, err)
	}
	return g, nil
}

// CreateGlGpuRenderTarget implements interop.Factory.
//
// gpu must narrow to glgpu.IIDGlGpu; contexts from any other backend are
// rejected with com.ErrInvalidArg, as is a nil surface.
func (f *Factory) CreateGlGpuRenderTarget(gpu interop.Gpu, surface interop.GlPlatformSurfaceRenderTarget) (interop.RenderTarget, error) {
	g, err := glgpu.FromGpu(gpu)
	if err != nil {
		return nil, fmt.Errorf("nativegfx: create render target: %w", err)
	}
	if com.IsNil(surface) {
		return nil, fmt.Errorf("nativegfx: create render target: %w: nil platform surface", com.ErrInvalidArg)
	}
	rt, err := glgpu.NewRenderTarget(g, surface)
	if err != nil {
		return nil, fmt.Errorf("nativegfx: create render target: %w", err)
	}
	return rt, nil
}
