package nativegfx

import "github.com/gogpu/nativegfx/glgpu"

// Option configures a Factory during creation.
//
// Example:
//
//	f := nativegfx.CreateNativeGraphics(
//		nativegfx.WithGpuOptions(glgpu.WithRequiredProcs("glDrawElementsInstanced")),
//	)
type Option func(*factoryOptions)

// factoryOptions holds optional configuration for Factory creation.
type factoryOptions struct {
	gpu []glgpu.Option
}

func defaultOptions() factoryOptions {
	return factoryOptions{}
}

// WithGpuOptions applies opts to every context the factory creates.
// Repeated use accumulates.
func WithGpuOptions(opts ...glgpu.Option) Option {
	return func(o *factoryOptions) {
		o.gpu = append(o.gpu, opts...)
	}
}
