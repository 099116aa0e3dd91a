// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgpu

// Option configures context construction.
//
// Example:
//
//	g, err := glgpu.Create(interop.GlProfileEmbedded, resolver,
//		glgpu.WithRequiredProcs("glDrawElementsInstanced"))
type Option func(*options)

type options struct {
	required []string
	optional []string
	observer func(State)
}

// WithRequiredProcs adds entry points that must resolve in addition to
// the profile's built-in set.
func WithRequiredProcs(names ...string) Option {
	return func(o *options) {
		o.required = append(o.required, names...)
	}
}

// WithOptionalProcs adds entry points that are bound when available.
func WithOptionalProcs(names ...string) Option {
	return func(o *options) {
		o.optional = append(o.optional, names...)
	}
}

// WithStateObserver registers fn to be called on every state transition
// during construction, including transitions of contexts that fail and
// are never returned.
func WithStateObserver(fn func(State)) Option {
	return func(o *options) {
		o.observer = fn
	}
}
