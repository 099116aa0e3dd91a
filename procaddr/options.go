// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package procaddr

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	names       []string
	loaderNames []string
	searchPaths []string
}

// WithLibraryNames replaces the GL library candidates.
func WithLibraryNames(names ...string) Option {
	return func(o *openOptions) {
		o.names = append(o.names, names...)
	}
}

// WithLoaderNames replaces the loader library candidates.
func WithLoaderNames(names ...string) Option {
	return func(o *openOptions) {
		o.loaderNames = append(o.loaderNames, names...)
	}
}

// WithSearchPaths adds directories tried before the system search path.
func WithSearchPaths(dirs ...string) Option {
	return func(o *openOptions) {
		o.searchPaths = append(o.searchPaths, dirs...)
	}
}
