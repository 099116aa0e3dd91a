// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build darwin || freebsd || linux || netbsd

package procaddr

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/gogpu/nativegfx/interop"
	"github.com/gogpu/nativegfx/internal/logging"
)

// Library resolves GL entry points from a dynamically loaded GL library.
// It implements interop.ProcAddressResolver and is safe for concurrent
// use.
type Library struct {
	profile interop.GlProfile
	path    string

	mu      sync.RWMutex
	gl      uintptr
	loader  uintptr
	getProc func(name string) uintptr
	closed  bool
}

// Open loads the GL library for profile on the current platform.
func Open(profile interop.GlProfile, opts ...Option) (*Library, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg := specFor(runtime.GOOS, profile)
	if len(o.names) > 0 {
		cfg.Names = o.names
	}
	if len(o.loaderNames) > 0 {
		cfg.LoaderNames = o.loaderNames
	}

	gl, path, err := openFirst(cfg.Names, o.searchPaths)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%w)", ErrLibraryNotFound, profile, err)
	}

	l := &Library{profile: profile, path: path, gl: gl}

	if cfg.LoaderSymbol != "" {
		loaderLib := gl
		if len(cfg.LoaderNames) > 0 {
			// The loader is optional: plain dlsym still serves core
			// entry points when it is missing.
			if h, _, err := openFirst(cfg.LoaderNames, o.searchPaths); err == nil {
				l.loader = h
				loaderLib = h
			}
		}
		if addr, err := purego.Dlsym(loaderLib, cfg.LoaderSymbol); err == nil && addr != 0 {
			purego.RegisterFunc(&l.getProc, addr)
		}
	}

	logging.L().Debug("procaddr: GL library loaded",
		"profile", profile.String(), "path", path, "loader", l.getProc != nil)
	return l, nil
}

func openFirst(names, searchPaths []string) (uintptr, string, error) {
	var errs []error
	for _, dir := range searchPaths {
		for _, name := range names {
			full := filepath.Join(dir, name)
			h, err := purego.Dlopen(full, purego.RTLD_NOW|purego.RTLD_GLOBAL)
			if err == nil {
				return h, full, nil
			}
			errs = append(errs, err)
		}
	}
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return h, name, nil
		}
		errs = append(errs, err)
	}
	return 0, "", errors.Join(errs...)
}

// GetProcAddress implements interop.ProcAddressResolver. Exported symbols
// of the GL library take precedence over the window-system loader, since
// glXGetProcAddressARB returns non-nil for any name.
func (l *Library) GetProcAddress(name string) uintptr {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed || name == "" {
		return 0
	}
	if addr, err := purego.Dlsym(l.gl, name); err == nil && addr != 0 {
		return addr
	}
	if l.getProc != nil {
		return l.getProc(name)
	}
	return 0
}

// Profile returns the profile the library was opened for.
func (l *Library) Profile() interop.GlProfile { return l.profile }

// Path returns the name or path the GL library was loaded from.
func (l *Library) Path() string { return l.path }

// Close unloads the libraries. Addresses obtained earlier become invalid.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.closed = true
	l.getProc = nil

	var errs []error
	if l.loader != 0 {
		errs = append(errs, purego.Dlclose(l.loader))
	}
	errs = append(errs, purego.Dlclose(l.gl))
	return errors.Join(errs...)
}
