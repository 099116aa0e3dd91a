// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/interop"
)

// Package errors.
var (
	// ErrProcNotFound is returned when the resolver cannot supply a
	// required entry point. It carries com.StatusFail.
	ErrProcNotFound = com.NewError(com.StatusFail, "glgpu: required entry point not found")

	// ErrResolverPanic is returned when the resolver panics during
	// construction. It carries com.StatusFail.
	ErrResolverPanic = com.NewError(com.StatusFail, "glgpu: address resolver panicked")

	// ErrNotReady is returned when a render target is requested for a
	// context that is not in the Ready state.
	ErrNotReady = errors.New("glgpu: context not ready")
)

// ResolveError lists the required entry points a resolver failed to
// supply. It unwraps to ErrProcNotFound.
type ResolveError struct {
	Profile interop.GlProfile
	Missing []string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("glgpu: %s: %d required entry point(s) not found: %s",
		e.Profile, len(e.Missing), strings.Join(e.Missing, ", "))
}

// Unwrap returns ErrProcNotFound.
func (e *ResolveError) Unwrap() error { return ErrProcNotFound }
