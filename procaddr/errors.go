// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package procaddr

import "errors"

// Package errors.
var (
	// ErrLibraryNotFound is returned when no candidate GL library loads.
	ErrLibraryNotFound = errors.New("procaddr: GL library not found")

	// ErrUnsupported is returned on platforms without dynamic loading.
	ErrUnsupported = errors.New("procaddr: dynamic loading not supported on this platform")

	// ErrClosed is returned when a closed Library is closed again.
	ErrClosed = errors.New("procaddr: library closed")
)
