// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package procaddr

import (
	"fmt"

	"github.com/gogpu/nativegfx/interop"
)

// libSpec lists what Open tries for one platform and profile.
type libSpec struct {
	// Names are the GL library candidates, most specific first.
	Names []string

	// LoaderNames are libraries holding LoaderSymbol. Empty means the
	// loader lives in the GL library itself.
	LoaderNames []string

	// LoaderSymbol is the window-system lookup function, or "" if the
	// platform exports every entry point directly.
	LoaderSymbol string
}

const darwinOpenGLFramework = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

// libraryName returns the platform-specific shared library file name.
// A version of 0 yields the unversioned name.
//
//   - Linux:   libraryName("linux", "GL", 1)    -> "libGL.so.1"
//   - macOS:   libraryName("darwin", "EGL", 0)  -> "libEGL.dylib"
//   - Windows: libraryName("windows", "EGL", 0) -> "libEGL.dll"
func libraryName(goos, name string, version int) string {
	switch goos {
	case "darwin", "ios":
		if version > 0 {
			return fmt.Sprintf("lib%s.%d.dylib", name, version)
		}
		return fmt.Sprintf("lib%s.dylib", name)
	case "windows":
		// ANGLE ships libEGL.dll and libGLESv2.dll with the lib prefix.
		return fmt.Sprintf("lib%s.dll", name)
	default:
		if version > 0 {
			return fmt.Sprintf("lib%s.so.%d", name, version)
		}
		return fmt.Sprintf("lib%s.so", name)
	}
}

// specFor returns the library candidates for goos and profile.
func specFor(goos string, p interop.GlProfile) libSpec {
	if p == interop.GlProfileEmbedded {
		return libSpec{
			Names: []string{
				libraryName(goos, "GLESv2", 2),
				libraryName(goos, "GLESv2", 0),
			},
			LoaderNames: []string{
				libraryName(goos, "EGL", 1),
				libraryName(goos, "EGL", 0),
			},
			LoaderSymbol: "eglGetProcAddress",
		}
	}
	switch goos {
	case "darwin":
		return libSpec{Names: []string{darwinOpenGLFramework}}
	default:
		return libSpec{
			Names: []string{
				libraryName(goos, "GL", 1),
				libraryName(goos, "GL", 0),
				"libOpenGL.so.0",
			},
			LoaderSymbol: "glXGetProcAddressARB",
		}
	}
}
