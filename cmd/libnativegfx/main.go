// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command libnativegfx builds nativegfx as a C shared library:
//
//	go build -buildmode=c-shared -o libnativegfx.so ./cmd/libnativegfx
//
// Objects cross the boundary as opaque handles. Every handle written to an
// out parameter carries one claim that the host releases with
// NativeGraphicsRelease. Functions returning int32_t use the HRESULT
// convention: 0 on success, E_POINTER for a null out parameter and
// E_INVALIDARG for unknown or mismatched handles. Nothing is written to
// out on failure.
package main

/*
#include <stdint.h>

typedef struct {
	int32_t  width;
	int32_t  height;
	double   scaling;
	uint32_t framebuffer;
	int32_t  sample_count;
	int32_t  stencil_bits;
} NativeGraphicsSurfaceInfo;
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/interop"
	"github.com/gogpu/nativegfx/procaddr"
)

func main() {}

// CreateNativeGraphics returns a handle to a new Factory carrying one
// claim.
//
//export CreateNativeGraphics
func CreateNativeGraphics() C.uintptr_t {
	return C.uintptr_t(exported.createNativeGraphics())
}

//export NativeGraphicsAddRef
func NativeGraphicsAddRef(h C.uintptr_t) C.uint32_t {
	return C.uint32_t(exported.addRef(uintptr(h)))
}

//export NativeGraphicsRelease
func NativeGraphicsRelease(h C.uintptr_t) C.uint32_t {
	return C.uint32_t(exported.release(uintptr(h)))
}

// NativeGraphicsQueryInterface narrows the object behind h to the
// interface whose 16-byte identifier iid points to.
//
//export NativeGraphicsQueryInterface
func NativeGraphicsQueryInterface(h C.uintptr_t, iid *C.uint8_t, out *C.uintptr_t) C.int32_t {
	if iid == nil || out == nil {
		return C.int32_t(com.StatusPointer)
	}
	var id com.IID
	copy(id[:], unsafe.Slice((*byte)(unsafe.Pointer(iid)), len(id)))
	return C.int32_t(exported.queryInterface(uintptr(h), id, (*uintptr)(unsafe.Pointer(out))))
}

//export NativeGraphicsGetVersion
func NativeGraphicsGetVersion(factory C.uintptr_t) C.int32_t {
	return C.int32_t(exported.getVersion(uintptr(factory)))
}

// NativeGraphicsCreateGlGpu creates a GPU context. getProcAddress is a
// function pointer of type void *(*)(const char *); it is called only
// during this call.
//
//export NativeGraphicsCreateGlGpu
func NativeGraphicsCreateGlGpu(factory C.uintptr_t, gles C.int32_t, getProcAddress C.uintptr_t, out *C.uintptr_t) C.int32_t {
	if out == nil {
		return C.int32_t(com.StatusPointer)
	}
	if getProcAddress == 0 {
		return C.int32_t(com.StatusInvalidArg)
	}
	profile := interop.GlProfileFull
	if gles != 0 {
		profile = interop.GlProfileEmbedded
	}
	return C.int32_t(exported.createGlGpu(uintptr(factory), profile,
		procaddr.FromCFunc(uintptr(getProcAddress)), (*uintptr)(unsafe.Pointer(out))))
}

// NativeGraphicsCreateGlGpuRenderTarget binds the context behind gpu to a
// host surface described by the callbacks:
//
//	void info(void *userdata, NativeGraphicsSurfaceInfo *out);
//	void release(void *userdata);    // optional
//
// release is called once, when the render target drops the surface. It is
// never called if this function fails.
//
//export NativeGraphicsCreateGlGpuRenderTarget
func NativeGraphicsCreateGlGpuRenderTarget(factory, gpu C.uintptr_t, info, release, userdata C.uintptr_t, out *C.uintptr_t) C.int32_t {
	if out == nil {
		return C.int32_t(com.StatusPointer)
	}
	if info == 0 {
		return C.int32_t(com.StatusInvalidArg)
	}
	newSurface := func() hostSurface {
		return newCSurface(uintptr(info), uintptr(release), uintptr(userdata))
	}
	return C.int32_t(exported.createGlGpuRenderTarget(uintptr(factory), uintptr(gpu),
		newSurface, (*uintptr)(unsafe.Pointer(out))))
}
