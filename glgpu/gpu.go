// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgpu

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/interop"
	"github.com/gogpu/nativegfx/internal/logging"
)

// BackendName identifies the OpenGL backend family.
const BackendName = "gl"

// IIDGlGpu identifies the OpenGL backend's own context type. Only contexts
// created by this package answer it; render target construction uses it
// to reject contexts from other backend families.
var IIDGlGpu = com.MustParseIID("8f0d3c55-1e7b-4a0c-b6d2-3c94e1f2a701")

var gpuTable = com.NewTable(
	com.Entry(interop.IIDGpu, func(u com.Unknown) com.Unknown { return u.(interop.Gpu) }),
	com.Entry(IIDGlGpu, nil),
)

// State is the construction state of a context.
type State uint32

const (
	// StateUninitialized is the state before resolution starts.
	StateUninitialized State = iota

	// StateInitializing is the state while entry points are resolved.
	StateInitializing

	// StateReady is the terminal operational state.
	StateReady

	// StateFailed is the terminal state of a context whose construction
	// failed. Such contexts are never returned.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}

var nextGpuID atomic.Uint64

// Gpu is an OpenGL or OpenGL ES context binding.
//
// A Gpu is immutable once Ready and may be shared by any number of render
// targets on any goroutine. Render targets do not keep it alive; the
// owner must hold a claim until every render target built from it has
// been released.
type Gpu struct {
	com.Object

	id       uint64
	profile  interop.GlProfile
	state    atomic.Uint32
	procs    *ProcTable
	observer func(State)

	// targets counts live render targets bound to this context. It is
	// diagnostic only and never extends the context's lifetime.
	targets atomic.Int32
}

// Create builds a context for profile, binding entry points through
// resolver. On success the returned context carries one claim owned by
// the caller.
//
// resolver is called synchronously and is not retained. If any required
// entry point cannot be resolved, Create returns an error wrapping
// ErrProcNotFound and no context.
func Create(profile interop.GlProfile, resolver interop.ProcAddressResolver, opts ...Option) (*Gpu, error) {
	if !profile.Valid() {
		return nil, fmt.Errorf("%w: unknown GL profile %d", com.ErrInvalidArg, profile)
	}
	if resolver == nil {
		return nil, fmt.Errorf("%w: nil address resolver", com.ErrInvalidArg)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g := &Gpu{
		id:       nextGpuID.Add(1),
		profile:  profile,
		observer: o.observer,
	}
	g.transition(StateInitializing)

	required := append(RequiredProcs(profile), o.required...)
	optional := append(OptionalProcs(profile), o.optional...)
	procs, err := resolveProcs(profile, resolver, required, optional)
	if err != nil {
		g.transition(StateFailed)
		logging.L().Warn("glgpu: context construction failed",
			"profile", profile.String(), "error", err)
		return nil, err
	}

	g.procs = procs
	g.Init(g, gpuTable, g.destroy)
	g.transition(StateReady)
	g.AddRef()

	logging.L().Debug("glgpu: context ready",
		"id", g.id, "profile", profile.String(), "procs", procs.Len())
	return g, nil
}

// transition moves the context to next. Only the forward edges of the
// construction state machine are allowed.
func (g *Gpu) transition(next State) {
	cur := State(g.state.Load())
	valid := false
	switch next {
	case StateInitializing:
		valid = cur == StateUninitialized
	case StateReady, StateFailed:
		valid = cur == StateInitializing
	}
	if !valid {
		panic(fmt.Sprintf("glgpu: invalid state transition %s -> %s", cur, next))
	}
	g.state.Store(uint32(next))
	if g.observer != nil {
		g.observer(next)
	}
}

func (g *Gpu) destroy() {
	if n := g.targets.Load(); n > 0 {
		logging.L().Warn("glgpu: context released while render targets are live",
			"id", g.id, "renderTargets", n)
	}
	logging.L().Debug("glgpu: context destroyed", "id", g.id)
}

// Backend implements interop.Gpu.
func (g *Gpu) Backend() string { return BackendName }

// ID returns a process-unique identifier for the context.
func (g *Gpu) ID() uint64 { return g.id }

// Profile returns the GL profile the context is bound to.
func (g *Gpu) Profile() interop.GlProfile { return g.profile }

// State returns the construction state.
func (g *Gpu) State() State { return State(g.state.Load()) }

// Proc returns the resolved address of the named entry point.
func (g *Gpu) Proc(name string) (uintptr, bool) { return g.procs.Lookup(name) }

// Procs returns the resolved entry point table.
func (g *Gpu) Procs() *ProcTable { return g.procs }

// RenderTargets returns the number of live render targets bound to the
// context.
func (g *Gpu) RenderTargets() int { return int(g.targets.Load()) }

// FromGpu narrows a context handle to the OpenGL backend's own type.
//
// The check is made with QueryInterface(IIDGlGpu), so contexts from other
// backend families are rejected with com.ErrInvalidArg. The result is a
// structural reference: no claim is added.
func FromGpu(gpu interop.Gpu) (*Gpu, error) {
	if com.IsNil(gpu) {
		return nil, fmt.Errorf("%w: nil gpu", com.ErrInvalidArg)
	}
	u, err := gpu.QueryInterface(IIDGlGpu)
	if err != nil {
		return nil, fmt.Errorf("%w: gpu from backend %q is not an OpenGL context", com.ErrInvalidArg, gpu.Backend())
	}
	defer u.Release()

	g, ok := u.(*Gpu)
	if !ok {
		return nil, fmt.Errorf("%w: object answering %s is not an OpenGL context", com.ErrInvalidArg, IIDGlGpu)
	}
	return g, nil
}
