// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsm

import (
	"github.com/ress059/ecu/ecuassert"
	"github.com/ress059/ecu/event"
)

// defaultMaxTransitions bounds a chain of entry-triggered transitions
// within a single Start or Dispatch call, catching an accidental
// A-entry-requests-B, B-entry-requests-A style loop. Override with
// WithMaxTransitions when a state graph is legitimately deeper than
// this.
const defaultMaxTransitions = 16

type phase int

const (
	phaseIdle phase = iota
	phaseHandler
	phaseEntry
	phaseExit
)

// Option configures an FSM at Construct time.
type Option func(*FSM)

// WithMaxTransitions overrides the cap on consecutive entry-triggered
// transitions processed within one Start or Dispatch call.
func WithMaxTransitions(n int) Option {
	ecuassert.Require(n > 0)
	return func(f *FSM) { f.maxTransitions = n }
}

// FSM holds a single current-state pointer and a one-slot pending
// transition. Not safe for concurrent use; each instance is owned by
// exactly one logical owner, per the library's single-threaded
// ownership model.
type FSM struct {
	current        *State
	pending        *State
	havePending    bool
	phase          phase
	maxTransitions int
}

// Construct initializes f with initial as its starting state. Start
// must be called before the first Dispatch.
func (f *FSM) Construct(initial *State, opts ...Option) {
	ecuassert.Require(initial != nil)
	f.current = initial
	f.pending = nil
	f.havePending = false
	f.phase = phaseIdle
	f.maxTransitions = defaultMaxTransitions
	for _, opt := range opts {
		opt(f)
	}
}

// Current returns the FSM's current state.
func (f *FSM) Current() *State {
	return f.current
}

// ChangeState records target as the pending transition. Callable only
// from within a handler or an entry hook; calling it from an exit hook,
// outside any hook, or twice within a single handler/entry invocation
// all trap.
func (f *FSM) ChangeState(target *State) {
	ecuassert.Requiref(f.phase == phaseHandler || f.phase == phaseEntry,
		"fsm: ChangeState called outside handler/entry")
	ecuassert.Requiref(!f.havePending, "fsm: ChangeState called twice in one invocation")
	ecuassert.Require(target != nil)
	f.pending = target
	f.havePending = true
}

// Start runs entry of the current state. If entry requests a
// transition, the new state's entry runs next, and so on -- chained
// here without any intervening exit, since no state has truly been
// active yet. A self-transition requested during Start's entry chain
// is a detected error (it can never terminate, since Start never exits
// the state it is entering).
func (f *FSM) Start() {
	ecuassert.Requiref(f.current != nil, "fsm: Start called before Construct")
	ecuassert.Requiref(f.phase == phaseIdle, "fsm: Start called recursively")

	s := f.current
	chain := 0
	for {
		f.current = s
		f.runEntry(s)
		if !f.havePending {
			return
		}
		next := f.takePending()
		ecuassert.Requiref(next != s, "fsm: self-transition requested during Start's entry chain")
		chain++
		ecuassert.Requiref(chain <= f.maxTransitions, "fsm: exceeded max transition chain in Start")
		s = next
	}
}

// Dispatch delivers ev to the current state's handler, then services
// any transition the handler (or a chain of subsequently-run entries)
// requests, running exits bottom-up then entries top-down exactly as
// described by the handler's Status return.
func (f *FSM) Dispatch(ev *event.Base) Status {
	ecuassert.Requiref(f.phase == phaseIdle, "fsm: Dispatch called recursively")

	f.phase = phaseHandler
	f.havePending = false
	status := f.current.handler(f, ev)
	f.phase = phaseIdle

	if status == Transition {
		ecuassert.Requiref(f.havePending, "fsm: handler returned Transition without calling ChangeState")
	} else {
		ecuassert.Requiref(!f.havePending, "fsm: ChangeState was called but handler did not return Transition")
		return status
	}

	chain := 0
	for f.havePending {
		target := f.takePending()
		f.runExit(f.current)
		f.current = target
		f.runEntry(target)
		chain++
		ecuassert.Requiref(chain <= f.maxTransitions, "fsm: exceeded max transition chain in Dispatch")
	}
	return Transition
}

func (f *FSM) runEntry(s *State) {
	f.phase = phaseEntry
	f.havePending = false
	if s.entry != nil {
		s.entry(f)
	}
	f.phase = phaseIdle
}

func (f *FSM) runExit(s *State) {
	f.phase = phaseExit
	if s.exit != nil {
		s.exit(f)
	}
	f.phase = phaseIdle
	ecuassert.Requiref(!f.havePending, "fsm: exit hook requested a transition")
}

func (f *FSM) takePending() *State {
	p := f.pending
	f.pending = nil
	f.havePending = false
	return p
}
