// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsm

import (
	"github.com/ress059/ecu/ecuassert"
	"github.com/ress059/ecu/event"
)

type phase int

const (
	phaseIdle phase = iota
	phaseHandler
	phaseEntry
	phaseExit
)

// txnKind records what, if anything, a handler requested via
// ChangeState during the dispatch currently in flight. Two bits in the
// original design (SELF_TRANSITION, STATE_TRANSITION); a three-valued
// enum expresses the same states idiomatically in Go.
type txnKind int

const (
	txnNone txnKind = iota
	txnSelf
	txnState
)

// HSM holds the current leaf state, the distinguished top state, the
// declared height bound used as a loop-safety cap on both propagation
// and LCA search, and the in-flight transition request (if any). Not
// safe for concurrent use; each instance is owned by exactly one
// logical owner.
type HSM struct {
	current  *State
	topState *State
	height   int
	kind     txnKind
	phase    phase
}

// Construct initializes h. initial must be reachable from top within
// height parent hops (Start verifies this by walking the path).
func (h *HSM) Construct(initial, top *State, height int) {
	ecuassert.Require(initial != nil)
	ecuassert.Require(top != nil)
	ecuassert.Require(height >= 0)
	h.current = initial
	h.topState = top
	h.height = height
	h.kind = txnNone
	h.phase = phaseIdle
}

// Current returns h's current (leaf) state.
func (h *HSM) Current() *State {
	return h.current
}

// ChangeState records target as the transition to perform once the
// in-flight handler returns. Callable only from within a handler;
// calling it from an entry/exit hook, outside any hook, or twice within
// one handler invocation all trap. For a non-self target, h's current
// state is updated immediately, ahead of the exit/entry sequencing
// Dispatch performs after the handler returns -- the sequencing walks
// from the pre-transition leaf (captured by Dispatch before calling any
// handler) up to the LCA, then from the LCA down to this now-current
// target.
func (h *HSM) ChangeState(target *State) {
	ecuassert.Requiref(h.phase == phaseHandler, "hsm: ChangeState called outside a handler")
	ecuassert.Requiref(h.kind == txnNone, "hsm: ChangeState called twice in one dispatch")
	ecuassert.Require(target != nil)
	if target == h.current {
		h.kind = txnSelf
	} else {
		h.kind = txnState
		h.current = target
	}
}

// Start walks from the top state down to the current state, running
// entry for every state on that path in order, ending with entry of the
// current state itself. No hook on this path may request a transition.
func (h *HSM) Start() {
	ecuassert.Requiref(h.current != nil, "hsm: Start called before Construct")
	ecuassert.Requiref(h.phase == phaseIdle, "hsm: Start called recursively")

	var path []*State
	steps := 0
	for s := h.current; ; s = s.parent {
		path = append(path, s)
		if s == h.topState {
			break
		}
		steps++
		ecuassert.Requiref(steps <= h.height, "hsm: initial state not reachable from top state within height")
	}
	for i := len(path) - 1; i >= 0; i-- {
		h.runEntry(path[i])
	}
}

// Dispatch delivers ev to the current state's handler. If the handler
// returns false and has not requested a transition, the event
// propagates to the parent state, repeating until some handler returns
// true or a transition is requested; reaching the top state's parent
// (nil) without either is a detected error. A requested transition is
// then sequenced: exits run from the pre-dispatch leaf up to (but not
// including) the LCA of the handling state and the target, then entries
// run from the LCA's child on the path to the target down to the
// target itself.
func (h *HSM) Dispatch(ev *event.Base) {
	ecuassert.Requiref(h.phase == phaseIdle, "hsm: Dispatch called recursively")

	leaf := h.current
	s := h.current
	depth := 0
	for {
		h.phase = phaseHandler
		h.kind = txnNone
		handled := s.handler(h, ev)
		h.phase = phaseIdle

		if h.kind != txnNone {
			h.serviceTransition(leaf, s)
			return
		}
		if handled {
			return
		}
		ecuassert.Requiref(s.parent != nil, "hsm: event unhandled all the way past the top state")
		s = s.parent
		depth++
		ecuassert.Requiref(depth <= h.height, "hsm: propagation exceeded declared height")
	}
}

// serviceTransition runs the exit/entry sequence for the transition
// request recorded on h. leaf is the state Dispatch started at, before
// any propagation or ChangeState mutation; p is the state whose
// handler actually requested the transition (may be an ancestor of
// leaf, if the event propagated before a handler claimed it).
func (h *HSM) serviceTransition(leaf, p *State) {
	if h.kind == txnSelf {
		h.kind = txnNone
		h.runExit(leaf)
		h.runEntry(leaf)
		return
	}

	target := h.current // ChangeState already updated this for STATE_TRANSITION
	h.kind = txnNone
	lca := h.lca(p, target)

	steps := 0
	for s := leaf; s != lca; s = s.parent {
		h.runExit(s)
		steps++
		ecuassert.Requiref(steps <= h.height, "hsm: exit walk exceeded declared height")
	}

	var path []*State
	steps = 0
	for s := target; s != lca; s = s.parent {
		path = append(path, s)
		steps++
		ecuassert.Requiref(steps <= h.height, "hsm: entry walk exceeded declared height")
	}
	for i := len(path) - 1; i >= 0; i-- {
		h.runEntry(path[i])
	}
}

// lca returns the least common ancestor of a and b in the state tree,
// bounded by h.height.
func (h *HSM) lca(a, b *State) *State {
	da, db := h.levelOf(a), h.levelOf(b)
	pa, pb := a, b
	for da > db {
		pa = pa.parent
		da--
	}
	for db > da {
		pb = pb.parent
		db--
	}
	steps := 0
	for pa != pb {
		ecuassert.Requiref(steps <= h.height, "hsm: LCA search exceeded declared height")
		pa = pa.parent
		pb = pb.parent
		steps++
	}
	return pa
}

func (h *HSM) levelOf(s *State) int {
	level := 0
	for p := s; p != h.topState; p = p.parent {
		ecuassert.Requiref(level <= h.height, "hsm: state chain exceeds declared height")
		level++
	}
	return level
}

func (h *HSM) runEntry(s *State) {
	h.phase = phaseEntry
	if s.entry != nil {
		s.entry(h)
	}
	h.phase = phaseIdle
	ecuassert.Requiref(h.kind == txnNone, "hsm: entry hook requested a transition")
}

func (h *HSM) runExit(s *State) {
	h.phase = phaseExit
	if s.exit != nil {
		s.exit(h)
	}
	h.phase = phaseIdle
	ecuassert.Requiref(h.kind == txnNone, "hsm: exit hook requested a transition")
}
