// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsm implements a hierarchical, UML-style state machine:
// states form a tree via parent pointers, an unhandled event propagates
// up that tree from the dispatching leaf toward the top state, and a
// requested transition is sequenced through exit/entry hooks using the
// least common ancestor of the handling state and the target. Built on
// the same one-shot-pending-transition idea as fsm, generalized with
// parent-chain propagation and LCA-based sequencing.
package hsm

import (
	"github.com/ress059/ecu/ecuassert"
	"github.com/ress059/ecu/event"
)

// EntryExitFunc is an entry or exit hook. Neither may request a
// transition -- only a handler may.
type EntryExitFunc func(h *HSM)

// HandlerFunc processes an event at a state. Returning false propagates
// the event to the state's parent; returning true stops propagation. A
// handler may additionally call (*HSM).ChangeState to request exactly
// one transition, regardless of its boolean return value.
type HandlerFunc func(h *HSM, ev *event.Base) bool

// State is a single HSM state: optional entry/exit hooks, a mandatory
// handler, and a parent pointer (nil only for the unique top state).
type State struct {
	entry   EntryExitFunc
	exit    EntryExitFunc
	handler HandlerFunc
	parent  *State
}

// Construct initializes s. parent must be nil only for the state that
// will be passed as an HSM's top_state.
func (s *State) Construct(entry, exit EntryExitFunc, handler HandlerFunc, parent *State) {
	ecuassert.Require(handler != nil)
	s.entry = entry
	s.exit = exit
	s.handler = handler
	s.parent = parent
}

// Parent returns s's parent, or nil if s is a top state.
func (s *State) Parent() *State {
	return s.parent
}
