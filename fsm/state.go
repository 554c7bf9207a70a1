// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsm implements a flat, event-dispatched finite state machine:
// a single current-state pointer plus a one-slot pending transition
// that Dispatch services by running exit/entry hooks in a fixed order.
// See hsm for the hierarchical extension built on the same status-free
// entry/exit convention.
package fsm

import (
	"github.com/ress059/ecu/ecuassert"
	"github.com/ress059/ecu/event"
)

// EntryExitFunc is an entry or exit hook. Entry may request exactly one
// transition via (*FSM).ChangeState; exit must not request any.
type EntryExitFunc func(f *FSM)

// HandlerFunc processes an event delivered to the current state. It may
// request exactly one transition via (*FSM).ChangeState, in which case
// it must return Transition.
type HandlerFunc func(f *FSM, ev *event.Base) Status

// Status is the handler's report of what it did with an event.
type Status int

const (
	// Handled means the event was processed with no transition.
	Handled Status = iota
	// Ignored means the state had no interest in the event.
	Ignored
	// Transition means the handler called ChangeState and a transition
	// is now pending.
	Transition
)

func (s Status) String() string {
	switch s {
	case Handled:
		return "HANDLED"
	case Ignored:
		return "IGNORED"
	case Transition:
		return "TRANSITION"
	default:
		return "UNKNOWN"
	}
}

// State is a single FSM state: an optional entry hook, an optional exit
// hook, and a mandatory handler. Meant to be used by value or embedded,
// the same intrusion convention dlist.Node and ntnode.Node use, but
// States carry no list/tree linkage of their own -- identity is the
// State's own address.
type State struct {
	entry   EntryExitFunc
	exit    EntryExitFunc
	handler HandlerFunc
}

// Construct initializes s. entry and exit may be nil; handler must not
// be.
func (s *State) Construct(entry, exit EntryExitFunc, handler HandlerFunc) {
	ecuassert.Require(handler != nil)
	s.entry = entry
	s.exit = exit
	s.handler = handler
}
