// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event defines the trivial event header that fsm and hsm
// dispatch. User event types embed Base as their first field and
// upcast/downcast around it the way dlist and ntnode nodes do.
package event

import "github.com/ress059/ecu/ecuassert"

// reserved event ids for the entry and exit phases. Never dispatched
// by user code; fsm and hsm do not dispatch them either -- they call
// entry/exit hooks directly, without any event.
const (
	exitID  int = -2
	entryID int = -1

	// UserEventIDBegin is the first id value a caller may assign to
	// their own event type.
	UserEventIDBegin int = 0
)

// Base is the header every user event type embeds as its first field.
type Base struct {
	ID int
}

// Construct initializes ev with id, which must be >= UserEventIDBegin.
// Reserved ids are for internal use by fsm/hsm only.
func Construct(ev *Base, id int) {
	ecuassert.Requiref(id >= UserEventIDBegin, "event: id %d must be >= UserEventIDBegin", id)
	ev.ID = id
}

// Entry and Exit hooks in fsm/hsm take no event argument, and neither
// package refers to the ids below; they are exported so callers can
// name the reserved values.
const (
	EntryID = entryID
	ExitID  = exitID
)

// IsReserved reports whether id lies in the reserved range below
// UserEventIDBegin, which holds EntryID and ExitID; user code must
// never dispatch such an id.
func IsReserved(id int) bool {
	return id < UserEventIDBegin
}
