// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objid defines the signed object-id convention shared by dlist,
// ntnode, fsm and hsm. The library itself never defines an enumeration
// of user tags -- that convention lives entirely with the embedder --
// but it does reserve two negative values so library-internal sentinel
// nodes (list heads, tree roots-in-waiting) can never collide with a
// real user id.
package objid

// ID is the object-id type embedded nodes and states carry. Values >= 0
// are free for user-defined tags. Negative values are reserved by the
// core; only Unused may be passed by a caller.
type ID int

const (
	// Reserved is assigned to library-private sentinel nodes (dlist
	// heads, ntnode internals). No caller may construct a node with
	// this id.
	Reserved ID = -2

	// Unused means "no user tag". Safe for callers to pass whenever
	// they don't need to distinguish node types sharing a container.
	Unused ID = -1

	// ValidObjectIDBegin is the first id value callers may legally
	// pass to a constructor. Exists so future core releases can add
	// more reserved negative values without breaking existing callers
	// who only ever compare against this constant.
	ValidObjectIDBegin = Unused
)

// Valid reports whether id is legal for a caller to pass into a node or
// state constructor. Reserved is excluded: it is for internal use only.
func Valid(id ID) bool {
	return id >= ValidObjectIDBegin
}
