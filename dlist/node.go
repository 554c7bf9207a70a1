// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlist

import (
	"github.com/ress059/ecu/ecuassert"
	"github.com/ress059/ecu/objid"
)

// DestroyFunc is the optional per-node cleanup callback fired by
// (*Node).Destroy and (*List).Destroy. It must not call any dlist API
// against the list the node was just removed from.
type DestroyFunc func(n *Node, id objid.ID)

// Node is a single circular-doubly-linked-list node meant to be
// embedded as a field inside a user-defined struct. It carries no
// payload of its own -- the embedder recovers their struct from a *Node
// the same way container/list recovers an Element's Value, except here
// the node lives inside the struct rather than the other way around.
type Node struct {
	next, prev *Node
	destroy    DestroyFunc
	id         objid.ID
	isHead     bool
}

// Construct initializes n as a detached node. n must not already be
// part of a list. id must be >= objid.Unused; objid.Reserved is library
// private and traps if passed here.
func (n *Node) Construct(destroy DestroyFunc, id objid.ID) {
	ecuassert.Require(n.next == nil || n.next == n)
	ecuassert.Require(objid.Valid(id))
	n.next = n
	n.prev = n
	n.destroy = destroy
	n.id = id
	n.isHead = false
}

// InList reports whether n is currently linked into some list.
func (n *Node) InList() bool {
	return n.next != n
}

// ID returns the object id recorded at construction time.
func (n *Node) ID() objid.ID {
	return n.id
}

// Valid reports whether n has been constructed and not yet destroyed.
// A zero-value Node (never constructed) and a destroyed Node are both
// invalid; Destroy sets id back to objid.Reserved precisely so this
// check can tell the two "unusable" states from a live one.
func (n *Node) Valid() bool {
	return n.id != objid.Reserved && n.next != nil
}

// Remove unlinks n from whatever list it is in and returns it to the
// detached (self-looped) state. n must not be a List's sentinel. Safe
// to call on an already-detached node (no-op).
func (n *Node) Remove() {
	ecuassert.Require(!n.isHead)
	n.unlink()
}

func (n *Node) unlink() {
	n.next.prev = n.prev
	n.prev.next = n.next
	n.next = n
	n.prev = n
}

// Destroy removes n if linked, fires its destroy callback if one was
// supplied, then invalidates n. Using n through the dlist API after
// this is a detected error: Valid will report false and every
// operation taking n as a live node traps.
func (n *Node) Destroy() {
	ecuassert.Require(!n.isHead)
	ecuassert.Require(n.Valid())

	if n.InList() {
		n.unlink()
	}
	if n.destroy != nil {
		id := n.id
		cb := n.destroy
		n.destroy = nil
		cb(n, id)
	}
	n.next = nil
	n.prev = nil
	n.id = objid.Reserved
}

// InsertBefore splices node immediately before pos. pos must already be
// in a list; node must be detached. Safe to call mid-iteration; whether
// node is visited in the current pass depends on where pos lies (see
// Iterator).
func (node *Node) InsertBefore(pos *Node) {
	insertBefore(pos, node)
}

// InsertAfter splices node immediately after pos. pos must already be
// in a list; node must be detached.
func (node *Node) InsertAfter(pos *Node) {
	insertBefore(pos.next, node)
}

// insertBefore splices node immediately before pos. pos must already be
// linked (it may be a List's sentinel); node must be detached.
func insertBefore(pos, node *Node) {
	ecuassert.Require(pos.next != nil)
	ecuassert.Require(!node.InList())
	ecuassert.Require(node != pos)

	node.next = pos
	node.prev = pos.prev
	pos.prev.next = node
	pos.prev = node
}

// insertAfter splices node immediately after pos.
func insertAfter(pos, node *Node) {
	insertBefore(pos.next, node)
}

// Next returns n's raw successor link, which may be a List's sentinel.
// Exists for packages (ntnode) that build a richer structure on top of
// dlist and need raw link-chasing; ordinary callers should prefer
// Iterator, which never exposes the sentinel.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns n's raw predecessor link, which may be a List's
// sentinel. See Next.
func (n *Node) Prev() *Node {
	return n.prev
}
