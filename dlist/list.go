// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlist

import (
	"github.com/ress059/ecu/ecuassert"
	"github.com/ress059/ecu/objid"
)

// List is a circular doubly linked list with a sentinel head node. The
// sentinel is never returned as an element -- iterators hand it back
// only as End, and Sentinel exposes it for packages built on dlist; it
// exists purely as the O(1) splice point both ends of the list share.
type List struct {
	head Node
	gen  uint64
}

// Construct initializes me as an empty list. me must not already be an
// active list.
func (me *List) Construct() {
	me.head.next = &me.head
	me.head.prev = &me.head
	me.head.destroy = nil
	me.head.id = objid.Reserved
	me.head.isHead = true
}

// Destroy destroys every element (firing destroy callbacks, see
// DestroyFunc) and resets me so it is immediately reusable as an empty
// list without a fresh Construct call.
func (me *List) Destroy() {
	ecuassert.Require(me.head.isHead)
	for n := me.head.next; n != &me.head; {
		next := n.next
		n.Destroy()
		n = next
	}
	me.gen++
	me.Construct()
}

// Clear removes every node without invoking destroy callbacks. Removed
// nodes return to the detached state and are immediately reusable.
func (me *List) Clear() {
	ecuassert.Require(me.head.isHead)
	for n := me.head.next; n != &me.head; {
		next := n.next
		n.unlink()
		n = next
	}
	me.gen++
}

// PushFront inserts node at the front of me, immediately after the
// sentinel.
func (me *List) PushFront(node *Node) {
	ecuassert.Require(me.head.isHead)
	insertAfter(&me.head, node)
}

// PushBack inserts node at the back of me, immediately before the
// sentinel.
func (me *List) PushBack(node *Node) {
	ecuassert.Require(me.head.isHead)
	insertBefore(&me.head, node)
}

// InsertBeforePredicate walks me and inserts node before the first
// element for which pred reports true. If no element matches (including
// an empty list), node is pushed to the back. ctx is an arbitrary,
// type-safe context value threaded through to every pred call -- a
// generics-based replacement for a void* data parameter. pred receives
// elem read-only by convention; callers must not mutate it.
func InsertBeforePredicate[C any](me *List, node *Node, pred func(elem *Node, ctx C) bool, ctx C) {
	ecuassert.Require(me.head.isHead)
	for n := me.head.next; n != &me.head; n = n.next {
		if pred(n, ctx) {
			insertBefore(n, node)
			return
		}
	}
	insertBefore(&me.head, node)
}

// Size returns the number of user-visible elements in me via O(n)
// traversal; size is never cached.
func (me *List) Size() int {
	ecuassert.Require(me.head.isHead)
	n := 0
	for c := me.head.next; c != &me.head; c = c.next {
		n++
	}
	return n
}

// IsEmpty reports whether me has no user-visible elements, in O(1).
func (me *List) IsEmpty() bool {
	ecuassert.Require(me.head.isHead)
	return me.head.next == &me.head
}

// Sentinel returns me's head node, for packages (ntnode) that build a
// richer structure on top of dlist and need to recognize "one past the
// end" while raw-chasing Next()/Prev() links. Never returned to an
// ordinary dlist caller by any other accessor.
func (me *List) Sentinel() *Node {
	return &me.head
}

// Front returns the first user-visible element, or nil if me is empty.
func (me *List) Front() *Node {
	ecuassert.Require(me.head.isHead)
	if me.IsEmpty() {
		return nil
	}
	return me.head.next
}

// Back returns the last user-visible element, or nil if me is empty.
func (me *List) Back() *Node {
	ecuassert.Require(me.head.isHead)
	if me.IsEmpty() {
		return nil
	}
	return me.head.prev
}
