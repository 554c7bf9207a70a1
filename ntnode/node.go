// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ntnode implements an intrusive n-ary tree built on top of
// dlist: each Node owns a dlist.List of its children and is itself
// linked into its parent's children list via an embedded dlist.Node.
// Iteration safety for the child iterator rests entirely on reusing
// dlist's own safe-removal iterator.
package ntnode

import (
	"unsafe"

	"github.com/ress059/ecu/dlist"
	"github.com/ress059/ecu/ecuassert"
	"github.com/ress059/ecu/objid"
)

// DestroyFunc is the optional per-node cleanup callback fired by
// Destroy, once in postorder for every node in the destroyed subtree.
// The node passed in is already detached from its siblings and parent;
// the callback must not call any ntnode API on any node in that
// subtree (no destroy-during-destroy).
type DestroyFunc func(n *Node, id objid.ID)

// Node is a single tree node meant to be embedded as a field inside a
// user-defined struct, the same intrusion convention as dlist.Node.
//
// selfLink MUST remain the first field: nodeFromLink recovers the
// enclosing *Node from a *dlist.Node via an unsafe.Pointer cast,
// confining the package's one unsafe-pointer trick to this single file.
// Every exported ntnode function only ever hands callers a *Node, never
// the raw dlist.Node backing it.
type Node struct {
	selfLink dlist.Node
	children dlist.List
	parent   *Node
	destroy  DestroyFunc
}

func nodeFromLink(dn *dlist.Node) *Node {
	if dn == nil {
		return nil
	}
	return (*Node)(unsafe.Pointer(dn))
}

// Construct initializes n as a detached root. n must not already be in
// a tree. id must be >= objid.Unused.
func (n *Node) Construct(destroy DestroyFunc, id objid.ID) {
	n.children.Construct()
	n.selfLink.Construct(nil, id)
	n.parent = nil
	n.destroy = destroy
}

// ID returns the object id recorded at construction time.
func (n *Node) ID() objid.ID {
	return n.selfLink.ID()
}

// Valid reports whether n has been constructed and not yet destroyed.
func (n *Node) Valid() bool {
	return n.selfLink.Valid()
}

// IsRoot reports whether n has no parent. A root may still be the root
// of a multi-level tree -- it *is* the tree.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// InSubtree reports whether n has a parent, i.e. is not a root. Exact
// complement of IsRoot, spelled out separately since callers ask both
// questions.
func (n *Node) InSubtree() bool {
	return !n.IsRoot()
}

// Parent returns n's parent, or nil if n is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// FirstChild returns n's first child in insertion order, or nil if n
// has no children.
func (n *Node) FirstChild() *Node {
	return nodeFromLink(n.children.Front())
}

// LastChild returns n's last child in insertion order, or nil if n has
// no children.
func (n *Node) LastChild() *Node {
	return nodeFromLink(n.children.Back())
}

// Next returns n's next sibling (the next child of n's parent, in
// insertion order), or nil if n is a root or is the last child.
func (n *Node) Next() *Node {
	if n.IsRoot() {
		return nil
	}
	dn := n.selfLink.Next()
	if dn == n.parent.children.Sentinel() {
		return nil
	}
	return nodeFromLink(dn)
}

// Prev returns n's previous sibling, or nil if n is a root or is the
// first child.
func (n *Node) Prev() *Node {
	if n.IsRoot() {
		return nil
	}
	dn := n.selfLink.Prev()
	if dn == n.parent.children.Sentinel() {
		return nil
	}
	return nodeFromLink(dn)
}

// Count returns the number of direct children of n, O(#children).
func (n *Node) Count() int {
	return n.children.Size()
}

// Empty reports whether n has no children, O(1).
func (n *Node) Empty() bool {
	return n.children.IsEmpty()
}

// IsLeaf is an alias for Empty, spelled out since both names are
// useful depending on what a caller is checking.
func (n *Node) IsLeaf() bool {
	return n.Empty()
}

// Level returns n's depth: zero for any root, parent's level + 1
// otherwise. Always a fresh O(depth) walk, deliberately never cached:
// a cached value would go stale the moment n is reparented.
func (n *Node) Level() int {
	level := 0
	for p := n.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

// Size returns the total number of descendants of n (not counting n
// itself), O(subtree).
func (n *Node) Size() int {
	total := 0
	for c := n.FirstChild(); c != nil; c = c.Next() {
		total += 1 + c.Size()
	}
	return total
}

// PushChildFront links child as n's first child. child must currently
// be a root.
func (n *Node) PushChildFront(child *Node) {
	ecuassert.Require(child.IsRoot())
	n.children.PushFront(&child.selfLink)
	child.parent = n
}

// PushChildBack links child as n's last child. child must currently be
// a root.
func (n *Node) PushChildBack(child *Node) {
	ecuassert.Require(child.IsRoot())
	n.children.PushBack(&child.selfLink)
	child.parent = n
}

// InsertSiblingBefore splices sibling into the child list n belongs to,
// immediately before n. n must not be a root; sibling must be a root.
func (n *Node) InsertSiblingBefore(sibling *Node) {
	ecuassert.Require(!n.IsRoot())
	ecuassert.Require(sibling.IsRoot())
	sibling.selfLink.InsertBefore(&n.selfLink)
	sibling.parent = n.parent
}

// InsertSiblingAfter splices sibling into the child list n belongs to,
// immediately after n. n must not be a root; sibling must be a root.
func (n *Node) InsertSiblingAfter(sibling *Node) {
	ecuassert.Require(!n.IsRoot())
	ecuassert.Require(sibling.IsRoot())
	sibling.selfLink.InsertAfter(&n.selfLink)
	sibling.parent = n.parent
}

// Remove detaches n, and its entire subtree intact, from its parent,
// making n a root. Reusable immediately (e.g. re-inserted elsewhere).
// No-op if n is already a root.
func (n *Node) Remove() {
	if n.IsRoot() {
		return
	}
	n.selfLink.Remove()
	n.parent = nil
}

// Clear removes n from its parent (if any) and detaches all of n's
// descendants, resetting every one of them to an independent root. No
// destroy callbacks fire.
func (n *Node) Clear() {
	n.Remove()
	for c := n.FirstChild(); c != nil; c = n.FirstChild() {
		c.Clear()
	}
}

// Destroy recursively destroys every node in n's subtree in postorder,
// firing each node's DestroyFunc (if any) with the node already
// detached from its siblings and parent. After Destroy, n (and every
// node that was in its subtree) is invalidated; re-Construct before
// further use.
func (n *Node) Destroy() {
	n.Remove()
	destroySubtree(n)
}

func destroySubtree(n *Node) {
	for c := n.FirstChild(); c != nil; c = n.FirstChild() {
		c.parent = nil
		c.selfLink.Remove()
		destroySubtree(c)
	}
	id := n.ID()
	cb := n.destroy
	n.destroy = nil
	n.selfLink.Destroy()
	if cb != nil {
		cb(n, id)
	}
}
