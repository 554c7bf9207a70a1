// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

import "github.com/ress059/ecu/dlist"

// ChildIterator visits a node's direct children in insertion order.
// Safe to Remove/Destroy the current element mid-iteration: it reuses
// dlist.Iterator's own prefetch-next guarantee, since a node's children
// list IS the list this iterator walks.
type ChildIterator struct {
	it     dlist.Iterator
	parent *Node
}

// Begin starts (or restarts) iteration over parent's children.
func (it *ChildIterator) Begin(parent *Node) *Node {
	it.parent = parent
	dn := it.it.Begin(&parent.children)
	return it.wrap(dn)
}

// End returns the sentinel marking one-past-the-last child.
func (it *ChildIterator) End() *Node {
	return nil
}

// Next advances the iterator. Calling Next after the iteration has
// ended traps.
func (it *ChildIterator) Next() *Node {
	return it.wrap(it.it.Next())
}

func (it *ChildIterator) wrap(dn *dlist.Node) *Node {
	if dn == it.it.End() {
		return nil
	}
	return nodeFromLink(dn)
}

// ChildConstIterator is the read-only counterpart to ChildIterator.
type ChildConstIterator struct {
	it ChildIterator
}

// CBegin starts (or restarts) read-only iteration over parent's children.
func (it *ChildConstIterator) CBegin(parent *Node) *Node {
	return it.it.Begin(parent)
}

// CEnd returns the sentinel marking one-past-the-last child.
func (it *ChildConstIterator) CEnd() *Node {
	return it.it.End()
}

// CNext advances the iterator.
func (it *ChildConstIterator) CNext() *Node {
	return it.it.Next()
}
