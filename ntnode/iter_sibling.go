// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

import (
	"github.com/ress059/ecu/dlist"
	"github.com/ress059/ecu/ecuassert"
)

// SiblingIterator visits every other child of a node's parent, in
// insertion order starting just after the node itself and wrapping
// around, but never the node itself. Safe to Remove/Destroy the
// current element mid-iteration: the next sibling is prefetched before
// the current one is handed back.
//
// The starting node's own link acts as the circular boundary: the walk
// stops the moment it would return to that link. The parent's children
// list sentinel is skipped transparently so the wraparound is
// invisible to callers.
type SiblingIterator struct {
	parent   *Node
	boundary *dlist.Node
	current  *Node
	next     *Node
}

// Begin starts iteration just after start, which is never itself
// visited. start must not be a root.
func (it *SiblingIterator) Begin(start *Node) *Node {
	it.parent = start.parent
	it.boundary = start.rawLink()
	dn := it.advance(it.boundary)
	if dn == it.boundary {
		it.current = nil
		it.next = nil
		return nil
	}
	it.current = nodeFromLink(dn)
	it.next = it.peek(dn)
	return it.current
}

// End returns the sentinel marking one-past-the-last sibling.
func (it *SiblingIterator) End() *Node {
	return nil
}

// Next advances to the next sibling. Calling Next after the iteration
// has ended traps.
func (it *SiblingIterator) Next() *Node {
	ecuassert.Requiref(it.current != nil, "ntnode: Next called after iteration ended")
	it.current = it.next
	if it.current == nil {
		return nil
	}
	it.next = it.peek(it.current.rawLink())
	return it.current
}

func (it *SiblingIterator) peek(dn *dlist.Node) *Node {
	nxt := it.advance(dn)
	if nxt == it.boundary {
		return nil
	}
	return nodeFromLink(nxt)
}

// advance steps one dlist position forward from dn, transparently
// skipping over the parent's children-list sentinel.
func (it *SiblingIterator) advance(dn *dlist.Node) *dlist.Node {
	nxt := dn.Next()
	if nxt == it.parent.children.Sentinel() {
		nxt = nxt.Next()
	}
	return nxt
}

func (n *Node) rawLink() *dlist.Node {
	return &n.selfLink
}

// SiblingConstIterator is the read-only counterpart to SiblingIterator.
type SiblingConstIterator struct {
	it SiblingIterator
}

// CBegin starts read-only iteration just after start.
func (it *SiblingConstIterator) CBegin(start *Node) *Node {
	return it.it.Begin(start)
}

// CEnd returns the sentinel marking one-past-the-last sibling.
func (it *SiblingConstIterator) CEnd() *Node {
	return it.it.End()
}

// CNext advances to the next sibling.
func (it *SiblingConstIterator) CNext() *Node {
	return it.it.Next()
}
