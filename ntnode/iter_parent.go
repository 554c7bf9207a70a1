// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

import "github.com/ress059/ecu/ecuassert"

// ParentAtIterator walks from a starting node up through its ancestor
// chain, visiting the starting node itself first, then its parent, its
// grandparent, and so on up to and including the root. Safe to
// Remove/Destroy the current element mid-iteration: the next ancestor
// is prefetched before the current node is ever handed back.
type ParentAtIterator struct {
	current *Node
	next    *Node
}

// Begin starts iteration at start, which is visited first.
func (it *ParentAtIterator) Begin(start *Node) *Node {
	it.current = start
	if start != nil {
		it.next = start.parent
	} else {
		it.next = nil
	}
	return it.current
}

// End returns the sentinel marking one-past-the-root.
func (it *ParentAtIterator) End() *Node {
	return nil
}

// Next advances to the next ancestor. Calling Next after the iteration
// has ended traps.
func (it *ParentAtIterator) Next() *Node {
	ecuassert.Requiref(it.current != nil, "ntnode: Next called after iteration ended")
	it.current = it.next
	if it.current != nil {
		it.next = it.current.parent
	} else {
		it.next = nil
	}
	return it.current
}

// ParentAtConstIterator is the read-only counterpart to ParentAtIterator.
type ParentAtConstIterator struct {
	it ParentAtIterator
}

// CBegin starts read-only iteration at start.
func (it *ParentAtConstIterator) CBegin(start *Node) *Node {
	return it.it.Begin(start)
}

// CEnd returns the sentinel marking one-past-the-root.
func (it *ParentAtConstIterator) CEnd() *Node {
	return it.it.End()
}

// CNext advances to the next ancestor.
func (it *ParentAtConstIterator) CNext() *Node {
	return it.it.Next()
}

// ParentIterator walks strictly upward from a node's parent to the
// root, never visiting the starting node itself. A thin wrapper over
// ParentAtIterator started one level up.
type ParentIterator struct {
	it ParentAtIterator
}

// Begin starts iteration at start.Parent(), or returns End if start is
// a root.
func (it *ParentIterator) Begin(start *Node) *Node {
	if start == nil {
		return it.it.Begin(nil)
	}
	return it.it.Begin(start.Parent())
}

// End returns the sentinel marking one-past-the-root.
func (it *ParentIterator) End() *Node {
	return it.it.End()
}

// Next advances to the next ancestor.
func (it *ParentIterator) Next() *Node {
	return it.it.Next()
}

// ParentConstIterator is the read-only counterpart to ParentIterator.
type ParentConstIterator struct {
	it ParentIterator
}

// CBegin starts read-only iteration at start.Parent().
func (it *ParentConstIterator) CBegin(start *Node) *Node {
	return it.it.Begin(start)
}

// CEnd returns the sentinel marking one-past-the-root.
func (it *ParentConstIterator) CEnd() *Node {
	return it.it.End()
}

// CNext advances to the next ancestor.
func (it *ParentConstIterator) CNext() *Node {
	return it.it.Next()
}
