// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

import "github.com/ress059/ecu/ecuassert"

// PostorderIterator walks the subtree rooted at a node in postorder:
// every descendant before its own parent, root last. Safe to
// Remove/Destroy the current element mid-iteration: the next node is
// prefetched, using nextPostorder, before the current one is handed
// back.
type PostorderIterator struct {
	root    *Node
	current *Node
	next    *Node
}

// Begin starts a postorder walk of root's subtree.
func (it *PostorderIterator) Begin(root *Node) *Node {
	it.root = root
	if root == nil {
		it.current, it.next = nil, nil
		return nil
	}
	it.current = leftmostDescendant(root)
	it.next = nextPostorder(it.current, root)
	return it.current
}

// End returns the sentinel marking one-past-the-root.
func (it *PostorderIterator) End() *Node {
	return nil
}

// Next advances to the next node in postorder. Calling Next after the
// iteration has ended traps.
func (it *PostorderIterator) Next() *Node {
	ecuassert.Requiref(it.current != nil, "ntnode: Next called after iteration ended")
	it.current = it.next
	if it.current == nil {
		return nil
	}
	it.next = nextPostorder(it.current, it.root)
	return it.current
}

// PostorderConstIterator is the read-only counterpart to PostorderIterator.
type PostorderConstIterator struct {
	it PostorderIterator
}

// CBegin starts a read-only postorder walk of root's subtree.
func (it *PostorderConstIterator) CBegin(root *Node) *Node {
	return it.it.Begin(root)
}

// CEnd returns the sentinel marking one-past-the-root.
func (it *PostorderConstIterator) CEnd() *Node {
	return it.it.End()
}

// CNext advances to the next node in postorder.
func (it *PostorderConstIterator) CNext() *Node {
	return it.it.Next()
}
