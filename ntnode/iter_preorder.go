// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

import "github.com/ress059/ecu/ecuassert"

// PreorderIterator walks the subtree rooted at a node in preorder:
// every node before its own children, root first.
//
// Unlike the other four iterator kinds, PreorderIterator does NOT
// prefetch: the next node is computed from the current one's own
// links at Next time. Removing or destroying the current node
// mid-walk severs the very links nextPreorder needs to find where to
// go next, so doing so is unsafe and produces an undefined walk --
// callers that need to delete while walking should use
// PostorderIterator instead.
type PreorderIterator struct {
	root    *Node
	current *Node
}

// Begin starts a preorder walk of root's subtree.
func (it *PreorderIterator) Begin(root *Node) *Node {
	it.root = root
	it.current = root
	return it.current
}

// End returns the sentinel marking one-past-the-last node.
func (it *PreorderIterator) End() *Node {
	return nil
}

// Next advances to the next node in preorder. Calling Next after the
// iteration has ended traps.
func (it *PreorderIterator) Next() *Node {
	ecuassert.Requiref(it.current != nil, "ntnode: Next called after iteration ended")
	it.current = nextPreorder(it.current, it.root)
	return it.current
}

// PreorderConstIterator is the read-only counterpart to PreorderIterator.
type PreorderConstIterator struct {
	it PreorderIterator
}

// CBegin starts a read-only preorder walk of root's subtree.
func (it *PreorderConstIterator) CBegin(root *Node) *Node {
	return it.it.Begin(root)
}

// CEnd returns the sentinel marking one-past-the-last node.
func (it *PreorderConstIterator) CEnd() *Node {
	return it.it.End()
}

// CNext advances to the next node in preorder.
func (it *PreorderConstIterator) CNext() *Node {
	return it.it.Next()
}
