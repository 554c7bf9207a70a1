// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

// nextPreorder returns the node that follows n in a preorder walk of
// the subtree rooted at root (parent visited before children), or nil
// once root's whole subtree has been exhausted.
func nextPreorder(n, root *Node) *Node {
	if fc := n.FirstChild(); fc != nil {
		return fc
	}
	for n != root {
		if sib := n.Next(); sib != nil {
			return sib
		}
		n = n.parent
	}
	return nil
}

// leftmostDescendant walks down the first-child chain from n until
// reaching a leaf, the starting point for a postorder walk.
func leftmostDescendant(n *Node) *Node {
	for {
		fc := n.FirstChild()
		if fc == nil {
			return n
		}
		n = fc
	}
}

// nextPostorder returns the node that follows n in a postorder walk of
// the subtree rooted at root (children visited before their parent), or
// nil once root itself (always last) has been visited.
func nextPostorder(n, root *Node) *Node {
	if n == root {
		return nil
	}
	if sib := n.Next(); sib != nil {
		return leftmostDescendant(sib)
	}
	return n.parent
}
