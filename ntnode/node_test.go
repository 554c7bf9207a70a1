// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

import (
	"testing"
	"unsafe"

	"github.com/ress059/ecu/objid"
)

type testNode struct {
	Node
	label string
}

func leaf(label string) *testNode {
	n := &testNode{label: label}
	n.Node.Construct(nil, objid.Unused)
	return n
}

func labelOf(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return (*testNode)(unsafe.Pointer(n)).label
}

func TestNodePushChildFrontBack(t *testing.T) {
	root := leaf("R")
	a, b, c := leaf("A"), leaf("B"), leaf("C")
	root.PushChildBack(&b.Node)
	root.PushChildFront(&a.Node)
	root.PushChildBack(&c.Node)

	var got []string
	for n := root.FirstChild(); n != nil; n = n.Next() {
		got = append(got, labelOf(n))
	}
	want := []string{"A", "B", "C"}
	if !stringsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if root.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", root.Count())
	}
}

func TestNodeIsRootAndParent(t *testing.T) {
	root := leaf("R")
	a := leaf("A")
	if !root.IsRoot() {
		t.Fatal("fresh node must be a root")
	}
	root.PushChildBack(&a.Node)
	if a.IsRoot() {
		t.Fatal("child must not be a root")
	}
	if a.Parent() != &root.Node {
		t.Fatal("child's Parent() must be root")
	}
	if !a.InSubtree() {
		t.Fatal("child must report InSubtree")
	}
}

func TestNodeLevel(t *testing.T) {
	root := leaf("R")
	a := leaf("A")
	b := leaf("B")
	root.PushChildBack(&a.Node)
	a.PushChildBack(&b.Node)

	if root.Level() != 0 {
		t.Fatalf("root.Level() = %d, want 0", root.Level())
	}
	if a.Level() != 1 {
		t.Fatalf("a.Level() = %d, want 1", a.Level())
	}
	if b.Level() != 2 {
		t.Fatalf("b.Level() = %d, want 2", b.Level())
	}
}

func TestNodeSize(t *testing.T) {
	root := leaf("R")
	a, b, c := leaf("A"), leaf("B"), leaf("C")
	root.PushChildBack(&a.Node)
	root.PushChildBack(&b.Node)
	a.PushChildBack(&c.Node)

	if root.Size() != 3 {
		t.Fatalf("root.Size() = %d, want 3", root.Size())
	}
	if a.Size() != 1 {
		t.Fatalf("a.Size() = %d, want 1", a.Size())
	}
	if b.Size() != 0 {
		t.Fatalf("b.Size() = %d, want 0", b.Size())
	}
}

func TestNodeRemovePreservesSubtree(t *testing.T) {
	root := leaf("R")
	a := leaf("A")
	b := leaf("B")
	root.PushChildBack(&a.Node)
	a.PushChildBack(&b.Node)

	a.Remove()
	if !a.IsRoot() {
		t.Fatal("removed node must become a root")
	}
	if root.Count() != 0 {
		t.Fatal("root must lose its only child")
	}
	if a.Count() != 1 || a.FirstChild() != &b.Node {
		t.Fatal("removed subtree must stay intact")
	}
}

func TestNodeClearFlattensAllDescendants(t *testing.T) {
	root := leaf("R")
	a := leaf("A")
	b := leaf("B")
	root.PushChildBack(&a.Node)
	a.PushChildBack(&b.Node)

	root.Clear()
	if root.Count() != 0 {
		t.Fatal("Clear must detach all direct children")
	}
	if !a.IsRoot() {
		t.Fatal("former child must become an independent root")
	}
	if a.FirstChild() != nil || !b.IsRoot() {
		t.Fatal("Clear must flatten grandchildren too: b must become an independent root")
	}
}

func TestNodeDestroyPostorderScenario(t *testing.T) {
	// R -> {A, C}; A -> B; C -> {D, E}; E -> F
	// Seeded scenario: postorder visits B, A, D, F, E, C, R.
	r := leaf("R")
	a := leaf("A")
	b := leaf("B")
	c := leaf("C")
	d := leaf("D")
	e := leaf("E")
	f := leaf("F")

	r.PushChildBack(&a.Node)
	r.PushChildBack(&c.Node)
	a.PushChildBack(&b.Node)
	c.PushChildBack(&d.Node)
	c.PushChildBack(&e.Node)
	e.PushChildBack(&f.Node)

	var order []string
	attach := func(n *testNode) {
		n.Node.destroy = func(dn *Node, _ objid.ID) {
			order = append(order, labelOf(dn))
		}
	}
	for _, n := range []*testNode{r, a, b, c, d, e, f} {
		attach(n)
	}

	r.Destroy()
	want := []string{"B", "A", "D", "F", "E", "C", "R"}
	if !stringsEqual(order, want) {
		t.Fatalf("destroy order = %v, want %v", order, want)
	}
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
