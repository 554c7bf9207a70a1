// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

import "testing"

// buildScenarioTree builds the seeded tree used across several tests:
//
//	R -> {A, C}; A -> B; C -> {D, E}; E -> F
func buildScenarioTree() (r, a, b, c, d, e, f *testNode) {
	r, a, b, c, d, e, f = leaf("R"), leaf("A"), leaf("B"), leaf("C"), leaf("D"), leaf("E"), leaf("F")
	r.PushChildBack(&a.Node)
	r.PushChildBack(&c.Node)
	a.PushChildBack(&b.Node)
	c.PushChildBack(&d.Node)
	c.PushChildBack(&e.Node)
	e.PushChildBack(&f.Node)
	return
}

func TestChildIteratorOrderAndSafeRemoval(t *testing.T) {
	root := leaf("R")
	a, b, c := leaf("A"), leaf("B"), leaf("C")
	root.PushChildBack(&a.Node)
	root.PushChildBack(&b.Node)
	root.PushChildBack(&c.Node)

	var it ChildIterator
	var got []string
	for n := it.Begin(&root.Node); n != it.End(); n = it.Next() {
		got = append(got, labelOf(n))
		if labelOf(n) == "B" {
			n.Remove()
		}
	}
	if want := []string{"A", "B", "C"}; !stringsEqual(got, want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	if root.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 after removing B mid-iteration", root.Count())
	}
}

func TestChildIteratorEmptyParent(t *testing.T) {
	root := leaf("R")
	var it ChildIterator
	if n := it.Begin(&root.Node); n != nil {
		t.Fatalf("Begin on a childless node = %v, want nil", n)
	}
}

func TestParentAtIteratorWalksUpToRoot(t *testing.T) {
	_, _, _, _, d, _, _ := buildScenarioTree()

	var it ParentAtIterator
	var got []string
	for n := it.Begin(&d.Node); n != it.End(); n = it.Next() {
		got = append(got, labelOf(n))
	}
	want := []string{"D", "C", "R"}
	if !stringsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParentIteratorExcludesSelf(t *testing.T) {
	r, _, _, c, d, _, _ := buildScenarioTree()

	var it ParentIterator
	var got []string
	for n := it.Begin(&d.Node); n != it.End(); n = it.Next() {
		got = append(got, labelOf(n))
	}
	want := []string{"C", "R"}
	if !stringsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	var rootIt ParentIterator
	if n := rootIt.Begin(&r.Node); n != nil {
		t.Fatalf("ParentIterator on a root must be immediately empty, got %v", labelOf(n))
	}
	_ = c
}

func TestSiblingIteratorWrapsAndExcludesSelf(t *testing.T) {
	root := leaf("R")
	a, b, c, d := leaf("A"), leaf("B"), leaf("C"), leaf("D")
	root.PushChildBack(&a.Node)
	root.PushChildBack(&b.Node)
	root.PushChildBack(&c.Node)
	root.PushChildBack(&d.Node)

	var it SiblingIterator
	var got []string
	for n := it.Begin(&b.Node); n != it.End(); n = it.Next() {
		got = append(got, labelOf(n))
	}
	want := []string{"C", "D", "A"}
	if !stringsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSiblingIteratorOnlyChild(t *testing.T) {
	root := leaf("R")
	a := leaf("A")
	root.PushChildBack(&a.Node)

	var it SiblingIterator
	if n := it.Begin(&a.Node); n != nil {
		t.Fatalf("only child must have no siblings, got %v", labelOf(n))
	}
}

func TestPostorderIteratorSeededScenario(t *testing.T) {
	r, _, _, _, _, _, _ := buildScenarioTree()

	var it PostorderIterator
	var got []string
	for n := it.Begin(&r.Node); n != it.End(); n = it.Next() {
		got = append(got, labelOf(n))
	}
	want := []string{"B", "A", "D", "F", "E", "C", "R"}
	if !stringsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPostorderIteratorSafeRemoval(t *testing.T) {
	r, a, _, _, _, _, _ := buildScenarioTree()

	var it PostorderIterator
	var got []string
	for n := it.Begin(&r.Node); n != it.End(); n = it.Next() {
		got = append(got, labelOf(n))
		if labelOf(n) == "B" {
			n.Remove()
		}
	}
	want := []string{"B", "A", "D", "F", "E", "C", "R"}
	if !stringsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if a.Count() != 0 {
		t.Fatal("B (A's only child) must have been detached while the walk survived")
	}
}

func TestPreorderIteratorSeededScenario(t *testing.T) {
	r, _, _, _, _, _, _ := buildScenarioTree()

	var it PreorderIterator
	var got []string
	for n := it.Begin(&r.Node); n != it.End(); n = it.Next() {
		got = append(got, labelOf(n))
	}
	want := []string{"R", "A", "B", "C", "D", "E", "F"}
	if !stringsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLCA(t *testing.T) {
	r, a, b, c, d, _, f := buildScenarioTree()

	if got := LCA(&d.Node, &f.Node); got != &c.Node {
		t.Fatalf("LCA(D,F) = %s, want C", labelOf(got))
	}
	if got := LCA(&b.Node, &f.Node); got != &r.Node {
		t.Fatalf("LCA(B,F) = %s, want R", labelOf(got))
	}
	if got := LCA(&a.Node, &a.Node); got != &a.Node {
		t.Fatal("LCA(A,A) must be A")
	}
	if got := LCA(&r.Node, &f.Node); got != &r.Node {
		t.Fatal("LCA(R,F) must be R, since R is F's ancestor")
	}
}

func TestFind(t *testing.T) {
	r, _, _, _, _, _, f := buildScenarioTree()

	got := Find(&r.Node, func(n *Node, label string) bool {
		return labelOf(n) == label
	}, "F")
	if got != &f.Node {
		t.Fatalf("Find(F) = %v, want F", labelOf(got))
	}

	miss := Find(&r.Node, func(n *Node, label string) bool {
		return labelOf(n) == label
	}, "Z")
	if miss != nil {
		t.Fatal("Find for an absent label must return nil")
	}
}
