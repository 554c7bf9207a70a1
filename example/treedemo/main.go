// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// treedemo builds the library's seeded sample tree (R -> {A, C}; A -> B;
// C -> {D, E}; E -> F), prints it in preorder and postorder, and prints
// the LCA of a pair of nodes named on the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"unsafe"

	"github.com/ress059/ecu/ntnode"
	"github.com/ress059/ecu/objid"
)

type namedNode struct {
	ntnode.Node
	name string
}

func node(name string) *namedNode {
	n := &namedNode{name: name}
	n.Node.Construct(nil, objid.Unused)
	return n
}

func nameOf(n *ntnode.Node) string {
	if n == nil {
		return "<nil>"
	}
	return (*namedNode)(unsafe.Pointer(n)).name
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		log.Fatal("Usage:\n  treedemo NODE1 NODE2  (prints LCA(NODE1, NODE2))")
	}

	nodes := map[string]*namedNode{}
	for _, name := range []string{"R", "A", "B", "C", "D", "E", "F"} {
		nodes[name] = node(name)
	}
	r, a, b, c, d, e, f := nodes["R"], nodes["A"], nodes["B"], nodes["C"], nodes["D"], nodes["E"], nodes["F"]
	r.PushChildBack(&a.Node)
	r.PushChildBack(&c.Node)
	a.PushChildBack(&b.Node)
	c.PushChildBack(&d.Node)
	c.PushChildBack(&e.Node)
	e.PushChildBack(&f.Node)

	fmt.Print("preorder: ")
	var pre ntnode.PreorderIterator
	for n := pre.Begin(&r.Node); n != pre.End(); n = pre.Next() {
		fmt.Print(nameOf(n), " ")
	}
	fmt.Println()

	fmt.Print("postorder: ")
	var post ntnode.PostorderIterator
	for n := post.Begin(&r.Node); n != post.End(); n = post.Next() {
		fmt.Print(nameOf(n), " ")
	}
	fmt.Println()

	x, ok1 := nodes[args[0]]
	y, ok2 := nodes[args[1]]
	if !ok1 || !ok2 {
		log.Fatalf("treedemo: unknown node name(s) %q, %q (expected one of R A B C D E F)", args[0], args[1])
	}
	fmt.Printf("LCA(%s, %s) = %s\n", args[0], args[1], nameOf(ntnode.LCA(&x.Node, &y.Node)))
}
