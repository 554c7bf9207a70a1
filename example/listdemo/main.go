// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// listdemo builds a dlist of integers from the command line, sorts it,
// and prints the result -- a minimal end-to-end exercise of dlist's
// construction, push, and stable-sort API.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"unsafe"

	"github.com/ress059/ecu/dlist"
	"github.com/ress059/ecu/objid"
)

type intNode struct {
	dlist.Node
	val int
}

func byVal(a, b *dlist.Node, _ struct{}) bool {
	return nodeVal(a) < nodeVal(b)
}

func nodeVal(n *dlist.Node) int {
	return (*intNode)(unsafe.Pointer(n)).val
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("Usage:\n  listdemo N1 N2 N3 ...")
	}

	var l dlist.List
	l.Construct()

	nodes := make([]*intNode, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			log.Fatalf("listdemo: %q is not an integer: %v", a, err)
		}
		n := &intNode{val: v}
		n.Node.Construct(nil, objid.Unused)
		nodes[i] = n
		l.PushBack(&n.Node)
	}

	dlist.Sort(&l, byVal, struct{}{})

	var it dlist.Iterator
	for n := it.Begin(&l); n != it.End(); n = it.Next() {
		fmt.Println(nodeVal(n))
	}
}
