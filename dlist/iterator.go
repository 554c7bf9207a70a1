// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlist

import "github.com/ress059/ecu/ecuassert"

// Iterator is a read-write iterator over a List. It prefetches the
// successor before returning the current element, so Remove(current) is
// always safe mid-iteration; Remove(next) is undefined behavior.
//
// Inserting mid-iteration: a node inserted during an iteration is
// visited in that same pass only if it lands after the prefetched
// successor. PushFront, InsertBefore at or before the current element,
// and InsertAfter(current) are therefore not visited; PushBack is
// visited unless the current element is the last one.
type Iterator struct {
	list    *List
	current *Node
	next    *Node
	gen     uint64
}

// Begin starts (or restarts) iteration over list, returning the first
// element or list's sentinel if list is empty.
func (it *Iterator) Begin(list *List) *Node {
	ecuassert.Require(list.head.isHead)
	it.list = list
	it.gen = list.gen
	it.current = list.head.next
	it.next = it.current.next
	return it.element()
}

// End returns the sentinel marking one-past-the-last element.
func (it *Iterator) End() *Node {
	return &it.list.head
}

func (it *Iterator) element() *Node {
	if it.current == &it.list.head {
		return &it.list.head
	}
	return it.current
}

// Next advances the iterator and returns the new current element, or
// End() if the iteration has completed. Calling Next after the
// iteration has already ended traps.
func (it *Iterator) Next() *Node {
	ecuassert.Requiref(it.current != &it.list.head, "dlist: Next called after iteration ended")
	ecuassert.Requiref(it.gen == it.list.gen, "dlist: iterating a list that was Destroy'd mid-iteration")
	it.current = it.next
	it.next = it.current.next
	return it.element()
}

// ConstIterator is the read-only counterpart to Iterator. Go has no way
// to express node constness the way C++ does, so "const" here is a
// documentation contract, not a compiler-enforced one: callers are
// expected to treat returned nodes as read-only.
type ConstIterator struct {
	it Iterator
}

// CBegin starts (or restarts) read-only iteration over list.
func (it *ConstIterator) CBegin(list *List) *Node {
	return it.it.Begin(list)
}

// CEnd returns the sentinel marking one-past-the-last element.
func (it *ConstIterator) CEnd() *Node {
	return it.it.End()
}

// CNext advances the iterator.
func (it *ConstIterator) CNext() *Node {
	return it.it.Next()
}
