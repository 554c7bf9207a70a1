// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlist

import "github.com/ress059/ecu/ecuassert"

// Less reports whether a should sort before b. Sort is stable: when
// !less(a,b) && !less(b,a), a and b retain their relative input order.
type Less[C any] func(a, b *Node, ctx C) bool

// Sort performs an in-place, stable merge sort of me using bottom-up
// list splicing (Simon Tatham's linked-list mergesort, the same
// algorithm the C original ports from -- see
// https://www.chiark.greenend.org.uk/~sgtatham/algorithms/listsort.html).
// O(n log n) time, O(1) extra space beyond the loop variables; correct
// for 0, 1, 2, and n-element lists, even or odd.
func Sort[C any](me *List, less Less[C], ctx C) {
	ecuassert.Require(me.head.isHead)

	head := &me.head
	k := 1
	for {
		p := head.next
		var q, e *Node
		merges := 0
		swapQ := false

		for p != head {
			merges++
			q = p
			psize := 0
			for i := 0; i < k; i++ {
				psize++
				q = q.next
				if q == head {
					break
				}
			}
			qsize := k

			for psize > 0 || (qsize > 0 && q != head) {
				switch {
				case psize == 0:
					e = q
					q = q.next
					qsize--
				case qsize == 0 || q == head:
					e = p
					p = p.next
					psize--
				case less(q, p, ctx):
					swapQ = true
					e = q
					q = q.next
					qsize--
				default:
					e = p
					p = p.next
					psize--
				}

				if swapQ {
					swapQ = false
					e.unlink()
					insertBefore(p, e)
				}
			}
			p = q
		}

		if merges <= 1 {
			break
		}
		k *= 2
	}
}
