// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentIndependentTrees builds and tears down N separately
// owned trees from N goroutines at once. Like dlist, ntnode keeps no
// internal lock -- each tree is safe only because exactly one goroutine
// ever touches it.
func TestConcurrentIndependentTrees(t *testing.T) {
	const workers = 32

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			r, a, b, c, d, e, f := buildScenarioTree()
			if got := LCA(&b.Node, &f.Node); got != &r.Node {
				t.Errorf("worker %d: LCA(B,F) = %s, want R", w, labelOf(got))
			}

			var pre PreorderIterator
			var order []string
			for n := pre.Begin(&r.Node); n != pre.End(); n = pre.Next() {
				order = append(order, labelOf(n))
			}
			if want := []string{"R", "A", "B", "C", "D", "E", "F"}; !stringsEqual(order, want) {
				t.Errorf("worker %d: preorder = %v, want %v", w, order, want)
			}

			_ = a
			_ = c
			_ = d
			_ = e
			r.Destroy()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
