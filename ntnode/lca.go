// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntnode

// LCA returns the least common ancestor of a and b, or nil if they are
// not in the same tree. LCA(a,a) == a; if a is an ancestor of b,
// LCA(a,b) == a.
//
// Implemented by equalizing depth then walking both pointers up in
// lockstep until they meet -- O(height) time, zero extra allocation.
// The naive alternative of re-walking from b's ancestors on every step
// up from a is O(height^2); worth avoiding here since ntnode has no
// declared height cap to bound a pathological re-scan against.
func LCA(a, b *Node) *Node {
	if a == nil || b == nil {
		return nil
	}
	da, db := a.Level(), b.Level()
	pa, pb := a, b
	for da > db {
		pa = pa.parent
		da--
	}
	for db > da {
		pb = pb.parent
		db--
	}
	for pa != pb {
		pa = pa.parent
		pb = pb.parent
	}
	return pa
}
