// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ecu_noassert

package ecuassert

// Require is a no-op under ecu_noassert. Behavior on a precondition
// violation is undefined once this build tag is active.
func Require(cond bool) {}

// Requiref is a no-op under ecu_noassert.
func Requiref(cond bool, format string, args ...any) {}
