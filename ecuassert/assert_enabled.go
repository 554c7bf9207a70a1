// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !ecu_noassert

package ecuassert

import (
	"fmt"
	"log"
	"runtime"
)

// Require traps through the installed handler if cond is false. The
// trap's file/line identify Require's caller, not this function, so
// diagnostics point at the actual violation site.
func Require(cond bool) {
	if cond {
		return
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	handler(file, line)
}

// Requiref is like Require but logs a formatted message describing the
// violation before trapping. Kept separate from Require so callers
// never pay fmt.Sprintf's cost on the hot, condition-true path.
func Requiref(cond bool, format string, args ...any) {
	if cond {
		return
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	log.Printf("ecuassert: %s", fmt.Sprintf(format, args...))
	handler(file, line)
}
