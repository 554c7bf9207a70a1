// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecuassert is the single trap point dlist, ntnode, fsm and hsm
// call through on any precondition, lifecycle or structural violation.
// There is no recoverable error channel for these -- per design they
// are programmer errors caught during development, not runtime
// conditions an embedder branches on.
//
// Build with -tags ecu_noassert to compile every Require/Requiref call
// in this module to a no-op. Behavior on a precondition violation is
// then undefined.
package ecuassert

import "log"

// Handler is invoked on a trapped violation and must not return.
type Handler func(file string, line int)

var handler Handler = defaultHandler

// SetHandler installs the process-wide trap handler. Embedders install
// exactly one, typically during init. Passing nil restores the default
// (log and hang), matching the C library's own "NULL restores default
// functor" convention.
func SetHandler(h Handler) {
	if h == nil {
		h = defaultHandler
	}
	handler = h
}

func defaultHandler(file string, line int) {
	log.Printf("ecuassert: trap at %s:%d", file, line)
	select {}
}
