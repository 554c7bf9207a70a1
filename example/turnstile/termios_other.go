// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package main

import "golang.org/x/sys/unix"

// BSD-family terminals (and the darwin syscall shim x/sys/unix covers)
// name the ioctls TIOCGETA/TIOCSETA rather than Linux's TCGETS/TCSETS.
const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
)
