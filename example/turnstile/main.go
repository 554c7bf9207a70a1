// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// turnstile is an interactive hsm.HSM demo: a classic Locked/Unlocked
// turnstile, read one keypress at a time from a raw terminal so no
// Enter key is needed between events.
//
//	c  deposit a coin
//	p  push the arm
//	q  quit
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/unix"

	"github.com/ress059/ecu/event"
	"github.com/ress059/ecu/hsm"
)

const (
	evCoin = event.UserEventIDBegin + iota
	evPush
)

var top, locked, unlocked hsm.State

func entryLog(name string) hsm.EntryExitFunc {
	return func(*hsm.HSM) { fmt.Printf("  -> entering %s\n", name) }
}

func exitLog(name string) hsm.EntryExitFunc {
	return func(*hsm.HSM) { fmt.Printf("  <- leaving %s\n", name) }
}

func lockedHandler(h *hsm.HSM, ev *event.Base) bool {
	switch ev.ID {
	case evCoin:
		h.ChangeState(&unlocked)
		return true
	case evPush:
		fmt.Println("  (thunk -- arm is locked)")
		return true
	}
	return false
}

func unlockedHandler(h *hsm.HSM, ev *event.Base) bool {
	switch ev.ID {
	case evPush:
		h.ChangeState(&locked)
		return true
	case evCoin:
		fmt.Println("  (thank you, but you've already paid)")
		return true
	}
	return false
}

func topHandler(h *hsm.HSM, ev *event.Base) bool {
	return true // swallow anything neither child claims
}

// rawTerminal puts fd into cbreak mode (no line buffering, no local
// echo) and returns a function that restores the original settings.
func rawTerminal(fd int) (func(), error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	raw := *orig
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, err
	}
	return func() { unix.IoctlSetTermios(fd, ioctlSetTermios, orig) }, nil
}

func main() {
	flag.Parse()

	top.Construct(entryLog("TOP"), exitLog("TOP"), topHandler, nil)
	locked.Construct(entryLog("LOCKED"), exitLog("LOCKED"), lockedHandler, &top)
	unlocked.Construct(entryLog("UNLOCKED"), exitLog("UNLOCKED"), unlockedHandler, &top)

	var h hsm.HSM
	h.Construct(&locked, &top, 2)
	h.Start()

	fd := int(os.Stdin.Fd())
	restore, err := rawTerminal(fd)
	if err != nil {
		log.Printf("turnstile: stdin is not a terminal, falling back to line mode: %v", err)
		runLineMode(&h)
		return
	}
	defer restore()

	fmt.Println("turnstile ready: c=coin p=push q=quit")
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return
		}
		switch buf[0] {
		case 'c':
			dispatch(&h, evCoin)
		case 'p':
			dispatch(&h, evPush)
		case 'q':
			return
		}
	}
}

func runLineMode(h *hsm.HSM) {
	fmt.Println("turnstile ready: c=coin p=push q=quit, then Enter")
	for {
		var line string
		if _, err := fmt.Scanln(&line); err != nil {
			return
		}
		switch line {
		case "c":
			dispatch(h, evCoin)
		case "p":
			dispatch(h, evPush)
		case "q":
			return
		}
	}
}

func dispatch(h *hsm.HSM, id int) {
	var ev event.Base
	event.Construct(&ev, id)
	h.Dispatch(&ev)
}
