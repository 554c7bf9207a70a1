// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// trafficlight drives fsm.FSM through a Red -> Green -> Yellow -> Red
// cycle, one transition per "tick" event typed on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/ress059/ecu/event"
	"github.com/ress059/ecu/fsm"
)

const evTick = event.UserEventIDBegin

var red, green, yellow fsm.State

func onEntry(name string) fsm.EntryExitFunc {
	return func(*fsm.FSM) { fmt.Printf("entering %s\n", name) }
}

func onExit(name string) fsm.EntryExitFunc {
	return func(*fsm.FSM) { fmt.Printf("leaving %s\n", name) }
}

func tickTo(next *fsm.State) fsm.HandlerFunc {
	return func(f *fsm.FSM, ev *event.Base) fsm.Status {
		if ev.ID != evTick {
			return fsm.Ignored
		}
		f.ChangeState(next)
		return fsm.Transition
	}
}

func main() {
	flag.Parse()

	red.Construct(onEntry("RED"), onExit("RED"), tickTo(&green))
	green.Construct(onEntry("GREEN"), onExit("GREEN"), tickTo(&yellow))
	yellow.Construct(onEntry("YELLOW"), onExit("YELLOW"), tickTo(&red))

	var f fsm.FSM
	f.Construct(&red)
	f.Start()

	fmt.Println("press enter to tick, Ctrl-D to quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var ev event.Base
		event.Construct(&ev, evTick)
		f.Dispatch(&ev)
	}
}
