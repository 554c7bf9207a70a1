// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecuassert

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestRequirePassesSilently(t *testing.T) {
	trapped := false
	SetHandler(func(file string, line int) { trapped = true })
	defer SetHandler(nil)

	Require(true)
	if trapped {
		t.Fatal("Require(true) must not trap")
	}
}

func TestRequireTraps(t *testing.T) {
	var gotFile string
	var gotLine int
	SetHandler(func(file string, line int) {
		gotFile, gotLine = file, line
		panic("trapped")
	})
	defer SetHandler(nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected trap to panic via installed handler")
		}
		if gotFile == "" || gotLine == 0 {
			t.Fatalf("expected file/line to be populated, got %q:%d", gotFile, gotLine)
		}
	}()
	Require(false)
}

func TestRequirefFormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	trapped := false
	SetHandler(func(file string, line int) { trapped = true; panic("trapped") })
	defer SetHandler(nil)
	defer func() {
		recover()
		if !trapped {
			t.Fatal("expected trap")
		}
		if !strings.Contains(buf.String(), "expected 1 == 2") {
			t.Fatalf("logged %q, want the formatted message", buf.String())
		}
	}()
	Requiref(1 == 2, "expected %d == %d", 1, 2)
}
