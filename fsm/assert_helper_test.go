// Copyright 2024 the Go-FUSE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsm

import (
	"testing"

	"github.com/ress059/ecu/ecuassert"
)

// restoreHandlerForTest installs h as the process-wide trap handler for
// the duration of the calling test, restoring the default afterwards.
func restoreHandlerForTest(t *testing.T, h ecuassert.Handler) {
	t.Helper()
	ecuassert.SetHandler(h)
	t.Cleanup(func() { ecuassert.SetHandler(nil) })
}
