// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs defines the kinds of errors returned by the fluid and inflow models
package errs

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// error kinds; use errors.Is to test for them
var (
	InvalidInput      = chk.Err("invalid input")      // non-positive or out-of-domain argument
	InconsistentState = chk.Err("inconsistent state") // data missing or contradictory for the requested operation
)

// Invalid returns an InvalidInput error with a formatted message
func Invalid(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %v", InvalidInput, chk.Err(msg, prm...))
}

// Inconsistent returns an InconsistentState error with a formatted message
func Inconsistent(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %v", InconsistentState, chk.Err(msg, prm...))
}
