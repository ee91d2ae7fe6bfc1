// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of inflow analyses: tables, plots and storage
package out

import (
	"github.com/petrodev/goipr/mdl/ipr"
	"gonum.org/v1/gonum/floats"
)

// Run holds the inflow curve computed for one well
type Run struct {
	Name   string        `json:"name"`   // name of well
	Desc   string        `json:"desc"`   // description of analysis
	Mode   string        `json:"mode"`   // how pi was obtained: "pi" or "test"
	Test   *ipr.WellTest `json:"test"`   // test point; nil in "pi" mode
	Result *ipr.Result   `json:"result"` // curve and derived parameters
}

// Aofp returns the largest rate along the sampled curve [stb/d]
func (o Run) Aofp() float64 {
	if o.Result == nil || len(o.Result.Curve) == 0 {
		return 0
	}
	return floats.Max(o.Result.Rates())
}

// Monotonic returns whether rates never increase with pressure along the curve
func (o Run) Monotonic() bool {
	if o.Result == nil {
		return false
	}
	Q := o.Result.Rates()
	for i := 1; i < len(Q); i++ {
		if Q[i] > Q[i-1] {
			return false
		}
	}
	return true
}
