// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import "github.com/petrodev/goipr/mdl/errs"

// Patm is the atmospheric pressure used to convert gauge to absolute pressure [psi]
const Patm = 14.7

// Abs converts gauge pressure [psig] to absolute pressure [psia]
func Abs(psig float64) float64 { return psig + Patm }

// Gauge converts absolute pressure [psia] to gauge pressure [psig]
func Gauge(psia float64) float64 { return psia - Patm }

// Fluid holds the description of a black oil at standard conditions
type Fluid struct {
	Rsi    float64 // initial solution gas-oil ratio [scf/stb]
	GasSG  float64 // gas specific gravity; air = 1 [-]
	OilAPI float64 // oil gravity [°API]
}

// OilSG returns the oil specific gravity; water = 1 [-]
func (o Fluid) OilSG() float64 {
	return 141.5 / (o.OilAPI + 131.5)
}

// Check checks that all properties are strictly positive
func (o Fluid) Check() error {
	if !(o.Rsi > 0) {
		return errs.Invalid("initial solution GOR must be positive. rsi = %g is invalid", o.Rsi)
	}
	if !(o.GasSG > 0) {
		return errs.Invalid("gas specific gravity must be positive. gasSG = %g is invalid", o.GasSG)
	}
	if !(o.OilAPI > 0) {
		return errs.Invalid("oil gravity must be positive. oilAPI = %g is invalid", o.OilAPI)
	}
	return nil
}
