// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipr

import (
	"math"

	"github.com/petrodev/goipr/mdl/errs"
)

// Composite Darcy-Vogel inflow law. The liquid rate at flowing pressure p is
//
//   ql = pi・D(p)
//
// where the effective drawdown is
//
//   D(p) = pres - p                                      p ≥ pbub  (Darcy)
//   D(p) = pres - pbub + (pbub/1.8)・V(p/pbub)           p < pbub  (Vogel)
//   V(x) = 1 - 0.2・x - 0.8・x²
//
// D is continuous at p = pbub. Writing D(p) = pres - S(p), the inverses are
//
//   pi   = ql / D(p)
//   pres = ql/pi + S(p)

// vogel returns V(x) = 1 - 0.2・x - 0.8・x²
func vogel(x float64) float64 {
	return 1 - 0.2*x - 0.8*x*x
}

// shift returns S(p) = pres - D(p), which does not depend on pres
func shift(p, pbub float64) float64 {
	if p >= pbub {
		return p
	}
	return pbub - (pbub/1.8)*vogel(p/pbub)
}

// Drawdown returns the effective drawdown D(p) [psi]
func Drawdown(p, pbub, pres float64) float64 {
	return pres - shift(p, pbub)
}

// Rate returns the liquid rate [stb/d] at flowing pressure p [psig]
func Rate(p, pi, pbub, pres float64) float64 {
	return pi * Drawdown(p, pbub, pres)
}

// PiFromTest computes the productivity index [stb/d/psi] from one test point
//  bhp  -- flowing bottomhole pressure [psig]; 0 < bhp < pres
//  ql   -- liquid rate [stb/d]; ql > 0
//  pbub -- bubble-point pressure [psig]; clamped to pres
func PiFromTest(bhp, ql, pbub, pres float64) (pi float64, err error) {
	if err = checkTest(bhp, ql); err != nil {
		return
	}
	if !(pbub > 0) {
		return 0, errs.Invalid("bubble-point pressure must be positive. pbub = %g is invalid", pbub)
	}
	if bhp >= pres {
		return 0, errs.Invalid("test bhp = %g must be smaller than reservoir pressure = %g", bhp, pres)
	}
	return ql / Drawdown(bhp, math.Min(pbub, pres), pres), nil
}

// PresFromTest computes the reservoir pressure [psig] reproducing one test point
func PresFromTest(bhp, ql, pi, pbub float64) (pres float64, err error) {
	if err = checkTest(bhp, ql); err != nil {
		return
	}
	if !(pi > 0) {
		return 0, errs.Invalid("productivity index must be positive. pi = %g is invalid", pi)
	}
	if !(pbub > 0) {
		return 0, errs.Invalid("bubble-point pressure must be positive. pbub = %g is invalid", pbub)
	}
	return ql/pi + shift(bhp, pbub), nil
}

// Pwf computes the flowing pressure [psig] delivering the liquid rate ql [stb/d]
//  Note: 0 ≤ ql ≤ pi・D(0) is required; below pbub the Vogel quadratic is solved
func Pwf(ql, pi, pbub, pres float64) (p float64, err error) {
	if !(pi > 0) {
		return 0, errs.Invalid("productivity index must be positive. pi = %g is invalid", pi)
	}
	if !(pbub > 0 && pbub <= pres) {
		return 0, errs.Invalid("bubble-point pressure = %g must be in (0, %g]", pbub, pres)
	}
	qlMax := Rate(0, pi, pbub, pres)
	if ql < 0 || ql > qlMax {
		return 0, errs.Invalid("liquid rate = %g must be in [0, %g]", ql, qlMax)
	}
	d := ql / pi
	if d <= pres-pbub {
		return pres - d, nil
	}
	v := 1.8 * (d - pres + pbub) / pbub // V(x) = v
	x := (-0.2 + math.Sqrt(0.04+3.2*(1-v))) / 1.6
	return math.Max(x*pbub, 0), nil
}

// checkTest checks the positivity of test data
func checkTest(bhp, ql float64) error {
	if !(ql > 0) {
		return errs.Invalid("test liquid rate must be positive. ql = %g is invalid", ql)
	}
	if !(bhp > 0) {
		return errs.Invalid("test bhp must be positive. bhp = %g is invalid", bhp)
	}
	return nil
}
