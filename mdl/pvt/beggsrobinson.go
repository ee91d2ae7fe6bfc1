// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import "math"

// Oil viscosity correlations
//  References:
//   [1] Beggs HD and Robinson JR (1975) Estimating the viscosity of crude oil systems.
//       Journal of Petroleum Technology, 27(9) 1140-1141
//   [2] Vazquez ME and Beggs HD (1980) Correlations for fluid physical property
//       prediction. Journal of Petroleum Technology, 32(6) 968-970

// beggsRobinsonDead computes the dead oil viscosity [cP]
func beggsRobinsonDead(oilAPI, tempF float64) float64 {
	x := math.Pow(10, 3.0324-0.02023*oilAPI) * math.Pow(tempF, -1.163)
	return math.Pow(10, x) - 1
}

// beggsRobinsonLive computes the viscosity of saturated oil [cP] from the dead oil viscosity
func beggsRobinsonLive(muOd, rs float64) float64 {
	a := 10.715 * math.Pow(rs+100, -0.515)
	b := 5.44 * math.Pow(rs+150, -0.338)
	return a * math.Pow(muOd, b)
}

// vazquezBeggsUnder extrapolates the bubble-point viscosity to an undersaturated pressure
//  pAbs, pbAbs -- absolute pressure and bubble-point pressure [psia]
func vazquezBeggsUnder(muOb, pAbs, pbAbs float64) float64 {
	m := 2.6 * math.Pow(pAbs, 1.187) * math.Exp(-11.513-8.98e-5*pAbs)
	return muOb * math.Pow(pAbs/pbAbs, m)
}
