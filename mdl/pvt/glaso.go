// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import "math"

// Glaso implements Glaso's bubble-point correlation
//  The published correlation gives absolute pressure; 14.7 psi is subtracted here
//  References:
//   [1] Glaso O (1980) Generalized pressure-volume-temperature correlations.
//       Journal of Petroleum Technology, 32(5) 785-795
type Glaso struct{}

// add model to factory
func init() {
	allocators["glaso"] = func() BubblePoint { return new(Glaso) }
}

// Name returns the name of this correlation
func (o Glaso) Name() string { return "glaso" }

// Pbub computes the bubble-point pressure [psig]
func (o Glaso) Pbub(fluid Fluid, tempF float64) float64 {
	logA := math.Log10(math.Pow(fluid.Rsi/fluid.GasSG, 0.816) * math.Pow(tempF, 0.172) / math.Pow(fluid.OilAPI, 0.989))
	return Gauge(math.Pow(10, 1.7669+1.7447*logA-0.30218*logA*logA))
}

// glasoRs computes the solution gas-oil ratio of saturated oil [scf/stb]
//  pAbs -- absolute pressure [psia]
//  Note: the term under the square root is clamped at zero (very high pAbs)
func glasoRs(fluid Fluid, pAbs, tempF float64) float64 {
	x := 14.1811 - 3.3093*math.Log10(pAbs)
	if x < 0 {
		x = 0
	}
	a := math.Pow(10, 2.8869-math.Sqrt(x))
	return fluid.GasSG * math.Pow(a*math.Pow(fluid.OilAPI, 0.989)/math.Pow(tempF, 0.172), 1.2255)
}

// glasoBo computes the formation volume factor of saturated oil [rb/stb]
func glasoBo(fluid Fluid, rs, tempF float64) float64 {
	g := math.Log10(rs*math.Pow(fluid.GasSG/fluid.OilSG(), 0.526) + 0.968*tempF)
	return 1.0 + math.Pow(10, -6.58511+2.91329*g-0.27683*g*g)
}
