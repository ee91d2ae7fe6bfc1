// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import "math"

// VazquezBeggs implements the bubble-point correlation of Vazquez and Beggs
//  The gas gravity is corrected to a separator at 100 psig and 60 °F.
//  The published correlation gives absolute pressure; 14.7 psi is subtracted here
//  References:
//   [1] Vazquez ME and Beggs HD (1980) Correlations for fluid physical property
//       prediction. Journal of Petroleum Technology, 32(6) 968-970
type VazquezBeggs struct{}

// add model to factory
func init() {
	allocators["vazquez-beggs"] = func() BubblePoint { return new(VazquezBeggs) }
}

// Name returns the name of this correlation
func (o VazquezBeggs) Name() string { return "vazquez-beggs" }

// Pbub computes the bubble-point pressure [psig]
func (o VazquezBeggs) Pbub(fluid Fluid, tempF float64) float64 {
	c1, c2, c3 := 0.0178, 1.187, 23.931
	if fluid.OilAPI <= 30 {
		c1, c2, c3 = 0.0362, 1.0937, 25.724
	}
	sg100 := fluid.GasSG * (1 + 0.00005912*fluid.OilAPI*60*math.Log10(Patm/(Patm+100)))
	c := c1 * sg100 * math.Exp(c3*fluid.OilAPI/(tempF+460))
	return Gauge(math.Pow(fluid.Rsi/c, 1/c2))
}

// vazquezBeggsCo computes the compressibility of undersaturated oil [1/psi]
//  pAbs -- absolute pressure [psia]
func vazquezBeggsCo(fluid Fluid, pAbs, tempF float64) float64 {
	num := 5*fluid.Rsi + 17.2*tempF - 1180*fluid.GasSG + 12.61*fluid.OilAPI - 1433
	return num / (pAbs * 1e5)
}
