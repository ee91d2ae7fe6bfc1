// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import "math"

// Standing implements Standing's bubble-point correlation
//  The published correlation gives absolute pressure; 14.7 psi is subtracted here
//  References:
//   [1] Standing MB (1947) A pressure-volume-temperature correlation for mixtures of
//       California oils and gases. Drilling and Production Practice, API, 275-287
type Standing struct{}

// add model to factory
func init() {
	allocators["standing"] = func() BubblePoint { return new(Standing) }
}

// Name returns the name of this correlation
func (o Standing) Name() string { return "standing" }

// Pbub computes the bubble-point pressure [psig]
func (o Standing) Pbub(fluid Fluid, tempF float64) float64 {
	a := 0.00091*tempF - 0.0125*fluid.OilAPI
	return Gauge(18.2 * (math.Pow(fluid.Rsi/fluid.GasSG, 0.83)*math.Pow(10, a) - 1.4))
}
