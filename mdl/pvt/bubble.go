// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// BubblePoint defines correlations for the bubble-point pressure of a black oil
//  Note: each variant documents the pressure convention of the published
//        correlation; Pbub always returns gauge pressure [psig]
type BubblePoint interface {
	Name() string                            // name of correlation in factory
	Pbub(fluid Fluid, tempF float64) float64 // bubble-point pressure [psig] at temperature tempF [°F]
}

// NewBubblePoint returns a bubble-point correlation by name
func NewBubblePoint(name string) (model BubblePoint, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'pvt' database. options are %v", name, Correlations())
	}
	return allocator(), nil
}

// Correlations returns the names of all available bubble-point correlations
func Correlations() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available bubble-point correlations
var allocators = map[string]func() BubblePoint{}
