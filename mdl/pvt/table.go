// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"sort"

	"github.com/cpmech/gosl/utl"
	"github.com/petrodev/goipr/mdl/errs"
	"gonum.org/v1/gonum/floats/scalar"
)

// Row holds the fluid properties at one pressure
type Row struct {
	P   float64 // pressure [psig]
	Rs  float64 // solution gas-oil ratio [scf/stb]
	Bo  float64 // oil formation volume factor [rb/stb]
	Co  float64 // undersaturated oil compressibility [1/psi]
	MuO float64 // live oil viscosity [cP]
}

// Stations returns np evenly spaced pressures in [pmin, pmax] plus pbub, sorted
//  Note: pbub is always included exactly once; a station coinciding with pbub is replaced by it
func Stations(pmin, pmax float64, np int, pbub float64) (P []float64) {
	P = make([]float64, 0, np+1)
	for _, p := range utl.LinSpace(pmin, pmax, np) {
		if scalar.EqualWithinAbsOrRel(p, pbub, 1e-10, 1e-10) {
			continue
		}
		P = append(P, p)
	}
	P = append(P, pbub)
	sort.Float64s(P)
	return
}

// Table computes the fluid properties at np pressures in [pmin, pmax] and at the bubble point
func Table(mdl *Model, tempF, pmin, pmax float64, np int) (rows []Row, err error) {
	if np < 2 {
		return nil, errs.Invalid("number of pressures must be at least 2. np = %d is invalid", np)
	}
	if !(pmin >= 0 && pmax > pmin) {
		return nil, errs.Invalid("pressure range [%g, %g] is invalid", pmin, pmax)
	}
	if err = mdl.fluid.Check(); err != nil {
		return
	}
	P := Stations(pmin, pmax, np, mdl.Pbub(tempF))
	rows = make([]Row, len(P))
	for i, p := range P {
		rs := mdl.Rs(p, tempF)
		rows[i] = Row{
			P:   p,
			Rs:  rs,
			Bo:  mdl.Bo(p, tempF),
			Co:  mdl.Co(p, tempF),
			MuO: mdl.MuO(p, rs, tempF),
		}
	}
	return
}
