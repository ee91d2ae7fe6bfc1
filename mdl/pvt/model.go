// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvt implements black-oil property correlations
//  All pressures are gauge [psig] and all temperatures are in °F.
//  Correlations published in absolute pressure convert with Patm at their boundary.
package pvt

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model computes the properties of one black oil
//  Bubble-point pressure comes from the selected BubblePoint correlation (Glaso by
//  default); solution GOR and formation volume factor follow Glaso, compressibility
//  follows Vazquez-Beggs and viscosity follows Beggs-Robinson.
//  Note: non-positive pressures or temperatures are not checked and may yield NaN
type Model struct {
	fluid Fluid       // fluid description
	bp    BubblePoint // bubble-point correlation
}

// New returns a new model using the named bubble-point correlation; e.g. "glaso"
func New(name string) (o *Model, err error) {
	bp, err := NewBubblePoint(name)
	if err != nil {
		return
	}
	return &Model{bp: bp}, nil
}

// Configure sets the fluid description
//  Note: the model is left unchanged if any property is not positive
func (o *Model) Configure(rsi, gasSG, oilAPI float64) error {
	fluid := Fluid{Rsi: rsi, GasSG: gasSG, OilAPI: oilAPI}
	if err := fluid.Check(); err != nil {
		return err
	}
	o.fluid = fluid
	return nil
}

// Init initialises this model with parameters "rsi", "gasSG" and "oilAPI"
func (o *Model) Init(prms dbf.Params) (err error) {
	var rsi, gasSG, oilAPI float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rsi":
			rsi = p.V
		case "gassg":
			gasSG = p.V
		case "oilapi":
			oilAPI = p.V
		default:
			return chk.Err("pvt: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.Configure(rsi, gasSG, oilAPI)
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rsi", V: 800},    // [scf/stb]
			&dbf.P{N: "gasSG", V: 0.75}, // [-]
			&dbf.P{N: "oilAPI", V: 40},  // [°API]
		}
	}
	return dbf.Params{
		&dbf.P{N: "rsi", V: o.fluid.Rsi},
		&dbf.P{N: "gasSG", V: o.fluid.GasSG},
		&dbf.P{N: "oilAPI", V: o.fluid.OilAPI},
	}
}

// Fluid returns a copy of the fluid description
func (o Model) Fluid() Fluid { return o.fluid }

// Correlation returns the bubble-point correlation in use
func (o Model) Correlation() BubblePoint {
	if o.bp == nil {
		return Glaso{}
	}
	return o.bp
}

// Pbub computes the bubble-point pressure [psig]
func (o Model) Pbub(tempF float64) float64 {
	return o.Correlation().Pbub(o.fluid, tempF)
}

// Rs computes the solution gas-oil ratio [scf/stb]
//  Rs = rsi at and above the bubble point; below it, Rs is capped at rsi
//  Note: the Glaso fit reaches rsi slightly below pbub (less than 1 psi), so
//  Rs == rsi in that narrow band and Rs < rsi only further below pbub
func (o Model) Rs(p, tempF float64) float64 {
	if p >= o.Pbub(tempF) {
		return o.fluid.Rsi
	}
	return math.Min(glasoRs(o.fluid, Abs(p), tempF), o.fluid.Rsi)
}

// Bo computes the oil formation volume factor [rb/stb]
//  Above the bubble point, Bo decays from its bubble-point value with the
//  undersaturated compressibility: Bo = Bob・exp(-co・(p - pbub))
func (o Model) Bo(p, tempF float64) float64 {
	pbub := o.Pbub(tempF)
	if p <= pbub {
		return glasoBo(o.fluid, o.Rs(p, tempF), tempF)
	}
	bob := glasoBo(o.fluid, o.fluid.Rsi, tempF)
	return bob * math.Exp(-o.Co(p, tempF)*(p-pbub))
}

// Co computes the compressibility of undersaturated oil [1/psi]
func (o Model) Co(p, tempF float64) float64 {
	return vazquezBeggsCo(o.fluid, Abs(p), tempF)
}

// MuOd computes the dead oil viscosity [cP]
func (o Model) MuOd(tempF float64) float64 {
	return beggsRobinsonDead(o.fluid.OilAPI, tempF)
}

// MuO computes the live oil viscosity [cP]
//  rs -- solution gas-oil ratio consistent with p; used below the bubble point only
func (o Model) MuO(p, rs, tempF float64) float64 {
	muOd := o.MuOd(tempF)
	pbub := o.Pbub(tempF)
	if p <= pbub {
		return beggsRobinsonLive(muOd, rs)
	}
	muOb := beggsRobinsonLive(muOd, o.fluid.Rsi)
	return vazquezBeggsUnder(muOb, Abs(p), Abs(pbub))
}
