// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ipr implements the inflow-performance relationship of oil wells
//  The curve is composite: Darcy (single phase) above the bubble point and
//  Vogel (two phase) below it. Pressures are gauge [psig].
//  References:
//   [1] Vogel JV (1968) Inflow performance relationships for solution-gas drive wells.
//       Journal of Petroleum Technology, 20(1) 83-92
package ipr

import (
	"github.com/petrodev/goipr/mdl/errs"
	"github.com/petrodev/goipr/mdl/pvt"
)

// Mode indicates how the productivity index is obtained
type Mode int

// productivity index modes
const (
	ExplicitPI Mode = iota // pi is given
	FromTest               // pi is derived from one well-test point
)

// String returns the name of the mode
func (m Mode) String() string {
	switch m {
	case ExplicitPI:
		return "pi"
	case FromTest:
		return "test"
	}
	return "unknown"
}

// Fluid computes the bubble-point pressure of the reservoir oil; e.g. *pvt.Model
type Fluid interface {
	Pbub(tempF float64) float64 // bubble-point pressure [psig] at tempF [°F]
}

// WellTest holds one observation of flowing pressure and rate
type WellTest struct {
	Bhp float64 `json:"bhp"` // flowing bottomhole pressure [psig]
	Ql  float64 `json:"ql"`  // liquid rate [stb/d]
}

// Reservoir holds the reservoir description used to build inflow curves
type Reservoir struct {
	Pres    float64 // reservoir pressure [psig]
	Tres    float64 // reservoir temperature [°F]
	Pbub    float64 // bubble-point pressure at Tres; at most Pres [psig]
	Clamped bool    // BubblePointClamped advisory: the computed pbub exceeded Pres
}

// NewReservoir computes the bubble-point pressure of fluid at tres and clamps it to pres
//  Note: a clamped pbub means the oil is undersaturated at pres and the Vogel branch vanishes
func NewReservoir(pres, tres float64, fluid Fluid) (res Reservoir, err error) {
	if !(pres > 0) {
		return res, errs.Invalid("reservoir pressure must be positive. pres = %g is invalid", pres)
	}
	if fluid == nil {
		return res, errs.Invalid("fluid model is required to compute the bubble-point pressure")
	}
	res = Reservoir{Pres: pres, Tres: tres, Pbub: fluid.Pbub(tres)}
	res.clamp()
	return
}

// clamp limits Pbub to Pres
func (o *Reservoir) clamp() {
	if o.Pbub > o.Pres {
		o.Pbub = o.Pres
		o.Clamped = true
	}
}

// Inflow defines how the productivity index is obtained
type Inflow struct {
	Mode Mode     // ExplicitPI or FromTest
	PI   float64  // productivity index [stb/d/psi]; ExplicitPI only
	Test WellTest // test point; FromTest only
}

// Options holds the resolution of inflow curves
type Options struct {
	Npts int     // number of evenly spaced pressures; pbub is added to these
	Pmin float64 // smallest sampled pressure [psig]
}

// SetDefault sets default options
func (o *Options) SetDefault() {
	o.Npts = 19
	o.Pmin = 0.001
}

// Point holds one point of the inflow curve
type Point struct {
	Pwf float64 `json:"pwf"` // flowing bottomhole pressure [psig]
	Ql  float64 `json:"ql"`  // liquid rate [stb/d]
}

// Result holds an inflow curve and the parameters used to build it
type Result struct {
	Curve   []Point `json:"curve"`   // pressures strictly ascending; includes Pbub
	PI      float64 `json:"pi"`      // productivity index [stb/d/psi]
	Pres    float64 `json:"pres"`    // reservoir pressure [psig]
	Pbub    float64 `json:"pbub"`    // effective bubble-point pressure [psig]
	QlBub   float64 `json:"qlbub"`   // rate at the bubble point [stb/d]
	QlMax   float64 `json:"qlmax"`   // absolute open-flow potential [stb/d]
	Clamped bool    `json:"clamped"` // BubblePointClamped advisory
}

// Pressures returns the flowing pressures of the curve
func (o Result) Pressures() (P []float64) {
	P = make([]float64, len(o.Curve))
	for i, c := range o.Curve {
		P[i] = c.Pwf
	}
	return
}

// Rates returns the liquid rates of the curve
func (o Result) Rates() (Q []float64) {
	Q = make([]float64, len(o.Curve))
	for i, c := range o.Curve {
		Q[i] = c.Ql
	}
	return
}

// Calc builds the inflow curve
//  opts -- may be nil; default options are used then
//  Note: Calc has no side effects; the derived pi and pbub are returned in Result
func Calc(res Reservoir, inflow Inflow, opts *Options) (o *Result, err error) {

	// options
	var op Options
	op.SetDefault()
	if opts != nil {
		op = *opts
	}
	if op.Npts < 2 {
		return nil, errs.Invalid("number of curve points must be at least 2. npts = %d is invalid", op.Npts)
	}

	// reservoir
	if !(res.Pres > 0) {
		return nil, errs.Inconsistent("reservoir pressure is missing or not positive. pres = %g", res.Pres)
	}
	if !(res.Pbub > 0) {
		return nil, errs.Inconsistent("bubble-point pressure is missing or not positive. pbub = %g", res.Pbub)
	}
	if !(op.Pmin >= 0 && op.Pmin < res.Pres) {
		return nil, errs.Invalid("smallest pressure = %g must be in [0, %g)", op.Pmin, res.Pres)
	}
	res.clamp()

	// productivity index
	pi := inflow.PI
	switch inflow.Mode {
	case ExplicitPI:
	case FromTest:
		t := inflow.Test
		if !(t.Ql > 0 && t.Bhp > 0) {
			return nil, errs.Inconsistent("test data is missing: bhp = %g, ql = %g", t.Bhp, t.Ql)
		}
		if t.Bhp >= res.Pres {
			return nil, errs.Inconsistent("test bhp = %g is not smaller than reservoir pressure = %g", t.Bhp, res.Pres)
		}
		pi, err = PiFromTest(t.Bhp, t.Ql, res.Pbub, res.Pres)
		if err != nil {
			return
		}
	default:
		return nil, errs.Inconsistent("mode %d is unknown", inflow.Mode)
	}
	if !(pi > 0) {
		return nil, errs.Inconsistent("productivity index is missing or not positive. pi = %g", pi)
	}

	// results
	o = &Result{
		PI:      pi,
		Pres:    res.Pres,
		Pbub:    res.Pbub,
		QlBub:   Rate(res.Pbub, pi, res.Pbub, res.Pres),
		QlMax:   Rate(0, pi, res.Pbub, res.Pres),
		Clamped: res.Clamped,
	}
	P := pvt.Stations(op.Pmin, res.Pres, op.Npts, res.Pbub)
	o.Curve = make([]Point, len(P))
	for i, p := range P {
		o.Curve[i] = Point{Pwf: p, Ql: Rate(p, pi, res.Pbub, res.Pres)}
	}
	return
}
