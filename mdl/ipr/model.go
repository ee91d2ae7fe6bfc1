// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipr

import (
	"github.com/cpmech/gosl/io"
	"github.com/petrodev/goipr/mdl/errs"
)

// Model holds the inflow data of one well and builds its curve with Calc
//  Note: a Model is not safe for concurrent use; SetReservoir and InflowCurve (in
//        FromTest mode) modify pbub and pi
type Model struct {

	// options
	Opts    Options // curve resolution; zero value means default
	Verbose bool    // print advisories

	// state
	res     Reservoir // reservoir data
	inflow  Inflow    // productivity index data
	hasTest bool      // test data has been set
}

// NewModel returns a new model with default options
func NewModel() (o *Model) {
	o = new(Model)
	o.Opts.SetDefault()
	return
}

// Pres returns the reservoir pressure [psig]
func (o Model) Pres() float64 { return o.res.Pres }

// Tres returns the reservoir temperature [°F]
func (o Model) Tres() float64 { return o.res.Tres }

// Pbub returns the (clamped) bubble-point pressure [psig]
func (o Model) Pbub() float64 { return o.res.Pbub }

// PI returns the current productivity index [stb/d/psi]
func (o Model) PI() float64 { return o.inflow.PI }

// Mode returns the productivity index mode
func (o Model) Mode() Mode { return o.inflow.Mode }

// Test returns the current test point
func (o Model) Test() (test WellTest, ok bool) { return o.inflow.Test, o.hasTest }

// SetReservoir sets the reservoir pressure and temperature and recomputes pbub from fluid
//  clamped -- BubblePointClamped advisory: pbub exceeded pres and was set to pres
func (o *Model) SetReservoir(pres, tres float64, fluid Fluid) (clamped bool, err error) {
	res, err := NewReservoir(pres, tres, fluid)
	if err != nil {
		return
	}
	o.res = res
	if res.Clamped && o.Verbose {
		io.PfYel("warning: bubble-point pressure set to reservoir pressure of %.2f psig\n", res.Pres)
	}
	return res.Clamped, nil
}

// SetPI sets the productivity index and selects ExplicitPI mode
func (o *Model) SetPI(pi float64) error {
	if !(pi > 0) {
		return errs.Invalid("productivity index must be positive. pi = %g is invalid", pi)
	}
	o.inflow.Mode = ExplicitPI
	o.inflow.PI = pi
	return nil
}

// SetTest sets the test point and selects FromTest mode
//  Note: pi is computed by the next call to InflowCurve
func (o *Model) SetTest(bhp, ql float64) error {
	if err := checkTest(bhp, ql); err != nil {
		return err
	}
	if o.res.Pres > 0 && bhp >= o.res.Pres {
		return errs.Invalid("test bhp = %g must be smaller than reservoir pressure = %g", bhp, o.res.Pres)
	}
	o.inflow.Mode = FromTest
	o.inflow.Test = WellTest{Bhp: bhp, Ql: ql}
	o.hasTest = true
	return nil
}

// PiFromTest computes the productivity index matching one test point
//  Note: the model is not modified
func (o Model) PiFromTest(bhp, ql float64) (float64, error) {
	if !(o.res.Pres > 0) {
		return 0, errs.Inconsistent("reservoir data must be set before computing pi")
	}
	return PiFromTest(bhp, ql, o.res.Pbub, o.res.Pres)
}

// PresFromTest computes the reservoir pressure matching one test point
//  pi -- productivity index; use 0 to take the current one
func (o Model) PresFromTest(bhp, ql, pi float64) (float64, error) {
	if pi == 0 {
		pi = o.inflow.PI
	}
	if !(o.res.Pbub > 0) {
		return 0, errs.Inconsistent("reservoir data must be set before computing pres")
	}
	return PresFromTest(bhp, ql, pi, o.res.Pbub)
}

// InflowCurve builds the inflow curve from the current data
//  In FromTest mode, pi is (re)computed from the test point and stored
func (o *Model) InflowCurve() (r *Result, err error) {
	if o.inflow.Mode == FromTest && !o.hasTest {
		return nil, errs.Inconsistent("test data must be set in %q mode", o.inflow.Mode)
	}
	opts := &o.Opts
	if opts.Npts == 0 {
		opts = nil
	}
	r, err = Calc(o.res, o.inflow, opts)
	if err != nil {
		return
	}
	o.res.Pbub = r.Pbub
	if o.inflow.Mode == FromTest {
		o.inflow.PI = r.PI
	}
	return
}
