// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipr

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/petrodev/goipr/mdl/errs"
	"github.com/petrodev/goipr/mdl/pvt"
	"gonum.org/v1/gonum/floats"
)

// constPbub is a fluid with a fixed bubble-point pressure
type constPbub float64

func (o constPbub) Pbub(tempF float64) float64 { return float64(o) }

// exampleFluid returns the example oil (rsi=800, gasSG=0.75, oilAPI=40)
func exampleFluid(tst *testing.T, rsi float64) *pvt.Model {
	fluid, err := pvt.New("glaso")
	if err != nil {
		tst.Fatalf("pvt.New failed: %v\n", err)
	}
	err = fluid.Configure(rsi, 0.75, 40)
	if err != nil {
		tst.Fatalf("Configure failed: %v\n", err)
	}
	return fluid
}

// checkCurve checks the ordering of pressures and rates and the knee at pbub
func checkCurve(tst *testing.T, r *Result) {
	P, Q := r.Pressures(), r.Rates()
	nbub := 0
	for i := range P {
		if P[i] == r.Pbub {
			nbub++
		}
		if i == 0 {
			continue
		}
		if P[i] <= P[i-1] {
			tst.Errorf("pressures must be strictly ascending: P[%d]=%g, P[%d]=%g\n", i-1, P[i-1], i, P[i])
			return
		}
		if Q[i] > Q[i-1] {
			tst.Errorf("rates must not increase with pressure: Q[%d]=%g, Q[%d]=%g\n", i-1, Q[i-1], i, Q[i])
			return
		}
	}
	chk.Int(tst, "number of pbub points", nbub, 1)
	chk.Float64(tst, "max rate", 1e-9, floats.Max(Q), Rate(P[0], r.PI, r.Pbub, r.Pres))
	chk.Float64(tst, "rate @ pres", 1e-9, Q[len(Q)-1], 0)

	// knee: Darcy and Vogel expressions agree
	darcy := r.PI * (r.Pres - r.Pbub)
	vogelQ := r.QlBub + (r.QlMax-r.QlBub)*vogel(1)
	chk.Float64(tst, "knee", 1e-10, darcy, vogelQ)
	chk.Float64(tst, "qlbub", 1e-10, r.QlBub, darcy)
}

func Test_ipr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipr01. pi from test below pbub and round trip to pres")

	fluid := exampleFluid(tst, 800)
	mdl := NewModel()
	clamped, err := mdl.SetReservoir(4705, 160, fluid)
	if err != nil {
		tst.Errorf("SetReservoir failed: %v\n", err)
		return
	}
	if clamped {
		tst.Errorf("pbub should not be clamped\n")
		return
	}
	chk.Float64(tst, "pbub", 1e-8, mdl.Pbub(), 3082.158839339956)

	bhp, ql := 1964.3, 653.0
	if bhp >= mdl.Pbub() {
		tst.Errorf("test point must be below pbub\n")
		return
	}
	pi, err := mdl.PiFromTest(bhp, ql)
	if err != nil {
		tst.Errorf("PiFromTest failed: %v\n", err)
		return
	}
	io.Pforan("pi = %v\n", pi)
	chk.Float64(tst, "pi (vogel)", 1e-12, pi, 0.25502755477506595)
	chk.Float64(tst, "pi (darcy would be)", 1e-12, ql/(4705-bhp), 0.2382602984638961)

	pres, err := mdl.PresFromTest(bhp, ql, pi)
	if err != nil {
		tst.Errorf("PresFromTest failed: %v\n", err)
		return
	}
	chk.Float64(tst, "pres", 1e-9, pres, 4705)

	// curve
	err = mdl.SetTest(bhp, ql)
	if err != nil {
		tst.Errorf("SetTest failed: %v\n", err)
		return
	}
	r, err := mdl.InflowCurve()
	if err != nil {
		tst.Errorf("InflowCurve failed: %v\n", err)
		return
	}
	for _, c := range r.Curve {
		io.Pf("%10.3f %10.3f\n", c.Pwf, c.Ql)
	}
	chk.Float64(tst, "stored pi", 1e-12, mdl.PI(), 0.25502755477506595)
	chk.Float64(tst, "qlbub", 1e-9, r.QlBub, 413.8692129914609)
	chk.Float64(tst, "qlmax", 1e-9, r.QlMax, 850.5555642276967)
	chk.Int(tst, "npts", len(r.Curve), 20)
	chk.Float64(tst, "rate @ test bhp", 1e-9, Rate(bhp, r.PI, r.Pbub, r.Pres), ql)
	checkCurve(tst, r)

	// default pi in PresFromTest
	pres, err = mdl.PresFromTest(bhp, ql, 0)
	if err != nil {
		tst.Errorf("PresFromTest failed: %v\n", err)
		return
	}
	chk.Float64(tst, "pres (current pi)", 1e-9, pres, 4705)
}

func Test_ipr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipr02. several wells sharing a reservoir")

	fluid := exampleFluid(tst, 800)
	res, err := NewReservoir(4705, 160, fluid)
	if err != nil {
		tst.Errorf("NewReservoir failed: %v\n", err)
		return
	}
	for _, c := range []struct {
		bhp, ql, pi float64
	}{
		{1964.3, 653, 0.25502755477506595},
		{3000, 1000, 0.5868452835879949},
		{2000, 1000, 0.3943010693833168},
		{4000, 500, 500.0 / 705.0}, // darcy
	} {
		r, err := Calc(res, Inflow{Mode: FromTest, Test: WellTest{Bhp: c.bhp, Ql: c.ql}}, nil)
		if err != nil {
			tst.Errorf("Calc failed: %v\n", err)
			return
		}
		io.Pforan("bhp = %g ql = %g => pi = %v\n", c.bhp, c.ql, r.PI)
		chk.Float64(tst, "pi", 1e-12, r.PI, c.pi)
		checkCurve(tst, r)
	}

	// explicit pi and resolution
	r, err := Calc(res, Inflow{Mode: ExplicitPI, PI: 1.5}, &Options{Npts: 41, Pmin: 0})
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	chk.Int(tst, "npts", len(r.Curve), 42)
	chk.Float64(tst, "pi", 1e-17, r.PI, 1.5)
	chk.Float64(tst, "qlmax", 1e-9, r.Curve[0].Ql, r.QlMax)
	checkCurve(tst, r)

	// no side effects
	again, _ := Calc(res, Inflow{Mode: ExplicitPI, PI: 1.5}, &Options{Npts: 41, Pmin: 0})
	chk.Array(tst, "same pressures", 1e-17, again.Pressures(), r.Pressures())
	chk.Array(tst, "same rates", 1e-17, again.Rates(), r.Rates())
}

func Test_ipr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipr03. bubble-point pressure clamped to reservoir pressure")

	fluid := exampleFluid(tst, 1400)
	io.Pforan("pbub @ 200°F = %v\n", fluid.Pbub(200))
	if fluid.Pbub(200) <= 1000 {
		tst.Errorf("pbub should exceed the reservoir pressure\n")
		return
	}

	mdl := NewModel()
	clamped, err := mdl.SetReservoir(1000, 200, fluid)
	if err != nil {
		tst.Errorf("SetReservoir failed: %v\n", err)
		return
	}
	if !clamped {
		tst.Errorf("BubblePointClamped advisory should have been raised\n")
		return
	}
	chk.Float64(tst, "pbub", 1e-17, mdl.Pbub(), 1000)

	err = mdl.SetPI(2)
	if err != nil {
		tst.Errorf("SetPI failed: %v\n", err)
		return
	}
	r, err := mdl.InflowCurve()
	if err != nil {
		tst.Errorf("InflowCurve failed: %v\n", err)
		return
	}
	if !r.Clamped {
		tst.Errorf("result should carry the clamped flag\n")
	}
	chk.Int(tst, "npts", len(r.Curve), 19)
	chk.Float64(tst, "qlbub", 1e-17, r.QlBub, 0)
	chk.Float64(tst, "qlmax", 1e-9, r.QlMax, 2*1000/1.8)
	checkCurve(tst, r)

	// re-clamp in Calc
	r, err = Calc(Reservoir{Pres: 1000, Pbub: 1500}, Inflow{PI: 2}, nil)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	if !r.Clamped || r.Pbub != 1000 {
		tst.Errorf("Calc should clamp pbub. clamped = %v, pbub = %g\n", r.Clamped, r.Pbub)
	}
}

func Test_ipr04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipr04. invalid input leaves state unchanged")

	mdl := NewModel()
	_, err := mdl.SetReservoir(4705, 160, constPbub(3000))
	if err != nil {
		tst.Errorf("SetReservoir failed: %v\n", err)
		return
	}
	err = mdl.SetTest(1964.3, 653)
	if err != nil {
		tst.Errorf("SetTest failed: %v\n", err)
		return
	}
	before := *mdl

	check := func(msg string, err error) {
		if !errors.Is(err, errs.InvalidInput) {
			tst.Errorf("%s should have failed with InvalidInput. err = %v\n", msg, err)
			return
		}
		io.Pforan("%s: %v\n", msg, err)
		if *mdl != before {
			tst.Errorf("%s modified the model\n", msg)
		}
	}

	_, err = mdl.PiFromTest(1964.3, 0)
	check("ql = 0", err)
	_, err = mdl.PiFromTest(0, 653)
	check("bhp = 0", err)
	_, err = mdl.PiFromTest(-5, 653)
	check("bhp < 0", err)
	_, err = mdl.PiFromTest(4705, 653)
	check("bhp = pres", err)
	check("SetTest(ql = 0)", mdl.SetTest(1964.3, 0))
	check("SetTest(bhp = pres)", mdl.SetTest(5000, 653))
	check("SetPI(0)", mdl.SetPI(0))
	_, err = mdl.SetReservoir(0, 160, constPbub(3000))
	check("pres = 0", err)
	_, err = mdl.SetReservoir(4705, 160, nil)
	check("nil fluid", err)
}

func Test_ipr05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipr05. inconsistent state")

	check := func(msg string, err error) {
		if !errors.Is(err, errs.InconsistentState) {
			tst.Errorf("%s should have failed with InconsistentState. err = %v\n", msg, err)
			return
		}
		io.Pforan("%s: %v\n", msg, err)
	}

	// nothing set
	var mdl Model
	_, err := mdl.InflowCurve()
	check("empty model", err)
	_, err = mdl.PiFromTest(1964.3, 653)
	check("pi without reservoir", err)

	// explicit mode without pi
	mdl.SetReservoir(4705, 160, constPbub(3000))
	_, err = mdl.InflowCurve()
	check("no pi", err)

	// test mode without test
	_, err = Calc(Reservoir{Pres: 4705, Pbub: 3000}, Inflow{Mode: FromTest}, nil)
	check("no test", err)

	// test above the new reservoir pressure
	err = mdl.SetTest(4000, 653)
	if err != nil {
		tst.Errorf("SetTest failed: %v\n", err)
		return
	}
	mdl.SetReservoir(3500, 160, constPbub(3000))
	_, err = mdl.InflowCurve()
	check("bhp >= pres", err)

	// unknown mode and missing pbub
	_, err = Calc(Reservoir{Pres: 4705, Pbub: 3000}, Inflow{Mode: Mode(7), PI: 1}, nil)
	check("mode", err)
	_, err = Calc(Reservoir{Pres: 4705}, Inflow{PI: 1}, nil)
	check("pbub", err)

	// invalid options
	_, err = Calc(Reservoir{Pres: 4705, Pbub: 3000}, Inflow{PI: 1}, &Options{Npts: 1})
	if !errors.Is(err, errs.InvalidInput) {
		tst.Errorf("npts = 1 should have failed with InvalidInput. err = %v\n", err)
	}
}
