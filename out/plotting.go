// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
	"github.com/petrodev/goipr/mdl/pvt"
)

// Styles holds line styles for plotting runs
var Styles = []plt.A{
	{C: "b", M: "o", Ls: "-"},
	{C: "r", M: "s", Ls: "-"},
	{C: "g", M: "^", Ls: "-"},
	{C: "k", M: "d", Ls: "-"},
	{C: "m", M: "v", Ls: "-"},
}

// PlotCurves plots the inflow curves of all runs (rate versus flowing pressure)
//  The bubble point of each run is marked with a cross
func PlotCurves(runs []*Run) {
	for i, run := range runs {
		r := run.Result
		args := Styles[i%len(Styles)]
		args.L = run.Name
		plt.Plot(r.Rates(), r.Pressures(), &args)
		plt.PlotOne(r.QlBub, r.Pbub, &plt.A{C: args.C, M: "x", Ms: 10})
		if run.Test != nil {
			plt.PlotOne(run.Test.Ql, run.Test.Bhp, &plt.A{C: args.C, M: "*", Ms: 12})
		}
	}
	plt.Gll("liquid rate [stb/d]", "flowing bottomhole pressure [psig]", nil)
}

// PlotPvt plots the solution gas-oil ratio and the oil formation volume factor
func PlotPvt(rows []pvt.Row) {
	P := make([]float64, len(rows))
	Rs := make([]float64, len(rows))
	Bo := make([]float64, len(rows))
	for i, r := range rows {
		P[i], Rs[i], Bo[i] = r.P, r.Rs, r.Bo
	}
	plt.Subplot(2, 1, 1)
	plt.Plot(P, Rs, &plt.A{C: "b", M: ".", Ls: "-"})
	plt.Gll("pressure [psig]", "Rs [scf/stb]", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(P, Bo, &plt.A{C: "r", M: ".", Ls: "-"})
	plt.Gll("pressure [psig]", "Bo [rb/stb]", nil)
}

// PlotEnd saves the figure
func PlotEnd(dirout, fnkey string) {
	plt.Save(dirout, fnkey)
}
