// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package well implements the driver that computes inflow curves of all wells in a field
package well

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/petrodev/goipr/inp"
	"github.com/petrodev/goipr/mdl/ipr"
	"github.com/petrodev/goipr/mdl/pvt"
	"github.com/petrodev/goipr/out"
)

// Main holds all data for one inflow analysis
type Main struct {
	Ana     *inp.Analysis // input data
	Runs    []*out.Run    // results; one per analysed well
	Rows    []pvt.Row     // fluid properties table; empty if not requested
	ShowMsg bool          // show messages
}

// NewMain returns a new Main structure
//  Input:
//   fnamepath -- analysis (.well) filename including full path
//   verbose   -- show messages
func NewMain(fnamepath string, verbose bool) (o *Main, err error) {
	o = &Main{ShowMsg: verbose}
	o.Ana, err = inp.ReadWell(fnamepath)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Analysis (.well) file read\n")
		io.Pf("> Fluid model %q: pbub = %.2f psig @ %g °F\n", o.Ana.Pvt.Correlation().Name(), o.Ana.Pvt.Pbub(o.Ana.Res.Tres), o.Ana.Res.Tres)
	}
	return
}

// Run computes the inflow curve of each well that is not skipped and the fluid table
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { o.onexit(cputime, err) }()

	// wells
	o.Runs = nil
	for _, w := range o.Ana.Wells {
		if w.Skip {
			if o.ShowMsg {
				io.Pf("> Skipping well %s\n", w.Name)
			}
			continue
		}
		var run *out.Run
		run, err = o.RunWell(w)
		if err != nil {
			return
		}
		o.Runs = append(o.Runs, run)
		if o.ShowMsg {
			io.Pf("> Well %-6s pi = %9.5f  qlbub = %10.2f  qlmax = %10.2f\n", w.Name, run.Result.PI, run.Result.QlBub, run.Result.QlMax)
		}
	}

	// fluid properties
	if t := o.Ana.Table; t != nil {
		o.Rows, err = pvt.Table(o.Ana.Pvt, o.Ana.Res.Tres, t.Pmin, t.Pmax, t.Np)
		if err != nil {
			return fmt.Errorf("fluid table: %w", err)
		}
	}
	return
}

// RunWell computes the inflow curve of one well
func (o *Main) RunWell(w *inp.WellData) (run *out.Run, err error) {

	// inflow data
	inflow, err := o.Ana.Inflow(w)
	if err != nil {
		return
	}

	// model
	m := ipr.NewModel()
	m.Opts = o.Ana.Opts
	m.Verbose = o.ShowMsg
	_, err = m.SetReservoir(o.Ana.Res.Pres, o.Ana.Res.Tres, o.Ana.Pvt)
	if err != nil {
		return nil, fmt.Errorf("well %s: %w", w.Name, err)
	}
	switch inflow.Mode {
	case ipr.ExplicitPI:
		err = m.SetPI(inflow.PI)
	case ipr.FromTest:
		err = m.SetTest(inflow.Test.Bhp, inflow.Test.Ql)
	}
	if err != nil {
		return nil, fmt.Errorf("well %s: %w", w.Name, err)
	}

	// curve
	res, err := m.InflowCurve()
	if err != nil {
		return nil, fmt.Errorf("well %s: %w", w.Name, err)
	}
	run = &out.Run{Name: w.Name, Desc: o.Ana.Data.Desc, Mode: m.Mode().String(), Result: res}
	if test, ok := m.Test(); ok {
		run.Test = &test
	}
	return
}

// Save writes tables, a JSON summary, plots (if doplot) and stores runs in the database (if set)
func (o *Main) Save(doplot bool) (err error) {
	dirout, key := o.Ana.DirOut, o.Ana.Key

	// tables
	out.WriteTables(dirout, key, o.Runs, o.Ana.Res.Tres, o.Rows)

	// summary
	b, err := json.MarshalIndent(o.Runs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	io.WriteFileD(dirout, key+"-summary.json", bytes.NewBuffer(b))
	if o.ShowMsg {
		io.Pf("> Results written to %s\n", dirout)
	}

	// plots
	if doplot && len(o.Runs) > 0 {
		plt.Reset(false, nil)
		out.PlotCurves(o.Runs)
		out.PlotEnd(dirout, key)
		if len(o.Rows) > 0 {
			plt.Reset(false, nil)
			out.PlotPvt(o.Rows)
			out.PlotEnd(dirout, key+"-pvt")
		}
	}

	// database
	if o.Ana.Data.DbFile == "" {
		return
	}
	path := o.Ana.Data.DbFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(dirout, path)
	}
	db, err := out.NewStore(path)
	if err != nil {
		return
	}
	defer func() {
		if e := db.Close(); e != nil && err == nil {
			err = fmt.Errorf("close database: %w", e)
		}
	}()
	err = db.SaveRuns(o.Runs...)
	if err == nil && o.ShowMsg {
		io.Pf("> %d runs stored in %s\n", len(o.Runs), path)
	}
	return
}

// onexit prints the final message with the cpu time
func (o *Main) onexit(cputime time.Time, err error) {
	if !o.ShowMsg {
		return
	}
	if err == nil {
		io.PfGreen("> Success\n")
		io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
	} else {
		io.PfRed("> Failed\n")
	}
}
