// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.well) JSON file
package inp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/petrodev/goipr/mdl/ipr"
	"github.com/petrodev/goipr/mdl/pvt"
)

// Data holds global data for analyses
type Data struct {
	Desc   string  `json:"desc"`   // description of analysis
	DirOut string  `json:"dirout"` // directory for output; e.g. /tmp/goipr
	DbFile string  `json:"dbfile"` // SQLite file to store results; empty means do not store
	Npts   int     `json:"npts"`   // number of evenly spaced pressures in inflow curves
	Pmin   float64 `json:"pmin"`   // smallest pressure in inflow curves [psig]
}

// FluidData holds the fluid description
type FluidData struct {
	Model string     `json:"model"` // bubble-point correlation. ex: glaso, standing, vazquez-beggs
	Prms  dbf.Params `json:"prms"`  // fluid parameters: rsi, gasSG, oilAPI
}

// ReservoirData holds reservoir data
type ReservoirData struct {
	Pres float64 `json:"pres"` // reservoir pressure [psig]
	Tres float64 `json:"tres"` // reservoir temperature [°F]
}

// WellData holds data of one well
type WellData struct {
	Name string  `json:"name"` // name of well. ex: 1A
	Type string  `json:"type"` // how pi is obtained: "pi" or "test"
	Pi   float64 `json:"pi"`   // productivity index [stb/d/psi]; type == "pi"
	Bhp  float64 `json:"bhp"`  // test bottomhole pressure [psig]; type == "test"
	Ql   float64 `json:"ql"`   // test liquid rate [stb/d]; type == "test"
	Skip bool    `json:"skip"` // do not analyse this well
}

// TableData holds the pressure range of the fluid properties table
type TableData struct {
	Pmin float64 `json:"pmin"` // smallest pressure [psig]
	Pmax float64 `json:"pmax"` // largest pressure [psig]; 0 means reservoir pressure
	Np   int     `json:"np"`   // number of pressures; 0 means 19
}

// Analysis holds all data of one analysis
type Analysis struct {

	// input
	Data      Data          `json:"data"`      // global data
	Fluid     FluidData     `json:"fluid"`     // fluid
	Reservoir ReservoirData `json:"reservoir"` // reservoir
	Wells     []*WellData   `json:"wells"`     // wells sharing the reservoir
	Table     *TableData    `json:"table"`     // fluid properties table; nil means no table

	// derived
	DirOut string        // directory to save results
	Key    string        // analysis key; e.g. field.well => field
	Pvt    *pvt.Model    // fluid model
	Res    ipr.Reservoir // reservoir with bubble-point pressure
	Opts   ipr.Options   // inflow curve options
}

// ReadWell reads all analysis data from a .well JSON file
func ReadWell(fnpath string) (o *Analysis, err error) {

	// new analysis
	o = new(Analysis)
	o.Data.Npts = 19
	o.Data.Pmin = 0.001
	o.Fluid.Model = "glaso"

	// read file
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, fmt.Errorf("ReadWell: cannot read file %q: %w", fnpath, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, fmt.Errorf("ReadWell: cannot unmarshal file %q: %w", fnpath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(fnpath))
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/goipr/" + o.Key
	}

	// fluid
	o.Pvt, err = pvt.New(o.Fluid.Model)
	if err != nil {
		return nil, fmt.Errorf("ReadWell: %w", err)
	}
	err = o.Pvt.Init(o.Fluid.Prms)
	if err != nil {
		return nil, fmt.Errorf("ReadWell: cannot initialise fluid model: %w", err)
	}

	// reservoir
	o.Res, err = ipr.NewReservoir(o.Reservoir.Pres, o.Reservoir.Tres, o.Pvt)
	if err != nil {
		return nil, fmt.Errorf("ReadWell: invalid reservoir data: %w", err)
	}
	o.Opts = ipr.Options{Npts: o.Data.Npts, Pmin: o.Data.Pmin}

	// wells
	names := make(map[string]bool)
	for i, w := range o.Wells {
		if w.Name == "" {
			w.Name = io.Sf("well%d", i)
		}
		if names[w.Name] {
			return nil, chk.Err("ReadWell: well name %q is repeated", w.Name)
		}
		names[w.Name] = true
		if _, err = o.Inflow(w); err != nil {
			return nil, fmt.Errorf("ReadWell: %w", err)
		}
	}

	// table
	if o.Table != nil {
		if o.Table.Pmax == 0 {
			o.Table.Pmax = o.Res.Pres
		}
		if o.Table.Np == 0 {
			o.Table.Np = 19
		}
	}
	return
}

// Inflow returns the productivity index data of one well
func (o Analysis) Inflow(w *WellData) (inflow ipr.Inflow, err error) {
	switch w.Type {
	case "pi":
		inflow = ipr.Inflow{Mode: ipr.ExplicitPI, PI: w.Pi}
	case "test":
		inflow = ipr.Inflow{Mode: ipr.FromTest, Test: ipr.WellTest{Bhp: w.Bhp, Ql: w.Ql}}
	default:
		err = chk.Err("well %q: type %q is incorrect; options are \"pi\" and \"test\"", w.Name, w.Type)
	}
	return
}
