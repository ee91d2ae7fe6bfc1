// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/petrodev/goipr/well"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".well", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGoipr -- inflow performance of oil wells\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot curves", "doplot", doplot,
		))
	}

	// analysis data
	analysis, err := well.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("cannot read analysis:\n%v", err)
	}

	// run analysis
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// save results
	err = analysis.Save(doplot)
	if err != nil {
		chk.Panic("Save failed:\n%v", err)
	}
}
