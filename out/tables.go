// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/petrodev/goipr/mdl/pvt"
)

// CurveTable writes the inflow curve of a run as a table
func CurveTable(run *Run) (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)
	r := run.Result
	io.Ff(buf, "# well %s (%s)\n", run.Name, run.Mode)
	if run.Test != nil {
		io.Ff(buf, "# test:  bhp = %.2f psig, ql = %.2f stb/d\n", run.Test.Bhp, run.Test.Ql)
	}
	io.Ff(buf, "# pres  = %.2f psig\n", r.Pres)
	io.Ff(buf, "# pbub  = %.2f psig", r.Pbub)
	if r.Clamped {
		io.Ff(buf, " (clamped to reservoir pressure)")
	}
	io.Ff(buf, "\n# pi    = %.5f stb/d/psi\n", r.PI)
	io.Ff(buf, "# qlbub = %.2f stb/d\n", r.QlBub)
	io.Ff(buf, "# qlmax = %.2f stb/d\n", r.QlMax)
	io.Ff(buf, "%14s%14s\n", "pwf", "ql")
	for _, c := range r.Curve {
		io.Ff(buf, "%14.4f%14.4f\n", c.Pwf, c.Ql)
	}
	return
}

// PvtTable writes fluid properties as a table
func PvtTable(tempF float64, rows []pvt.Row) (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)
	io.Ff(buf, "# fluid properties @ %g °F\n", tempF)
	io.Ff(buf, "%12s%12s%12s%14s%12s\n", "p", "rs", "bo", "co", "muo")
	for _, r := range rows {
		io.Ff(buf, "%12.2f%12.4f%12.6f%14.6e%12.6f\n", r.P, r.Rs, r.Bo, r.Co, r.MuO)
	}
	return
}

// WriteTables writes one table file per run and, if rows are given, the fluid table
//  files are named <fnkey>-<well>.txt and <fnkey>-pvt.txt
func WriteTables(dirout, fnkey string, runs []*Run, tempF float64, rows []pvt.Row) {
	for _, run := range runs {
		io.WriteFileD(dirout, io.Sf("%s-%s.txt", fnkey, run.Name), CurveTable(run))
	}
	if len(rows) > 0 {
		io.WriteFileD(dirout, fnkey+"-pvt.txt", PvtTable(tempF, rows))
	}
}
