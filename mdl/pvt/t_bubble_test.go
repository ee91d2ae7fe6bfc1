// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_bubble01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bubble01. correlations @ example fluid")

	fluid := Fluid{Rsi: 800, GasSG: 0.75, OilAPI: 40}
	T := 160.0
	correct := map[string]float64{
		"glaso":         3082.158839339956,
		"standing":      2583.6471920970894,
		"vazquez-beggs": 3218.114432691497,
	}
	chk.Strings(tst, "names", Correlations(), []string{"glaso", "standing", "vazquez-beggs"})
	for _, name := range Correlations() {
		bp, err := NewBubblePoint(name)
		if err != nil {
			tst.Errorf("NewBubblePoint failed: %v\n", err)
			return
		}
		chk.String(tst, bp.Name(), name)
		pbub := bp.Pbub(fluid, T)
		io.Pforan("%-14s: pbub = %v\n", name, pbub)
		chk.Float64(tst, name, 1e-8, pbub, correct[name])
	}
}

func Test_bubble02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bubble02. positive and increasing with rsi")

	for _, name := range Correlations() {
		bp, _ := NewBubblePoint(name)
		for _, api := range []float64{15, 25, 35, 45, 55} {
			for _, sg := range []float64{0.55, 0.75, 1.0, 1.2} {
				for _, T := range []float64{80, 160, 250} {
					prev := 0.0
					for _, rsi := range utl.LinSpace(100, 2000, 20) {
						pbub := bp.Pbub(Fluid{Rsi: rsi, GasSG: sg, OilAPI: api}, T)
						if pbub <= prev {
							tst.Errorf("%s: pbub = %g must be positive and greater than %g. rsi=%g sg=%g api=%g T=%g\n", name, pbub, prev, rsi, sg, api, T)
							return
						}
						prev = pbub
					}
				}
			}
		}
	}
}

func Test_bubble03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bubble03. factory")

	_, err := NewBubblePoint("lasater")
	if err == nil {
		tst.Errorf("NewBubblePoint should have failed with unknown correlation\n")
		return
	}
	io.Pforan("%v\n", err)

	mdl, err := New("standing")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Configure(800, 0.75, 40)
	if err != nil {
		tst.Errorf("Configure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "standing pbub", 1e-8, mdl.Pbub(160), 2583.6471920970894)

	// undersaturated switch follows the selected correlation
	chk.Float64(tst, "rs @ pbub", 1e-17, mdl.Rs(mdl.Pbub(160), 160), 800)
	if mdl.Rs(mdl.Pbub(160)-1, 160) >= 800 {
		tst.Errorf("rs below standing pbub must be smaller than rsi\n")
	}
}
