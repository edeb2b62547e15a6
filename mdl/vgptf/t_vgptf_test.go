// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgptf

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

func loam() *soil.Record {
	r := soil.NewRecord(1)
	r.Name = "loam"
	r.Sand, r.Silt, r.Clay, r.BD, r.Carbon, r.CEC, r.PH = 40, 40, 20, 1.3, 1.0, 12, 5.5
	return r
}

func calc(tst *testing.T, name string, mvg bool) Params {
	mdl, err := New(name)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	prms := mdl.GetPrms(true)
	if mvg {
		prms.Find("mvg").V = 1
	}
	if err = mdl.Init(prms); err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	return mdl.Calc(loam(), checks.Discard, checks.NewFlag(checks.LastResult))
}

func Test_vereecken01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vereecken01")

	res := calc(tst, "Vereecken_1989", false)
	io.Pforan("res = %+v\n", res)
	chk.Float64(tst, "θs", 1e-14, res.Ths, 0.81-0.283*1.3+0.02)
	chk.Float64(tst, "θr", 1e-14, res.Thr, 0.015+0.1+0.014)
	chk.Float64(tst, "α", 1e-14, res.Alpha, 10*math.Exp(-2.486+1.0-0.351-2.617*1.3-0.46))
	chk.Float64(tst, "n", 1e-14, res.N, math.Exp(0.053-0.36-0.26+0.24))
	chk.Float64(tst, "m", 1e-15, res.M, 1)
	if res.HasMVG {
		tst.Errorf("Vereecken does not give Mualem parameters\n")
	}
}

func Test_mvg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mvg01")

	res := calc(tst, "Weynants_2009", false)
	if res.HasMVG || res.L != 0 || res.Ksat != 0 {
		tst.Errorf("Mualem parameters should not be computed: %+v\n", res)
	}
	res = calc(tst, "Weynants_2009", true)
	io.Pforan("res = %+v\n", res)
	chk.Float64(tst, "θs", 1e-14, res.Ths, 0.6355+0.026-0.1631*1.3)
	chk.Float64(tst, "l", 1e-14, res.L, -1.8642-0.1317*20+0.0067*40)
	chk.Float64(tst, "ksat", 1e-12, res.Ksat, math.Exp(1.9582+0.0308*40-0.6142*1.3-0.1566)*10/24)
	if !res.HasMVG {
		tst.Errorf("Mualem parameters should be computed\n")
	}

	res = calc(tst, "Wosten_1999_top", true)
	io.Pforan("res = %+v\n", res)
	if !res.HasMVG || res.Ksat <= 0 || res.L < -10 || res.L > 10 {
		tst.Errorf("Wosten Mualem parameters are incorrect: %+v\n", res)
	}

	mdl, _ := New("Vereecken_1989")
	err := mdl.Init(dbf.Params{&dbf.P{N: "mvg", V: 1}})
	if err == nil || !strings.Contains(err.Error(), "does not calculate Mualem-van Genuchten") {
		tst.Errorf("Vereecken with mvg should fail: %v\n", err)
	}
}

func Test_all01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("all01")

	chk.Float64(tst, "alpha", 1e-15, AlphaPerKPa(0.02), 0.2)

	names := ptf.Names(ptf.VGPTF)
	chk.Int(tst, "number of models", len(allocators), len(names))
	for _, name := range names {
		res := calc(tst, name, false)
		io.Pf("%-25s %+v\n", name, res)
		for _, v := range []float64{res.Thr, res.Ths, res.Alpha, res.N, res.M} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				tst.Errorf("%s: parameters should be finite: %+v\n", name, res)
			}
		}
		if res.Ths <= res.Thr {
			tst.Errorf("%s: θs should be greater than θr: %+v\n", name, res)
		}
	}
}

func Test_carbon01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("carbon01")

	// Wosten: calibrated with organic matter; organic carbon of 1% is 1.724% of organic matter
	res := calc(tst, "Wosten_1999_top", true)
	io.Pforan("res = %+v\n", res)
	chk.Float64(tst, "θs", 1e-15, res.Ths, 0.46639474761415706)

	// same soil given as organic matter
	mdl, _ := New("Wosten_1999_top")
	err := mdl.Init(dbf.Params{&dbf.P{N: "cfac", V: 1.724}, &dbf.P{N: "om", V: 1}, &dbf.P{N: "mvg", V: 1}})
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	r := loam()
	r.Carbon = 1.724
	om := mdl.Calc(r, checks.Discard, checks.NewFlag(checks.LastResult))
	chk.Float64(tst, "θs(OM)", 1e-15, om.Ths, res.Ths)
	chk.Float64(tst, "α(OM)", 1e-15, om.Alpha, res.Alpha)
	chk.Float64(tst, "n(OM)", 1e-15, om.N, res.N)
	chk.Float64(tst, "l(OM)", 1e-15, om.L, res.L)
	chk.Float64(tst, "ksat(OM)", 1e-15, om.Ksat, res.Ksat)

	// HodnettTomasella: organic carbon only
	mdl, _ = New("HodnettTomasella_2002")
	chk.Strings(tst, "required", mdl.Required(), []string{"Sand", "Silt", "Clay", "BD", "CEC", "pH", "OC"})
	err = mdl.Init(dbf.Params{&dbf.P{N: "cfac", V: 1.724}, &dbf.P{N: "om", V: 1}})
	if err == nil || !strings.Contains(err.Error(), "requires organic carbon") {
		tst.Errorf("HodnettTomasella with organic matter should fail: %v\n", err)
	}
}
