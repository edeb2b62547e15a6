// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package point

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

// loam returns a loam record with 1% organic carbon
func loam() *soil.Record {
	r := soil.NewRecord(1)
	r.Name = "loam"
	r.Sand, r.Silt, r.Clay, r.BD, r.Carbon = 40, 40, 20, 1.3, 1.0
	return r
}

func calc(tst *testing.T, name string, prms dbf.Params, r *soil.Record) (mdl Model, res Result) {
	mdl, err := New(name)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	if prms == nil {
		prms = mdl.GetPrms(true)
	}
	err = mdl.Init(prms)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	res = mdl.Calc(r, checks.Discard, checks.NewFlag(checks.LastResult))
	return
}

func Test_nguyen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nguyen01")

	_, res := calc(tst, "Nguyen_2014", nil, loam())
	io.Pforan("wc = %v\n", res.WC)
	chk.Array(tst, "wc", 1e-14, res.WC, []float64{0.4278, 0.4045, 0.3864, 0.328, 0.2996, 0.2796, 0.2379, 0.1524})
	if res.HasKsat {
		tst.Errorf("Nguyen_2014 does not compute Ksat\n")
	}
}

func Test_carbon01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("carbon01")

	// organic carbon dataset: OM-native model converts with cfac
	mdl, res := calc(tst, "Rawls_1982", nil, loam())
	chk.Float64(tst, "wc33 (OC)", 1e-14, res.WC[2], 0.3011476)
	chk.Strings(tst, "required", mdl.Required(), []string{"Sand", "Silt", "Clay", "BD", "OC"})

	// organic matter dataset: no conversion
	prms := dbf.Params{&dbf.P{N: "cfac", V: 1.724}, &dbf.P{N: "om", V: 1}}
	mdl, res = calc(tst, "Rawls_1982", prms, loam())
	chk.Float64(tst, "wc33 (OM)", 1e-14, res.WC[2], 0.2795)
	chk.Strings(tst, "required", mdl.Required(), []string{"Sand", "Silt", "Clay", "BD", "OM"})

	// wrong parameter
	mdl, _ = New("Rawls_1982")
	err := mdl.Init(dbf.Params{&dbf.P{N: "carbon", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed\n")
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "cfac", V: 0}})
	if err == nil {
		tst.Errorf("Init should have failed with zero factor\n")
	}
}

func Test_simple01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("simple01")

	_, res := calc(tst, "Lal_1978_Group1", nil, loam())
	chk.Array(tst, "Lal group 1", 1e-14, res.WC, []float64{(0.289 + 0.08) * 1.3, (0.102 + 0.06) * 1.3, (0.065 + 0.08) * 1.3, (0.006 + 0.06) * 1.3})

	r := loam()
	r.Sand = 80
	_, res = calc(tst, "ManriqueJones_1991", nil, r)
	chk.Float64(tst, "sandy wc33", 1e-14, res.WC[0], 0.73426-0.00145*80-0.29176*1.3)
	_, res = calc(tst, "ManriqueJones_1991", nil, loam())
	chk.Float64(tst, "wc33", 1e-14, res.WC[0], 0.5784+0.002227*20-0.28438*1.3)

	_, res = calc(tst, "Santra_2018_OC", nil, loam())
	chk.Float64(tst, "Santra wc33", 1e-14, res.WC[0], (24.98-0.205*40+0.28*20+0.192*10)*1.3*1e-2)
}

func Test_saxton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("saxton01")

	r := loam()
	r.Carbon = 2.5
	prms := dbf.Params{&dbf.P{N: "om", V: 1}}
	_, res := calc(tst, "SaxtonRawls_2006", prms, r)
	io.Pforan("wc = %v  ksat = %v\n", res.WC, res.Ksat)
	if !res.HasKsat {
		tst.Errorf("SaxtonRawls_2006 computes Ksat\n")
		return
	}
	if !(res.WC[0] > res.WC[1] && res.WC[1] > res.WC[2] && res.WC[2] > 0) {
		tst.Errorf("water contents should decrease with pressure: %v\n", res.WC)
	}
	if res.Ksat <= 0 {
		tst.Errorf("Ksat should be positive: %v\n", res.Ksat)
	}
	t := SaxtonRawls(40, 20, 2.5)
	chk.Float64(tst, "ksat", 1e-12, res.Ksat, 1930*math.Pow(t.WCsat-t.WC33, 3-1/t.B))

	// very sandy soil without organic matter: negative water content at 1500 kPa
	r = loam()
	r.Sand, r.Silt, r.Clay, r.Carbon = 100, 0, 0, 0
	lg := checks.NewLog(chk.Verbose)
	mdl, _ := New("SaxtonRawls_2006")
	mdl.Init(prms)
	res = mdl.Calc(r, lg, checks.NewFlag(checks.LastResult))
	chk.Float64(tst, "ksat sentinel", 1e-14, res.Ksat, soil.Sentinel)
	if lg.NumWarnings() == 0 {
		tst.Errorf("negative outputs should be reported\n")
	}
	if !strings.Contains(lg.String(), "Cannot calculate Ksat for loam") {
		tst.Errorf("log is missing the Ksat message:\n%s", lg.String())
	}

	// zero water content cannot be used either
	if (SaxtonRawlsTerms{WC33: 0.2, WC1500: 0}).Fittable() || (SaxtonRawlsTerms{WC33: 0, WC1500: 0.1}).Fittable() {
		tst.Errorf("zero water contents must not be fittable\n")
	}
	if !(SaxtonRawlsTerms{WC33: 0.2, WC1500: 0.1}).Fittable() {
		tst.Errorf("positive water contents must be fittable\n")
	}
}

func Test_all01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("all01")

	names := ptf.Names(ptf.PointPTF)
	chk.Int(tst, "number of point models", len(allocators), len(names))
	for _, name := range names {
		mdl, res := calc(tst, name, nil, loam())
		if len(res.WC) != len(mdl.Pressures()) {
			tst.Errorf("%s: got %d water contents for %d pressures\n", name, len(res.WC), len(mdl.Pressures()))
			continue
		}
		for i, wc := range res.WC {
			if math.IsNaN(wc) || math.IsInf(wc, 0) {
				tst.Errorf("%s: water content at %g kPa is not finite\n", name, mdl.Pressures()[i])
			}
		}
		io.Pf("%-25s %v\n", name, res.WC)
	}

	_, err := New("Unknown_2000")
	if err == nil {
		tst.Errorf("New should have failed\n")
	}
}

func Test_rawls01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rawls01")

	// organic matter data: carbon used as is
	prms := dbf.Params{&dbf.P{N: "cfac", V: 1.724}, &dbf.P{N: "om", V: 1}}
	mdl, res := calc(tst, "Rawls_1982", prms, loam())
	d, _ := ptf.Get("Rawls_1982")
	chk.Array(tst, "pressures", 1e-15, mdl.Pressures(), []float64{10, 20, 33, 50, 100, 200, 400, 700, 1000, 1500})
	chk.String(tst, d.WCFields()[3], "WC_50kPa")
	chk.Float64(tst, "WC_50kPa", 1e-15, res.WC[3], 0.2065-0.0016*40+0.0040*20+0.0275*1.0)
	chk.Float64(tst, "WC_1500kPa", 1e-15, res.WC[9], 0.026+0.005*20+0.0158*1.0)
}
