// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

func Test_thresholds01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thresholds01")

	// all thresholds
	lg := checks.NewLog(false)
	o := NewThresholds(lg, "loam", ref(0.45), ref(0.30), ref(0.20), ref(0.10))
	chk.Strings(tst, "columns", o.Columns(), []string{ColSat, ColFC, ColSIC, ColPWP, ColDW, ColPAW, ColRAW, ColNRAW})
	chk.Array(tst, "values", 1e-15, o.Values(), []float64{0.45, 0.30, 0.20, 0.10, 0.15, 0.20, 0.10, 0.10})
	if o.RAWFromPAW {
		tst.Errorf("RAW must not be approximated when SIC is available\n")
	}
	chk.Int(tst, "warnings", lg.NumWarnings(), 0)

	// only FC and SIC => RAW only
	o = NewThresholds(lg, "loam", nil, ref(0.30), ref(0.20), nil)
	chk.Strings(tst, "columns", o.Columns(), []string{ColFC, ColSIC, ColRAW})
	chk.Float64(tst, "RAW", 1e-15, o.Get(ColRAW), 0.10)
	if !math.IsNaN(o.Get(ColPAW)) {
		tst.Errorf("PAW must not be available\n")
	}
}

func Test_thresholds02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thresholds02")

	// no SIC => RAW from PAW
	lg := checks.NewLog(false)
	o := NewThresholds(lg, "sand", ref(0.40), ref(0.12), nil, ref(0.04))
	chk.Strings(tst, "columns", o.Columns(), []string{ColSat, ColFC, ColPWP, ColDW, ColPAW, ColRAW})
	chk.Float64(tst, "RAW", 1e-15, o.Get(ColRAW), 0.5*(0.12-0.04))
	if !o.RAWFromPAW {
		tst.Errorf("RAW must be approximated from PAW\n")
	}

	// negative differences are logged but kept
	o = NewThresholds(lg, "odd", ref(0.20), ref(0.30), ref(0.35), ref(0.10))
	chk.Float64(tst, "DW", 1e-15, o.Get(ColDW), -0.10)
	chk.Float64(tst, "RAW", 1e-15, o.Get(ColRAW), -0.05)
	if !strings.Contains(lg.String(), "Drainable water is negative for odd") {
		tst.Errorf("negative drainable water must be logged:\n%s", lg.String())
	}

	// sentinel operands give sentinel results
	o = NewThresholds(lg, "unfitted", ref(soil.Sentinel), ref(soil.Sentinel), ref(soil.Sentinel), ref(soil.Sentinel))
	for _, v := range o.Values() {
		chk.Float64(tst, "sentinel", 1e-17, v, soil.Sentinel)
	}
}
