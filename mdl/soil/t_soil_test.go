// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soil

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_carbon01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("carbon01")

	kind, err := ParseCarbon("Organic matter")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, kind.String(), "OM")
	chk.String(tst, kind.Label(), "Organic matter")

	_, err = ParseCarbon("humus")
	if err == nil {
		tst.Errorf("ParseCarbon should have failed\n")
		return
	}

	c := Carbon{Kind: OM, Factor: 0.58}
	chk.Float64(tst, "same kind", 1e-15, c.Effective(3.0, OM), 3.0)
	chk.Float64(tst, "converted", 1e-15, c.Effective(3.0, OC), 3.0*0.58)
}

func Test_record01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("record01")

	r := NewRecord(7)
	r.Sand, r.Carbon = 40, 2
	r.Extra[KeySatCalc] = 0.45
	chk.Float64(tst, "sand", 1e-15, r.Get(KeySand), 40)
	chk.Float64(tst, "OC", 1e-15, r.Get(KeyOC), 2)
	chk.Float64(tst, "extra", 1e-15, r.Get(KeySatCalc), 0.45)
	if !math.IsNaN(r.Get(KeyClay)) || !math.IsNaN(r.Get("nothing")) {
		tst.Errorf("missing values should be NaN\n")
	}
	chk.String(tst, r.Label(), "7")
	r.Name = "loam"
	chk.String(tst, r.Label(), "loam")
}
