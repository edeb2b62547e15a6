// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package point

import (
	"math"

	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// SaxtonRawlsTerms holds the intermediate quantities of Saxton and Rawls (2006)
type SaxtonRawlsTerms struct {
	WC33   float64 // water content at 33 kPa
	WC1500 float64 // water content at 1500 kPa
	WCsat  float64 // water content at saturation
	S33    float64 // saturation minus 33 kPa moisture (density corrected)
	B      float64 // slope of the log-log moisture-tension curve
}

// SaxtonRawls computes the intermediate quantities of Saxton and Rawls (2006)
//  sand, clay -- percentages
//  om         -- organic matter percentage
func SaxtonRawls(sand, clay, om float64) (o SaxtonRawlsTerms) {
	S, Cl, C := sand, clay, om
	t33 := -0.00251*S + 0.00195*Cl + 0.00011*C + 0.0000006*S*C - 0.0000027*Cl*C + 0.0000452*S*Cl + 0.299
	o.WC33 = 1.283*t33*t33 + 0.626*t33 - 0.015
	ts33 := 0.00278*S + 0.00034*Cl + 0.00022*C - 0.0000018*S*C - 0.0000027*Cl*C - 0.0000584*S*Cl + 0.078
	o.S33 = 1.636*ts33 - 0.107
	o.WCsat = o.WC33 + o.S33 - 0.00097*S + 0.043
	t1500 := -0.00024*S + 0.00487*Cl + 0.00006*C + 0.0000005*S*C - 0.0000013*Cl*C + 0.0000068*S*Cl + 0.031
	o.WC1500 = 1.14*t1500 - 0.02
	o.B = (math.Log(1500) - math.Log(33)) / (math.Log(o.WC33) - math.Log(o.WC1500))
	return
}

// Lambda returns the pore size distribution index 1/B
func (o SaxtonRawlsTerms) Lambda() float64 {
	return 1.0 / o.B
}

// Fittable tells whether λ and Ksat can be computed; i.e. WC33 and WC1500 are positive
func (o SaxtonRawlsTerms) Fittable() bool {
	return o.WC33 > 0 && o.WC1500 > 0
}

// Ksat returns the saturated hydraulic conductivity [mm/hr]
func (o SaxtonRawlsTerms) Ksat() float64 {
	return 1930 * math.Pow(o.WCsat-o.WC33, 3-o.Lambda())
}

// SaxtonRawlsPoint implements the water contents of Saxton and Rawls (2006) at 0, 33 and 1500 kPa
type SaxtonRawlsPoint struct {
	base
}

// add model to factory
func init() {
	allocators["SaxtonRawls_2006"] = func(d *ptf.Descriptor) Model {
		return &SaxtonRawlsPoint{newBase(d, soil.OM, true, soil.KeySand, soil.KeyClay)}
	}
}

// Calc computes water contents at 0, 33 and 1500 kPa and Ksat.
// Ksat is set to the sentinel when WC33 or WC1500 is not positive.
func (o *SaxtonRawlsPoint) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Carbon", "Sand", "Clay")
	t := SaxtonRawls(r.Sand, r.Clay, o.c(r))
	checks.NegOutput(lg, []float64{t.WC33, t.WC1500, t.WCsat}, r.ID)
	res := Result{WC: []float64{t.WCsat, t.WC33, t.WC1500}, Ksat: soil.Sentinel, HasKsat: true}
	if t.Fittable() {
		res.Ksat = t.Ksat()
	} else {
		lg.Warnf("Cannot calculate Ksat for %s: water content at 33kPa or 1500kPa is not positive, setting it to %g", r.Label(), soil.Sentinel)
	}
	return res
}
