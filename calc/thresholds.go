// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"

	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// columns with water contents at critical thresholds
const (
	ColSat  = "wc_satCalc" // saturation
	ColFC   = "wc_fcCalc"  // field capacity
	ColSIC  = "wc_sicCalc" // stomatal closure
	ColPWP  = "wc_pwpCalc" // permanent wilting point
	ColDW   = "wc_DW"      // drainable water
	ColPAW  = "wc_PAW"     // plant available water
	ColRAW  = "wc_RAW"     // readily available water
	ColNRAW = "wc_NRAW"    // not readily available water
)

// Thresholds holds water contents at critical thresholds and the differences between them.
// Nil means not available.
type Thresholds struct {
	Sat, FC, SIC, PWP  *float64 // water contents at saturation, FC, SIC and PWP
	DW, RAW, NRAW, PAW *float64 // differences; see rules
	RAWFromPAW         bool     // RAW was approximated as half of PAW
}

// rule defines a difference a - b between two thresholds
type rule struct {
	label string
	args  func(o *Thresholds) (a, b *float64)
	set   func(o *Thresholds, v *float64)
}

// rules holds all differences
var rules = []rule{
	{"Drainable water",
		func(o *Thresholds) (a, b *float64) { return o.Sat, o.FC },
		func(o *Thresholds, v *float64) { o.DW = v }},
	{"Plant available water",
		func(o *Thresholds) (a, b *float64) { return o.FC, o.PWP },
		func(o *Thresholds, v *float64) { o.PAW = v }},
	{"Readily available water",
		func(o *Thresholds) (a, b *float64) { return o.FC, o.SIC },
		func(o *Thresholds, v *float64) { o.RAW = v }},
	{"Not readily available water",
		func(o *Thresholds) (a, b *float64) { return o.SIC, o.PWP },
		func(o *Thresholds, v *float64) { o.NRAW = v }},
}

// NewThresholds computes the differences between the given water contents
//  Note: a sentinel operand gives a sentinel result; negative differences are logged
func NewThresholds(lg checks.Logger, soilname string, sat, fc, sic, pwp *float64) (o *Thresholds) {
	o = &Thresholds{Sat: sat, FC: fc, SIC: sic, PWP: pwp}
	for _, r := range rules {
		a, b := r.args(o)
		if a == nil || b == nil {
			continue
		}
		v := soil.Sentinel
		if !soil.IsSentinel(*a) && !soil.IsSentinel(*b) {
			v = *a - *b
			checks.NegValue(lg, r.label, v, soilname)
		}
		r.set(o, &v)
	}
	if o.RAW == nil && o.PAW != nil {
		v := soil.Sentinel
		if !soil.IsSentinel(*o.PAW) {
			v = 0.5 * *o.PAW
		}
		o.RAW = &v
		o.RAWFromPAW = true
	}
	return
}

// Columns returns the names of available columns
func (o *Thresholds) Columns() (cols []string) {
	for _, c := range []struct {
		col string
		v   *float64
	}{{ColSat, o.Sat}, {ColFC, o.FC}, {ColSIC, o.SIC}, {ColPWP, o.PWP},
		{ColDW, o.DW}, {ColPAW, o.PAW}, {ColRAW, o.RAW}, {ColNRAW, o.NRAW}} {
		if c.v != nil {
			cols = append(cols, c.col)
		}
	}
	return
}

// Values returns the values of available columns in the order of Columns
func (o *Thresholds) Values() (vals []float64) {
	for _, v := range []*float64{o.Sat, o.FC, o.SIC, o.PWP, o.DW, o.PAW, o.RAW, o.NRAW} {
		if v != nil {
			vals = append(vals, *v)
		}
	}
	return
}

// Get returns the value of a column; NaN if not available
func (o *Thresholds) Get(col string) float64 {
	cols, vals := o.Columns(), o.Values()
	for i, c := range cols {
		if c == col {
			return vals[i]
		}
	}
	return math.NaN()
}

// ref returns a pointer to v
func ref(v float64) *float64 {
	return &v
}
