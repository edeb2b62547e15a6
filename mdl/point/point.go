// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package point implements point pedotransfer functions; i.e. regressions giving
// the volumetric water content at a fixed set of pressures
package point

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Model defines point pedotransfer functions
type Model interface {
	Init(prms dbf.Params) error                                          // initialises model
	GetPrms(example bool) dbf.Params                                     // gets (an example) of parameters
	Required() []string                                                  // columns that must exist in the input
	Pressures() []float64                                                // [kPa] pressures of computed water contents
	Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Result) // computes water contents of one record
}

// Result holds the output of a point model for one record
type Result struct {
	WC      []float64 // [m³/m³] water contents at Pressures()
	Ksat    float64   // [mm/hr] saturated hydraulic conductivity
	HasKsat bool      // model also computes Ksat
}

// New returns a new point model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'point' database", name)
	}
	d, err := ptf.Get(name)
	if err != nil {
		return nil, err
	}
	return allocator(d), nil
}

// allocators holds all available models
var allocators = map[string]func(d *ptf.Descriptor) Model{}

// base holds data shared by all point models
type base struct {
	desc   *ptf.Descriptor // descriptor
	carbon soil.Carbon     // carbon convention of the dataset
	native soil.CarbonKind // carbon kind the regression was calibrated with
	usesC  bool            // regression uses carbon
	cols   []string        // required columns except carbon
}

// newBase returns a base for a model using columns cols
func newBase(d *ptf.Descriptor, native soil.CarbonKind, usesC bool, cols ...string) base {
	return base{desc: d, carbon: soil.NewCarbon(), native: native, usesC: usesC, cols: cols}
}

// Init initialises model
func (o *base) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if !o.carbon.Read(p) {
			return chk.Err("%s: parameter named %q is incorrect\n", o.desc.Name, p.N)
		}
	}
	return o.carbon.Check(o.desc.Name)
}

// GetPrms gets (an example) of parameters
func (o base) GetPrms(example bool) dbf.Params {
	return soil.NewCarbon().Prms()
}

// Required returns the columns that must exist in the input
func (o base) Required() []string {
	if o.usesC {
		return append(append([]string{}, o.cols...), o.carbon.Kind.Key())
	}
	return o.cols
}

// Pressures returns the pressures of computed water contents
func (o base) Pressures() []float64 {
	return o.desc.Pressures
}

// c returns the carbon content converted to the native kind of the regression
func (o base) c(r *soil.Record) float64 {
	return o.carbon.Effective(r.Carbon, o.native)
}

// check runs named checks; see checks.Record
func (o base) check(r *soil.Record, lg checks.Logger, f *checks.Flag, names ...string) {
	checks.Record(lg, f, r, o.carbon.Kind, names...)
}

// finish logs negative outputs and returns the result
func (o base) finish(r *soil.Record, lg checks.Logger, wc ...float64) Result {
	checks.NegOutput(lg, wc, r.ID)
	return Result{WC: wc}
}

// columns
var (
	colSSC = []string{soil.KeySand, soil.KeySilt, soil.KeyClay}
	colAll = []string{soil.KeySand, soil.KeySilt, soil.KeyClay, soil.KeyBD}
)
