// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcptf implements pedotransfer functions giving Brooks-Corey parameters
//  θ(p) = θs                       if p < hb
//  θ(p) = θr + (θs - θr)(hb/p)^λ   otherwise
// All bubbling pressures are returned in kPa; publications in cm are converted (1 kPa = 10 cm).
package bcptf

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Params holds the Brooks-Corey parameters of one record
type Params struct {
	Thr     float64 // residual water content
	Ths     float64 // saturated water content
	Lambda  float64 // pore size distribution index
	Hb      float64 // [kPa] bubbling pressure
	Ksat    float64 // [mm/hr] saturated hydraulic conductivity
	HasKsat bool    // Ksat was computed
	Fitted  bool    // false if the curve could not be computed; Lambda and Hb hold the sentinel
}

// Model defines Brooks-Corey pedotransfer functions
type Model interface {
	Init(prms dbf.Params) error                                          // initialises model
	GetPrms(example bool) dbf.Params                                     // gets (an example) of parameters
	Required() []string                                                  // columns that must exist in the input
	Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) // computes parameters of one record
}

// New returns a new Brooks-Corey model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'bcptf' database", name)
	}
	d, err := ptf.Get(name)
	if err != nil {
		return nil, err
	}
	return allocator(d), nil
}

// allocators holds all available models
var allocators = map[string]func(d *ptf.Descriptor) Model{}

// base holds data shared by all models
type base struct {
	desc   *ptf.Descriptor
	carbon soil.Carbon
	cols   []string
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
	return o.cols
}

// newBase returns a new base
func newBase(d *ptf.Descriptor, cols ...string) base {
	return base{desc: d, carbon: soil.NewCarbon(), cols: cols}
}

// checkSat checks the measured saturated water content
func checkSat(r *soil.Record, lg checks.Logger, f *checks.Flag) {
	f.Set(checks.Value(lg, "Input saturation", r.Get(soil.KeyWCSat), r.ID))
}
