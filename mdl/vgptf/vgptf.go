// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vgptf implements pedotransfer functions giving van Genuchten parameters
//  θ(p) = θr + (θs - θr) / (1 + (α p)^n)^m
// α is always returned in 1/kPa; publications in 1/cm are converted (1 kPa = 10 cm).
// Some models also give the Mualem-van Genuchten tortuosity l and Ksat.
package vgptf

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Params holds the van Genuchten parameters of one record
type Params struct {
	Thr    float64 // residual water content
	Ths    float64 // saturated water content
	Alpha  float64 // [1/kPa] scale parameter
	N      float64 // shape parameter n
	M      float64 // shape parameter m
	L      float64 // Mualem tortuosity parameter
	Ksat   float64 // [mm/hr] saturated hydraulic conductivity
	HasMVG bool    // L and Ksat were computed
}

// AlphaPerKPa converts α from 1/cm to 1/kPa
func AlphaPerKPa(αcm float64) float64 {
	return αcm * 10
}

// Model defines van Genuchten pedotransfer functions
type Model interface {
	Init(prms dbf.Params) error                                          // initialises model
	GetPrms(example bool) dbf.Params                                     // gets (an example) of parameters
	Required() []string                                                  // columns that must exist in the input
	MVG() bool                                                           // computes Mualem-van Genuchten parameters
	Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) // computes parameters of one record
}

// New returns a new van Genuchten model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'vgptf' database", name)
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
	desc      *ptf.Descriptor // descriptor
	carbon    soil.Carbon     // carbon convention of the dataset
	native    soil.CarbonKind // carbon kind the regression was calibrated with
	usesC     bool            // regression uses carbon
	cols      []string        // required columns except carbon
	canMVG    bool            // model has Mualem-van Genuchten equations
	mvg       bool            // compute Mualem-van Genuchten parameters
	checkList []string        // checks run on each record
}

// newBase returns a new base
func newBase(d *ptf.Descriptor, native soil.CarbonKind, usesC, canMVG bool, cols []string, checkList ...string) base {
	return base{desc: d, carbon: soil.NewCarbon(), native: native, usesC: usesC, cols: cols, canMVG: canMVG, checkList: checkList}
}

// Init initialises model
//  mvg -- 1 to compute Mualem-van Genuchten parameters
func (o *base) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if o.carbon.Read(p) {
			continue
		}
		switch strings.ToLower(p.N) {
		case "mvg":
			o.mvg = p.V > 0
		default:
			return chk.Err("%s: parameter named %q is incorrect\n", o.desc.Name, p.N)
		}
	}
	if o.mvg && !o.canMVG {
		return chk.Err("Selected PTF does not calculate Mualem-van Genuchten parameters. Please select a different PTF")
	}
	return o.carbon.Check(o.desc.Name)
}

// GetPrms gets (an example) of parameters
func (o base) GetPrms(example bool) dbf.Params {
	return append(soil.NewCarbon().Prms(), &dbf.P{N: "mvg", V: 0})
}

// Required returns the columns that must exist in the input
func (o base) Required() []string {
	if o.usesC {
		return append(append([]string{}, o.cols...), o.carbon.Kind.Key())
	}
	return o.cols
}

// MVG tells whether Mualem-van Genuchten parameters are computed
func (o base) MVG() bool {
	return o.mvg
}

// check runs the checks of this model
func (o base) check(r *soil.Record, lg checks.Logger, f *checks.Flag) {
	checks.Record(lg, f, r, o.carbon.Kind, o.checkList...)
}

// c returns the carbon content converted to the native kind of the regression
func (o base) c(r *soil.Record) float64 {
	return o.carbon.Effective(r.Carbon, o.native)
}

// columns
var (
	colAll  = []string{soil.KeySand, soil.KeySilt, soil.KeyClay, soil.KeyBD}
	colSCBD = []string{soil.KeySand, soil.KeyClay, soil.KeyBD}
)
