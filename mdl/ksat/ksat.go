// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ksat implements pedotransfer functions giving the saturated hydraulic conductivity in mm/hr
package ksat

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Model defines Ksat pedotransfer functions
type Model interface {
	Init(prms dbf.Params) error                                         // initialises model
	GetPrms(example bool) dbf.Params                                    // gets (an example) of parameters
	Required() []string                                                 // columns that must exist in the input
	Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (ks float64) // computes Ksat of one record
}

// New returns a new Ksat model
func New(name string) (Model, error) {
	d, err := ptf.Get(name)
	if err != nil {
		return nil, err
	}
	m, ok := models[name]
	if !ok || d.Type != ptf.KsatPTF {
		return nil, chk.Err("model %q is not available in 'ksat' database", name)
	}
	return &Func{desc: d, carbon: soil.NewCarbon(), eq: m}, nil
}

// equation holds one Ksat regression
type equation struct {
	cols   []string                                // required columns
	usesC  bool                                    // needs the carbon column
	native soil.CarbonKind                         // carbon kind the regression was calibrated with
	checks []string                                // checks run on each record
	calc   func(r *soil.Record, c float64) float64 // regression; c is the carbon content in the native kind
}

// Func implements a Ksat model from its regression
type Func struct {
	desc   *ptf.Descriptor
	carbon soil.Carbon
	eq     equation
}

// Init initialises model
func (o *Func) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if !o.carbon.Read(p) {
			return chk.Err("%s: parameter named %q is incorrect\n", o.desc.Name, p.N)
		}
	}
	return o.carbon.Check(o.desc.Name)
}

// GetPrms gets (an example) of parameters
func (o Func) GetPrms(example bool) dbf.Params {
	return soil.NewCarbon().Prms()
}

// Required returns the columns that must exist in the input
func (o Func) Required() []string {
	if o.eq.usesC {
		return append(append([]string{}, o.eq.cols...), o.carbon.Kind.Key())
	}
	return o.eq.cols
}

// Calc computes Ksat and logs its value check
func (o Func) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (ks float64) {
	for _, name := range o.eq.checks {
		switch name {
		case "WC at sat":
			f.Set(checks.Value(lg, name, r.Get(soil.KeySatCalc), r.ID))
		case "WC at FC":
			f.Set(checks.Value(lg, name, r.Get(soil.KeyFcCalc), r.ID))
		default:
			checks.Record(lg, f, r, o.carbon.Kind, name)
		}
	}
	ks = o.eq.calc(r, o.carbon.Effective(r.Carbon, o.eq.native))
	checks.Value(lg, "Ksat", ks, r.ID)
	return
}

// models holds all regressions
var models = map[string]equation{

	"Cosby_1984": {
		cols:   []string{soil.KeySand, soil.KeyClay},
		checks: []string{"Sand", "Clay"},
		calc: func(r *soil.Record, c float64) float64 {
			return 25.4 * math.Pow(10, -0.6+0.0126*r.Sand-0.0064*r.Clay)
		},
	},

	"Puckett_1985": {
		cols:   []string{soil.KeyClay},
		checks: []string{"Clay"},
		calc: func(r *soil.Record, c float64) float64 {
			return 156.96 * math.Exp(-0.1975*r.Clay)
		},
	},

	"Jabro_1992": {
		cols:   []string{soil.KeySilt, soil.KeyClay, soil.KeyBD},
		checks: []string{"Silt", "Clay", "Bulk density"},
		calc: func(r *soil.Record, c float64) float64 {
			return math.Pow(10, 9.56-0.81*math.Log10(r.Silt)-1.09*math.Log10(r.Clay)-4.64*r.BD) * 10
		},
	},

	"CampbellShiozawa_1994": {
		cols:   []string{soil.KeySilt, soil.KeyClay},
		checks: []string{"Silt", "Clay"},
		calc: func(r *soil.Record, c float64) float64 {
			return 54 * math.Exp(-0.07*r.Silt-0.167*r.Clay)
		},
	},

	"FerrerJulia_2004_1": {
		cols:   []string{soil.KeySand},
		checks: []string{"Sand"},
		calc: func(r *soil.Record, c float64) float64 {
			return 0.920 * math.Exp(0.0491*r.Sand)
		},
	},

	"FerrerJulia_2004_2": {
		cols:   []string{soil.KeySand, soil.KeyClay, soil.KeyBD},
		usesC:  true,
		native: soil.OM,
		checks: []string{"Carbon", "Sand", "Clay", "Bulk density"},
		calc: func(r *soil.Record, c float64) float64 {
			return -4.994 + 0.56728*r.Sand - 0.131*r.Clay - 0.0127*c
		},
	},

	"Ahuja_1989": {
		cols:   []string{soil.KeySatCalc, soil.KeyFcCalc},
		checks: []string{"WC at sat", "WC at FC"},
		calc: func(r *soil.Record, c float64) float64 {
			return 7645 * math.Pow(r.Get(soil.KeySatCalc)-r.Get(soil.KeyFcCalc), 3.29)
		},
	},

	"MinasnyMcBratney_2000": {
		cols:   []string{soil.KeySatCalc, soil.KeyFcCalc},
		checks: []string{"WC at sat", "WC at FC"},
		calc: func(r *soil.Record, c float64) float64 {
			return 23190.55 * math.Pow(r.Get(soil.KeySatCalc)-r.Get(soil.KeyFcCalc), 3.66)
		},
	},

	"Brakensiek_1984": {
		cols:   []string{soil.KeySand, soil.KeyClay, soil.KeySatCalc},
		checks: []string{"Sand", "Clay", "WC at sat"},
		calc: func(r *soil.Record, c float64) float64 {
			S, Cl, P := r.Sand, r.Clay, r.Get(soil.KeySatCalc)
			SS, CC, PP := S*S, Cl*Cl, P*P
			return 10 * math.Exp(19.52348*P-8.96847-0.028212*Cl+0.00018107*SS-0.0094125*CC-8.395215*PP+
				0.077718*S*P-0.00298*SS*PP-0.019492*CC*PP+0.0000173*SS*Cl+0.02733*CC*P+0.001434*SS*P-
				0.0000035*CC*S)
		},
	},
}
