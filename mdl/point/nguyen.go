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

// Nguyen implements Nguyen et al. (2014) for tropical soils of the Mekong delta
type Nguyen struct {
	base
}

// Adhikary implements Adhikary et al. (2008) for Indian soils
type Adhikary struct {
	base
}

// add models to factory
func init() {
	allocators["Nguyen_2014"] = func(d *ptf.Descriptor) Model {
		return &Nguyen{newBase(d, soil.OC, true, colAll...)}
	}
	allocators["Adhikary_2008"] = func(d *ptf.Descriptor) Model {
		return &Adhikary{newBase(d, soil.OC, false, colSSC...)}
	}
}

// Calc computes water contents at 1, 3, 6, 10, 20, 33, 100 and 1500 kPa
func (o *Nguyen) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "SSC", "Carbon", "Bulk density")
	S, Si, Cl, BD := r.Sand, r.Silt, r.Clay, r.BD
	lc := math.Log10(o.c(r))
	return o.finish(r, lg,
		0.002*Cl+0.055*lc-0.144*BD+0.575,
		0.002*Cl+0.067*lc-0.125*BD+0.527,
		0.001*Si+0.003*Cl+0.12*lc-0.062*BD+0.367,
		0.001*Si+0.003*Cl+0.127*lc+0.228,
		-0.002*S+0.002*Cl+0.066*lc-0.058*BD+0.415,
		-0.002*S+0.001*Cl-0.118*BD+0.493,
		-0.003*S-0.107*BD+0.497,
		-0.002*S+0.002*Cl-0.032*BD+0.234,
	)
}

// Calc computes water contents at 10, 33, 100, 300, 500, 1000 and 1500 kPa
func (o *Adhikary) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "SSC")
	S, Si, Cl := r.Sand, r.Silt, r.Clay
	return o.finish(r, lg,
		0.625-0.0058*S-0.0021*Si,
		0.5637-0.0051*S-0.0027*Si,
		0.1258-0.0009*S+0.004*Cl,
		0.085-0.0007*S+0.0038*Cl,
		0.0473-0.0004*S+0.0042*Cl,
		0.0035+0.0045*Cl,
		0.0071+0.0044*Cl,
	)
}
