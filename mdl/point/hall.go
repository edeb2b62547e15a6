// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package point

import (
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Hall implements Hall et al. (1977) for topsoils and subsoils of England and Wales
type Hall struct {
	base
	top bool // topsoil equations
}

// Pidgeon implements Pidgeon (1972). Carbon enters as organic matter.
type Pidgeon struct {
	base
}

// VanDenBerg implements van den Berg et al. (1997)
type VanDenBerg struct {
	base
}

// add models to factory
func init() {
	allocators["Hall_1977_top"] = func(d *ptf.Descriptor) Model {
		return &Hall{newBase(d, soil.OC, true, soil.KeySilt, soil.KeyClay, soil.KeyBD), true}
	}
	allocators["Hall_1977_sub"] = func(d *ptf.Descriptor) Model {
		return &Hall{newBase(d, soil.OC, false, soil.KeySilt, soil.KeyClay, soil.KeyBD), false}
	}
	allocators["Pidgeon_1972"] = func(d *ptf.Descriptor) Model {
		return &Pidgeon{newBase(d, soil.OM, true, soil.KeySilt, soil.KeyClay, soil.KeyBD)}
	}
	allocators["vanDenBerg_1997"] = func(d *ptf.Descriptor) Model {
		return &VanDenBerg{newBase(d, soil.OC, true, soil.KeySilt, soil.KeyClay, soil.KeyBD)}
	}
}

// Calc computes water contents at 5, 10, 33, 200 and 1500 kPa
func (o *Hall) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Clay", "Silt", "Bulk density")
	Si, Cl, BD := r.Silt, r.Clay, r.BD
	if o.top {
		C := o.c(r)
		return o.finish(r, lg,
			(47+0.25*Cl+0.1*Si+1.12*C-16.52*BD)*1e-2,
			(37.47+0.32*Cl+0.12*Si+1.15*C-1.25*BD)*1e-2,
			(22.66+0.36*Cl+0.12*Si+1*C-7.64*BD)*1e-2,
			(8.7+0.45*Cl+0.11*Si+1.03*C)*1e-2,
			(2.94+0.83*Cl-0.0054*Cl*Cl)*1e-2,
		)
	}
	return o.finish(r, lg,
		(37.20+0.35*Cl+0.12*Si-11.73*BD)*1e-2,
		(27.87+0.41*Cl+0.15*Si-8.32*BD)*1e-2,
		(20.81+0.45*Cl+0.13*Si-5.96*BD)*1e-2,
		(7.57+0.48*Cl+0.11*Si)*1e-2,
		(1.48+0.84*Cl-0.0054*Cl*Cl)*1e-2,
	)
}

// Calc computes water contents at 10, 33 and 1500 kPa
func (o *Pidgeon) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Carbon", "Silt", "Clay", "Bulk density")
	Si, Cl, BD, C := r.Silt, r.Clay, r.BD, o.c(r)
	fc := (7.38 + 0.16*Si + 0.3*Cl + 1.54*C) * BD * 1e-2
	return o.finish(r, lg,
		(fc*100-2.54)/91,
		(fc*100-3.77)/95,
		(-4.19+0.19*Si+0.39*Cl+0.9*C)*BD*1e-2,
	)
}

// Calc computes water contents at 10 and 1500 kPa
func (o *VanDenBerg) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Carbon", "Silt", "Clay", "Bulk density")
	Si, Cl, BD, C := r.Silt, r.Clay, r.BD, o.c(r)
	return o.finish(r, lg,
		(10.88+0.347*Cl+0.211*Si+1.756*C)*1e-2,
		(0.334*Cl*BD+0.104*Si*BD)*1e-2,
	)
}
