// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package point

import (
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// ShwethaVarija implements the quadratic regressions of Shwetha and Varija (2013)
type ShwethaVarija struct {
	base
}

// Dashtaki implements the point equations of Dashtaki et al. (2010)
type Dashtaki struct {
	base
}

// Santra implements Santra et al. (2018) for Indian soils
//  withOC -- equations using organic carbon (converted from % to g/kg)
type Santra struct {
	base
	withOC bool
}

// add models to factory
func init() {
	allocators["ShwethaVarija_2013"] = func(d *ptf.Descriptor) Model {
		return &ShwethaVarija{newBase(d, soil.OC, false, colAll...)}
	}
	allocators["Dashtaki_2010_point"] = func(d *ptf.Descriptor) Model {
		return &Dashtaki{newBase(d, soil.OC, false, colAll...)}
	}
	allocators["Santra_2018_OC"] = func(d *ptf.Descriptor) Model {
		return &Santra{newBase(d, soil.OC, true, soil.KeySand, soil.KeyClay, soil.KeyBD), true}
	}
	allocators["Santra_2018"] = func(d *ptf.Descriptor) Model {
		return &Santra{newBase(d, soil.OC, false, soil.KeySand, soil.KeyClay, soil.KeyBD), false}
	}
}

// Calc computes water contents at 33, 100, 300, 500, 1000 and 1500 kPa
func (o *ShwethaVarija) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "SSC", "Bulk density")
	S, Si, BD := r.Sand, r.Silt, r.BD
	return o.finish(r, lg,
		-4.263+0.00194*S+0.02839*Si+5.568*BD-0.00005*S*S-0.00011*S*Si+0.00106*S*BD-0.00005*Si*Si-0.01158*Si*BD-1.78*BD*BD,
		-2.081-0.00776*S+0.00589*Si+3.452*BD-0.00007*S*S-0.00018*S*Si+0.01047*S*BD+0.0000003*Si*Si+0.00402*Si*BD-1.4*BD*BD,
		-2.029-0.00039*S+0.02393*Si+2.859*BD-0.00007*S*S-0.000178*S*Si+0.00614*S*BD-0.000150*Si*Si-0.00352*Si*BD-1.092*BD*BD,
		-1.079+0.01539*S+0.02272*Si+0.961*BD-0.00009*S*S-0.00021*S*Si-0.00275*S*BD-0.000171*Si*Si-0.00146*Si*BD-0.287*BD*BD,
		-2.488-0.01215*S+0.00750*Si+4.051*BD-0.00007*S*S-0.00016*S*Si+0.01333*S*BD+0.00002*Si*Si+0.00131*Si*BD-1.633*BD*BD,
		-1.076-0.00234*S-0.00334*Si+1.920*BD-0.00003*S*S+0.00003*S*Si+0.00101*S*BD+0.00006*Si*Si-0.00077*Si*BD-0.666*BD*BD,
	)
}

// Calc computes water contents at 10, 30, 100, 300, 500 and 1500 kPa
func (o *Dashtaki) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "SSC", "Bulk density")
	S, Si, Cl, BD := r.Sand, r.Silt, r.Clay, r.BD
	return o.finish(r, lg,
		(34.3-0.38*S+12.4*BD)*1e-2,
		(14.1-0.283*S+17.1*BD)*1e-2,
		(12.2-0.31*S+14.3*BD)*1e-2,
		(12-0.22*S+8.41*BD+4.3*Cl/Si)*1e-2,
		(9.4+0.32*Cl)*1e-2,
		(6.2+0.33*Cl)*1e-2,
	)
}

// Calc computes water contents at 33 and 1500 kPa
func (o *Santra) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	S, Cl, BD := r.Sand, r.Clay, r.BD
	if !o.withOC {
		o.check(r, lg, f, "Sand", "Clay", "Bulk density")
		return o.finish(r, lg,
			(27.80-0.231*S+0.262*Cl)*BD*1e-2,
			(10.06-0.0847*S+0.303*Cl-0.00186*S*Cl)*BD*1e-2,
		)
	}
	o.check(r, lg, f, "Carbon", "Sand", "Clay", "Bulk density")
	C := o.c(r) * 10
	return o.finish(r, lg,
		(24.98-0.205*S+0.28*Cl+0.192*C)*BD*1e-2,
		(4.341+0.435*Cl-0.00431*S*Cl+0.00190*S*C+0.00169*Cl*C)*BD*1e-2,
	)
}
