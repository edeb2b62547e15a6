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

// Lal implements Lal (1978) for two groups of West African soils
//  group 1: soils dominated by kaolinite; group 2: other clay minerals
type Lal struct {
	base
	group int
}

// AinaPeriaswamy implements Aina and Periaswamy (1985)
type AinaPeriaswamy struct {
	base
}

// ManriqueJones implements Manrique and Jones (1991)
type ManriqueJones struct {
	base
}

// TomasellaHodnett implements Tomasella and Hodnett (1998) for Brazilian Amazonia
type TomasellaHodnett struct {
	base
}

// Botula implements Botula et al. (2013) for soils of the Lower Congo
type Botula struct {
	base
}

// add models to factory
func init() {
	sandClayBD := []string{soil.KeySand, soil.KeyClay, soil.KeyBD}
	allocators["Lal_1978_Group1"] = func(d *ptf.Descriptor) Model {
		return &Lal{newBase(d, soil.OC, false, soil.KeyClay, soil.KeyBD), 1}
	}
	allocators["Lal_1978_Group2"] = func(d *ptf.Descriptor) Model {
		return &Lal{newBase(d, soil.OC, false, soil.KeyClay, soil.KeyBD), 2}
	}
	allocators["AinaPeriaswamy_1985"] = func(d *ptf.Descriptor) Model {
		return &AinaPeriaswamy{newBase(d, soil.OC, false, sandClayBD...)}
	}
	allocators["ManriqueJones_1991"] = func(d *ptf.Descriptor) Model {
		return &ManriqueJones{newBase(d, soil.OC, false, sandClayBD...)}
	}
	allocators["TomasellaHodnett_1998"] = func(d *ptf.Descriptor) Model {
		return &TomasellaHodnett{newBase(d, soil.OC, true, soil.KeySilt, soil.KeyClay)}
	}
	allocators["Botula_2013"] = func(d *ptf.Descriptor) Model {
		return &Botula{newBase(d, soil.OC, false, sandClayBD...)}
	}
}

// Calc computes water contents at 0, 10, 33 and 1500 kPa
func (o *Lal) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Clay", "Bulk density")
	Cl, BD := r.Clay, r.BD
	if o.group == 1 {
		return o.finish(r, lg,
			(0.289+0.004*Cl)*BD,
			(0.102+0.003*Cl)*BD,
			(0.065+0.004*Cl)*BD,
			(0.006+0.003*Cl)*BD,
		)
	}
	return o.finish(r, lg,
		(0.296+0.004*Cl)*BD,
		(0.080+0.003*Cl)*BD,
		(0.047+0.003*Cl)*BD,
		(0.025+0.0022*Cl)*BD,
	)
}

// Calc computes water contents at 33 and 1500 kPa
func (o *AinaPeriaswamy) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Sand", "Clay", "Bulk density")
	return o.finish(r, lg,
		0.6788-0.0055*r.Sand-0.0013*r.BD,
		0.00213+0.0031*r.Clay,
	)
}

// Calc computes water contents at 33 and 1500 kPa. Sandy soils (sand >= 75%) have their own 33 kPa equation.
func (o *ManriqueJones) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Sand", "Clay", "Bulk density")
	wc33 := 0.5784 + 0.002227*r.Clay - 0.28438*r.BD
	if r.Sand >= 75 {
		wc33 = 0.73426 - 0.00145*r.Sand - 0.29176*r.BD
	}
	return o.finish(r, lg, wc33, 0.02413+0.00373*r.Clay)
}

// Calc computes water contents from 0 to 1500 kPa
func (o *TomasellaHodnett) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Carbon", "Silt", "Clay")
	Si, Cl, C := r.Silt, r.Clay, o.c(r)
	return o.finish(r, lg,
		0.01*(2.24*C+0.298*Si+0.159*Cl+37.937),
		0.01*(0.53*Si+0.255*Cl+23.839),
		0.01*(0.552*Si+0.262*Cl+18.495),
		0.01*(0.576*Si+0.3*Cl+12.333),
		0.01*(0.543*Si+0.321*Cl+9.806),
		0.01*(0.426*Si+0.404*Cl+4.046),
		0.01*(0.369*Si+0.351*Cl+3.198),
		0.01*(0.258*Si+0.361*Cl+1.567),
		0.01*(0.15*Si+0.396*Cl+0.91),
	)
}

// Calc computes water contents from 1 to 1500 kPa
//  Note: the 1500 kPa term 7.789^BD reproduces the published equation as distributed
func (o *Botula) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "Sand", "Clay", "Bulk density")
	S, Cl, BD := r.Sand, r.Clay, r.BD
	return o.finish(r, lg,
		(67.228+0.089*Cl-20.057*BD)*1e-2,
		(48.080-0.081*S+0.067*Cl-6.344*BD)*1e-2,
		(44.196-0.252*S)*1e-2,
		(43.520-0.296*S)*1e-2,
		(42.302-0.344*S)*1e-2,
		(41.929-0.349*S)*1e-2,
		(26.478-0.276*S+0.091*Cl+4.720*BD)*1e-2,
		(8.405-0.159*S+0.207*Cl+math.Pow(7.789, BD))*1e-2,
	)
}
