// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgptf

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Wosten implements Wösten et al. (1999), the HYPRES continuous functions. Calibrated with organic matter.
type Wosten struct {
	base
	top float64 // 1 for topsoils; 0 for subsoils
}

// Vereecken implements Vereecken et al. (1989); m = 1
type Vereecken struct {
	base
}

// ZachariasWessolek implements Zacharias and Wessolek (2007); θr = 0
type ZachariasWessolek struct {
	base
}

// Weynants implements Weynants et al. (2009); θr = 0
type Weynants struct {
	base
}

// Dashtaki implements the van Genuchten equations of Dashtaki et al. (2010)
type Dashtaki struct {
	base
}

// HodnettTomasella implements Hodnett and Tomasella (2002) for tropical soils. Organic carbon data only.
type HodnettTomasella struct {
	base
}

// Init initialises model
func (o *HodnettTomasella) Init(prms dbf.Params) (err error) {
	if err = o.base.Init(prms); err != nil {
		return
	}
	if o.carbon.Kind != soil.OC {
		return chk.Err("%s requires organic carbon (OC) data. carbon option %s is invalid", o.desc.Name, o.carbon.Kind)
	}
	return
}

// add models to factory
func init() {
	allocators["Wosten_1999_top"] = func(d *ptf.Descriptor) Model {
		return &Wosten{newBase(d, soil.OM, true, true, colAll, "SSC", "Carbon", "Bulk density"), 1}
	}
	allocators["Wosten_1999_sub"] = func(d *ptf.Descriptor) Model {
		return &Wosten{newBase(d, soil.OM, true, true, colAll, "SSC", "Carbon", "Bulk density"), 0}
	}
	allocators["Vereecken_1989"] = func(d *ptf.Descriptor) Model {
		return &Vereecken{newBase(d, soil.OC, true, false, colSCBD, "Carbon", "Sand", "Clay", "Bulk density")}
	}
	allocators["ZachariasWessolek_2007"] = func(d *ptf.Descriptor) Model {
		return &ZachariasWessolek{newBase(d, soil.OC, false, false, colSCBD, "Sand", "Clay", "Bulk density")}
	}
	allocators["Weynants_2009"] = func(d *ptf.Descriptor) Model {
		return &Weynants{newBase(d, soil.OC, true, true, colSCBD, "Carbon", "Sand", "Clay", "Bulk density")}
	}
	allocators["Dashtaki_2010_vg"] = func(d *ptf.Descriptor) Model {
		return &Dashtaki{newBase(d, soil.OC, false, false, colSCBD, "Sand", "Clay", "Bulk density")}
	}
	allocators["HodnettTomasella_2002"] = func(d *ptf.Descriptor) Model {
		cols := append(append([]string{}, colAll...), soil.KeyCEC, soil.KeyPH)
		return &HodnettTomasella{newBase(d, soil.OC, true, false, cols, "SSC", "Carbon", "Bulk density", "CEC", "pH")}
	}
}

// Calc computes parameters
func (o *Wosten) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	o.check(r, lg, f)
	S, Si, Cl, BD, C, T := r.Sand, r.Silt, r.Clay, r.BD, o.c(r), o.top
	lnSi, lnC := math.Log(Si), math.Log(C)
	res.Thr = 0.01
	if Cl < 18 && S > 65 {
		res.Thr = 0.025
	}
	res.Ths = 0.7919 + 0.001691*Cl - 0.29619*BD - 0.000001491*Si*Si + 0.0000821*C*C + 0.02427/Cl + 0.01113/Si +
		0.01472*lnSi - 0.0000733*C*Cl - 0.000619*BD*Cl - 0.001183*BD*C - 0.0001664*T*Si
	αcm := math.Exp(-14.96 + 0.03135*Cl + 0.0351*Si + 0.646*C + 15.29*BD - 0.192*T - 4.671*BD*BD - 0.000781*Cl*Cl -
		0.00687*C*C + 0.0449/C + 0.0663*lnSi + 0.1482*lnC - 0.04546*BD*Si - 0.4852*BD*C + 0.00673*T*Cl)
	res.Alpha = AlphaPerKPa(αcm)
	res.N = 1 + math.Exp(-25.23-0.02195*Cl+0.0074*Si-0.1940*C+45.5*BD-7.24*BD*BD+0.0003658*Cl*Cl+0.002885*C*C-
		12.81/BD-0.1524/Si-0.01958/C-0.2876*lnSi-0.0709*lnC-44.6*math.Log(BD)-0.02264*BD*Cl+0.0896*BD*C+0.00718*T*Cl)
	res.M = 1 - 1/res.N
	if o.mvg {
		ls := 0.0202 + 0.0006193*Cl*Cl - 0.001136*C*C - 0.2316*lnC - 0.03544*BD*Cl + 0.00283*BD*Si + 0.0488*BD*C
		res.L = 10 * (math.Exp(ls) - 1) / (math.Exp(ls) + 1)
		res.Ksat = (10.0 / 24.0) * math.Exp(7.755+0.0352*Si+0.93*T-0.976*BD*BD-0.000484*Cl*Cl-0.000322*Si*Si+
			0.001/Si-0.0748/C-0.643*lnSi-0.0139*BD*Cl-0.167*BD*C+0.0298*T*Cl-0.03305*T*Si)
		res.HasMVG = true
	}
	return
}

// Calc computes parameters
func (o *Vereecken) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	o.check(r, lg, f)
	S, Cl, BD, C := r.Sand, r.Clay, r.BD, o.c(r)
	res.Ths = 0.81 - 0.283*BD + 0.001*Cl
	res.Thr = 0.015 + 0.005*Cl + 0.014*C
	res.Alpha = AlphaPerKPa(math.Exp(-2.486 + 0.025*S - 0.351*C - 2.617*BD - 0.023*Cl))
	res.N = math.Exp(0.053 - 0.009*S - 0.013*Cl + 0.00015*S*S)
	res.M = 1
	return
}

// Calc computes parameters. α is already in 1/kPa.
func (o *ZachariasWessolek) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	o.check(r, lg, f)
	S, Cl, BD := r.Sand, r.Clay, r.BD
	if S < 66.5 {
		res.Ths = 0.788 + 0.001*Cl - 0.263*BD
		res.Alpha = math.Exp(-0.648 + 0.023*S + 0.044*Cl - 3.168*BD)
		res.N = 1.392 - 0.418*math.Pow(S, -0.024) + 1.212*math.Pow(Cl, -0.704)
	} else {
		res.Ths = 0.89 - 0.001*Cl - 0.322*BD
		res.Alpha = math.Exp(-4.197 + 0.013*S + 0.076*Cl - 0.276*BD)
		res.N = -2.562 + 7e-9*math.Pow(S, 4.004) + 3.75*math.Pow(Cl, -0.016)
	}
	res.M = 1 - 1/res.N
	return
}

// Calc computes parameters
func (o *Weynants) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	o.check(r, lg, f)
	S, Cl, BD, C := r.Sand, r.Clay, r.BD, o.c(r)
	res.Ths = 0.6355 + 0.0013*Cl - 0.1631*BD
	res.Alpha = AlphaPerKPa(math.Exp(-4.3003 - 0.0097*Cl + 0.0138*S - 0.0992*C))
	res.N = math.Exp(-1.0846-0.0236*Cl-0.0085*S+0.0001*S*S) + 1
	res.M = 1 - 1/res.N
	if o.mvg {
		res.L = -1.8642 - 0.1317*Cl + 0.0067*S
		res.Ksat = math.Exp(1.9582+0.0308*S-0.6142*BD-0.1566*C) * (10.0 / 24.0)
		res.HasMVG = true
	}
	return
}

// Calc computes parameters
func (o *Dashtaki) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	o.check(r, lg, f)
	S, Cl, BD := r.Sand, r.Clay, r.BD
	res.Thr = 0.034 + 0.0032*Cl
	res.Ths = 0.85 - 0.00061*S - 0.258*BD
	res.Alpha = AlphaPerKPa(math.Abs(1 / (-476 - 4.1*S + 499*BD)))
	res.N = 1.56 - 0.00228*S
	res.M = 1 - 1/res.N
	return
}

// Calc computes parameters. α is already in 1/kPa.
func (o *HodnettTomasella) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	o.check(r, lg, f)
	S, Si, Cl, BD, C, CEC, pH := r.Sand, r.Silt, r.Clay, r.BD, o.c(r), r.CEC, r.PH
	res.Ths = 0.81799 + 9.9e-4*Cl - 0.3142*BD + 1.8e-4*CEC + 0.00451*pH - 5e-6*S*Cl
	res.Thr = 0.22733 - 0.00164*S + 0.00235*CEC - 0.00831*pH + 1.8e-5*Cl*Cl + 2.6e-5*S*Cl
	res.Alpha = math.Exp(-0.02294 - 0.03526*Si + 0.024*C - 0.00076*CEC - 0.11331*pH + 0.00019*Si*Si)
	res.N = math.Exp(0.62986 - 0.00833*Cl - 0.00529*C + 0.00593*pH + 7e-5*Cl*Cl - 1.4e-4*S*Si)
	res.M = 1 - 1/res.N
	return
}
