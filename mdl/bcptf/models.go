// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcptf

import (
	"math"

	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/point"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Cosby implements Cosby et al. (1984)
//  ssc -- use sand, silt and clay; otherwise sand and clay only
type Cosby struct {
	base
	ssc bool
}

// RawlsBrakensiek implements Rawls and Brakensiek (1985). Needs the measured WC_sat.
type RawlsBrakensiek struct {
	base
}

// CampbellShiozawa implements Campbell and Shiozawa (1992). Needs the measured WC_sat.
type CampbellShiozawa struct {
	base
}

// Saxton implements Saxton et al. (1986)
type Saxton struct {
	base
}

// SaxtonRawls implements Saxton and Rawls (2006). Carbon enters as organic matter.
type SaxtonRawls struct {
	base
}

// add models to factory
func init() {
	allocators["Cosby_1984_SandC_BC"] = func(d *ptf.Descriptor) Model {
		return &Cosby{newBase(d, soil.KeySand, soil.KeyClay), false}
	}
	allocators["Cosby_1984_SSC_BC"] = func(d *ptf.Descriptor) Model {
		return &Cosby{newBase(d, soil.KeySand, soil.KeySilt, soil.KeyClay), true}
	}
	allocators["RawlsBrakensiek_1985_BC"] = func(d *ptf.Descriptor) Model {
		return &RawlsBrakensiek{newBase(d, soil.KeySand, soil.KeyClay, soil.KeyWCSat)}
	}
	allocators["CampbellShiozawa_1992_BC"] = func(d *ptf.Descriptor) Model {
		return &CampbellShiozawa{newBase(d, soil.KeySilt, soil.KeyClay, soil.KeyBD, soil.KeyWCSat)}
	}
	allocators["Saxton_1986_BC"] = func(d *ptf.Descriptor) Model {
		return &Saxton{newBase(d, soil.KeySand, soil.KeyClay)}
	}
	allocators["SaxtonRawls_2006_BC"] = func(d *ptf.Descriptor) Model {
		return &SaxtonRawls{newBase(d, soil.KeySand, soil.KeyClay)}
	}
}

// Required returns the columns that must exist in the input
func (o *SaxtonRawls) Required() []string {
	return append(append([]string{}, o.cols...), o.carbon.Kind.Key())
}

// Calc computes parameters
func (o *Cosby) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	S, Si, Cl := r.Sand, r.Silt, r.Clay
	res.Fitted = true
	if o.ssc {
		checks.Record(lg, f, r, o.carbon.Kind, "SSC")
		res.Ths = (50.5 - 0.037*Cl - 0.142*S) / 100
		res.Lambda = 1.0 / (3.10 + 0.157*Cl - 0.003*S)
		res.Hb = math.Pow(10, 1.54-0.0095*S+0.0063*Si) / 10
	} else {
		checks.Record(lg, f, r, o.carbon.Kind, "Clay", "Sand")
		res.Ths = 0.489 - 0.00126*S
		res.Lambda = 1.0 / (2.91 + 0.159*Cl)
		res.Hb = math.Pow(10, 1.88-0.013*S) / 10
	}
	checks.NegOutput(lg, []float64{res.Ths, res.Lambda, res.Hb}, r.ID)
	return
}

// Calc computes parameters
func (o *RawlsBrakensiek) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	checks.Record(lg, f, r, o.carbon.Kind, "Clay", "Sand")
	checkSat(r, lg, f)
	S, Cl, P := r.Sand, r.Clay, r.Get(soil.KeyWCSat)
	SS, CC, PP := S*S, Cl*Cl, P*P
	res.Thr = -0.0182482 + 0.00087269*S + 0.00513488*Cl + 0.02939286*P - 0.00015395*CC - 0.0010827*S*P -
		0.00018233*CC*PP + 0.00030703*CC*P - 0.0023584*PP*Cl
	hb := math.Exp(5.3396738 + 0.1845038*Cl - 2.48394546*P - 0.00213853*CC - 0.04356349*S*P - 0.61745089*Cl*P +
		0.00143598*SS*PP - 0.00855375*CC*PP - 0.00001282*SS*Cl + 0.00895359*CC*P - 0.00072472*SS*P +
		0.0000054*CC*S + 0.50028060*PP*Cl)
	res.Lambda = math.Exp(-0.7842831 + 0.0177544*S - 1.062498*P - 0.00005304*SS - 0.00273493*CC + 1.11134946*PP -
		0.03088295*S*P + 0.00026587*SS*PP - 0.00610522*CC*PP - 0.00000235*SS*Cl + 0.00798746*CC*P - 0.00674491*PP*Cl)
	res.Hb = hb / 10
	res.Ths = P
	res.Fitted = true
	checks.NegOutput(lg, []float64{res.Thr, res.Lambda, res.Hb}, r.ID)
	return
}

// Calc computes parameters
func (o *CampbellShiozawa) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	checks.Record(lg, f, r, o.carbon.Kind, "Clay", "Silt", "Bulk density")
	checkSat(r, lg, f)
	Si, Cl, BD := r.Silt, r.Clay, r.BD
	dg := math.Exp(-0.8 - 0.0317*Si - 0.0761*Cl)
	ldg := math.Log(dg)
	sg := math.Sqrt(math.Exp(0.133*Si + 0.477*Cl - ldg*ldg))
	hes := 0.05 / math.Sqrt(dg)
	b := 20*hes + 0.2*sg
	hb := 100 * hes * math.Pow(BD/1.3, 0.67*b)
	res.Lambda = 1.0 / b
	res.Hb = hb / 10
	res.Ths = r.Get(soil.KeyWCSat)
	res.Fitted = true
	checks.NegOutput(lg, []float64{res.Lambda, res.Hb}, r.ID)
	return
}

// Calc computes parameters. The bubbling pressure is already in kPa.
func (o *Saxton) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	checks.Record(lg, f, r, o.carbon.Kind, "Clay", "Sand")
	S, Cl := r.Sand, r.Clay
	res.Ths = 0.332 - 7.251e-4*S + 0.1276*math.Log10(Cl)
	A := 100 * math.Exp(-4.396-0.0715*Cl-0.000488*S*S-0.00004285*S*S*Cl)
	B := -3.140 - 0.00222*Cl*Cl - 0.00003484*S*S*Cl
	res.Hb = A * math.Pow(res.Ths, B)
	res.Lambda = -1.0 / B
	res.Fitted = true
	checks.NegOutput(lg, []float64{res.Ths, res.Lambda, res.Hb}, r.ID)
	return
}

// Calc computes parameters and Ksat. The curve cannot be computed when the water
// content at 33 or 1500 kPa is negative; lambda, hb and Ksat are then set to the sentinel.
func (o *SaxtonRawls) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) (res Params) {
	checks.Record(lg, f, r, o.carbon.Kind, "Clay", "Sand")
	f.Set(checks.Value(lg, "Carbon", r.Carbon, r.ID))
	S, Cl := r.Sand, r.Clay
	t := point.SaxtonRawls(S, Cl, o.carbon.Effective(r.Carbon, soil.OM))
	res.Ths = t.WCsat
	res.HasKsat = true
	if t.WC33 < 0 || t.WC1500 < 0 {
		if t.WC33 < 0 {
			lg.Warnf("water content at 33kPa is negative for %s", r.Label())
		}
		if t.WC1500 < 0 {
			lg.Warnf("Water content at 1500kPa is negative for %s", r.Label())
		}
		lg.Warnf("Cannot calculate lambda, setting it to %g", soil.Sentinel)
		res.Lambda, res.Hb, res.Ksat = soil.Sentinel, soil.Sentinel, soil.Sentinel
		return
	}
	res.Lambda = t.Lambda()
	hbt := -0.2167*S - 0.2793*Cl - 81.97*t.S33 + 0.7112*S*t.S33 + 0.0829*Cl*t.S33 + 0.001405*S*Cl + 27.16
	res.Hb = hbt + 0.02*hbt*hbt - 0.113*hbt - 0.7
	res.Ksat = t.Ksat()
	res.Fitted = true
	return
}
