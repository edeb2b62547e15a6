// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package point

import (
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Rawls implements Rawls et al. (1982). Carbon enters as organic matter.
type Rawls struct {
	base
}

// GuptaLarson implements Gupta and Larson (1979). Carbon enters as organic matter.
type GuptaLarson struct {
	base
}

// add models to factory
func init() {
	allocators["Rawls_1982"] = func(d *ptf.Descriptor) Model {
		return &Rawls{newBase(d, soil.OM, true, colAll...)}
	}
	allocators["GuptaLarson_1979"] = func(d *ptf.Descriptor) Model {
		return &GuptaLarson{newBase(d, soil.OM, true, colAll...)}
	}
}

// Calc computes water contents from 10 to 1500 kPa
//  Note: the 50 kPa field holds the published 60 kPa regression
func (o *Rawls) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "SSC", "Carbon", "Bulk density")
	S, Si, Cl, C := r.Sand, r.Silt, r.Clay, o.c(r)
	return o.finish(r, lg,
		0.4188-0.0030*S+0.0023*Cl+0.0317*C,
		0.3121-0.0024*S+0.0032*Cl+0.0314*C,
		0.2576-0.002*S+0.0036*Cl+0.0299*C,
		0.2065-0.0016*S+0.0040*Cl+0.0275*C,
		0.0349+0.0014*Si+0.0055*Cl+0.0251*C,
		0.0281+0.0011*Si+0.0054*Cl+0.0220*C,
		0.0238+0.0008*Si+0.0052*Cl+0.0190*C,
		0.0216+0.0006*Si+0.0050*Cl+0.0167*C,
		0.0205+0.0005*Si+0.0049*Cl+0.0154*C,
		0.026+0.005*Cl+0.0158*C,
	)
}

// guptaLarson holds the coefficients of sand, silt, clay, carbon and bulk density for each pressure
var guptaLarson = [][5]float64{
	{7.053, 10.242, 10.07, 6.333, -32.12},
	{5.678, 9.228, 9.135, 6.103, -26.96},
	{5.018, 8.548, 8.833, 4.966, -24.23},
	{3.89, 7.066, 8.408, 2.817, -18.78},
	{3.075, 5.886, 8.039, 2.208, -14.34},
	{2.181, 4.557, 7.557, 2.191, -9.276},
	{1.563, 3.62, 7.154, 2.388, -5.759},
	{0.932, 2.643, 6.636, 2.717, -2.214},
	{0.483, 1.943, 6.128, 2.925, -0.204},
	{0.214, 1.538, 5.908, 2.855, 1.53},
	{0.076, 1.334, 5.802, 2.653, 2.145},
	{-0.059, 1.142, 5.766, 2.228, 2.671},
}

// Calc computes water contents from 4 to 1500 kPa
func (o *GuptaLarson) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	o.check(r, lg, f, "SSC", "Carbon", "Bulk density")
	C := o.c(r)
	wc := make([]float64, len(guptaLarson))
	for i, k := range guptaLarson {
		wc[i] = k[0]*1e-3*r.Sand + k[1]*1e-3*r.Silt + k[2]*1e-3*r.Clay + k[3]*1e-3*C + k[4]*1e-2*r.BD
	}
	return o.finish(r, lg, wc...)
}
