// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package point

import (
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Batjes implements Batjes (1996). Valid for fractions of at least 5% and carbon of at least 0.1%.
type Batjes struct {
	base
}

// add model to factory
func init() {
	allocators["Batjes_1996"] = func(d *ptf.Descriptor) Model {
		return &Batjes{newBase(d, soil.OC, true, colSSC...)}
	}
}

// batjes holds the coefficients of clay, silt and carbon for each pressure
var batjes = [][3]float64{
	{0.6903, 0.5482, 4.2844},
	{0.6463, 0.5436, 3.7091},
	{0.5980, 0.3745, 3.7611},
	{0.6681, 0.2614, 2.2150},
	{0.5266, 0.3999, 3.1752},
	{0.5082, 0.4197, 2.5043},
	{0.4600, 0.3045, 2.0703},
	{0.5032, 0.3636, 2.4461},
	{0.4611, 0.2390, 1.5742},
	{0.3624, 0.1170, 1.6054},
}

// Calc computes water contents from 0 to 1500 kPa
func (o *Batjes) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	C := o.c(r)
	f.Set(checks.Batjes(lg, r.Sand, r.Silt, r.Clay, C, r.ID))
	o.check(r, lg, f, "Carbon", "Silt", "Clay")
	wc := make([]float64, len(batjes))
	for i, k := range batjes {
		wc[i] = (k[0]*r.Clay + k[1]*r.Silt + k[2]*C) * 1e-2
	}
	return o.finish(r, lg, wc...)
}
