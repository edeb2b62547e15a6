// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package point

import (
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Reichert implements Reichert et al. (2009) for Brazilian soils
//  withOM -- equations using organic matter (6 to 1500 kPa); otherwise texture only
type Reichert struct {
	base
	withOM bool
}

// add models to factory
func init() {
	allocators["Reichert_2009_OM"] = func(d *ptf.Descriptor) Model {
		return &Reichert{newBase(d, soil.OM, true, colAll...), true}
	}
	allocators["Reichert_2009"] = func(d *ptf.Descriptor) Model {
		return &Reichert{newBase(d, soil.OM, false, colAll...), false}
	}
}

// Calc computes water contents
func (o *Reichert) Calc(r *soil.Record, lg checks.Logger, f *checks.Flag) Result {
	S, Si, Cl, BD := r.Sand, r.Silt, r.Clay, r.BD
	if !o.withOM {
		o.check(r, lg, f, "SSC", "Bulk density")
		return o.finish(r, lg,
			BD*(0.037+0.38e-2*(Cl+Si)),
			BD*(0.366-0.34e-2*S),
			BD*(0.236+0.045e-2*Cl-0.21e-2*S),
		)
	}
	o.check(r, lg, f, "SSC", "Carbon", "Bulk density")
	C := o.c(r)
	return o.finish(r, lg,
		BD*(0.415+0.26e-2*(Cl+Si)+0.61e-2*C-0.207*BD),
		BD*(0.268+0.05e-2*Cl+0.24e-2*(Cl+Si)+0.85e-2*C-0.127*BD),
		BD*(0.106+0.29e-2*(Cl+Si)+0.93e-2*C-0.048*BD),
		BD*(0.102+0.23e-2*(Cl+Si)-0.08e-2*(Si+S)+1.08e-2*C),
		BD*(0.268-0.11e-2*Si-0.31e-2*S+1.28e-2*C+0.031*BD),
		BD*(-0.04+0.15e-2*Cl+0.17e-2*(Cl+Si)+0.91e-2*C+0.026*BD),
	)
}
