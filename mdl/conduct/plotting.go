// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the conductivity from zero suction up to pmax and saves figure
//  withSe -- also plot K(Se) on the same axes
func Plot(o Model, dirout, fnkey string, pmax float64, np int, withSe bool) {
	P := utl.LinSpace(0, pmax, np)
	Y := make([]float64, np)
	for i := 0; i < np; i++ {
		Y[i] = o.K(P[i])
	}
	plt.Reset(false, nil)
	plt.Plot(P, Y, &plt.A{C: "b", Ls: "-", L: "K(p)"})
	if m, ok := o.(*MualemVG); ok && withSe {
		Z := make([]float64, np)
		for i := 0; i < np; i++ {
			Z[i] = m.Klr(m.Se(P[i]))
		}
		plt.Plot(P, Z, &plt.A{C: "r", Ls: "none", M: ".", L: "K(Se)"})
	}
	plt.SetXlog()
	plt.Gll("Pressure [kPa]", "K [mm/hr]", nil)
	plt.Save(dirout, fnkey)
}
