// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots retention model from zero suction up to pmax
//  pressureOnY -- pressure on the vertical axis; otherwise on the horizontal axis
//  args        -- arguments for the curve; e.g. &plt.A{C: "b", L: "loam"}
func Plot(mdl Model, pmax float64, npts int, pressureOnY bool, args *plt.A) (P, Θ []float64) {
	P = utl.LinSpace(0, pmax, npts)
	Θ = Evaluate(mdl, P)
	if pressureOnY {
		plt.Plot(Θ, P, args)
		return
	}
	plt.Plot(P, Θ, args)
	return
}

// PlotEnd sets axes with logarithmic pressures and saves figure
func PlotEnd(dirout, fnkey, title string, pressureOnY bool) {
	if pressureOnY {
		plt.SetYlog()
		plt.Gll("Water content [m³/m³]", "Pressure [kPa]", nil)
	} else {
		plt.SetXlog()
		plt.Gll("Pressure [kPa]", "Water content [m³/m³]", nil)
	}
	if title != "" {
		plt.Title(title, nil)
	}
	plt.Save(dirout, fnkey)
}
