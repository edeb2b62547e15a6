// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements soil moisture retention curves θ(p)
//  p is the suction pressure in kPa and θ the volumetric water content
//  References:
//   [1] van Genuchten MTh (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci Soc Am J, 44, 892-898
//   [2] Brooks RH and Corey AT (1964) Hydraulic properties of porous media.
//       Hydrology Papers 3, Colorado State University
package retention

// Model implements a soil moisture retention curve
type Model interface {
	ThetaR() float64         // returns the residual water content
	ThetaS() float64         // returns the saturated water content
	Theta(p float64) float64 // computes θ at suction p [kPa]
}

// Evaluate computes water contents at many pressures
func Evaluate(mdl Model, pressures []float64) (wc []float64) {
	wc = make([]float64, len(pressures))
	for i, p := range pressures {
		wc[i] = mdl.Theta(p)
	}
	return
}

// SaturationExceeded tells whether θ at zero suction exceeds θs by more than 10%
func SaturationExceeded(theta0, ths float64) bool {
	return theta0 > ths*1.1
}
