// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for the unsaturated hydraulic conductivity of soils
//  References:
//   [1] Mualem Y (1976) A new model for predicting the hydraulic conductivity of unsaturated
//       porous media. Water Resour Res, 12(3), 513-522
//   [2] van Genuchten MTh (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci Soc Am J, 44, 892-898
package conduct

import "math"

// Model defines hydraulic conductivity models
type Model interface {
	Klr(se float64) float64 // Klr returns the conductivity from the effective saturation
	K(p float64) float64    // K returns the conductivity at suction p [kPa]
}

// EffectiveSaturation computes Se = 1 / (1 + (α p)^n)^m
func EffectiveSaturation(α, n, m, p float64) float64 {
	return 1.0 / math.Pow(1+math.Pow(α*p, n), m)
}

// RelativeConductivity computes K(Se) = Ksat Se^l (1 - (1 - Se^(1/m))^m)²
func RelativeConductivity(ksat, se, l, m float64) float64 {
	b := 1 - math.Pow(1-pow(se, 1/m), m)
	return ksat * pow(se, l) * b * b
}

// HydraulicConductivity computes the closed form
//  K(p) = Ksat ((1 + (α p)^n)^m - (α p)^(n-1))² / (1 + (α p)^n)^(m(l+2))
// It equals RelativeConductivity when m = 1 - 1/n.
func HydraulicConductivity(ksat, α, n, m, l, p float64) float64 {
	x := α * p
	c := 1 + pow(x, n)
	a := math.Pow(c, m) - pow(x, n-1)
	return ksat * a * a / math.Pow(c, m*(l+2))
}

// pow computes x^y with negative bases clamped to zero and 0^y = 0 for negative y
func pow(x, y float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, y)
}
