// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import "math"

// VanGen implements van Genuchten's model
//  θ(p) = θr + (θs - θr) / (1 + (α p)^n)^m
type VanGen struct {

	// parameters
	θr, θs  float64 // residual and saturated water contents
	α, m, n float64 // parameters; α in 1/kPa
}

// NewVanGen returns an initialised van Genuchten curve
func NewVanGen(thr, ths, alp, n, m float64) *VanGen {
	return &VanGen{θr: thr, θs: ths, α: alp, n: n, m: m}
}

// ThetaR returns θr
func (o VanGen) ThetaR() float64 {
	return o.θr
}

// ThetaS returns θs
func (o VanGen) ThetaS() float64 {
	return o.θs
}

// Theta computes θ at suction p
func (o VanGen) Theta(p float64) float64 {
	return o.θr + (o.θs-o.θr)*o.Se(p)
}

// Se computes the effective saturation (θ - θr)/(θs - θr) at suction p
func (o VanGen) Se(p float64) float64 {
	return math.Pow(1+math.Pow(o.α*p, o.n), -o.m)
}

// Prms returns α, n and m
func (o VanGen) Prms() (α, n, m float64) {
	return o.α, o.n, o.m
}
