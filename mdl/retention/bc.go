// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// BrooksCorey implements Brooks and Corey's model
//  θ(p) = θs                      if p < hb
//  θ(p) = θr + (θs - θr)(hb/p)^λ  otherwise
type BrooksCorey struct {

	// parameters
	λ      float64 // pore size distribution index
	hb     float64 // [kPa] bubbling pressure
	θr, θs float64 // residual and saturated water contents
}

// NewBrooksCorey returns an initialised Brooks-Corey curve
func NewBrooksCorey(thr, ths, lam, hb float64) *BrooksCorey {
	return &BrooksCorey{θr: thr, θs: ths, λ: lam, hb: hb}
}

// ThetaR returns θr
func (o BrooksCorey) ThetaR() float64 {
	return o.θr
}

// ThetaS returns θs
func (o BrooksCorey) ThetaS() float64 {
	return o.θs
}

// Fitted tells whether λ and hb hold computed values
func (o BrooksCorey) Fitted() bool {
	return !soil.IsSentinel(o.λ) && !soil.IsSentinel(o.hb)
}

// Theta computes θ at suction p. Returns the sentinel if the curve could not be fitted.
func (o BrooksCorey) Theta(p float64) float64 {
	if !o.Fitted() {
		return soil.Sentinel
	}
	if p < o.hb {
		return o.θs
	}
	return o.θr + (o.θs-o.θr)*math.Pow(o.hb/p, o.λ)
}
