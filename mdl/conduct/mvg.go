// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

// MualemVG implements the Mualem-van Genuchten conductivity model
type MualemVG struct {
	ksat    float64 // [mm/hr] saturated conductivity
	α, n, m float64 // van Genuchten parameters; α in 1/kPa
	l       float64 // tortuosity parameter
}

// NewMualemVG returns an initialised model
func NewMualemVG(ksat, alp, n, m, l float64) *MualemVG {
	return &MualemVG{ksat: ksat, α: alp, n: n, m: m, l: l}
}

// Se returns the effective saturation at suction p
func (o MualemVG) Se(p float64) float64 {
	return EffectiveSaturation(o.α, o.n, o.m, p)
}

// Klr returns the conductivity from the effective saturation
func (o MualemVG) Klr(se float64) float64 {
	return RelativeConductivity(o.ksat, se, o.l, o.m)
}

// K returns the conductivity at suction p
func (o MualemVG) K(p float64) float64 {
	return HydraulicConductivity(o.ksat, o.α, o.n, o.m, o.l, p)
}

// ThetaK returns θ at suction p and the conductivity of the corresponding effective saturation
func (o MualemVG) ThetaK(thr, ths, p float64) (θ, k float64) {
	θ = thr + (ths-thr)*o.Se(p)
	if ths <= thr {
		return θ, o.ksat
	}
	k = o.Klr((θ - thr) / (ths - thr))
	return
}
