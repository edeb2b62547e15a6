// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soil holds soil records and the carbon conventions shared by all pedotransfer functions
package soil

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Sentinel marks values that could not be computed (e.g. unfittable Brooks-Corey curves)
const Sentinel = -9999.0

// column names
const (
	KeyName     = "soilname"
	KeySand     = "Sand"
	KeySilt     = "Silt"
	KeyClay     = "Clay"
	KeyBD       = "BD"
	KeyOC       = "OC"
	KeyOM       = "OM"
	KeyCEC      = "CEC"
	KeyPH       = "pH"
	KeyTexture  = "texture"
	KeyWCSat    = "WC_sat"
	KeySatCalc  = "wc_satCalc"
	KeyFcCalc   = "wc_fcCalc"
	KeyWarning  = "warning"
	KeyKsat     = "K_sat"
	KeyRecordID = "OID"
)

// IsSentinel tells whether v holds the "could not compute" marker
func IsSentinel(v float64) bool {
	return v == Sentinel
}

// Record holds one row of the input table
//  Note: missing numeric cells are NaN
type Record struct {
	ID      int                // record id (1-based row number if the source has none)
	Name    string             // soil name
	Sand    float64            // sand [%]
	Silt    float64            // silt [%]
	Clay    float64            // clay [%]
	BD      float64            // bulk density [g/cm³]
	Carbon  float64            // organic carbon or organic matter [%], see CarbonKind
	CEC     float64            // cation exchange capacity [cmol/kg]
	PH      float64            // pH
	Texture string             // texture class label
	Extra   map[string]float64 // other numeric columns; e.g. WC_sat, wc_satCalc
}

// NewRecord returns a record with all numeric values set to NaN
func NewRecord(id int) (o *Record) {
	nan := math.NaN()
	return &Record{ID: id, Sand: nan, Silt: nan, Clay: nan, BD: nan, Carbon: nan, CEC: nan, PH: nan, Extra: make(map[string]float64)}
}

// Get returns the numeric value stored under a column name; NaN if absent
func (o *Record) Get(key string) float64 {
	switch key {
	case KeySand:
		return o.Sand
	case KeySilt:
		return o.Silt
	case KeyClay:
		return o.Clay
	case KeyBD:
		return o.BD
	case KeyOC, KeyOM:
		return o.Carbon
	case KeyCEC:
		return o.CEC
	case KeyPH:
		return o.PH
	}
	if v, ok := o.Extra[key]; ok {
		return v
	}
	return math.NaN()
}

// Label returns the soil name or the record id when the name is empty
func (o *Record) Label() string {
	if o.Name != "" {
		return o.Name
	}
	return io.Sf("%d", o.ID)
}

// CarbonKind tells whether carbon values are organic carbon or organic matter
type CarbonKind int

// carbon kinds
const (
	OC CarbonKind = iota // organic carbon
	OM                   // organic matter
)

// ParseCarbon parses "OC", "OM", "Organic carbon" or "Organic matter"
func ParseCarbon(s string) (CarbonKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oc", "organic carbon":
		return OC, nil
	case "om", "organic matter":
		return OM, nil
	}
	return OC, chk.Err("invalid carbon content option %q. options are OC or OM", s)
}

// String returns "OC" or "OM"
func (k CarbonKind) String() string {
	if k == OM {
		return "OM"
	}
	return "OC"
}

// Key returns the name of the column holding carbon values
func (k CarbonKind) Key() string {
	return k.String()
}

// Label returns a human readable name
func (k CarbonKind) Label() string {
	if k == OM {
		return "Organic matter"
	}
	return "Organic carbon"
}

// Carbon holds the carbon convention of a dataset
type Carbon struct {
	Kind   CarbonKind // kind of the carbon column
	Factor float64    // conversion factor between OC and OM; e.g. 1.724
}

// Effective returns the carbon value in the kind a model was calibrated with.
// The factor applies only when the dataset kind differs from the native one.
func (o Carbon) Effective(value float64, native CarbonKind) float64 {
	if o.Kind == native {
		return value
	}
	return value * o.Factor
}

// NewCarbon returns the default convention: organic carbon with a factor of 1.724
func NewCarbon() Carbon {
	return Carbon{Kind: OC, Factor: 1.724}
}

// Read sets the convention from a model parameter and tells whether p is a carbon parameter
//  cfac -- conversion factor between OC and OM
//  om   -- 1 if the carbon column holds organic matter; 0 if organic carbon
func (o *Carbon) Read(p *dbf.P) bool {
	switch strings.ToLower(p.N) {
	case "cfac":
		o.Factor = p.V
	case "om":
		o.Kind = OC
		if p.V > 0 {
			o.Kind = OM
		}
	default:
		return false
	}
	return true
}

// Check returns an error if the conversion factor is not positive
func (o Carbon) Check(model string) error {
	if o.Factor <= 0 {
		return chk.Err("%s: carbon conversion factor must be positive. cfac = %g is invalid\n", model, o.Factor)
	}
	return nil
}

// Prms returns the parameters of this convention
func (o Carbon) Prms() dbf.Params {
	om := 0.0
	if o.Kind == OM {
		om = 1
	}
	return dbf.Params{
		&dbf.P{N: "cfac", V: o.Factor},
		&dbf.P{N: "om", V: om},
	}
}
