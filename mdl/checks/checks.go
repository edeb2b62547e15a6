// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package checks implements validation of soil inputs and computed outputs.
// Each check returns a warning tag (empty if nothing is wrong) and logs a message.
package checks

import (
	"github.com/cpmech/gosl/chk"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Value checks that a percentage-like value lies in [0, 100]
func Value(lg Logger, name string, value float64, rec int) (tag string) {
	if value < 0 {
		tag = name + " is negative"
		lg.Warnf("%s is negative, please check record: %d", name, rec)
	}
	if value > 100 {
		tag = name + " is over 100"
		lg.Warnf("%s is over 100, please check record: %d", name, rec)
	}
	return
}

// SSC checks sand, silt and clay fractions and that they add up to 100±1
func SSC(lg Logger, sand, silt, clay float64, rec int) (tag string) {
	for _, c := range []struct {
		name string
		v    float64
	}{{"Sand", sand}, {"Silt", silt}, {"Clay", clay}} {
		if c.v < 0 {
			tag = c.name + " is negative"
			lg.Warnf("%s content is negative. Please check record: %d", c.name, rec)
		}
	}
	sum := sand + silt + clay
	if sum < 99 {
		tag = "SSC less than 99"
		lg.Warnf("Sand, silt, clay sum up to less than 99 percent. Please check record: %d", rec)
	}
	if sum > 101 {
		tag = "SSC more than 101"
		lg.Warnf("Sand, silt, clay sum up to more than 100. Please check record: %d", rec)
	}
	return
}

// Carbon checks organic carbon or organic matter percentages
func Carbon(lg Logger, carbon float64, kind soil.CarbonKind, rec int) (tag string) {
	if carbon < 0 {
		tag = "Carbon negative"
		lg.Warnf("%s content (percentage) is negative. Please check the field %s in record %d", kind.Label(), kind.Key(), rec)
	}
	if carbon > 100 {
		tag = "OC or OM over 100"
		lg.Warnf("%s content (percentage) is higher than 100 percent. Please check the field %s in record %d", kind.Label(), kind.Key(), rec)
	}
	return
}

// Batjes checks the validity range of Batjes (1996): fractions of at least 5% and carbon of at least 0.1%
func Batjes(lg Logger, sand, silt, clay, carbon float64, rec int) (tag string) {
	for _, c := range []struct {
		name string
		v    float64
	}{{"Sand", sand}, {"Silt", silt}, {"Clay", clay}} {
		if c.v < 5 {
			tag = c.name + " less than 5"
			lg.Warnf("Batjes (1996) requires %s content to be at least 5 percent, check record: %d", c.name, rec)
		}
	}
	if carbon < 0.1 {
		tag = "Carbon less than 0.1"
		lg.Warnf("Batjes (1996) requires carbon content to be at least 0.1 percent, check record: %d", rec)
	}
	return
}

// NegOutput logs each negative computed water content. Values are not changed.
func NegOutput(lg Logger, outputs []float64, rec int) (found bool) {
	for _, v := range outputs {
		if v < 0 {
			lg.Warnf("Soil moisture value is negative for record %d", rec)
			found = true
		}
	}
	return
}

// NegValue logs a negative derived quantity; e.g. plant available water
func NegValue(lg Logger, name string, value float64, soilname string) bool {
	if value < 0 {
		lg.Warnf("%s is negative for %s. Please check the results for %s", name, soilname, soilname)
		return true
	}
	return false
}

// Monotone checks that no water content exceeds the one at the lowest pressure
//  fields -- names of water content fields sorted by increasing pressure
func Monotone(lg Logger, fields []string, wc []float64, soilname string) (ok bool) {
	ok = true
	if len(wc) == 0 {
		return
	}
	for i := 1; i < len(wc); i++ {
		if wc[i] > wc[0] {
			lg.Warnf("Water content in field %s is higher than pressure at lowest water content (%s). Check this soil: %s", fields[i], fields[0], soilname)
			ok = false
		}
	}
	return
}

// FieldsPresent returns an error naming the first required column missing from columns
func FieldsPresent(required, columns []string) error {
	has := make(map[string]bool, len(columns))
	for _, c := range columns {
		has[c] = true
	}
	for _, r := range required {
		if !has[r] {
			return chk.Err("field %q not found in the input records. Please ensure this field is present", r)
		}
	}
	return nil
}

// Record runs named checks on one record and sets the flag with each result
//  names -- "SSC", "Carbon", "Bulk density" or a column name; e.g. "Clay"
//  kind  -- kind of the carbon column as given in the dataset
func Record(lg Logger, f *Flag, r *soil.Record, kind soil.CarbonKind, names ...string) {
	for _, name := range names {
		switch name {
		case "SSC":
			f.Set(SSC(lg, r.Sand, r.Silt, r.Clay, r.ID))
		case "Carbon":
			f.Set(Carbon(lg, r.Carbon, kind, r.ID))
		case "Bulk density":
			f.Set(Value(lg, name, r.BD, r.ID))
		default:
			f.Set(Value(lg, name, r.Get(name), r.ID))
		}
	}
}
