// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ptf implements the database of pedotransfer function descriptors
package ptf

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Type of pedotransfer function
type Type string

// types
const (
	PointPTF Type = "pointPTF" // water content at fixed pressures
	VGPTF    Type = "vgPTF"    // van Genuchten parameters
	KsatPTF  Type = "ksatPTF"  // saturated hydraulic conductivity
	BCPTF    Type = "bcPTF"    // Brooks-Corey parameters
)

// Descriptor holds the static metadata of one pedotransfer function
type Descriptor struct {
	Name      string    // name of model; e.g. "Nguyen_2014"
	Type      Type      // type of model
	Pressures []float64 // [kPa] pressures of point-PTFs; nil otherwise
	Token     string    // "SMRC", "Ksat" or "bc" for curve-parameter models
	Unit      string    // native pressure unit of the publication: "kPa", "cm" or "mmhr"
	Fields    []string  // output fields, always starting with "warning"
}

// Field returns the name of the water content field at pressure p
func (o *Descriptor) Field(p float64) string {
	return WCField(p, o.Unit)
}

// PressureIndex returns the index of the water content at p given by a point-PTF; -1 if not computed
func (o *Descriptor) PressureIndex(p float64) int {
	for i, q := range o.Pressures {
		if q == p {
			return i
		}
	}
	return -1
}

// WCFields returns the water content fields (Fields without "warning")
func (o *Descriptor) WCFields() []string {
	if o.Type != PointPTF {
		return nil
	}
	return o.Fields[1:]
}

// WCField returns the name of a water content field; e.g. WC_33kPa
func WCField(p float64, unit string) string {
	return io.Sf("WC_%d%s", int(p), unit)
}

// Get returns the descriptor of a model
func Get(name string) (*Descriptor, error) {
	d, ok := database[name]
	if !ok {
		return nil, chk.Err("PTF option not recognised: %q", name)
	}
	return d, nil
}

// Names returns the sorted names of all models of a given type; all models if typ is empty
func Names(typ Type) (names []string) {
	for name, d := range database {
		if typ == "" || d.Type == typ {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return
}

// database holds all descriptors
var database = map[string]*Descriptor{}

func point(name string, pressures ...float64) {
	d := &Descriptor{Name: name, Type: PointPTF, Pressures: pressures, Unit: "kPa", Fields: []string{"warning"}}
	for _, p := range pressures {
		d.Fields = append(d.Fields, d.Field(p))
	}
	database[name] = d
}

func curve(name string, typ Type, token, unit string, fields ...string) {
	database[name] = &Descriptor{Name: name, Type: typ, Token: token, Unit: unit, Fields: append([]string{"warning"}, fields...)}
}

func init() {

	// point-PTFs
	point("Nguyen_2014", 1, 3, 6, 10, 20, 33, 100, 1500)
	point("Adhikary_2008", 10, 33, 100, 300, 500, 1000, 1500)
	point("Rawls_1982", 10, 20, 33, 50, 100, 200, 400, 700, 1000, 1500)
	point("Hall_1977_top", 5, 10, 33, 200, 1500)
	point("Hall_1977_sub", 5, 10, 33, 200, 1500)
	point("GuptaLarson_1979", 4, 7, 10, 20, 33, 60, 100, 200, 400, 700, 1000, 1500)
	point("Batjes_1996", 0, 1, 3, 5, 10, 20, 33, 50, 250, 1500)
	point("SaxtonRawls_2006", 0, 33, 1500)
	point("Pidgeon_1972", 10, 33, 1500)
	point("Lal_1978_Group1", 0, 10, 33, 1500)
	point("Lal_1978_Group2", 0, 10, 33, 1500)
	point("AinaPeriaswamy_1985", 33, 1500)
	point("ManriqueJones_1991", 33, 1500)
	point("vanDenBerg_1997", 10, 1500)
	point("TomasellaHodnett_1998", 0, 1, 3, 6, 10, 33, 100, 500, 1500)
	point("Reichert_2009_OM", 6, 10, 33, 100, 500, 1500)
	point("Reichert_2009", 10, 33, 1500)
	point("Botula_2013", 1, 3, 6, 10, 20, 33, 100, 1500)
	point("ShwethaVarija_2013", 33, 100, 300, 500, 1000, 1500)
	point("Dashtaki_2010_point", 10, 30, 100, 300, 500, 1500)
	point("Santra_2018_OC", 33, 1500)
	point("Santra_2018", 33, 1500)

	// van Genuchten
	curve("Wosten_1999_top", VGPTF, "SMRC", "cm")
	curve("Wosten_1999_sub", VGPTF, "SMRC", "cm")
	curve("Vereecken_1989", VGPTF, "SMRC", "cm")
	curve("ZachariasWessolek_2007", VGPTF, "SMRC", "kPa")
	curve("Weynants_2009", VGPTF, "SMRC", "cm")
	curve("Dashtaki_2010_vg", VGPTF, "SMRC", "cm")
	curve("HodnettTomasella_2002", VGPTF, "SMRC", "kPa")

	// saturated hydraulic conductivity
	for _, name := range []string{"Cosby_1984", "Puckett_1985", "Jabro_1992", "CampbellShiozawa_1994",
		"FerrerJulia_2004_1", "FerrerJulia_2004_2", "Ahuja_1989", "MinasnyMcBratney_2000", "Brakensiek_1984"} {
		curve(name, KsatPTF, "Ksat", "mmhr", "K_sat")
	}

	// Brooks-Corey
	bc := []string{"WC_res", "WC_sat", "lambda_BC", "hb_BC"}
	curve("Cosby_1984_SandC_BC", BCPTF, "bc", "cm", bc...)
	curve("Cosby_1984_SSC_BC", BCPTF, "bc", "cm", bc...)
	curve("RawlsBrakensiek_1985_BC", BCPTF, "bc", "cm", bc...)
	curve("CampbellShiozawa_1992_BC", BCPTF, "bc", "cm", bc...)
	curve("Saxton_1986_BC", BCPTF, "bc", "kPa", bc...)
	curve("SaxtonRawls_2006_BC", BCPTF, "bc", "kPa", bc...)
}
