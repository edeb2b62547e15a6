// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.ptf) JSON file and the input soil tables
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// Data holds global data for a run
type Data struct {
	Desc     string `json:"desc"`     // description of run
	Input    string `json:"input"`    // input table: CSV file or SQLite database (.db, .sqlite)
	Table    string `json:"table"`    // name of table in SQLite database
	DirOut   string `json:"dirout"`   // directory for output; e.g. /tmp/nbptfs
	Sink     string `json:"sink"`     // output format: "csv" or "sqlite"
	Rerun    bool   `json:"rerun"`    // keep outputs of a previous run of the same model
	Plot     bool   `json:"plot"`     // plot curves
	Policy   string `json:"policy"`   // warning policy: "last", "triggered" or "accumulate"
	Upstream string `json:"upstream"` // output directory of a previous point or vg run (Ksat runs)
	Metrics  bool   `json:"metrics"`  // write metrics.prom
}

// ModelData holds the model selection and its options
type ModelData struct {
	Name      string    `json:"name"`      // name of PTF; e.g. "Wosten_1999_top"
	Pressures []float64 `json:"pressures"` // [kPa] pressures for water contents of curve models
	Fc        float64   `json:"fc"`        // [kPa] field capacity
	Sic       float64   `json:"sic"`       // [kPa] stomatal closure
	Pwp       float64   `json:"pwp"`       // [kPa] permanent wilting point
	Carbon    string    `json:"carbon"`    // kind of carbon column: "OC" or "OM"
	Cfac      float64   `json:"cfac"`      // conversion factor between OC and OM
	Mvg       bool      `json:"mvg"`       // compute Mualem-van Genuchten conductivity
	Unit      string    `json:"unit"`      // pressure unit of curve tables: "kPa", "cm" or "m"
	Axis      string    `json:"axis"`      // axis of water contents in plots: "Y-axis" or "X-axis"
}

// RunData holds all data for a run
type RunData struct {

	// input
	Data  Data      `json:"data"`  // global data
	Model ModelData `json:"model"` // model data

	// derived
	Key    string        // filename key; e.g. loam.ptf => loam
	DirOut string        // directory for output
	Carbon soil.Carbon   // carbon convention
	Policy checks.Policy // warning policy
}

// SetDefault sets default values
func (o *RunData) SetDefault() {
	o.Data.Sink = "csv"
	o.Data.Policy = "last"
	o.Model.Pressures = []float64{1, 3, 10, 33, 100, 200, 1000, 1500}
	o.Model.Fc = 33
	o.Model.Sic = 100
	o.Model.Pwp = 1500
	o.Model.Carbon = "OC"
	o.Model.Cfac = 1.724
	o.Model.Unit = "kPa"
	o.Model.Axis = "Y-axis"
}

// ReadRun reads run data from a (.ptf) JSON file
func ReadRun(fnpath string) (o *RunData, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(fnpath))
	if err != nil {
		return nil, chk.Err("ReadRun: cannot read run file %q", fnpath)
	}

	// decode
	o = new(RunData)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadRun: cannot unmarshal run file %q:\n%v", fnpath, err)
	}

	// input path relative to run file
	dir := os.ExpandEnv(filepath.Dir(fnpath))
	o.Key = io.FnKey(filepath.Base(fnpath))
	if o.Data.Input != "" && !filepath.IsAbs(o.Data.Input) {
		o.Data.Input = filepath.Join(dir, o.Data.Input)
	}
	if o.Data.Upstream != "" && !filepath.IsAbs(o.Data.Upstream) {
		o.Data.Upstream = filepath.Join(dir, o.Data.Upstream)
	}
	err = o.PostProcess()
	return
}

// PostProcess sets derived values and validates options
func (o *RunData) PostProcess() (err error) {

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/nbptfs/" + o.Key
	}

	// carbon
	o.Carbon.Kind, err = soil.ParseCarbon(o.Model.Carbon)
	if err != nil {
		return
	}
	o.Carbon.Factor = o.Model.Cfac
	if err = o.Carbon.Check(o.Model.Name); err != nil {
		return
	}

	// warnings
	o.Policy, err = checks.ParsePolicy(o.Data.Policy)
	if err != nil {
		return
	}
	return o.Validate()
}

// Validate checks options
func (o *RunData) Validate() error {
	if o.Model.Name == "" {
		return chk.Err("name of model must be given")
	}
	if len(o.Model.Pressures) == 0 {
		return chk.Err("at least one pressure must be given")
	}
	for _, p := range o.Model.Pressures {
		if p < 0 {
			return chk.Err("pressures must not be negative. %g is invalid", p)
		}
	}
	if !sort.Float64sAreSorted(o.Model.Pressures) {
		sort.Float64s(o.Model.Pressures)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{{"field capacity", o.Model.Fc}, {"stomatal closure", o.Model.Sic}, {"permanent wilting point", o.Model.Pwp}} {
		if c.v <= 0 {
			return chk.Err("pressure at %s must be positive. %g is invalid", c.name, c.v)
		}
	}
	if _, err := UnitFactor(o.Model.Unit); err != nil {
		return err
	}
	if _, err := PressureOnY(o.Model.Axis); err != nil {
		return err
	}
	switch strings.ToLower(o.Data.Sink) {
	case "csv", "sqlite":
	default:
		return chk.Err("output format %q is invalid. options are csv or sqlite", o.Data.Sink)
	}
	return nil
}

// UnitFactor returns the factor converting kPa to unit
func UnitFactor(unit string) (float64, error) {
	switch unit {
	case "kPa":
		return 1, nil
	case "cm":
		return 10, nil
	case "m":
		return 0.1, nil
	}
	return 0, chk.Err("pressure unit %q is invalid. options are kPa, cm or m", unit)
}

// PressureOnY tells whether pressures go on the vertical axis of plots
//  axis names the axis of water contents and conductivities: "Y-axis" puts pressures on X
func PressureOnY(axis string) (bool, error) {
	switch axis {
	case "Y-axis":
		return false, nil
	case "X-axis":
		return true, nil
	}
	return false, chk.Err("axis %q is invalid. options are Y-axis or X-axis", axis)
}
