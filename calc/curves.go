// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/lucitools/NB-PTFs/inp"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/retention"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	"github.com/lucitools/NB-PTFs/out"
)

// pressures
var (
	Defaults   = []float64{1, 3, 10, 33, 100, 200, 1000, 1500} // [kPa] pressures of water contents in output tables
	SePressure = []float64{1, 3, 10, 33, 100, 1500}            // [kPa] pressures of Se and K(Se) in output tables
	Pmax       = 1500.0                                        // [kPa] largest pressure of curve files
	Npts       = 1501                                          // number of points in curve files
)

// fields returns names of fields at pressures; e.g. WC_33kPa
func fields(prefix string, pressures []float64) (names []string) {
	for _, p := range pressures {
		names = append(names, io.Sf("%s%dkPa", prefix, int(p)))
	}
	return
}

// critical returns the thresholds given by a retention curve
func critical(lg checks.Logger, soilname string, mdl retention.Model, m *inp.ModelData) *Thresholds {
	return NewThresholds(lg, soilname, ref(mdl.Theta(0)), ref(mdl.Theta(m.Fc)), ref(mdl.Theta(m.Sic)), ref(mdl.Theta(m.Pwp)))
}

// curves collects the water contents of all soils for tables, curve files and plots
type curves struct {
	main   *Main
	subdir string            // directory of curve files
	prefix string            // prefix of figures; e.g. vg gives vg_<soilname> and plotVG_logPressure
	names  []string          // soil names
	mdls   []retention.Model // curves
	user   [][]float64       // water contents at user pressures
}

// add adds the curve of one soil
func (o *curves) add(name string, mdl retention.Model) {
	o.names = append(o.names, name)
	o.mdls = append(o.mdls, mdl)
	o.user = append(o.user, retention.Evaluate(mdl, o.main.Data.Model.Pressures))
}

// write writes WaterContent.csv, the curve files and the plot
func (o *curves) write(title string) (err error) {
	run := o.main.Data
	err = out.PressureTable(run.DirOut, "WaterContent.csv", "WC_", "kPa", 1, run.Model.Pressures, o.names, o.user)
	if err != nil {
		return
	}
	o.main.Log.Infof("Output CSV with water content saved to %q", "WaterContent.csv")
	factor, err := inp.UnitFactor(run.Model.Unit)
	if err != nil {
		return
	}
	P := utl.LinSpace(0, Pmax, Npts)
	for i, mdl := range o.mdls {
		err = out.CurveCSV(run.DirOut, o.subdir, o.names[i], "WaterContents", run.Model.Unit, factor, P, retention.Evaluate(mdl, P))
		if err != nil {
			return
		}
	}
	if run.Data.Plot {
		var names []string
		var mdls []retention.Model
		for i, mdl := range o.mdls {
			if !soil.IsSentinel(mdl.Theta(0)) {
				names = append(names, o.names[i])
				mdls = append(mdls, mdl)
			}
		}
		onY, _ := inp.PressureOnY(run.Model.Axis)
		marks := out.Markers(run.Model.Fc, run.Model.Sic, run.Model.Pwp)
		fnkey := "plot" + strings.ToUpper(o.prefix) + "_logPressure"
		out.PlotCurves(run.DirOut, fnkey, o.prefix, title, names, mdls, marks, Pmax, onY)
	}
	return
}
