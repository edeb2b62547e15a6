// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/lucitools/NB-PTFs/inp"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/point"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	"github.com/lucitools/NB-PTFs/out"
)

// PointStage computes water contents with a point-PTF
type PointStage struct {
	main  *Main
	model point.Model
}

func init() {
	allocators[ptf.PointPTF] = func(o *Main) (Stage, error) {
		m, err := point.New(o.Desc.Name)
		if err != nil {
			return nil, err
		}
		if err = m.Init(o.Data.Carbon.Prms()); err != nil {
			return nil, err
		}
		return &PointStage{o, m}, nil
	}
}

// Output returns the name of the output table
func (o *PointStage) Output() string {
	return "soil_point_ptf.csv"
}

// Required returns the columns that must exist in the input
func (o *PointStage) Required() []string {
	return o.model.Required()
}

// Calc computes water contents and thresholds of all records
func (o *PointStage) Calc(tab *inp.Table) (res *Table, err error) {

	// auxiliary
	d, lg, run := o.main.Desc, o.main.Log, o.main.Data
	wcf := d.WCFields()
	idx := o.thresholdFields()

	// compute
	res = new(Table)
	var names []string
	var WC [][]float64
	hasKsat := false
	for i, r := range tab.Records {
		f := checks.NewFlag(run.Policy)
		wc := o.model.Calc(r, lg, f)
		checks.Monotone(lg, wcf, wc.WC, r.Label())
		if i == 0 {
			hasKsat = wc.HasKsat
		}

		// thresholds
		at := func(k int) *float64 {
			if idx[k] < 0 {
				return nil
			}
			return ref(wc.WC[idx[k]])
		}
		sat, pwp := at(0), at(3)
		if sat != nil && *sat > 1 {
			lg.Warnf("Water content at saturation over 1.0 for %s", r.Label())
		}
		if pwp != nil {
			if *pwp < 0.01 {
				lg.Warnf("Water content at PWP is below 0.01 for %s", r.Label())
			} else if *pwp < 0.05 {
				lg.Warnf("Water content at PWP is below 0.05 for %s", r.Label())
			}
		}
		th := NewThresholds(lg, r.Label(), sat, at(1), at(2), pwp)
		if i == 0 {
			res.Columns = append(append([]string{}, wcf...), o.ksatColumn(hasKsat)...)
			res.Columns = append(res.Columns, th.Columns()...)
			if th.RAWFromPAW {
				lg.Infof("Readily available water calculated based on PAW")
			}
		}

		// results
		vals := append([]float64{}, wc.WC...)
		if hasKsat {
			vals = append(vals, wc.Ksat)
		}
		vals = append(vals, th.Values()...)
		res.Add(r.Name, f.String(), vals)
		o.main.record(f.String(), !(wc.HasKsat && soil.IsSentinel(wc.Ksat)), wc.WC...)
		names = append(names, r.Label())
		WC = append(WC, wc.WC)
	}
	if len(tab.Records) == 0 {
		res.Columns = wcf
	}
	lg.Infof("Water contents at critical thresholds calculated")

	// plot
	if run.Data.Plot {
		onY, _ := inp.PressureOnY(run.Model.Axis)
		out.PlotPoints(run.DirOut, "point_ptf", names, d.Pressures, WC, onY)
	}
	return
}

// thresholdFields returns the index of the water contents at saturation, FC, SIC and PWP; -1 if not computed
func (o *PointStage) thresholdFields() (idx []int) {
	d, lg, m := o.main.Desc, o.main.Log, o.main.Data.Model
	sat := 0.0
	if d.Name == "Reichert_2009_OM" {
		lg.Infof("For Reichert et al. (2009) - Sand, silt, clay, OM, BD saturation is at 6kPa")
		sat = 6
	}
	labels := []string{"saturation", "field capacity", "water stress-induced stomatal closure", "permanent wilting point"}
	for k, p := range []float64{sat, m.Fc, m.Sic, m.Pwp} {
		i := d.PressureIndex(p)
		if i < 0 {
			lg.Warnf("Field with WC at %s not found (%s)", labels[k], d.Field(p))
		} else {
			lg.Infof("Field with WC at %s found!", labels[k])
		}
		idx = append(idx, i)
	}
	return
}

// ksatColumn returns the Ksat column if computed
func (o *PointStage) ksatColumn(hasKsat bool) []string {
	if hasKsat {
		return []string{soil.KeyKsat}
	}
	return nil
}
