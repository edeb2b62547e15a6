// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/lucitools/NB-PTFs/inp"
	"github.com/lucitools/NB-PTFs/mdl/bcptf"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/retention"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	"github.com/lucitools/NB-PTFs/out"
)

// BCStage computes Brooks-Corey curves
type BCStage struct {
	main  *Main
	model bcptf.Model
}

func init() {
	allocators[ptf.BCPTF] = func(o *Main) (Stage, error) {
		m, err := bcptf.New(o.Desc.Name)
		if err != nil {
			return nil, err
		}
		if err = m.Init(o.Data.Carbon.Prms()); err != nil {
			return nil, err
		}
		return &BCStage{o, m}, nil
	}
}

// Output returns the name of the output table
func (o *BCStage) Output() string {
	return "BrooksCorey.csv"
}

// Required returns the columns that must exist in the input
func (o *BCStage) Required() []string {
	return o.model.Required()
}

// Calc computes curve parameters, water contents and thresholds of all records
//  Note: all values of records whose curve could not be computed are set to the sentinel
func (o *BCStage) Calc(tab *inp.Table) (res *Table, err error) {

	// auxiliary
	lg, run := o.main.Log, o.main.Data
	crv := &curves{main: o.main, subdir: out.DirBC, prefix: "bc"}

	// compute
	res = new(Table)
	hasKsat := false
	for i, r := range tab.Records {
		f := checks.NewFlag(run.Policy)
		p := o.model.Calc(r, lg, f)
		lam, hb := p.Lambda, p.Hb
		if !p.Fitted {
			lg.Warnf("Invalid lambda found for %s", r.Label())
			lam, hb = soil.Sentinel, soil.Sentinel
		}
		bc := retention.NewBrooksCorey(p.Thr, p.Ths, lam, hb)
		wc := retention.Evaluate(bc, Defaults)
		th := critical(lg, r.Label(), bc, &run.Model)
		if i == 0 {
			hasKsat = p.HasKsat
			res.Columns = []string{"WC_res", "WC_sat_BC", "lambda_BC", "hb_BC"}
			if hasKsat {
				res.Columns = append(res.Columns, soil.KeyKsat)
			}
			res.Columns = append(res.Columns, fields("WC_", Defaults)...)
			res.Columns = append(res.Columns, th.Columns()...)
		}
		vals := []float64{p.Thr, p.Ths, lam, hb}
		if hasKsat {
			vals = append(vals, p.Ksat)
		}
		vals = append(vals, wc...)
		vals = append(vals, th.Values()...)
		res.Add(r.Name, f.String(), vals)
		o.main.record(f.String(), p.Fitted, append(wc, th.Values()...)...)
		crv.add(r.Label(), bc)
	}
	if len(tab.Records) == 0 {
		res.Columns = []string{"WC_res", "WC_sat_BC", "lambda_BC", "hb_BC"}
	}
	lg.Infof("Brooks-Corey parameters calculated")

	// files
	err = crv.write("Brooks-Corey")
	return
}
