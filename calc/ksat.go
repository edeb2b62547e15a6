// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lucitools/NB-PTFs/inp"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ksat"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
)

// KsatStage computes the saturated hydraulic conductivity
//  Records come from the output of a previous point-PTF or van Genuchten run when
//  the upstream directory is given; otherwise from the input table
type KsatStage struct {
	main  *Main
	model ksat.Model
}

func init() {
	allocators[ptf.KsatPTF] = func(o *Main) (Stage, error) {
		m, err := ksat.New(o.Desc.Name)
		if err != nil {
			return nil, err
		}
		if err = m.Init(o.Data.Carbon.Prms()); err != nil {
			return nil, err
		}
		if o.Data.Data.Upstream != "" {
			o.Source, err = upstream(o.Data.Data.Upstream, o.Data.Carbon.Kind)
			if err != nil {
				return nil, err
			}
		}
		return &KsatStage{o, m}, nil
	}
}

// upstream returns the source of records written by a previous run
func upstream(dir string, carbon soil.CarbonKind) (inp.Source, error) {
	meta, err := inp.ReadMeta(dir)
	if err != nil {
		return nil, err
	}
	switch ptf.Type(meta.Type) {
	case ptf.PointPTF, ptf.VGPTF:
	default:
		return nil, chk.Err("Please run the point-PTF or vg-PTF tool first. %q holds results of a %s", dir, meta.Type)
	}
	fn := filepath.Join(dir, meta.Output)
	if _, err = os.Stat(fn); err == nil {
		return inp.NewSource(fn, "", carbon), nil
	}
	return inp.NewSource(filepath.Join(dir, "nbptfs.db"), io.FnKey(meta.Output), carbon), nil
}

// Output returns the name of the output table
func (o *KsatStage) Output() string {
	return "Ksat.csv"
}

// Required returns the columns that must exist in the input
func (o *KsatStage) Required() []string {
	return o.model.Required()
}

// Calc computes Ksat of all records
func (o *KsatStage) Calc(tab *inp.Table) (res *Table, err error) {
	if tab.Has(soil.KeyKsat) {
		return nil, chk.Err("%s field already present in the input records", soil.KeyKsat)
	}
	lg, run := o.main.Log, o.main.Data
	res = &Table{Columns: []string{soil.KeyKsat}}
	for _, r := range tab.Records {
		f := checks.NewFlag(run.Policy)
		ks := o.model.Calc(r, lg, f)
		res.Add(r.Name, f.String(), []float64{ks})
		o.main.record(f.String(), true)
	}
	lg.Infof("Saturated hydraulic conductivity calculated")
	return
}
