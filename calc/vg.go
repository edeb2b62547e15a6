// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"github.com/lucitools/NB-PTFs/inp"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/conduct"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/retention"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	"github.com/lucitools/NB-PTFs/mdl/vgptf"
	"github.com/lucitools/NB-PTFs/out"
)

// VGStage computes van Genuchten (and optionally Mualem-van Genuchten) curves
type VGStage struct {
	main  *Main
	model vgptf.Model
}

func init() {
	allocators[ptf.VGPTF] = func(o *Main) (Stage, error) {
		m, err := vgptf.New(o.Desc.Name)
		if err != nil {
			return nil, err
		}
		mvg := 0.0
		if o.Data.Model.Mvg {
			mvg = 1
		}
		if err = m.Init(append(o.Data.Carbon.Prms(), &dbf.P{N: "mvg", V: mvg})); err != nil {
			return nil, err
		}
		return &VGStage{o, m}, nil
	}
}

// Output returns the name of the output table
func (o *VGStage) Output() string {
	if o.model.MVG() {
		return "soil_mvg.csv"
	}
	return "soil_vg.csv"
}

// Required returns the columns that must exist in the input
func (o *VGStage) Required() []string {
	return o.model.Required()
}

// Calc computes curve parameters, water contents and thresholds of all records
func (o *VGStage) Calc(tab *inp.Table) (res *Table, err error) {

	// auxiliary
	lg, run := o.main.Log, o.main.Data
	mvg := o.model.MVG()
	o.advise()

	// columns
	res = new(Table)
	res.Columns = append([]string{"WC_res", "WC_sat", "alpha_VG", "n_VG", "m_VG"}, fields("WC_", Defaults)...)
	res.Columns = append(res.Columns, ColSat, ColFC, ColSIC, ColPWP, ColDW, ColPAW, ColRAW, ColNRAW)
	if mvg {
		res.Columns = append(res.Columns, soil.KeyKsat, "l_MvG")
		res.Columns = append(res.Columns, fields("K_", Defaults)...)
		res.Columns = append(res.Columns, fields("Se", SePressure)...)
		res.Columns = append(res.Columns, fields("KSe", SePressure)...)
	}

	// compute
	crv := &curves{main: o.main, subdir: out.DirVG, prefix: "vg"}
	var names []string
	var kmdls []*conduct.MualemVG
	var wmdls []retention.Model
	var kuser [][]float64
	for _, r := range tab.Records {
		f := checks.NewFlag(run.Policy)
		p := o.model.Calc(r, lg, f)
		vg := retention.NewVanGen(p.Thr, p.Ths, p.Alpha, p.N, p.M)
		if retention.SaturationExceeded(vg.Theta(0), p.Ths) {
			lg.Warnf("Water content at 0kPa is larger than theta(saturation) + 1 percent for %s", r.Label())
		}
		wc := retention.Evaluate(vg, Defaults)
		th := critical(lg, r.Label(), vg, &run.Model)
		vals := append([]float64{p.Thr, p.Ths, p.Alpha, p.N, p.M}, wc...)
		vals = append(vals, th.Values()...)

		// Mualem-van Genuchten
		if mvg {
			k := conduct.NewMualemVG(p.Ksat, p.Alpha, p.N, p.M, p.L)
			vals = append(vals, p.Ksat, p.L)
			for _, pk := range Defaults {
				vals = append(vals, k.K(pk))
			}
			se := make([]float64, len(SePressure))
			for i, pk := range SePressure {
				se[i] = k.Se(pk)
			}
			vals = append(vals, se...)
			for _, s := range se {
				vals = append(vals, k.Klr(s))
			}
			kmdls = append(kmdls, k)
			wmdls = append(wmdls, vg)
			kuser = append(kuser, mualemAt(k, run.Model.Pressures))
		}

		res.Add(r.Name, f.String(), vals)
		o.main.record(f.String(), true, append(wc, th.Values()...)...)
		crv.add(r.Label(), vg)
		names = append(names, r.Label())
	}
	lg.Infof("Water contents at critical thresholds calculated")

	// files
	if err = crv.write("van Genuchten"); err != nil {
		return
	}
	if mvg {
		err = o.writeMualem(names, kmdls, wmdls, kuser)
	}
	return
}

// advise logs the validity of threshold pressures for van Genuchten curves
func (o *VGStage) advise() {
	lg, m := o.main.Log, o.main.Data.Model
	if m.Fc < 6 || m.Fc > 33 {
		lg.Warnf("Field capacity of %g kPa is outside the usual range of 6 to 33 kPa", m.Fc)
	}
	if m.Pwp > 1500 {
		lg.Warnf("van Genuchten equation is not valid for pressures greater than 1500 kPa")
	}
}

// writeMualem writes K_MVG.csv, the conductivity curve files and the plots
func (o *VGStage) writeMualem(names []string, kmdls []*conduct.MualemVG, wmdls []retention.Model, kuser [][]float64) (err error) {
	run := o.main.Data
	err = out.PressureTable(run.DirOut, "K_MVG.csv", "K_", "kPa", 1, run.Model.Pressures, names, kuser)
	if err != nil {
		return
	}
	o.main.Log.Infof("Output CSV with unsaturated hydraulic conductivity saved to %q", "K_MVG.csv")
	factor, err := inp.UnitFactor(run.Model.Unit)
	if err != nil {
		return
	}
	P := utl.LinSpace(0, Pmax, Npts)
	for i, k := range kmdls {
		err = out.CurveCSV(run.DirOut, out.DirMVG, names[i], "K_mmhr", run.Model.Unit, factor, P, mualemAt(k, P))
		if err != nil {
			return
		}
	}
	if run.Data.Plot {
		onY, _ := inp.PressureOnY(run.Model.Axis)
		out.PlotConductivity(run.DirOut, "plotMVG", names, kmdls, wmdls, Pmax, onY)
	}
	return
}

// mualemAt returns the conductivities at pressures
func mualemAt(k *conduct.MualemVG, pressures []float64) (K []float64) {
	K = make([]float64, len(pressures))
	for i, p := range pressures {
		K[i] = k.K(p)
	}
	return
}
