// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/lucitools/NB-PTFs/mdl/conduct"
	"github.com/lucitools/NB-PTFs/mdl/retention"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias; e.g. soil name
	X     []float64 // x-values
	Y     []float64 // y-values
	Style plt.A     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xlbl   string       // x-axis label (formatted; e.g. "$p\;[kPa]$")
	Ylbl   string       // y-axis label (formatted; e.g. "$\theta$")
	Xlog   bool         // logarithmic x-axis
	Ylog   bool         // logarithmic y-axis
	Yrange []float64    // y range
	Data   []*PltEntity // data and styles to be plotted
}

// subplots
var (
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// ResetPlots clears all subplots
func ResetPlots() {
	Splots = nil
	Csplot = nil
}

// Splot activates a new subplot window
func Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures labels and scales of axes
//  xkey, ykey -- quantities; e.g. "p", "wc", "K"
func SplotConfig(xkey, xunit, ykey, yunit string, xlog, ylog bool) {
	if Csplot != nil {
		Csplot.Xlbl = GetTexLabel(xkey, xunit)
		Csplot.Ylbl = GetTexLabel(ykey, yunit)
		Csplot.Xlog = xlog
		Csplot.Ylog = ylog
	}
}

// Plot adds a series to the current subplot
//  alias -- alias such as the soil name
//  args  -- formatting codes; e.g. &plt.A{C:"b", L:"label"}
func Plot(x, y []float64, alias string, args *plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	e := PltEntity{Alias: alias, X: x, Y: y}
	if args != nil {
		e.Style = *args
	}
	if Csplot == nil {
		Splot(io.Sf("%d", len(Splots)), "")
	}
	Csplot.Data = append(Csplot.Data, &e)
}

// Draw saves figure with all subplots
//  dirout -- directory to save figure
//  fnkey  -- file name key; e.g. "curves"
//  split  -- split subplots into separated figures <fnkey>_<id>
func Draw(dirout, fnkey string, split bool) {
	nplots := len(Splots)
	if nplots == 0 {
		return
	}
	nr, nc := utl.BestSquare(nplots)
	plt.Reset(false, nil)
	for k, spl := range Splots {
		if !split {
			plt.Subplot(nr, nc, k+1)
		}
		for _, d := range spl.Data {
			if d.Style.L == "" {
				d.Style.L = d.Alias
			}
			x, y := d.X, d.Y
			if spl.Xlog || spl.Ylog {
				x, y = positive(x, y, spl.Xlog, spl.Ylog)
			}
			plt.Plot(x, y, &d.Style)
		}
		if spl.Xlog {
			plt.SetXlog()
		}
		if spl.Ylog {
			plt.SetYlog()
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		if len(spl.Yrange) == 2 {
			plt.AxisYrange(spl.Yrange[0], spl.Yrange[1])
		}
		if split {
			plt.Save(dirout, fnkey+"_"+spl.Id)
			plt.Reset(false, nil)
		}
	}
	if !split {
		plt.Save(dirout, fnkey)
	}
}

// Marker is a dashed line at a threshold pressure
type Marker struct {
	P     float64 // [kPa] pressure
	Style plt.A   // style; the label names the threshold
}

// Markers returns the lines at field capacity, stomatal closure and wilting point
func Markers(fc, sic, pwp float64) []Marker {
	return []Marker{
		{fc, plt.A{C: "g", Ls: "--", L: "FC"}},
		{sic, plt.A{C: "m", Ls: "--", L: "SIC"}},
		{pwp, plt.A{C: "r", Ls: "--", L: "PWP"}},
	}
}

// WaterContentRange returns the water content axis limits of the figure of one curve
func WaterContentRange(mdl retention.Model, pmax float64) (lo, hi float64) {
	return math.Max(mdl.Theta(pmax)-0.01, 0), math.Min(mdl.ThetaS()+0.1, 1)
}

// PlotCurves plots the retention curve of each soil into <prefix>_<soilname> and all curves into fnkey
//  marks       -- threshold lines drawn in every figure
//  pmax        -- [kPa] largest pressure
//  pressureOnY -- pressure on vertical axis
func PlotCurves(dirout, fnkey, prefix, title string, names []string, mdls []retention.Model, marks []Marker, pmax float64, pressureOnY bool) {
	if len(mdls) == 0 {
		return
	}
	sty := GetDefaultStyles(names, false)
	for i, mdl := range mdls {
		plt.Reset(false, nil)
		retention.Plot(mdl, pmax, 201, pressureOnY, &sty[i])
		drawMarkers(marks, pressureOnY)
		lo, hi := WaterContentRange(mdl, pmax)
		if pressureOnY {
			plt.AxisXrange(lo, hi)
		} else {
			plt.AxisYrange(lo, hi)
		}
		retention.PlotEnd(dirout, prefix+"_"+fileName(names[i]), title+" plot for "+names[i], pressureOnY)
	}
	plt.Reset(false, nil)
	for i, mdl := range mdls {
		retention.Plot(mdl, pmax, 201, pressureOnY, &sty[i])
	}
	drawMarkers(marks, pressureOnY)
	retention.PlotEnd(dirout, fnkey, io.Sf("%s plots of %d soils", title, len(mdls)), pressureOnY)
}

// PlotPoints plots the water contents given by a point-PTF
//  P  -- [kPa] pressures
//  WC -- water contents of each soil at P
func PlotPoints(dirout, fnkey string, names []string, P []float64, WC [][]float64, pressureOnY bool) {
	ResetPlots()
	Splot("wc", "point-PTF water contents")
	sty := GetDefaultStyles(names, true)
	for i, wc := range WC {
		if pressureOnY {
			Plot(wc, P, names[i], &sty[i])
			continue
		}
		Plot(P, wc, names[i], &sty[i])
	}
	if pressureOnY {
		SplotConfig("wc", "", "p", "kPa", false, true)
	} else {
		SplotConfig("p", "kPa", "wc", "", true, false)
	}
	Draw(dirout, fnkey, false)
}

// PlotConductivity plots Mualem-van Genuchten conductivities
//  Figures: MVG_<soilname> holds K(p) and K(Se) of one soil. <fnkey>_K, <fnkey>_KSe,
//  <fnkey>_Ktheta and <fnkey>_Ktheta_h hold K(p), K(Se), K(θ) and K(θ(p)) of all soils.
//  wmdls       -- retention curves giving θr and θs of each soil
//  pressureOnY -- p, Se or θ on vertical axis
func PlotConductivity(dirout, fnkey string, names []string, kmdls []*conduct.MualemVG, wmdls []retention.Model, pmax float64, pressureOnY bool) {
	if len(kmdls) == 0 {
		return
	}
	for i, k := range kmdls {
		conduct.Plot(k, dirout, "MVG_"+fileName(names[i]), pmax, 201, true)
	}
	conductivitySplots(names, kmdls, wmdls, pmax, pressureOnY)
	Draw(dirout, fnkey, true)
}

// conductivitySplots adds the subplots of all soils in PlotConductivity
func conductivitySplots(names []string, kmdls []*conduct.MualemVG, wmdls []retention.Model, pmax float64, pressureOnY bool) {
	ResetPlots()
	P := utl.LinSpace(0, pmax, 201)
	Se := utl.LinSpace(0, 1, 101)
	sty := GetDefaultStyles(names, false)
	title := io.Sf("Mualem-van Genuchten plots of %d soils", len(kmdls))
	add := func(id, xkey, xunit, ykey string, xlog bool, f func(i int) (x, y []float64)) {
		Splot(id, title)
		for i := range kmdls {
			x, y := f(i)
			if pressureOnY {
				x, y = y, x
			}
			Plot(x, y, names[i], &sty[i])
		}
		if pressureOnY {
			SplotConfig(ykey, "mm/hr", xkey, xunit, true, xlog)
			return
		}
		SplotConfig(xkey, xunit, ykey, "mm/hr", xlog, true)
	}
	thetaK := func(i int) (θ, K []float64) {
		θ, K = make([]float64, len(P)), make([]float64, len(P))
		for j, p := range P {
			θ[j], K[j] = kmdls[i].ThetaK(wmdls[i].ThetaR(), wmdls[i].ThetaS(), p)
		}
		return
	}
	add("K", "p", "kPa", "K", true, func(i int) ([]float64, []float64) {
		return P, mualem(kmdls[i].K, P)
	})
	add("KSe", "Se", "", "KSe", false, func(i int) ([]float64, []float64) {
		return Se, mualem(kmdls[i].Klr, Se)
	})
	add("Ktheta", "wc", "", "K", false, thetaK)
	add("Ktheta_h", "p", "kPa", "K", true, func(i int) ([]float64, []float64) {
		_, K := thetaK(i)
		return P, K
	})
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// mualem evaluates a conductivity function at many points
func mualem(f func(float64) float64, X []float64) (Y []float64) {
	Y = make([]float64, len(X))
	for i, x := range X {
		Y[i] = f(x)
	}
	return
}

// drawMarkers draws lines across the pressure axis
func drawMarkers(marks []Marker, pressureOnY bool) {
	for i := range marks {
		if pressureOnY {
			plt.AxHline(marks[i].P, &marks[i].Style)
			continue
		}
		plt.AxVline(marks[i].P, &marks[i].Style)
	}
}

// positive drops points that cannot be drawn on logarithmic axes
func positive(x, y []float64, xlog, ylog bool) (X, Y []float64) {
	for i := range x {
		if (xlog && x[i] <= 0) || (ylog && y[i] <= 0) {
			continue
		}
		X = append(X, x[i])
		Y = append(Y, y[i])
	}
	return
}
