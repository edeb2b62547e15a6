// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lucitools/NB-PTFs/inp"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/point"
	"github.com/lucitools/NB-PTFs/mdl/retention"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	"github.com/lucitools/NB-PTFs/mdl/vgptf"
	"github.com/lucitools/NB-PTFs/out"
	"github.com/stretchr/testify/require"
)

// tableSource returns a fixed table
type tableSource struct {
	tab *inp.Table
}

func (o tableSource) Read() (*inp.Table, error) {
	return o.tab, nil
}

// memSink keeps rows in memory
type memSink struct {
	columns []string
	names   []string
	warns   []string
	rows    [][]float64
	closed  bool
	aborted bool
	limit   int // number of rows accepted before Add fails; 0 means no limit
}

func (o *memSink) Add(name, warning string, values []float64) error {
	if o.limit > 0 && len(o.rows) == o.limit {
		return chk.Err("cannot add %q: sink is full", name)
	}
	o.names = append(o.names, name)
	o.warns = append(o.warns, warning)
	o.rows = append(o.rows, values)
	return nil
}

func (o *memSink) Close() error {
	o.closed = true
	return nil
}

func (o *memSink) Abort() error {
	o.aborted = true
	return nil
}

// get returns the value of column col in row i
func (o *memSink) get(tst *testing.T, i int, col string) float64 {
	for j, c := range o.columns {
		if c == col {
			return o.rows[i][j]
		}
	}
	tst.Fatalf("column %q not found in %v", col, o.columns)
	return 0
}

// soils returns a table with a loam and a clay
func soils() *inp.Table {
	loam := soil.NewRecord(1)
	loam.Name = "loam"
	loam.Sand, loam.Silt, loam.Clay, loam.BD, loam.Carbon = 40, 40, 20, 1.3, 1.0
	clay := soil.NewRecord(2)
	clay.Name = "clay"
	clay.Sand, clay.Silt, clay.Clay, clay.BD, clay.Carbon = 10, 30, 60, 1.2, 2.0
	return &inp.Table{
		Columns: []string{soil.KeyName, soil.KeySand, soil.KeySilt, soil.KeyClay, soil.KeyBD, soil.KeyOC},
		Records: []*soil.Record{loam, clay},
	}
}

// newRun returns run data for a model writing into a temporary directory
func newRun(tst *testing.T, model string) *inp.RunData {
	run := new(inp.RunData)
	run.SetDefault()
	run.Model.Name = model
	run.Data.DirOut = tst.TempDir()
	run.Key = "test"
	require.NoError(tst, run.PostProcess())
	return run
}

// newMain returns a Main reading tab and writing into memory
func newMain(tst *testing.T, run *inp.RunData, tab *inp.Table) (*Main, *memSink) {
	main, err := NewMain(run, checks.NewLog(chk.Verbose))
	require.NoError(tst, err)
	sink := new(memSink)
	main.Source = tableSource{tab}
	main.Sink = func(fn string, columns []string) (out.Sink, error) {
		sink.columns = columns
		return sink, nil
	}
	return main, sink
}

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point01")

	run := newRun(tst, "Nguyen_2014")
	main, sink := newMain(tst, run, soils())
	require.NoError(tst, main.Run())
	require.True(tst, sink.closed)
	chk.Strings(tst, "names", sink.names, []string{"loam", "clay"})

	// Nguyen_2014 has no water content at 0 kPa => no saturation nor drainable water
	io.Pforan("columns = %v\n", sink.columns)
	chk.Strings(tst, "columns", sink.columns, []string{"Sand", "Silt", "Clay", "BD", "OC",
		"WC_1kPa", "WC_3kPa", "WC_6kPa", "WC_10kPa", "WC_20kPa", "WC_33kPa", "WC_100kPa", "WC_1500kPa",
		ColFC, ColSIC, ColPWP, ColPAW, ColRAW, ColNRAW})

	mdl, err := point.New("Nguyen_2014")
	require.NoError(tst, err)
	require.NoError(tst, mdl.Init(run.Carbon.Prms()))
	for i, r := range soils().Records {
		wc := mdl.Calc(r, checks.Discard, checks.NewFlag(checks.LastResult)).WC
		chk.Float64(tst, "sand", 1e-17, sink.get(tst, i, "Sand"), r.Sand)
		chk.Float64(tst, "fc", 1e-17, sink.get(tst, i, ColFC), wc[5])
		chk.Float64(tst, "sic", 1e-17, sink.get(tst, i, ColSIC), wc[6])
		chk.Float64(tst, "pwp", 1e-17, sink.get(tst, i, ColPWP), wc[7])
		chk.Float64(tst, "PAW", 1e-15, sink.get(tst, i, ColPAW), wc[5]-wc[7])
		chk.Float64(tst, "RAW", 1e-15, sink.get(tst, i, ColRAW), wc[5]-wc[6])
		chk.Float64(tst, "NRAW", 1e-15, sink.get(tst, i, ColNRAW), wc[6]-wc[7])
	}

	// metadata and log
	meta, err := inp.ReadMeta(run.DirOut)
	require.NoError(tst, err)
	require.Equal(tst, "soil_point_ptf.csv", meta.Output)
	require.Equal(tst, "pointPTF", meta.Type)
	require.Equal(tst, "warning", meta.Fields[0])
	b, err := os.ReadFile(filepath.Join(run.DirOut, "log.txt"))
	require.NoError(tst, err)
	require.Contains(tst, string(b), "Field with WC at saturation not found")
}

func Test_point02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point02")

	// SaxtonRawls_2006 has saturation and Ksat
	run := newRun(tst, "SaxtonRawls_2006")
	run.Model.Sic = 200
	tab := soils()
	tab.Columns[5] = soil.KeyOM
	main, sink := newMain(tst, run, tab)
	require.Error(tst, main.Run()) // carbon column of the run is OC

	run.Carbon.Kind = soil.OM
	main, sink = newMain(tst, run, tab)
	require.NoError(tst, main.Run())
	io.Pforan("columns = %v\n", sink.columns)
	chk.Strings(tst, "columns", sink.columns, []string{"Sand", "Silt", "Clay", "BD", "OM",
		"WC_0kPa", "WC_33kPa", "WC_1500kPa", "K_sat", ColSat, ColFC, ColPWP, ColDW, ColPAW, ColRAW})

	// RAW approximated from PAW
	for i := range sink.rows {
		chk.Float64(tst, "DW", 1e-15, sink.get(tst, i, ColDW), sink.get(tst, i, ColSat)-sink.get(tst, i, ColFC))
		chk.Float64(tst, "RAW", 1e-15, sink.get(tst, i, ColRAW), 0.5*sink.get(tst, i, ColPAW))
	}
}

func Test_vg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg01")

	run := newRun(tst, "Vereecken_1989")
	run.Model.Pressures = []float64{5, 50}
	main, sink := newMain(tst, run, soils())
	require.Equal(tst, "soil_vg.csv", main.Stage.Output())
	require.NoError(tst, main.Run())

	mdl, err := vgptf.New("Vereecken_1989")
	require.NoError(tst, err)
	require.NoError(tst, mdl.Init(run.Carbon.Prms()))
	for i, r := range soils().Records {
		p := mdl.Calc(r, checks.Discard, checks.NewFlag(checks.LastResult))
		vg := retention.NewVanGen(p.Thr, p.Ths, p.Alpha, p.N, p.M)
		chk.Float64(tst, "alpha", 1e-17, sink.get(tst, i, "alpha_VG"), p.Alpha)
		chk.Float64(tst, "WC_33kPa", 1e-17, sink.get(tst, i, "WC_33kPa"), vg.Theta(33))
		chk.Float64(tst, "sat", 1e-15, sink.get(tst, i, ColSat), p.Ths)
		chk.Float64(tst, "fc", 1e-17, sink.get(tst, i, ColFC), vg.Theta(33))
		chk.Float64(tst, "PAW", 1e-15, sink.get(tst, i, ColPAW), vg.Theta(33)-vg.Theta(1500))
	}

	// files
	b, err := os.ReadFile(filepath.Join(run.DirOut, "WaterContent.csv"))
	require.NoError(tst, err)
	require.True(tst, strings.HasPrefix(string(b), "Name,WC_5kPa,WC_50kPa\nloam,"))
	b, err = os.ReadFile(filepath.Join(run.DirOut, out.DirVG, "clay.csv"))
	require.NoError(tst, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	chk.Int(tst, "nlines", len(lines), Npts+1)
	chk.String(tst, lines[0], "Pressures_kPa,WaterContents")

	// Vereecken has no Mualem-van Genuchten equations
	run.Model.Mvg = true
	_, err = NewMain(run, checks.NewLog(false))
	require.Error(tst, err)
}

func Test_mvg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mvg01")

	run := newRun(tst, "Wosten_1999_top")
	run.Model.Mvg = true
	main, sink := newMain(tst, run, soils())
	require.Equal(tst, "soil_mvg.csv", main.Stage.Output())
	require.NoError(tst, main.Run())
	for i := range sink.rows {
		ksat := sink.get(tst, i, "K_sat")
		if ksat <= 0 {
			tst.Errorf("Ksat must be positive. %g is invalid\n", ksat)
		}
		chk.Float64(tst, "K(1kPa) from Se", 1e-10, sink.get(tst, i, "KSe1kPa"), sink.get(tst, i, "K_1kPa"))
		if se := sink.get(tst, i, "Se1500kPa"); se < 0 || se > sink.get(tst, i, "Se1kPa") {
			tst.Errorf("Se must decrease with pressure\n")
		}
	}
	_, err := os.Stat(filepath.Join(run.DirOut, "K_MVG.csv"))
	require.NoError(tst, err)
	_, err = os.Stat(filepath.Join(run.DirOut, out.DirMVG, "loam.csv"))
	require.NoError(tst, err)
}

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01")

	run := newRun(tst, "SaxtonRawls_2006_BC")
	run.Carbon.Kind = soil.OM
	tab := soils()
	tab.Columns[5] = soil.KeyOM
	tab.Records[1].Sand, tab.Records[1].Silt, tab.Records[1].Clay, tab.Records[1].Carbon = 100, 0, 0, 0
	main, sink := newMain(tst, run, tab)
	main.Metrics = out.NewMetrics(run.Model.Name)
	require.NoError(tst, main.Run())

	// fitted loam
	if sink.get(tst, 0, "lambda_BC") <= 0 {
		tst.Errorf("loam must be fitted\n")
	}
	chk.Float64(tst, "sat", 1e-17, sink.get(tst, 0, ColSat), sink.get(tst, 0, "WC_sat_BC"))

	// unfitted sand: every derived value is the sentinel
	for _, col := range []string{"lambda_BC", "hb_BC", "K_sat", "WC_1kPa", "WC_1500kPa", ColSat, ColFC, ColDW, ColRAW, ColNRAW, ColPAW} {
		chk.Float64(tst, col, 1e-17, sink.get(tst, 1, col), soil.Sentinel)
	}
	b, err := os.ReadFile(filepath.Join(run.DirOut, out.MetricsFile))
	require.NoError(tst, err)
	require.Contains(tst, string(b), `nbptfs_unfitted_total{model="SaxtonRawls_2006_BC"} 1`)
}

func Test_ksat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ksat01")

	// point-PTF run writing CSV files
	run := newRun(tst, "Nguyen_2014")
	main, err := NewMain(run, checks.NewLog(chk.Verbose))
	require.NoError(tst, err)
	main.Source = tableSource{soils()}
	require.NoError(tst, main.Run())

	// Ksat from the point-PTF output
	ks := newRun(tst, "Cosby_1984")
	ks.Data.Upstream = run.DirOut
	main, sink := newMain(tst, ks, nil)
	main.Source, err = upstream(run.DirOut, soil.OC)
	require.NoError(tst, err)
	require.NoError(tst, main.Run())
	chk.Strings(tst, "names", sink.names, []string{"loam", "clay"})
	chk.Float64(tst, "ks(loam)", 1e-13, sink.get(tst, 0, "K_sat"), 25.4*math.Pow(10, -0.6+0.0126*40-0.0064*20))
	chk.Float64(tst, "fc(loam)", 1e-17, sink.get(tst, 0, ColFC), sink.get(tst, 0, "WC_33kPa"))

	// missing upstream results
	ks.Data.Upstream = tst.TempDir()
	_, err = NewMain(ks, checks.NewLog(false))
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "Please run the point-PTF or vg-PTF tool first")
}

func Test_rerun01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rerun01")

	run := newRun(tst, "Cosby_1984_SSC_BC")
	main, sink := newMain(tst, run, soils())
	require.NoError(tst, main.Run())
	chk.Int(tst, "nrows", len(sink.rows), 2)

	run.Data.Rerun = true
	main, sink = newMain(tst, run, nil)
	require.NoError(tst, main.Run())
	chk.Int(tst, "nrows", len(sink.rows), 0)
}

func Test_write01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write01")

	// failing sink is aborted and never closed
	run := newRun(tst, "Cosby_1984_SSC_BC")
	main, sink := newMain(tst, run, soils())
	sink.limit = 1
	err := main.Run()
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "sink is full")
	require.True(tst, sink.aborted)
	require.False(tst, sink.closed)

	// successful write closes the sink
	main, sink = newMain(tst, run, soils())
	require.NoError(tst, main.Run())
	require.True(tst, sink.closed)
	require.False(tst, sink.aborted)
}
