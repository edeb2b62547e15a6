// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"database/sql"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	"github.com/stretchr/testify/require"
)

func writeFile(tst *testing.T, dir, fn, content string) string {
	path := filepath.Join(dir, fn)
	require.NoError(tst, os.WriteFile(path, []byte(content), 0644))
	return path
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01")

	dir := tst.TempDir()
	fn := writeFile(tst, dir, "loam.ptf", `{
  "data" : { "desc" : "loam soils", "input" : "soils.csv", "policy" : "accumulate" },
  "model" : { "name" : "Wosten_1999_top", "carbon" : "OM", "cfac" : 1.9, "pressures" : [1500, 33, 10] }
}`)

	run, err := ReadRun(fn)
	require.NoError(tst, err)
	require.Equal(tst, "loam", run.Key)
	require.Equal(tst, filepath.Join(dir, "soils.csv"), run.Data.Input)
	require.Equal(tst, "/tmp/nbptfs/loam", run.DirOut)
	require.Equal(tst, soil.OM, run.Carbon.Kind)
	require.Equal(tst, 1.9, run.Carbon.Factor)
	require.Equal(tst, checks.Accumulate, run.Policy)
	require.Equal(tst, []float64{10, 33, 1500}, run.Model.Pressures)

	// defaults
	require.Equal(tst, 33.0, run.Model.Fc)
	require.Equal(tst, 100.0, run.Model.Sic)
	require.Equal(tst, 1500.0, run.Model.Pwp)
	require.Equal(tst, "kPa", run.Model.Unit)
	require.Equal(tst, "Y-axis", run.Model.Axis)
	require.Equal(tst, "csv", run.Data.Sink)
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02")

	dir := tst.TempDir()
	for _, bad := range []string{
		`{"model" : {}}`,
		`{"model" : {"name" : "Nguyen_2014", "carbon" : "humus"}}`,
		`{"model" : {"name" : "Nguyen_2014", "cfac" : -1}}`,
		`{"model" : {"name" : "Nguyen_2014", "unit" : "bar"}}`,
		`{"model" : {"name" : "Nguyen_2014", "axis" : "Z-axis"}}`,
		`{"model" : {"name" : "Nguyen_2014", "fc" : -33}}`,
		`{"model" : {"name" : "Nguyen_2014", "pressures" : [-1, 33]}}`,
		`{"data" : {"policy" : "first"}, "model" : {"name" : "Nguyen_2014"}}`,
		`{"data" : {"sink" : "xml"}, "model" : {"name" : "Nguyen_2014"}}`,
		`{"model" : `,
	} {
		_, err := ReadRun(writeFile(tst, dir, "bad.ptf", bad))
		require.Error(tst, err, bad)
	}
	_, err := ReadRun(filepath.Join(dir, "missing.ptf"))
	require.Error(tst, err)

	f, err := UnitFactor("cm")
	require.NoError(tst, err)
	require.Equal(tst, 10.0, f)
	f, err = UnitFactor("m")
	require.NoError(tst, err)
	require.Equal(tst, 0.1, f)

	// the axis option names the axis of water contents
	onY, err := PressureOnY("Y-axis")
	require.NoError(tst, err)
	require.False(tst, onY)
	onY, err = PressureOnY("X-axis")
	require.NoError(tst, err)
	require.True(tst, onY)
	_, err = PressureOnY("y")
	require.Error(tst, err)
}

func Test_source01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("source01")

	dir := tst.TempDir()
	fn := writeFile(tst, dir, "soils.csv", `soilname,Sand,Silt,Clay,BD,OC,texture,WC_sat,warning
loam,40,40,20,1.3,1.2,Loam,0.45,
sand,90,5,5,,0.3,Sand,,SSC less than 99
`)
	src := NewSource(fn, "", soil.OC)
	require.IsType(tst, &CsvSource{}, src)
	tab, err := src.Read()
	require.NoError(tst, err)
	require.Len(tst, tab.Records, 2)
	require.NoError(tst, tab.CheckFields([]string{"Sand", "Silt", "Clay", "OC"}))
	require.Error(tst, tab.CheckFields([]string{"OM"}))
	require.True(tst, tab.Has("texture"))

	r := tab.Records[0]
	require.Equal(tst, 1, r.ID)
	require.Equal(tst, "loam", r.Name)
	require.Equal(tst, "Loam", r.Texture)
	require.Equal(tst, 1.2, r.Carbon)
	require.Equal(tst, 0.45, r.Get(soil.KeyWCSat))

	r = tab.Records[1]
	require.Equal(tst, 2, r.ID)
	require.True(tst, math.IsNaN(r.BD))
	require.True(tst, math.IsNaN(r.Get(soil.KeyWCSat)))

	// bad numbers
	fn = writeFile(tst, dir, "bad.csv", "soilname,Sand\nloam,forty\n")
	_, err = NewSource(fn, "", soil.OC).Read()
	require.Error(tst, err)
}

func Test_source02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("source02")

	fn := filepath.Join(tst.TempDir(), "soils.db")
	db, err := sql.Open("sqlite", fn)
	require.NoError(tst, err)
	_, err = db.Exec(`CREATE TABLE soils (OID INTEGER, soilname TEXT, Sand REAL, Silt REAL, Clay REAL, OM REAL)`)
	require.NoError(tst, err)
	_, err = db.Exec(`INSERT INTO soils VALUES (7, 'clay', 10, 30, 60, 2.5), (8, 'silt', 10, 80, 10, NULL)`)
	require.NoError(tst, err)
	require.NoError(tst, db.Close())

	src := NewSource(fn, "soils", soil.OM)
	require.IsType(tst, &SqliteSource{}, src)
	tab, err := src.Read()
	require.NoError(tst, err)
	require.Equal(tst, []string{"OID", "soilname", "Sand", "Silt", "Clay", "OM"}, tab.Columns)
	require.Len(tst, tab.Records, 2)
	require.Equal(tst, 7, tab.Records[0].ID)
	require.Equal(tst, "clay", tab.Records[0].Name)
	require.Equal(tst, 60.0, tab.Records[0].Clay)
	require.Equal(tst, 2.5, tab.Records[0].Carbon)
	require.True(tst, math.IsNaN(tab.Records[1].Carbon))

	_, err = NewSource(fn, "soils; DROP TABLE soils", soil.OM).Read()
	require.Error(tst, err)
}

func Test_meta01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("meta01")

	dir := tst.TempDir()
	_, err := ReadMeta(dir)
	require.Error(tst, err)
	require.Contains(tst, err.Error(), "Please run the point-PTF or vg-PTF tool first")

	m := &Meta{Model: "Nguyen_2014", Type: "pointPTF", Carbon: "OC", Cfac: 1.724, Output: "soil_point_ptf.csv", Fields: []string{"warning", "WC_1kPa"}}
	require.NoError(tst, WriteMeta(dir, m))
	back, err := ReadMeta(dir)
	require.NoError(tst, err)
	require.Equal(tst, m, back)
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03")

	for _, fn := range []string{"point", "wosten", "saxton", "ksat"} {
		run, err := ReadRun(filepath.Join("..", "examples", fn+".ptf"))
		require.NoError(tst, err, fn)
		require.Equal(tst, "/tmp/nbptfs/"+fn, run.DirOut)
	}

	tab, err := NewSource(filepath.Join("..", "examples", "soils.csv"), "", soil.OC).Read()
	require.NoError(tst, err)
	chk.Int(tst, "nrecords", len(tab.Records), 3)
	chk.String(tst, tab.Records[2].Name, "sandy loam")
	chk.Float64(tst, "BD", 1e-17, tab.Records[2].BD, 1.45)
	require.NoError(tst, tab.CheckFields([]string{soil.KeySand, soil.KeySilt, soil.KeyClay, soil.KeyBD, soil.KeyOC}))
}
