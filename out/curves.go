// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// curve directories
const (
	DirVG  = "VG_waterContents" // van Genuchten water contents per soil
	DirMVG = "MVG"              // Mualem-van Genuchten conductivities per soil
	DirBC  = "BC_waterContents" // Brooks-Corey water contents per soil
)

// CurveCSV writes the curve of one soil to <dirout>/<subdir>/<soilname>.csv
//  pressures -- [kPa] pressures; written multiplied by factor (see unit)
//  heading   -- name of the values column; e.g. "WaterContents" or "K_mmhr"
//  unit      -- pressure unit of the file; e.g. "cm"
func CurveCSV(dirout, subdir, soilname, heading, unit string, factor float64, pressures, values []float64) error {
	if len(pressures) != len(values) {
		return chk.Err("%s: got %d values for %d pressures", soilname, len(values), len(pressures))
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Pressures_" + unit, heading})
	for i, p := range pressures {
		w.Write([]string{FormatFloat(p * factor), FormatFloat(values[i])})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	io.WriteFileD(filepath.Join(dirout, subdir), fileName(soilname)+".csv", &buf)
	return nil
}

// PressureTable writes a table with one row per soil and one column per pressure
//  prefix -- column prefix; e.g. "WC_" gives WC_33kPa
//  rows   -- values of each soil at pressures
func PressureTable(dirout, fn, prefix, unit string, factor float64, pressures []float64, names []string, rows [][]float64) error {
	if len(names) != len(rows) {
		return chk.Err("%s: got %d rows for %d soils", fn, len(rows), len(names))
	}
	header := []string{"Name"}
	for _, p := range pressures {
		header = append(header, prefix+FormatFloat(p*factor)+unit)
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(header)
	for i, vals := range rows {
		if len(vals) != len(pressures) {
			return chk.Err("%s: soil %q has %d values for %d pressures", fn, names[i], len(vals), len(pressures))
		}
		row := []string{names[i]}
		for _, v := range vals {
			row = append(row, FormatFloat(v))
		}
		w.Write(row)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	io.WriteFileD(dirout, fn, &buf)
	return nil
}

// fileName replaces characters that cannot be used in file names
func fileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, s)
}
