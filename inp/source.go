// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"database/sql"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	_ "modernc.org/sqlite"
)

// Table holds the input records
type Table struct {
	Columns []string       // column names as given in the input
	Records []*soil.Record // one record per row
}

// CheckFields returns an error if a required column is missing
func (o *Table) CheckFields(required []string) error {
	return checks.FieldsPresent(required, o.Columns)
}

// Has tells whether the table has a column
func (o *Table) Has(column string) bool {
	for _, c := range o.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Source reads a table of soil records
type Source interface {
	Read() (*Table, error)
}

// NewSource returns a SQLite source for .db and .sqlite files and a CSV source otherwise
func NewSource(path, table string, carbon soil.CarbonKind) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return &SqliteSource{Path: path, Table: table, Carbon: carbon}
	}
	return &CsvSource{Path: path, Carbon: carbon}
}

// CsvSource reads records from a CSV file with a header row
type CsvSource struct {
	Path   string          // file path
	Carbon soil.CarbonKind // kind of the carbon column
}

// Read reads all records
func (o *CsvSource) Read() (*Table, error) {
	f, err := os.Open(o.Path)
	if err != nil {
		return nil, chk.Err("cannot open input file %q:\n%v", o.Path, err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, chk.Err("cannot read input file %q:\n%v", o.Path, err)
	}
	if len(rows) == 0 {
		return nil, chk.Err("input file %q is empty", o.Path)
	}
	return parseRows(rows[0], rows[1:], o.Carbon)
}

// SqliteSource reads records from a table in a SQLite database
type SqliteSource struct {
	Path   string          // database file
	Table  string          // table name
	Carbon soil.CarbonKind // kind of the carbon column
}

// Read reads all records
func (o *SqliteSource) Read() (*Table, error) {
	if !validName(o.Table) {
		return nil, chk.Err("table name %q is invalid", o.Table)
	}
	db, err := sql.Open("sqlite", o.Path)
	if err != nil {
		return nil, chk.Err("cannot open database %q:\n%v", o.Path, err)
	}
	defer db.Close()
	rows, err := db.Query(`SELECT * FROM "` + o.Table + `"`)
	if err != nil {
		return nil, chk.Err("cannot query table %q in %q:\n%v", o.Table, o.Path, err)
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var data [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return nil, chk.Err("cannot scan table %q:\n%v", o.Table, err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = v.String
		}
		data = append(data, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return parseRows(cols, data, o.Carbon)
}

// validName tells whether s is a plain identifier
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// numeric holds the columns that must hold numbers
var numeric = map[string]bool{
	soil.KeyRecordID: true, soil.KeySand: true, soil.KeySilt: true, soil.KeyClay: true,
	soil.KeyBD: true, soil.KeyCEC: true, soil.KeyPH: true,
}

// parseRows converts string cells into records. Empty numeric cells become NaN.
// Text cells of other columns are skipped.
func parseRows(columns []string, rows [][]string, carbon soil.CarbonKind) (*Table, error) {
	t := &Table{Columns: make([]string, len(columns))}
	for j, c := range columns {
		t.Columns[j] = strings.TrimSpace(c)
	}
	for i, row := range rows {
		if len(row) != len(t.Columns) {
			return nil, chk.Err("row %d has %d values but there are %d columns", i+1, len(row), len(t.Columns))
		}
		r := soil.NewRecord(i + 1)
		for j, col := range t.Columns {
			cell := strings.TrimSpace(row[j])
			switch col {
			case soil.KeyName:
				r.Name = cell
				continue
			case soil.KeyTexture:
				r.Texture = cell
				continue
			}
			v := math.NaN()
			if cell != "" {
				var err error
				v, err = strconv.ParseFloat(cell, 64)
				if err != nil {
					if numeric[col] || col == carbon.Key() {
						return nil, chk.Err("value %q in column %q of row %d is not a number", cell, col, i+1)
					}
					continue // text columns; e.g. warning
				}
			}
			switch col {
			case soil.KeyRecordID:
				if !math.IsNaN(v) {
					r.ID = int(v)
				}
			case soil.KeySand:
				r.Sand = v
			case soil.KeySilt:
				r.Silt = v
			case soil.KeyClay:
				r.Clay = v
			case soil.KeyBD:
				r.BD = v
			case soil.KeyCEC:
				r.CEC = v
			case soil.KeyPH:
				r.PH = v
			case carbon.Key():
				r.Carbon = v
			default:
				r.Extra[col] = v
			}
		}
		t.Records = append(t.Records, r)
	}
	return t, nil
}
