// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output tables, curve files, plots and metrics of PTF runs
package out

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	_ "modernc.org/sqlite"
)

// Sink receives the output rows of a run
//  Each row holds the soil name, the warning and one value per numeric column
type Sink interface {
	Add(name, warning string, values []float64) error // adds one row
	Close() error                                      // flushes all rows
	Abort() error                                      // discards all rows and releases resources
}

// NewSink returns a CSV or SQLite sink writing table fn into dirout
//  format  -- "csv" or "sqlite"
//  columns -- numeric columns
func NewSink(format, dirout, fn string, columns []string) (Sink, error) {
	switch strings.ToLower(format) {
	case "csv":
		return NewCsvSink(dirout, fn, columns), nil
	case "sqlite":
		s, err := NewSqliteSink(filepath.Join(dirout, "nbptfs.db"), io.FnKey(fn), columns)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, chk.Err("output format %q is invalid. options are csv or sqlite", format)
}

// FormatFloat formats output values; NaN becomes an empty cell
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// CsvSink writes rows to a CSV file
type CsvSink struct {
	Dirout  string   // output directory
	Fn      string   // file name; e.g. soil_vg.csv
	Columns []string // numeric columns
	buf     bytes.Buffer
	w       *csv.Writer
}

// NewCsvSink returns a new CsvSink and writes the header
func NewCsvSink(dirout, fn string, columns []string) (o *CsvSink) {
	o = &CsvSink{Dirout: dirout, Fn: fn, Columns: columns}
	o.w = csv.NewWriter(&o.buf)
	o.w.Write(append([]string{soil.KeyName, soil.KeyWarning}, columns...))
	return
}

// Add adds one row
func (o *CsvSink) Add(name, warning string, values []float64) error {
	if len(values) != len(o.Columns) {
		return chk.Err("%s: got %d values for %d columns", o.Fn, len(values), len(o.Columns))
	}
	row := make([]string, 2, 2+len(values))
	row[0], row[1] = name, warning
	for _, v := range values {
		row = append(row, FormatFloat(v))
	}
	return o.w.Write(row)
}

// Close writes the file
func (o *CsvSink) Close() error {
	o.w.Flush()
	if err := o.w.Error(); err != nil {
		return err
	}
	io.WriteFileD(o.Dirout, o.Fn, &o.buf)
	return nil
}

// Abort discards all rows; no file is written
func (o *CsvSink) Abort() error {
	o.buf.Reset()
	return nil
}

// SqliteSink writes rows to a table in a SQLite database. All rows go into one transaction.
type SqliteSink struct {
	Table   string   // table name
	Columns []string // numeric columns
	db      *sql.DB
	tx      *sql.Tx
	stmt    *sql.Stmt
}

// NewSqliteSink opens (or creates) the database and replaces the table
func NewSqliteSink(path, table string, columns []string) (o *SqliteSink, err error) {
	o = &SqliteSink{Table: table, Columns: columns}
	if err = os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, chk.Err("cannot create directory for output results (%s): %v", filepath.Dir(path), err)
	}
	o.db, err = sql.Open("sqlite", path)
	if err != nil {
		return nil, chk.Err("cannot open database %q:\n%v", path, err)
	}
	cols := append([]string{soil.KeyName, soil.KeyWarning}, columns...)
	defs := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = quote(c) + " REAL"
		if i < 2 {
			defs[i] = quote(c) + " TEXT"
		}
		marks[i] = "?"
	}
	o.tx, err = o.db.Begin()
	if err != nil {
		o.db.Close()
		return nil, err
	}
	for _, q := range []string{
		"DROP TABLE IF EXISTS " + quote(table),
		"CREATE TABLE " + quote(table) + " (" + strings.Join(defs, ", ") + ")",
	} {
		if _, err = o.tx.Exec(q); err != nil {
			o.tx.Rollback()
			o.db.Close()
			return nil, chk.Err("cannot create table %q:\n%v", table, err)
		}
	}
	o.stmt, err = o.tx.Prepare("INSERT INTO " + quote(table) + " VALUES (" + strings.Join(marks, ", ") + ")")
	if err != nil {
		o.tx.Rollback()
		o.db.Close()
		return nil, err
	}
	return
}

// Add adds one row; NaN values are stored as NULL
func (o *SqliteSink) Add(name, warning string, values []float64) error {
	if len(values) != len(o.Columns) {
		return chk.Err("%s: got %d values for %d columns", o.Table, len(values), len(o.Columns))
	}
	args := make([]interface{}, 2, 2+len(values))
	args[0], args[1] = name, warning
	for _, v := range values {
		if math.IsNaN(v) {
			args = append(args, nil)
			continue
		}
		args = append(args, v)
	}
	_, err := o.stmt.Exec(args...)
	return err
}

// Close commits all rows and closes the database
func (o *SqliteSink) Close() (err error) {
	defer o.db.Close()
	o.stmt.Close()
	return o.tx.Commit()
}

// Abort rolls back all rows and closes the database
func (o *SqliteSink) Abort() (err error) {
	defer o.db.Close()
	o.stmt.Close()
	return o.tx.Rollback()
}

// quote quotes an SQL identifier
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
