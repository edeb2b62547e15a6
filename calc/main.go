// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package calc runs pedotransfer functions over tables of soil records
package calc

import (
	"math"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lucitools/NB-PTFs/inp"
	"github.com/lucitools/NB-PTFs/mdl/checks"
	"github.com/lucitools/NB-PTFs/mdl/ptf"
	"github.com/lucitools/NB-PTFs/mdl/soil"
	"github.com/lucitools/NB-PTFs/out"
)

// SinkFactory returns the sink of an output table
type SinkFactory func(fn string, columns []string) (out.Sink, error)

// Stage computes the outputs of one type of pedotransfer function
type Stage interface {
	Output() string                      // name of output table; e.g. soil_vg.csv
	Required() []string                  // columns that must exist in the input
	Calc(tab *inp.Table) (*Table, error) // computes the outputs of all records
}

// Table holds the outputs of a stage; one row per record
type Table struct {
	Columns  []string    // numeric output columns
	Names    []string    // soil names
	Warnings []string    // warning of each record
	Rows     [][]float64 // values of each record
}

// Add adds one row
func (o *Table) Add(name, warning string, values []float64) {
	o.Names = append(o.Names, name)
	o.Warnings = append(o.Warnings, warning)
	o.Rows = append(o.Rows, values)
}

// stage allocators
var allocators = map[ptf.Type]func(o *Main) (Stage, error){}

// Main holds all data for a run
type Main struct {
	Data    *inp.RunData    // run data
	Desc    *ptf.Descriptor // descriptor of selected model
	Log     *checks.Log     // messages
	Source  inp.Source      // input records
	Sink    SinkFactory     // output tables
	Metrics *out.Metrics    // counters; may be nil
	Stage   Stage           // stage of selected model
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   run -- run data; see inp.ReadRun
//   lg  -- logger; messages are also saved to <dirout>/log.txt
func NewMain(run *inp.RunData, lg *checks.Log) (o *Main, err error) {

	// new Main object
	o = &Main{Data: run, Log: lg, ShowMsg: lg.Verbose}

	// descriptor
	o.Desc, err = ptf.Get(run.Model.Name)
	if err != nil {
		return nil, err
	}

	// input and output
	o.Source = inp.NewSource(run.Data.Input, run.Data.Table, run.Carbon.Kind)
	o.Sink = func(fn string, columns []string) (out.Sink, error) {
		return out.NewSink(run.Data.Sink, run.DirOut, fn, columns)
	}
	if run.Data.Metrics {
		o.Metrics = out.NewMetrics(run.Model.Name)
	}

	// allocate stage
	alloc, ok := allocators[o.Desc.Type]
	if !ok {
		return nil, chk.Err("cannot find stage for PTF type %q", o.Desc.Type)
	}
	o.Stage, err = alloc(o)
	if err != nil {
		return nil, err
	}

	// message
	if o.ShowMsg {
		io.Pf("> Run (.ptf) file read\n")
		io.Pf("> Selected %s %q\n", o.Desc.Type, o.Desc.Name)
	}
	return
}

// Run runs the selected model over all records and writes the outputs
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// previous results
	fn := o.Stage.Output()
	if o.Data.Data.Rerun {
		if m, e := inp.ReadMeta(o.Data.DirOut); e == nil && m.Model == o.Desc.Name && m.Output == fn {
			o.Log.Infof("Output %q found in %q. Results of the previous run are kept", fn, o.Data.DirOut)
			return
		}
	}

	// read records
	tab, err := o.Source.Read()
	if err != nil {
		return
	}
	err = tab.CheckFields(o.Stage.Required())
	if err != nil {
		return
	}
	o.Log.Infof("%d records read", len(tab.Records))

	// compute
	res, err := o.Stage.Calc(tab)
	if err != nil {
		return
	}

	// write table
	err = o.write(fn, tab, res)
	if err != nil {
		return
	}
	o.Log.Infof("Results written to %q", filepath.Join(o.Data.DirOut, fn))

	// metadata
	return inp.WriteMeta(o.Data.DirOut, &inp.Meta{
		Model:  o.Desc.Name,
		Type:   string(o.Desc.Type),
		Carbon: o.Data.Carbon.Kind.String(),
		Cfac:   o.Data.Carbon.Factor,
		Output: fn,
		Fields: append([]string{soil.KeyWarning}, res.Columns...),
	})
}

// write writes the input columns followed by the output columns of all records
func (o *Main) write(fn string, tab *inp.Table, res *Table) (err error) {
	if len(res.Rows) != len(tab.Records) {
		return chk.Err("%d rows computed for %d records", len(res.Rows), len(tab.Records))
	}
	cols := passthrough(tab.Columns, res.Columns)
	sink, err := o.Sink(fn, append(append([]string{}, cols...), res.Columns...))
	if err != nil {
		return
	}
	for i, r := range tab.Records {
		vals := make([]float64, 0, len(cols)+len(res.Columns))
		for _, c := range cols {
			vals = append(vals, o.inputValue(r, c))
		}
		err = sink.Add(res.Names[i], res.Warnings[i], append(vals, res.Rows[i]...))
		if err != nil {
			sink.Abort()
			return
		}
	}
	return sink.Close()
}

// inputValue returns the value of an input column
func (o *Main) inputValue(r *soil.Record, col string) float64 {
	switch col {
	case soil.KeyRecordID:
		return float64(r.ID)
	case soil.KeyOC, soil.KeyOM:
		if col != o.Data.Carbon.Kind.Key() {
			if v, ok := r.Extra[col]; ok {
				return v
			}
			return math.NaN()
		}
	}
	return r.Get(col)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time and saves log and metrics
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save log and metrics
	if prevErr != nil {
		o.Log.Errorf("%v", prevErr)
	}
	o.Log.Save(o.Data.DirOut)
	if o.Metrics != nil {
		o.Metrics.Seconds.Set(time.Now().Sub(cputime).Seconds())
		err = o.Metrics.Save(o.Data.DirOut)
	}

	// skip if previous error is not nil
	if prevErr != nil {
		err = prevErr
	}
	return
}

// record counts one record in metrics
func (o *Main) record(warning string, fitted bool, outputs ...float64) {
	if o.Metrics == nil {
		return
	}
	o.Metrics.Record(warning, fitted)
	for _, v := range outputs {
		if v < 0 && !soil.IsSentinel(v) {
			o.Metrics.Negative.Inc()
		}
	}
}

// passthrough returns the input columns written before the outputs
func passthrough(input, output []string) (cols []string) {
	skip := map[string]bool{soil.KeyName: true, soil.KeyTexture: true, soil.KeyWarning: true}
	for _, c := range output {
		skip[c] = true
	}
	for _, c := range input {
		if !skip[c] {
			cols = append(cols, c)
		}
	}
	return
}
