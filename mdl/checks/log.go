// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checks

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Logger receives informative and warning messages
type Logger interface {
	Infof(msg string, prm ...interface{})
	Warnf(msg string, prm ...interface{})
}

// Log records messages in memory and optionally echoes them to the console
type Log struct {
	Verbose bool         // echo messages
	buf     bytes.Buffer // all messages
	nwarn   int          // number of warnings
}

// NewLog returns a new Log
func NewLog(verbose bool) *Log {
	return &Log{Verbose: verbose}
}

// Infof records an informative message
func (o *Log) Infof(msg string, prm ...interface{}) {
	io.Ff(&o.buf, "INFO: "+msg+"\n", prm...)
	if o.Verbose {
		io.Pf("> "+msg+"\n", prm...)
	}
}

// Warnf records a warning
func (o *Log) Warnf(msg string, prm ...interface{}) {
	o.nwarn++
	io.Ff(&o.buf, "WARNING: "+msg+"\n", prm...)
	if o.Verbose {
		io.Pfyel("> "+msg+"\n", prm...)
	}
}

// Errorf records a fatal message; the caller is responsible for aborting
func (o *Log) Errorf(msg string, prm ...interface{}) {
	io.Ff(&o.buf, "ERROR: "+msg+"\n", prm...)
	if o.Verbose {
		io.PfRed("> "+msg+"\n", prm...)
	}
}

// NumWarnings returns the number of warnings recorded so far
func (o *Log) NumWarnings() int {
	return o.nwarn
}

// String returns all messages
func (o *Log) String() string {
	return o.buf.String()
}

// Save writes all messages to <dirout>/log.txt
func (o *Log) Save(dirout string) {
	io.WriteFileD(dirout, "log.txt", &o.buf)
}

// Discard drops every message
var Discard Logger = discard{}

type discard struct{}

func (discard) Infof(msg string, prm ...interface{}) {}
func (discard) Warnf(msg string, prm ...interface{}) {}
