// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checks

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Policy defines how successive check results are combined into one warning
type Policy int

// policies
const (
	LastResult    Policy = iota // each result overwrites the previous one, even an empty one
	LastTriggered               // only non-empty results overwrite
	Accumulate                  // all non-empty results are kept
)

// ParsePolicy parses "last", "triggered" or "accumulate"
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "last":
		return LastResult, nil
	case "triggered":
		return LastTriggered, nil
	case "accumulate":
		return Accumulate, nil
	}
	return LastResult, chk.Err("warning policy %q is invalid. options are last, triggered or accumulate", s)
}

// Flag holds the warning of one record
type Flag struct {
	Policy Policy
	tags   []string
}

// NewFlag returns a new flag
func NewFlag(policy Policy) *Flag {
	return &Flag{Policy: policy}
}

// Set records the result of one check
func (o *Flag) Set(tag string) {
	switch o.Policy {
	case LastResult:
		o.tags = append(o.tags[:0], tag)
	default:
		if tag == "" {
			return
		}
		if o.Policy == LastTriggered {
			o.tags = append(o.tags[:0], tag)
			return
		}
		o.tags = append(o.tags, tag)
	}
}

// String returns the warning text
func (o *Flag) String() string {
	return strings.Join(o.tags, "; ")
}
