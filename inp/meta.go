// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MetaFile is the name of the file describing the output of a run
const MetaFile = "ptfinfo.json"

// Meta describes the output of a run; read by later runs (e.g. Ksat after point)
type Meta struct {
	Model  string   `json:"model"`  // name of PTF
	Type   string   `json:"type"`   // type of PTF; e.g. "pointPTF"
	Carbon string   `json:"carbon"` // kind of carbon column
	Cfac   float64  `json:"cfac"`   // conversion factor between OC and OM
	Output string   `json:"output"` // name of output table; e.g. soil_point_ptf.csv
	Fields []string `json:"fields"` // output fields
}

// WriteMeta writes <dirout>/ptfinfo.json
func WriteMeta(dirout string, m *Meta) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	io.WriteFileD(dirout, MetaFile, bytes.NewBuffer(b))
	return nil
}

// ReadMeta reads <dir>/ptfinfo.json
func ReadMeta(dir string) (*Meta, error) {
	b, err := os.ReadFile(os.ExpandEnv(filepath.Join(dir, MetaFile)))
	if err != nil {
		return nil, chk.Err("Please run the point-PTF or vg-PTF tool first. cannot read %q in %q", MetaFile, dir)
	}
	var m Meta
	if err = json.Unmarshal(b, &m); err != nil {
		return nil, chk.Err("cannot unmarshal %q:\n%v", MetaFile, err)
	}
	return &m, nil
}
