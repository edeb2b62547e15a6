// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// Styles
type Styles []plt.A

// colours and markers cycled over soils
var (
	colours = []string{"b", "r", "g", "m", "c", "k", "#ff7f0e", "#8c564b"}
	markers = []string{"o", "s", "^", "d", "v", "*", "+", "x"}
)

// GetDefaultStyles returns one style per soil
//  withMarker -- also set markers; e.g. for point-PTF results
func GetDefaultStyles(names []string, withMarker bool) Styles {
	sty := make([]plt.A, len(names))
	for i, name := range names {
		sty[i].C = colours[i%len(colours)]
		sty[i].L = name
		sty[i].Ls = "-"
		if withMarker {
			sty[i].M = markers[(i/len(colours))%len(markers)]
		}
	}
	return sty
}

// GetTexLabel returns the axis label of a quantity
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "p":
		l += "p"
	case "wc":
		l += "\\theta"
	case "K":
		l += "K"
	case "Se":
		l += "S_e"
	case "KSe":
		l += "K(S_e)"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;[" + unit + "]"
	}
	l += "$"
	return l
}
