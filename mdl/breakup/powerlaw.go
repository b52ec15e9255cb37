// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakup

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// PowerLaw implements g = C·xᵖ
type PowerLaw struct {
	C float64 // coefficient
	P float64 // power
}

// add model to factory
func init() {
	allocators["powerLaw"] = func() Model { return new(PowerLaw) }
}

// Init initialises model
func (o *PowerLaw) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c":
			o.C = p.V
		case "power", "p":
			o.P = p.V
		default:
			return chk.Err("powerLaw: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PowerLaw) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "C", V: 1.0},
		&dbf.P{N: "power", V: 0},
	}
}

// AddToRate adds the breakup frequency
func (o PowerLaw) AddToRate(rate []float64, fi pop.Group, cont pop.Continuous) {
	g := o.C * math.Pow(fi.X(), o.P)
	for c := range rate {
		rate[c] += g
	}
}
