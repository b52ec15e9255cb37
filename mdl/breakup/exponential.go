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

// Exponential implements g = C·exp(k·x)
type Exponential struct {
	C float64 // coefficient [1/s]
	K float64 // exponent [1/m³]
}

// add model to factory
func init() {
	allocators["exponential"] = func() Model { return new(Exponential) }
}

// Init initialises model
func (o *Exponential) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c":
			o.C = p.V
		case "exponent", "k":
			o.K = p.V
		default:
			return chk.Err("exponential: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Exponential) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "C", V: 1.0},
		&dbf.P{N: "exponent", V: 1e8},
	}
}

// AddToRate adds the breakup frequency
func (o Exponential) AddToRate(rate []float64, fi pop.Group, cont pop.Continuous) {
	g := o.C * math.Exp(o.K*fi.X())
	for c := range rate {
		rate[c] += g
	}
}
