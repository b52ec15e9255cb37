// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coalescence

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Constant implements a size-independent kernel
type Constant struct {
	C    float64 // kernel [m³/s]
	Dmax float64 // pairs whose coalesced sphere exceeds this diameter are inactive; 0 => no limit
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises model
func (o *Constant) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c":
			o.C = p.V
		case "dmax":
			o.Dmax = p.V
		default:
			return chk.Err("constant: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.C < 0 {
		return chk.Err("constant: kernel must be non-negative. C = %g is invalid\n", o.C)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Constant) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "C", V: 1e-12},
	}
}

// AddToRate adds c(i,j) = C
func (o Constant) AddToRate(rate []float64, fi, fj pop.Group, cont pop.Continuous) {
	for c := range rate {
		rate[c] += o.C
	}
}

// Active returns false if the coalesced sphere is larger than Dmax
func (o Constant) Active(fi, fj pop.Group) bool {
	if o.Dmax <= 0 {
		return true
	}
	return math.Cbrt(6.0*(fi.X()+fj.X())/math.Pi) <= o.Dmax
}
