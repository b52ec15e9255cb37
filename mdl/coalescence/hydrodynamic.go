// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coalescence

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Hydrodynamic implements the sum kernel c(i,j) = C·(xᵢ + xⱼ)
type Hydrodynamic struct {
	C float64 // coefficient [1/s]
}

// add model to factory
func init() {
	allocators["hydrodynamic"] = func() Model { return new(Hydrodynamic) }
}

// Init initialises model
func (o *Hydrodynamic) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c":
			o.C = p.V
		default:
			return chk.Err("hydrodynamic: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Hydrodynamic) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "C", V: 1.0},
	}
}

// AddToRate adds the kernel
func (o Hydrodynamic) AddToRate(rate []float64, fi, fj pop.Group, cont pop.Continuous) {
	c := o.C * (fi.X() + fj.X())
	for k := range rate {
		rate[k] += c
	}
}
