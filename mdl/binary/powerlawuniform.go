// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package binary

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// PowerLawUniformBinary implements a total frequency C·xⱼᵖ spread uniformly over the smaller
// daughter volume (0, xⱼ/2]:  b = C·xⱼᵖ·2/xⱼ
type PowerLawUniformBinary struct {
	C float64 // coefficient
	P float64 // power
}

// add model to factory
func init() {
	allocators["powerLawUniformBinary"] = func() Model { return new(PowerLawUniformBinary) }
}

// Init initialises model
func (o *PowerLawUniformBinary) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c":
			o.C = p.V
		case "power", "p":
			o.P = p.V
		default:
			return chk.Err("powerLawUniformBinary: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PowerLawUniformBinary) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "C", V: 1.0},
		&dbf.P{N: "power", V: 0},
	}
}

// AddToRate adds b(i,j); the daughter class does not matter
func (o PowerLawUniformBinary) AddToRate(rate []float64, fi, fj pop.Group, cont pop.Continuous) {
	xj := fj.X()
	b := o.C * math.Pow(xj, o.P) * 2.0 / xj
	for c := range rate {
		rate[c] += b
	}
}
