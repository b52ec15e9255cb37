// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ConstantBreakup implements the solution of the pure binary breakup equation with a size
// independent frequency G [1/s]. Each event adds one particle, thus
//
//   N(t) = N0·exp(G·t)
//
// and, for a monodisperse initial population, the fraction of the volume still carried by the
// initial particles is exp(−G·t). The total volume N0·X0 is constant.
type ConstantBreakup struct {
	G  float64 // breakup frequency [1/s]
	N0 float64 // initial number concentration [1/m³]
	X0 float64 // initial particle volume [m³]
}

// Init initialises this structure
func (o *ConstantBreakup) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "g":
			o.G = p.V
		case "n0":
			o.N0 = p.V
		case "x0":
			o.X0 = p.V
		default:
			return chk.Err("ConstantBreakup: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.G < 0 || o.N0 <= 0 || o.X0 <= 0 {
		return chk.Err("ConstantBreakup: G must be non-negative and N0 and X0 must be positive. G=%g, N0=%g, X0=%g are invalid\n", o.G, o.N0, o.X0)
	}
	return
}

// Number computes N(t)
func (o ConstantBreakup) Number(t float64) float64 {
	return o.N0 * math.Exp(o.G*t)
}

// Parent computes the volume fraction of the initial particles that did not break yet
func (o ConstantBreakup) Parent(t float64) float64 {
	return math.Exp(-o.G * t)
}

// MeanVolume computes the mean particle volume
func (o ConstantBreakup) MeanVolume(t float64) float64 {
	return o.X0 / math.Exp(o.G*t)
}
