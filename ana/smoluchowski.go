// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions of population balances
package ana

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ConstantCoalescence implements the solution of the Smoluchowski equation with constant kernel
// C for a monodisperse initial population of N0 particles of volume X0 per unit volume. With
//
//   τ = C·N0·t/2
//
// the number concentration of particles made of k initial particles is
//
//   nₖ(t) = N0·τᵏ⁻¹/(1+τ)ᵏ⁺¹    and    N(t) = Σₖ nₖ = N0/(1+τ)
//
type ConstantCoalescence struct {
	C  float64 // kernel [m³/s]
	N0 float64 // initial number concentration [1/m³]
	X0 float64 // initial particle volume [m³]
}

// Init initialises this structure
func (o *ConstantCoalescence) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c":
			o.C = p.V
		case "n0":
			o.N0 = p.V
		case "x0":
			o.X0 = p.V
		default:
			return chk.Err("ConstantCoalescence: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.C < 0 || o.N0 <= 0 || o.X0 <= 0 {
		return chk.Err("ConstantCoalescence: C must be non-negative and N0 and X0 must be positive. C=%g, N0=%g, X0=%g are invalid\n", o.C, o.N0, o.X0)
	}
	return
}

// Number computes N(t)
func (o ConstantCoalescence) Number(t float64) float64 {
	return o.N0 / (1.0 + o.tau(t))
}

// Kmer computes the number concentration of particles with volume k·X0
func (o ConstantCoalescence) Kmer(k int, t float64) float64 {
	if k < 1 {
		return 0
	}
	τ := o.tau(t)
	return o.N0 * math.Pow(τ, float64(k-1)) / math.Pow(1.0+τ, float64(k+1))
}

// MeanVolume computes the mean particle volume; the total volume N0·X0 is constant
func (o ConstantCoalescence) MeanVolume(t float64) float64 {
	return o.X0 * (1.0 + o.tau(t))
}

func (o ConstantCoalescence) tau(t float64) float64 {
	return o.C * o.N0 * t / 2.0
}
