// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Fractal implements aggregates of primary particles. The surface-to-volume ratio κ is
// transported; the primary particle diameter is dₚ = 6/κ and the collisional diameter is
//  dc = dₚ·(nₚ/kg)^(1/Df)   with   nₚ = x/(π·dₚ³/6)
// Aggregates sinter towards the sphere of the same volume with relaxation time τ.
type Fractal struct {
	Secondary

	// parameters
	Df  float64 // fractal dimension
	Kg  float64 // prefactor
	Tau float64 // sintering time [s]; 0 => no sintering

	// internal
	g      Group
	kappa  []float64 // surface-to-volume ratio
	kappa0 []float64 // κ of the sphere with the class volume
	q      []float64 // fraction × κ
	dc     []float64 // collisional diameter
	su, sp []float64 // workspace
}

// add model to factory
func init() {
	allocators["fractal"] = func() Model { return new(Fractal) }
}

// Init initialises model
func (o *Fractal) Init(prms dbf.Params, g Group, ncells int) (err error) {
	o.Df, o.Kg = 1.8, 1.0
	kappaInit := 0.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "df":
			o.Df = p.V
		case "kg":
			o.Kg = p.V
		case "tau":
			o.Tau = p.V
		case "kappa":
			kappaInit = p.V
		default:
			return chk.Err("fractal: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Df <= 0 || o.Df > 3 {
		return chk.Err("fractal: dimension must be in (0, 3]. Df = %g is invalid\n", o.Df)
	}
	if o.Kg <= 0 {
		return chk.Err("fractal: prefactor must be positive. kg = %g is invalid\n", o.Kg)
	}
	o.g = g
	ks := 6.0 / g.Dsph()
	if kappaInit < ks {
		kappaInit = ks
	}
	o.InitSecondary(ncells, kappa)
	o.kappa = make([]float64, ncells)
	o.kappa0 = make([]float64, ncells)
	o.q = make([]float64, ncells)
	o.dc = make([]float64, ncells)
	o.su = make([]float64, ncells)
	o.sp = make([]float64, ncells)
	for c := 0; c < ncells; c++ {
		o.kappa[c] = kappaInit
		o.kappa0[c] = ks
	}
	o.Correct()
	return
}

// GetPrms gets (an example) of parameters
func (o Fractal) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Df", V: 1.8},
		&dbf.P{N: "kg", V: 1.0},
		&dbf.P{N: "tau", V: 0.01},
	}
}

// Kappa returns the transported surface-to-volume ratio
func (o *Fractal) Kappa() []float64 { return o.kappa }

// D returns the collisional diameter
func (o *Fractal) D() []float64 { return o.dc }

// Precompute stores fraction × κ at the beginning of a solve
func (o *Fractal) Precompute() {
	f := o.g.F()
	for c := range o.q {
		o.q[c] = f[c] * o.kappa[c]
	}
}

// Reset zeroes the accumulated source and the workspace
func (o *Fractal) Reset() {
	o.Secondary.Reset()
	for c := range o.su {
		o.su[c], o.sp[c] = 0, 0
	}
}

// AddCoalescence adds the surface of both colliding aggregates. The new aggregate cannot have
// less surface than the sphere of the receiving class.
func (o *Fractal) AddCoalescence(su []float64, fj, fk Group) {
	xj, xk := fj.X(), fk.X()
	kj, kk := kappa(fj), kappa(fk)
	for c := range o.Src {
		k := (xj*kj[c] + xk*kk[c]) / (xj + xk)
		o.Src[c] += su[c] * math.Max(k, o.kappa0[c])
	}
}

// Solve transports fraction × κ with the class sink sp and the sintering relaxation
//  ∂(α·f·κ)/∂t = Src − sp·f·κ − α·f·(κ − κ₀)/τ
func (o *Fractal) Solve(eng pop.Engine, sp []float64) (err error) {
	phase := o.g.Phase()
	alpha := phase.Alpha()
	f := o.g.F()
	for c := range o.q {
		o.su[c] = o.Src[c]
		o.sp[c] = sp[c]
		if o.Tau > 0 {
			o.su[c] += alpha[c] * f[c] * o.kappa0[c] / o.Tau
			o.sp[c] += alpha[c] / o.Tau
		}
	}
	err = eng.Solve(o.q, phase, o.su, o.sp)
	if err != nil {
		return
	}
	for c := range o.q {
		if f[c] > 1e-12 {
			o.kappa[c] = math.Max(o.q[c]/f[c], o.kappa0[c])
		} else {
			o.kappa[c] = o.kappa0[c]
		}
	}
	return
}

// Correct updates the collisional diameter
func (o *Fractal) Correct() {
	x := o.g.X()
	for c := range o.kappa {
		dp := 6.0 / o.kappa[c]
		np := x / (math.Pi * dp * dp * dp / 6.0)
		o.dc[c] = dp * math.Pow(np/o.Kg, 1.0/o.Df)
	}
}
