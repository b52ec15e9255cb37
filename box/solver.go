// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

import (
	"github.com/cpmech/gopbe/mdl/pop"
)

// Solver integrates the equation α·Dψ/Dt = Su − Sp·ψ of a homogeneous mixture over one step
type Solver interface {
	pop.Engine
	SetDt(dt float64) // sets the time step
}

// allocators holds all available solvers
var allocators = make(map[string]func() Solver)

// Explicit implements the forward Euler method
//   ψ ← ψ + Δt·(Su − Sp·ψ)/α
type Explicit struct {
	Dt float64
}

// Implicit implements the backward Euler method with explicit Su
//   ψ ← (α·ψ + Δt·Su)/(α + Δt·Sp)
type Implicit struct {
	Dt float64
}

// add solvers to factory
func init() {
	allocators["explicit"] = func() Solver { return new(Explicit) }
	allocators["implicit"] = func() Solver { return new(Implicit) }
}

// SetDt sets the time step
func (o *Explicit) SetDt(dt float64) { o.Dt = dt }

// Solve advances ψ; cells without carrier phase are skipped
func (o *Explicit) Solve(psi []float64, phase pop.Dispersed, su, sp []float64) error {
	alpha := phase.Alpha()
	for c := range psi {
		if alpha[c] <= 0 {
			continue
		}
		psi[c] += o.Dt * (su[c] - sp[c]*psi[c]) / alpha[c]
	}
	return nil
}

// SetDt sets the time step
func (o *Implicit) SetDt(dt float64) { o.Dt = dt }

// Solve advances ψ; cells without carrier phase are skipped
func (o *Implicit) Solve(psi []float64, phase pop.Dispersed, su, sp []float64) error {
	alpha := phase.Alpha()
	for c := range psi {
		den := alpha[c] + o.Dt*sp[c]
		if alpha[c] <= 0 || den <= 0 {
			continue
		}
		psi[c] = (alpha[c]*psi[c] + o.Dt*su[c]) / den
	}
	return nil
}
