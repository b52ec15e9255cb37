// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

import (
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gopbe/inp"
)

// Phase holds the state of a phase of the homogeneous mixture. The state is the same on all
// cells and does not change with time.
type Phase struct {
	Data *inp.PhaseData // input data
	A    []float64      // volume fraction α
	R    []float64      // density ρ
	Nuv  []float64      // kinematic viscosity ν
	Eps  []float64      // turbulent dissipation rate ε
	Exp  []float64      // expansion rate of particles
	V    [][]float64    // velocity
}

// NewPhase allocates a new phase with ncells cells
func NewPhase(dat *inp.PhaseData, ncells int) (o *Phase) {
	o = &Phase{Data: dat}
	o.A = utl.Vals(ncells, dat.Alpha)
	o.R = utl.Vals(ncells, dat.Rho)
	o.Nuv = utl.Vals(ncells, dat.Nu)
	o.Eps = utl.Vals(ncells, dat.Epsilon)
	o.Exp = utl.Vals(ncells, dat.Expansion)
	o.V = make([][]float64, ncells)
	for c := range o.V {
		o.V[c] = make([]float64, 3)
		copy(o.V[c], dat.U)
	}
	return
}

func (o *Phase) Name() string             { return o.Data.Name }
func (o *Phase) Alpha() []float64         { return o.A }
func (o *Phase) Rho() []float64           { return o.R }
func (o *Phase) U() [][]float64           { return o.V }
func (o *Phase) ExpansionRate() []float64 { return o.Exp }
func (o *Phase) Nu() []float64            { return o.Nuv }
func (o *Phase) Epsilon() []float64       { return o.Eps }
