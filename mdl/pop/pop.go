// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pop defines the quantities exchanged between the population balance and its
// submodels (coalescence, breakup, daughter distributions, shapes) and the host that owns
// phases, cells and equation solving.
//  Convention: all per-cell arrays have length equal to the number of cells
package pop

// Phase is a phase of the host's multiphase system
type Phase interface {
	Name() string     // unique name of phase
	Alpha() []float64 // volume fraction α per cell
	Rho() []float64   // density ρ per cell [kg/m³]
}

// Dispersed is the carrier of one velocity group
type Dispersed interface {
	Phase
	U() [][]float64           // velocity per cell [ncells][ndim]
	ExpansionRate() []float64 // (1/v)·dv/dt of the particles' volume [1/s]
}

// Continuous is the continuous phase in which particles move
type Continuous interface {
	Phase
	Nu() []float64      // kinematic viscosity [m²/s]
	Epsilon() []float64 // turbulent dissipation rate [m²/s³]
}

// Group is a size class as seen by rate models
type Group interface {
	Index() int        // global index within the balance
	X() float64        // representative volume [m³]
	Dsph() float64     // sphere-equivalent diameter [m]
	D() []float64      // characteristic (collisional) diameter per cell [m]
	F() []float64      // fraction of the carrier phase per cell
	Phase() Dispersed  // carrier phase
}

// Engine solves, on each cell, the transport equation of a size-class quantity ψ
//
//   α·(∂ψ/∂t + U·∇ψ) = Su − Sp·ψ
//
// where α is the carrier phase fraction; i.e. the conservative form minus ψ times the continuity
// equation of the carrier phase. Sp ≥ 0 is treated implicitly.
type Engine interface {
	Solve(psi []float64, phase Dispersed, su, sp []float64) error
}

// Precomputer is implemented by submodels that refresh cached data once per solve
type Precomputer interface {
	Precompute()
}
