// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pop

import "math"

// Uniform is a phase with the same state on all cells. It is used to check submodels.
type Uniform struct {
	Nam   string
	A     []float64 // α
	R     []float64 // ρ
	V     [][]float64
	Exp   []float64 // expansion rate
	Visc  []float64 // ν
	Dissp []float64 // ε
}

// NewUniform returns a phase with ncells cells
func NewUniform(name string, ncells int, alpha, rho, nu, eps float64) (o *Uniform) {
	o = &Uniform{Nam: name}
	o.A = fill(ncells, alpha)
	o.R = fill(ncells, rho)
	o.Visc = fill(ncells, nu)
	o.Dissp = fill(ncells, eps)
	o.Exp = fill(ncells, 0)
	o.V = make([][]float64, ncells)
	for c := 0; c < ncells; c++ {
		o.V[c] = make([]float64, 3)
	}
	return
}

func (o *Uniform) Name() string             { return o.Nam }
func (o *Uniform) Alpha() []float64         { return o.A }
func (o *Uniform) Rho() []float64           { return o.R }
func (o *Uniform) U() [][]float64           { return o.V }
func (o *Uniform) ExpansionRate() []float64 { return o.Exp }
func (o *Uniform) Nu() []float64            { return o.Visc }
func (o *Uniform) Epsilon() []float64       { return o.Dissp }

// Class is a spherical size class with a fixed fraction. It is used to check submodels.
type Class struct {
	Idx  int
	Xval float64
	Fval []float64
	Dval []float64
	Ph   Dispersed
}

// NewClass returns a spherical class of diameter d
func NewClass(idx int, d float64, f []float64, phase Dispersed) *Class {
	return &Class{idx, math.Pi * d * d * d / 6.0, f, fill(len(f), d), phase}
}

func (o *Class) Index() int       { return o.Idx }
func (o *Class) X() float64       { return o.Xval }
func (o *Class) Dsph() float64    { return math.Cbrt(6.0 * o.Xval / math.Pi) }
func (o *Class) D() []float64     { return o.Dval }
func (o *Class) F() []float64     { return o.Fval }
func (o *Class) Phase() Dispersed { return o.Ph }

func fill(n int, v float64) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = v
	}
	return res
}
