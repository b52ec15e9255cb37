// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Secondary accumulates the birth source of an intensive property p carried by the particles
// of a class. The source is in units of (fraction × p) per unit time and is consistent with the
// volume-fraction sources of the population balance:
//  coalescence:  Src += su·(xⱼ·pⱼ + xₖ·pₖ)/(xⱼ + xₖ)
//  breakup:      Src += su·pⱼ
//  drift:        Src += su·pᵤ
type Secondary struct {
	Value func(g Group) []float64 // property of a class
	Src   []float64               // accumulated source
}

// InitSecondary allocates the source for ncells
func (o *Secondary) InitSecondary(ncells int, value func(g Group) []float64) {
	o.Value = value
	o.Src = make([]float64, ncells)
}

// Reset zeroes the accumulated source
func (o *Secondary) Reset() {
	for c := range o.Src {
		o.Src[c] = 0
	}
}

// AddCoalescence adds the volume-weighted property of the two colliding classes
func (o *Secondary) AddCoalescence(su []float64, fj, fk Group) {
	xj, xk := fj.X(), fk.X()
	pj, pk := o.Value(fj), o.Value(fk)
	for c := range o.Src {
		o.Src[c] += su[c] * (xj*pj[c] + xk*pk[c]) / (xj + xk)
	}
}

// AddBreakup adds the property of the parent
func (o *Secondary) AddBreakup(su []float64, fj Group) {
	pj := o.Value(fj)
	for c := range o.Src {
		o.Src[c] += su[c] * pj[c]
	}
}

// AddDrift adds the property of the class the particles come from
func (o *Secondary) AddDrift(su []float64, fu Group) {
	pu := o.Value(fu)
	for c := range o.Src {
		o.Src[c] += su[c] * pu[c]
	}
}

// kappa returns the surface-to-volume ratio of a class
func kappa(g Group) []float64 {
	return g.Shape().Kappa()
}
