// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dsd implements daughter size distributions of breakup events
package dsd

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/integrate/quad"
)

// Model defines the number density β(v, xₖ) [1/m³] of daughters of volume v produced by the
// breakup of one parent of volume xₖ. Volume must be conserved: ∫₀ˣᵏ v·β dv = xₖ
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Beta(v, xk float64) float64      // daughter density; zero outside (0, xk]
}

// NumberQuad is the number of Gauss-Legendre points per pivot interval used by Nik
var NumberQuad = 20

// Nik computes the fixed-pivot allocation of daughters
//
//   nik[i][k] = ∫ ηᵢ(v)·β(v, xₖ) dv
//
// where ηᵢ is the hat function of pivot i over the pivot volumes x. Below x[0] all the daughters
// go to the first pivot with ηᵢ = v/x₀. Thus Σᵢ xᵢ·nik[i][k] = xₖ.
func Nik(mdl Model, x []float64) (nik [][]float64) {
	n := len(x)
	nik = make([][]float64, n)
	for i := 0; i < n; i++ {
		nik[i] = make([]float64, n)
	}
	for k := 0; k < n; k++ {
		xk := x[k]
		beta := func(v float64) float64 { return mdl.Beta(v, xk) }
		nik[0][k] = quad.Fixed(func(v float64) float64 { return v / x[0] * beta(v) }, 0, x[0], NumberQuad, nil, 0)
		for i := 0; i <= k; i++ {
			if i > 0 {
				a, b := x[i-1], x[i]
				nik[i][k] += quad.Fixed(func(v float64) float64 { return (v - a) / (b - a) * beta(v) }, a, b, NumberQuad, nil, 0)
			}
			if i < k {
				a, b := x[i], x[i+1]
				nik[i][k] += quad.Fixed(func(v float64) float64 { return (b - v) / (b - a) * beta(v) }, a, b, NumberQuad, nil, 0)
			}
		}
	}
	return
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'daughterSizeDistribution' database. Valid names: %v", name, Names())
	}
	return allocator(), nil
}

// Names returns the sorted names of available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
