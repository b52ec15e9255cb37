// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the post-processing of population balances: statistics of the size
// distribution and the initialisation of fractions from a distribution
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/gopbe/pbe"
)

// Moments computes statistics of the size distribution of a set of groups. The k-th integer
// moment is Mₖ = Σᵢ wᵢ·ξᵢᵏ with the weight wᵢ and the coordinate ξᵢ of each group:
//
//   weights:     "number" ⇒ nᵢ = α·fᵢ/xᵢ
//                "area"   ⇒ nᵢ·π·dᵢ²
//                "volume" ⇒ α·fᵢ
//   coordinates: "diameter" ⇒ ξᵢ = dᵢ (sphere-equivalent)
//                "volume"   ⇒ ξᵢ = xᵢ
//
type Moments struct {
	Weight     string // weight of groups
	Coordinate string // coordinate of groups
	w          []float64
	xi         []float64
}

// NewMoments returns a new statistics calculator
func NewMoments(weight, coordinate string) (o *Moments, err error) {
	switch weight {
	case "number", "area", "volume":
	default:
		return nil, chk.Err("weight of moments must be \"number\", \"area\" or \"volume\". %q is invalid", weight)
	}
	switch coordinate {
	case "diameter", "volume":
	default:
		return nil, chk.Err("coordinate of moments must be \"diameter\" or \"volume\". %q is invalid", coordinate)
	}
	return &Moments{Weight: weight, Coordinate: coordinate}, nil
}

// Integer computes the integer moment Mₖ in cell c
func (o *Moments) Integer(groups []*pbe.SizeGroup, c, k int) float64 {
	o.calc(groups, c)
	if k == 0 {
		return floats.Sum(o.w)
	}
	res := 0.0
	for i, w := range o.w {
		res += w * math.Pow(o.xi[i], float64(k))
	}
	return res
}

// Mean computes M₁/M₀ in cell c; zero if there are no particles
func (o *Moments) Mean(groups []*pbe.SizeGroup, c int) float64 {
	o.calc(groups, c)
	m0 := floats.Sum(o.w)
	if m0 <= 0 {
		return 0
	}
	return floats.Dot(o.w, o.xi) / m0
}

// Variance computes M₂/M₀ − (M₁/M₀)² in cell c
func (o *Moments) Variance(groups []*pbe.SizeGroup, c int) float64 {
	mean := o.Mean(groups, c)
	m0 := floats.Sum(o.w)
	if m0 <= 0 {
		return 0
	}
	res := 0.0
	for i, w := range o.w {
		res += w * (o.xi[i] - mean) * (o.xi[i] - mean)
	}
	return res / m0
}

// StdDev computes the standard deviation in cell c
func (o *Moments) StdDev(groups []*pbe.SizeGroup, c int) float64 {
	return math.Sqrt(o.Variance(groups, c))
}

// calc computes the weights and coordinates of groups in cell c
func (o *Moments) calc(groups []*pbe.SizeGroup, c int) {
	if len(o.w) != len(groups) {
		o.w = make([]float64, len(groups))
		o.xi = make([]float64, len(groups))
	}
	for i, g := range groups {
		alpha := g.Phase().Alpha()[c]
		d := g.Dsph()
		switch o.Weight {
		case "number":
			o.w[i] = alpha * g.Fld[c] / g.X()
		case "area":
			o.w[i] = alpha * g.Fld[c] / g.X() * math.Pi * d * d
		default:
			o.w[i] = alpha * g.Fld[c]
		}
		if o.Coordinate == "diameter" {
			o.xi[i] = d
		} else {
			o.xi[i] = g.X()
		}
	}
}
