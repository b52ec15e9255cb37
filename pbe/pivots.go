// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// Pivots holds the representative volumes x₀ < x₁ < … < xₙ₋₁ of the size classes of a balance
// and implements the fixed-pivot allocation of particles of arbitrary volume v:
//
//  η(i,v)  : number of particles assigned to class i per particle of volume v (hat function)
//  ηᵥ(i,v) : fraction of the volume v assigned to class i; ηᵥ = η·xᵢ/v
//
// such that Σᵢ η = 1 and Σᵢ η·xᵢ = v for v in [x₀, xₙ₋₁]. Volumes outside this range are given to
// the first or last class (saturation) with η = v/xᵢ, so that Σᵢ ηᵥ = 1 for all v > 0.
type Pivots []float64

// Eta computes η(i,v)
func (o Pivots) Eta(i int, v float64) float64 {
	return o.EtaRange(i, 0, len(o)-1, v)
}

// EtaV computes ηᵥ(i,v), the volume fraction η·xᵢ/v. Σᵢ ηᵥ = 1 holds, while Σᵢ ηᵥ·xᵢ = v does not;
// the volume-conserving sum is Σᵢ η·xᵢ = v
func (o Pivots) EtaV(i int, v float64) float64 {
	return o.EtaVRange(i, 0, len(o)-1, v)
}

// EtaRange computes η(i,v) considering only the classes first..last (inclusive) as pivots
func (o Pivots) EtaRange(i, first, last int, v float64) float64 {
	if i < first || i > last || v <= 0 {
		return 0
	}
	x := o[i]
	if first == last {
		return v / x
	}
	switch {
	case v == x:
		return 1
	case v < x:
		if i == first {
			return v / x
		}
		if v <= o[i-1] {
			return 0
		}
		return (v - o[i-1]) / (x - o[i-1])
	}
	if i == last {
		return v / x
	}
	if v >= o[i+1] {
		return 0
	}
	return (o[i+1] - v) / (o[i+1] - x)
}

// EtaVRange computes ηᵥ(i,v) considering only the classes first..last (inclusive) as pivots
func (o Pivots) EtaVRange(i, first, last int, v float64) float64 {
	if v <= 0 {
		return 0
	}
	return o.EtaRange(i, first, last, v) * o[i] / v
}

// EtaField computes η(i,v) for each v
func (o Pivots) EtaField(res []float64, i int, v []float64) {
	for c := range v {
		res[c] = o.Eta(i, v[c])
	}
}

// EtaVField computes ηᵥ(i,v) for each v
func (o Pivots) EtaVField(res []float64, i int, v []float64) {
	for c := range v {
		res[c] = o.EtaV(i, v[c])
	}
}

// Bracket returns the range of classes that may receive particles of volume v
func (o Pivots) Bracket(v float64) (lo, hi int) {
	n := len(o)
	k := sort.SearchFloat64s(o, v) // first k with o[k] >= v
	lo, hi = k-1, k
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return
}

// EtaDist computes the number fraction of the particles of a sampled distribution assigned to
// class i, considering only the classes first..last as pivots
func (o Pivots) EtaDist(i, first, last int, dist *Distribution) float64 {
	num := make([]float64, len(dist.D))
	den := make([]float64, len(dist.D))
	for k, d := range dist.D {
		den[k] = dist.Q[k]
		num[k] = dist.Q[k] * o.EtaRange(i, first, last, SphereVolume(d))
	}
	return integrate.Trapezoidal(dist.D, num) / integrate.Trapezoidal(dist.D, den)
}

// EtaVDist computes the volume fraction of a sampled distribution assigned to class i,
// considering only the classes first..last as pivots. Σᵢ EtaVDist = 1 over first..last.
func (o Pivots) EtaVDist(i, first, last int, dist *Distribution) float64 {
	num := make([]float64, len(dist.D))
	den := make([]float64, len(dist.D))
	for k, d := range dist.D {
		v := SphereVolume(d)
		den[k] = dist.Q[k] * v
		num[k] = dist.Q[k] * v * o.EtaVRange(i, first, last, v)
	}
	return integrate.Trapezoidal(dist.D, num) / integrate.Trapezoidal(dist.D, den)
}
