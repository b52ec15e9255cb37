// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

import "sort"

// PhasePair is the unordered pair of two phases. The names are stored in sorted order.
type PhasePair struct {
	First, Second string
}

// NewPhasePair returns the canonical pair of phases a and b
func NewPhasePair(a, b string) PhasePair {
	if b < a {
		a, b = b, a
	}
	return PhasePair{a, b}
}

// Dmdtfs holds mass-transfer rates [kg/(m³·s)] per cell for each pair of phases.
// Positive values mean mass going from First to Second.
type Dmdtfs map[PhasePair][]float64

// Ensure creates the entry of the pair (a,b) if not present
func (o Dmdtfs) Ensure(a, b string, ncells int) {
	if a == b {
		return
	}
	key := NewPhasePair(a, b)
	if _, ok := o[key]; !ok {
		o[key] = make([]float64, ncells)
	}
}

// Add adds the rates vals of mass going from phase 'from' to phase 'to'
func (o Dmdtfs) Add(from, to string, vals []float64) {
	if from == to {
		return
	}
	key := NewPhasePair(from, to)
	res, ok := o[key]
	if !ok {
		res = make([]float64, len(vals))
		o[key] = res
	}
	sign := 1.0
	if key.First != from {
		sign = -1.0
	}
	for c, v := range vals {
		res[c] += sign * v
	}
}

// Get returns the rates of mass going from phase 'from' to phase 'to' in cell c
func (o Dmdtfs) Get(from, to string, c int) float64 {
	key := NewPhasePair(from, to)
	res, ok := o[key]
	if !ok {
		return 0
	}
	if key.First != from {
		return -res[c]
	}
	return res[c]
}

// Reset zeroes all rates
func (o Dmdtfs) Reset() {
	for _, res := range o {
		for c := range res {
			res[c] = 0
		}
	}
}

// Pairs returns all pairs in sorted order
func (o Dmdtfs) Pairs() (pairs []PhasePair) {
	for key := range o {
		pairs = append(pairs, key)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].First == pairs[j].First {
			return pairs[i].Second < pairs[j].Second
		}
		return pairs[i].First < pairs[j].First
	})
	return
}
