// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func geometricPivots(x0, r float64, n int) (x Pivots) {
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = x0 * math.Pow(r, float64(i))
	}
	return
}

func Test_pivots01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pivots01. interpolation property")

	x := geometricPivots(1, 1.7, 6)
	n := len(x)

	// η(i, xⱼ) = δᵢⱼ
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			correct := 0.0
			if i == j {
				correct = 1
			}
			chk.Float64(tst, io.Sf("η(%d,x%d)", i, j), 1e-15, x.Eta(i, x[j]), correct)
		}
	}

	// number and volume inside the range of pivots
	eta := make([]float64, n)
	for _, v := range utl.LinSpace(x[0], x[n-1], 101) {
		for i := 0; i < n; i++ {
			eta[i] = x.Eta(i, v)
		}
		chk.Float64(tst, io.Sf("Ση(v=%.3f)", v), 1e-14, floats.Sum(eta), 1)
		chk.Float64(tst, io.Sf("Σηx(v=%.3f)", v), 1e-13, floats.Dot(eta, x), v)
	}

	// volume everywhere
	etaV := make([]float64, n)
	for _, v := range utl.LinSpace(0.01, 2*x[n-1], 137) {
		for i := 0; i < n; i++ {
			etaV[i] = x.EtaV(i, v)
		}
		chk.Float64(tst, io.Sf("Σηᵥ(v=%.3f)", v), 1e-14, floats.Sum(etaV), 1)
	}

	// saturation
	chk.Float64(tst, "η(0,x₀/2)", 1e-15, x.Eta(0, x[0]/2), 0.5)
	chk.Float64(tst, "η(n-1,2xₙ₋₁)", 1e-15, x.Eta(n-1, 2*x[n-1]), 2)
	chk.Float64(tst, "η(1,x₀/2)", 1e-15, x.Eta(1, x[0]/2), 0)
	chk.Float64(tst, "η(0,0)", 1e-15, x.Eta(0, 0), 0)

	// field form
	v := []float64{x[1], 0.5 * (x[1] + x[2]), x[4]}
	res := make([]float64, 3)
	x.EtaField(res, 1, v)
	chk.Array(tst, "η(1,v)", 1e-15, res, []float64{1, 0.5, 0})
	x.EtaVField(res, 1, v)
	chk.Array(tst, "ηᵥ(1,v)", 1e-15, res, []float64{1, 0.5 * x[1] / v[1], 0})
}

func Test_pivots02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pivots02. ranges and brackets")

	x := geometricPivots(1, 2, 5)

	// restricted to 1..2, all volume goes to 1 and 2
	for _, v := range []float64{0.3, 1, 2, 3, 4, 7, 16, 40} {
		sum := 0.0
		for i := 0; i < 5; i++ {
			e := x.EtaVRange(i, 1, 2, v)
			if (i < 1 || i > 2) && e != 0 {
				tst.Errorf("ηᵥ(%d,%g) must be zero outside of range\n", i, v)
			}
			sum += e
		}
		chk.Float64(tst, io.Sf("Σηᵥ(v=%g)", v), 1e-15, sum, 1)
	}
	chk.Float64(tst, "single pivot", 1e-15, x.EtaRange(3, 3, 3, 4), 0.5)

	lo, hi := x.Bracket(3)
	chk.Ints(tst, "bracket(3)", []int{lo, hi}, []int{1, 2})
	lo, hi = x.Bracket(0.5)
	chk.Ints(tst, "bracket(0.5)", []int{lo, hi}, []int{0, 0})
	lo, hi = x.Bracket(100)
	chk.Ints(tst, "bracket(100)", []int{lo, hi}, []int{4, 4})
	lo, hi = x.Bracket(4)
	chk.Ints(tst, "bracket(4)", []int{lo, hi}, []int{1, 2})
}

func Test_pivots03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pivots03. sampled distributions")

	d := []float64{1e-3, 2e-3, 3e-3, 4e-3}
	x := make(Pivots, len(d))
	for i := range d {
		x[i] = SphereVolume(d[i])
	}

	dist, err := SampleDistribution("lognormal", []*dbf.P{&dbf.P{N: "dm", V: 2.5e-3}, &dbf.P{N: "sigma", V: 0.3}}, 0.5e-3, 6e-3, 201, false)
	if err != nil {
		tst.Errorf("SampleDistribution failed: %v\n", err)
		return
	}

	// volume weights on a two-group sub-range sum to one
	w1 := x.EtaVDist(1, 1, 2, dist)
	w2 := x.EtaVDist(2, 1, 2, dist)
	io.Pforan("w1 = %v  w2 = %v\n", w1, w2)
	chk.Float64(tst, "w1+w2", 1e-13, w1+w2, 1)
	chk.Float64(tst, "outside", 1e-17, x.EtaVDist(0, 1, 2, dist), 0)
	if w1 <= 0 || w2 <= 0 {
		tst.Errorf("weights must be positive\n")
	}

	// number weights over all groups
	sum := 0.0
	for i := range x {
		sum += x.EtaDist(i, 0, len(x)-1, dist)
	}
	io.Pforan("Σ number weights = %v\n", sum)
	if sum <= 0 {
		tst.Errorf("number weights must be positive\n")
	}

	// tabulated: everything at the second pivot
	tab, err := NewDistribution([]float64{1.9e-3, 2e-3, 2.1e-3}, []float64{0, 1, 0}, true)
	if err != nil {
		tst.Errorf("NewDistribution failed: %v\n", err)
		return
	}
	w := make([]float64, len(x))
	for i := range x {
		w[i] = x.EtaVDist(i, 0, len(x)-1, tab)
	}
	chk.Float64(tst, "Σw", 1e-15, floats.Sum(w), 1)
	if w[1] < 0.9 {
		tst.Errorf("most volume must go to the second group. w = %v\n", w)
	}

	// errors
	_, err = NewDistribution([]float64{1, 1}, []float64{1, 1}, false)
	if err == nil {
		tst.Errorf("repeated diameters should have failed\n")
	}
	_, err = SampleDistribution("weibull", nil, 1, 2, 10, false)
	if err == nil {
		tst.Errorf("unknown distribution should have failed\n")
	}
	_, err = SampleDistribution("uniform", []*dbf.P{&dbf.P{N: "a", V: 1}}, 1, 2, 10, false)
	if err == nil {
		tst.Errorf("unknown parameter should have failed\n")
	}
}

func Test_pivots04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pivots04. invalid distributions are rejected")

	bad := map[string]struct {
		name string
		prms dbf.Params
	}{
		"lognormal without sigma": {"lognormal", dbf.Params{&dbf.P{N: "dm", V: 2.5e-3}}},
		"lognormal without dm":    {"lognormal", dbf.Params{&dbf.P{N: "sigma", V: 0.3}}},
		"lognormal with dm = 0":   {"lognormal", dbf.Params{&dbf.P{N: "dm", V: 0}, &dbf.P{N: "sigma", V: 0.3}}},
		"normal without sd":       {"normal", dbf.Params{&dbf.P{N: "mean", V: 2.5e-3}}},
		"normal with sd < 0":      {"normal", dbf.Params{&dbf.P{N: "mean", V: 2.5e-3}, &dbf.P{N: "sd", V: -1e-4}}},
		"normal without mean":     {"normal", dbf.Params{&dbf.P{N: "sd", V: 1e-4}}},
		"uniform with min > max":  {"uniform", dbf.Params{&dbf.P{N: "min", V: 3e-3}, &dbf.P{N: "max", V: 2e-3}}},
	}
	for key, c := range bad {
		_, err := SampleDistribution(c.name, c.prms, 0.5e-3, 6e-3, 51, false)
		if err == nil {
			tst.Errorf("%s should have failed\n", key)
			continue
		}
		io.Pforan("%s: %v\n", key, err)
	}

	// density far from the sampling range is zero everywhere
	_, err := SampleDistribution("normal", dbf.Params{&dbf.P{N: "mean", V: 1}, &dbf.P{N: "sd", V: 1e-4}}, 0.5e-3, 6e-3, 51, false)
	if err == nil {
		tst.Errorf("distribution without particles in range should have failed\n")
	}

	d := []float64{1e-3, 2e-3, 3e-3}
	for key, q := range map[string][]float64{
		"NaN density":      {1, math.NaN(), 1},
		"infinite density": {1, math.Inf(1), 1},
		"all-zero density": {0, 0, 0},
		"negative density": {1, -1, 1},
	} {
		_, err = NewDistribution(d, q, true)
		if err == nil {
			tst.Errorf("%s should have failed\n", key)
		}
	}
	_, err = NewDistribution([]float64{1e-3, math.NaN(), 3e-3}, []float64{1, 1, 1}, false)
	if err == nil {
		tst.Errorf("NaN diameter should have failed\n")
	}
}
