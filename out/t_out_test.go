// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopbe/inp"
	"github.com/cpmech/gopbe/mdl/pop"
	"github.com/cpmech/gopbe/pbe"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newGroups returns a velocity group of air with alpha = 0.1 and the given diameters and values
func newGroups(tst *testing.T, d, vals []float64) *pbe.VelocityGroup {
	dat := &inp.VelocityGroupData{Phase: "air", Balance: "bubbles", Shape: "spherical", Initial: "any"}
	for i := range d {
		dat.SizeGroups = append(dat.SizeGroups, &inp.SizeGroupData{Name: io.Sf("f%d", i), D: d[i], Value: vals[i]})
	}
	vg, err := pbe.NewVelocityGroup(pbe.NewContext(), dat, pop.NewUniform("air", 1, 0.1, 1.2, 0, 0), 1)
	if err != nil {
		tst.Fatalf("NewVelocityGroup failed: %v\n", err)
	}
	return vg
}

func Test_moments01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("moments01. single group")

	vg := newGroups(tst, []float64{2e-3}, []float64{1})
	mom, err := NewMoments("number", "diameter")
	if err != nil {
		tst.Errorf("NewMoments failed: %v\n", err)
		return
	}
	n := 0.1 / pbe.SphereVolume(2e-3)
	chk.Float64(tst, "M0", 1e-15*n, mom.Integer(vg.Groups, 0, 0), n)
	chk.Float64(tst, "M3", 1e-15, mom.Integer(vg.Groups, 0, 3), 6*0.1/math.Pi)
	chk.Float64(tst, "mean", 1e-17, mom.Mean(vg.Groups, 0), 2e-3)
	chk.Float64(tst, "stdDev", 1e-17, mom.StdDev(vg.Groups, 0), 0)

	vol, _ := NewMoments("volume", "volume")
	chk.Float64(tst, "volume M0", 1e-17, vol.Integer(vg.Groups, 0, 0), 0.1)
	chk.Float64(tst, "volume mean", 1e-20, vol.Mean(vg.Groups, 0), pbe.SphereVolume(2e-3))

	io.Pforan("errors\n")
	if _, err = NewMoments("mass", "diameter"); err == nil {
		tst.Errorf("unknown weight should have failed\n")
	}
	if _, err = NewMoments("number", "area"); err == nil {
		tst.Errorf("unknown coordinate should have failed\n")
	}
}

func Test_moments02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("moments02. two groups")

	d := []float64{1e-3, 2e-3}
	vg := newGroups(tst, d, []float64{0.5, 0.5})
	n0 := 0.05 / pbe.SphereVolume(d[0])
	n1 := 0.05 / pbe.SphereVolume(d[1])

	num, _ := NewMoments("number", "diameter")
	mean := (n0*d[0] + n1*d[1]) / (n0 + n1)
	variance := (n0*math.Pow(d[0]-mean, 2) + n1*math.Pow(d[1]-mean, 2)) / (n0 + n1)
	chk.Float64(tst, "number mean", 1e-17, num.Mean(vg.Groups, 0), mean)
	chk.Float64(tst, "number variance", 1e-20, num.Variance(vg.Groups, 0), variance)
	io.Pf("mean = %v  stdDev = %v\n", mean, num.StdDev(vg.Groups, 0))

	area, _ := NewMoments("area", "diameter")
	chk.Float64(tst, "area mean = d32", 1e-17, area.Mean(vg.Groups, 0), vg.D32[0])
}

func Test_initialise01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("initialise01. volume weights of distributions")

	d := []float64{1e-3, 2e-3, 3e-3, 4e-3, 5e-3}
	vg := newGroups(tst, d, make([]float64, 5))

	// uniform volume density sampled at the pivots
	dist, err := pbe.NewDistribution(d, []float64{1, 1, 1, 1, 1}, true)
	if err != nil {
		tst.Errorf("NewDistribution failed: %v\n", err)
		return
	}
	err = Initialise(vg, dist)
	if err != nil {
		tst.Errorf("Initialise failed: %v\n", err)
		return
	}
	for i, want := range []float64{0.125, 0.25, 0.25, 0.25, 0.125} {
		chk.Float64(tst, vg.Groups[i].Name, 1e-14, vg.Groups[i].Fld[0], want)
	}
	chk.Float64(tst, "sum", 1e-14, vg.FSum[0], 1)

	// lognormal
	prms := []*dbf.P{&dbf.P{N: "dm", V: 2.5e-3}, &dbf.P{N: "sigma", V: 0.4}}
	dist, err = pbe.SampleDistribution("lognormal", prms, 0.5e-3, 6e-3, 201, false)
	if err != nil {
		tst.Errorf("SampleDistribution failed: %v\n", err)
		return
	}
	err = Initialise(vg, dist)
	if err != nil {
		tst.Errorf("Initialise failed: %v\n", err)
		return
	}
	chk.Float64(tst, "lognormal sum", 1e-14, vg.FSum[0], 1)
	for _, g := range vg.Groups {
		if g.Fld[0] < 0 {
			tst.Errorf("fraction of %s is negative: %g\n", g.Name, g.Fld[0])
		}
	}
}

func Test_initialise02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("initialise02. distributions without particles are rejected")

	d := []float64{1e-3, 2e-3, 3e-3}
	vg := newGroups(tst, d, make([]float64, 3))
	err := Initialise(vg, &pbe.Distribution{D: d, Q: []float64{0, 0, 0}})
	if err == nil {
		tst.Errorf("empty distribution should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
}
