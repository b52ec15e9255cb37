// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coalescence

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopbe/mdl/pop"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_coal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coal01. constant and hydrodynamic")

	air := pop.NewUniform("air", 2, 0.1, 1.2, 0, 0)
	water := pop.NewUniform("water", 2, 0.9, 1000, 1e-6, 0.1)
	fi := pop.NewClass(0, 1e-3, []float64{0.5, 0.5}, air)
	fj := pop.NewClass(1, 2e-3, []float64{0.5, 0.5}, air)

	mdl, err := New("constant")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init([]*dbf.P{&dbf.P{N: "C", V: 2.5}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	rate := []float64{1, 0}
	mdl.AddToRate(rate, fi, fj, water)
	chk.Array(tst, "constant rate", 1e-15, rate, []float64{3.5, 2.5})

	hyd, err := New("hydrodynamic")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = hyd.Init(hyd.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	rate = make([]float64, 2)
	hyd.AddToRate(rate, fi, fj, water)
	chk.Float64(tst, "hydrodynamic", 1e-20, rate[1], fi.X()+fj.X())
}

func Test_coal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coal02. turbulent shear")

	air := pop.NewUniform("air", 1, 0.1, 1.2, 0, 0)
	water := pop.NewUniform("water", 1, 0.9, 1000, 1e-6, 0.04)
	fi := pop.NewClass(0, 1e-4, []float64{1}, air)

	mdl, err := New("turbulentShear")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	rate := []float64{0}
	mdl.AddToRate(rate, fi, fi, water)
	correct := math.Sqrt(8.0*math.Pi/15.0) * 1e-12 * 200.0
	io.Pforan("rate = %v\n", rate[0])
	chk.Float64(tst, "rate", 1e-22, rate[0], correct)
}

func Test_coal03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coal03. errors and pruning")

	_, err := New("nonexistent")
	if err == nil {
		tst.Errorf("New should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	mdl := new(Constant)
	err = mdl.Init([]*dbf.P{&dbf.P{N: "K", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed\n")
		return
	}

	err = mdl.Init([]*dbf.P{&dbf.P{N: "C", V: 1}, &dbf.P{N: "dmax", V: 2.0e-3}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	air := pop.NewUniform("air", 1, 0.1, 1.2, 0, 0)
	f1 := pop.NewClass(0, 1e-3, []float64{1}, air)
	f2 := pop.NewClass(1, 2e-3, []float64{0}, air)
	if !mdl.Active(f1, f1) {
		tst.Errorf("(1mm,1mm) should be active\n")
	}
	if mdl.Active(f1, f2) {
		tst.Errorf("(1mm,2mm) should be inactive\n")
	}
}
