// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_smoluchowski01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("smoluchowski01. constant kernel")

	var sol ConstantCoalescence
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "C", V: 1e-7},
		&dbf.P{N: "N0", V: 1e8},
		&dbf.P{N: "x0", V: 1e-9},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// τ = 1 at t = 0.2
	chk.Float64(tst, "N(0)", 1e-8, sol.Number(0), 1e8)
	chk.Float64(tst, "N(0.2)", 1e-7, sol.Number(0.2), 5e7)
	chk.Float64(tst, "n1(0.2)", 1e-7, sol.Kmer(1, 0.2), 1e8/4)
	chk.Float64(tst, "n2(0.2)", 1e-7, sol.Kmer(2, 0.2), 1e8/8)
	chk.Float64(tst, "n0", 1e-17, sol.Kmer(0, 0.2), 0)
	chk.Float64(tst, "mean volume", 1e-22, sol.MeanVolume(0.2), 2e-9)

	// Σ nₖ = N and Σ k·nₖ = N0
	io.Pf("%8s%16s%16s\n", "t", "N", "Σk·nₖ/N0")
	for _, t := range utl.LinSpace(0, 0.5, 6) {
		num, vol := 0.0, 0.0
		for k := 1; k < 400; k++ {
			nk := sol.Kmer(k, t)
			num += nk
			vol += float64(k) * nk
		}
		io.Pf("%8.3f%16.6e%16.12f\n", t, num, vol/1e8)
		chk.Float64(tst, io.Sf("N(%g)", t), 1e-4, num, sol.Number(t))
		chk.Float64(tst, io.Sf("V(%g)", t), 1e-9, vol/1e8, 1)
	}

	if sol.Init([]*dbf.P{&dbf.P{N: "N0", V: -1}}) == nil {
		tst.Errorf("negative N0 should have failed\n")
	}
	if sol.Init([]*dbf.P{&dbf.P{N: "k", V: 1}}) == nil {
		tst.Errorf("unknown parameter should have failed\n")
	}
}

func Test_breakup01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("breakup01. constant frequency")

	var sol ConstantBreakup
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "g", V: 2},
		&dbf.P{N: "N0", V: 1e6},
		&dbf.P{N: "X0", V: 1e-9},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	for _, t := range []float64{0, 0.1, 0.5} {
		chk.Float64(tst, "N·V̄", 1e-15, sol.Number(t)*sol.MeanVolume(t)/1e-3, 1)
		chk.Float64(tst, "parent·exp", 1e-15, sol.Parent(t)*sol.Number(t)/1e6, 1)
	}
	chk.Float64(tst, "N(0.5)", 1e-8, sol.Number(0.5), 1e6*2.718281828459045)
}
