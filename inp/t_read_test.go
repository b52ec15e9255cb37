// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. json")

	sim, err := ReadSim("data/fiveclasses.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "fiveclasses")
	chk.String(tst, sim.DirOut, "/tmp/gopbe/fiveclasses")
	chk.String(tst, sim.Solver.Type, "explicit")
	chk.Float64(tst, "dtout", 1e-17, sim.Solver.DtOut, 0.001)
	chk.Int(tst, "ncells", sim.Data.NCells, 2)
	chk.Int(tst, "nphases", len(sim.Phases), 2)
	chk.Float64(tst, "ε", 1e-17, sim.PhaseMap["water"].Epsilon, 0.1)

	vg := sim.VelocityGroups[0]
	chk.String(tst, vg.Shape, "spherical")
	chk.Int(tst, "ngroups", len(vg.SizeGroups), 5)
	chk.Float64(tst, "d5", 1e-17, vg.SizeGroups[4].D, 0.005)
	chk.Float64(tst, "value", 1e-17, vg.SizeGroups[2].Value, 0.2)

	b := sim.Balance("bubbles")
	if b == nil {
		tst.Errorf("balance is missing\n")
		return
	}
	chk.Int(tst, "interval", b.Interval, 1)
	chk.String(tst, b.Coalescence[0].Type, "constant")
	chk.Float64(tst, "C", 1e-20, b.Coalescence[0].Prms[0].V, 1e-9)
	chk.String(tst, b.Coalescence[0].Prms[0].N, "C")
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. yaml and generated groups")

	sim, err := ReadSim("data/breakup.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Solver.Type, "implicit")
	chk.Int(tst, "ncells", sim.Data.NCells, 1)

	vg := sim.VelocityGroups[0]
	chk.String(tst, vg.Shape, "fractal")
	chk.Float64(tst, "Df", 1e-17, vg.ShapePrms[0].V, 2.2)
	chk.Int(tst, "ngroups", len(vg.SizeGroups), 4)
	d := make([]float64, 4)
	for i, g := range vg.SizeGroups {
		d[i] = g.D
	}
	chk.Array(tst, "d", 1e-15, d, []float64{0.001, 0.002, 0.004, 0.008})
	chk.String(tst, vg.SizeGroups[3].Name, "f3")
	chk.String(tst, vg.Distribution.Type, "lognormal")
	chk.Int(tst, "nprms", len(vg.Distribution.Prms), 2)

	b := sim.Balances[0]
	chk.Int(tst, "interval", b.Interval, 2)
	chk.String(tst, b.Breakup[0].Dsd, "uniformBinary")
	chk.Int(tst, "nbinary", len(b.BinaryBreakup), 1)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. inconsistent data")

	head := `{"solver":{"dt":0.1,"tf":1}, "phases":[{"name":"air","type":"dispersed"},{"name":"water","type":"continuous"}],`
	for i, tail := range []string{
		`"balances":[{"name":"b","continuous":"air"}]}`,
		`"balances":[{"name":"b","continuous":"water"}], "velocitygroups":[{"phase":"water","balance":"b","ngroups":1,"dmin":1,"dmax":1}]}`,
		`"balances":[{"name":"b","continuous":"water"}], "velocitygroups":[{"phase":"air","balance":"c","ngroups":1,"dmin":1,"dmax":1}]}`,
		`"balances":[{"name":"b","continuous":"water"}], "velocitygroups":[{"phase":"air","balance":"b"}]}`,
		`"balances":[{"name":"b","continuous":"water"},{"name":"b","continuous":"water"}]}`,
	} {
		_, err := ReadSimReader(strings.NewReader(head+tail), "json", "bad")
		if err == nil {
			tst.Errorf("case %d: ReadSimReader should have failed\n", i)
			continue
		}
		io.Pforan("%d: %v\n", i, err)
	}

	_, err := ReadSimReader(strings.NewReader(`{"solver":{"dt":0}, "phases":[{"name":"a","type":"dispersed"}]}`), "json", "bad")
	if err == nil {
		tst.Errorf("zero time step should have failed\n")
	}
}
