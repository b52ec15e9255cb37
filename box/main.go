// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package box implements the solution of population balances in a homogeneous mixture; i.e.
// a set of identical cells without transport in space
package box

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"

	"github.com/cpmech/gopbe/bcs"
	"github.com/cpmech/gopbe/inp"
	"github.com/cpmech/gopbe/out"
	"github.com/cpmech/gopbe/pbe"
)

// Record holds the state of one balance at one output time; values are averaged over cells
type Record struct {
	Time    float64 // time
	Balance string  // name of balance
	Alpha   float64 // total dispersed fraction
	Dsm     float64 // mean Sauter diameter
	Number  float64 // number concentration of particles
}

// Main holds all data for a simulation of a homogeneous mixture
type Main struct {
	Sim       *inp.Simulation      // simulation data
	Phases    map[string]*Phase    // all phases
	VelGroups []*pbe.VelocityGroup // all velocity groups
	Balances  []*pbe.Model         // all population balances
	Solver    Solver               // time integration
	History   []*Record            // output records
	Log       logrus.FieldLogger   // logger of output records
	ShowMsg   bool                 // show messages
	moments   *out.Moments         // number of particles
}

// NewMain allocates all structures of the simulation
func NewMain(sim *inp.Simulation, verbose bool, log logrus.FieldLogger) (o *Main, err error) {

	// new Main object
	o = &Main{Sim: sim, Phases: make(map[string]*Phase), Log: log, ShowMsg: verbose}
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	ncells := sim.Data.NCells

	// phases
	for _, dat := range sim.Phases {
		o.Phases[dat.Name] = NewPhase(dat, ncells)
	}

	// velocity groups
	ctx := pbe.NewContext()
	for _, dat := range sim.VelocityGroups {
		vg, err := pbe.NewVelocityGroup(ctx, dat, o.Phases[dat.Phase], ncells)
		if err != nil {
			return nil, err
		}
		vg.Verbose = sim.Data.Verbose
		err = o.initialise(vg, dat)
		if err != nil {
			return nil, chk.Err("cannot initialise velocity group of phase %q:\n%v", dat.Phase, err)
		}
		o.VelGroups = append(o.VelGroups, vg)
	}
	ctx.Freeze()

	// balances
	for _, dat := range sim.Balances {
		mdl, err := pbe.New(ctx, dat, o.Phases[dat.Continuous], ncells)
		if err != nil {
			return nil, err
		}
		mdl.Verbose = sim.Data.Verbose
		o.Balances = append(o.Balances, mdl)
	}
	if o.ShowMsg {
		io.Pf("> %d phases, %d velocity groups and %d balances allocated\n", len(o.Phases), len(o.VelGroups), len(o.Balances))
	}

	// allocate solver
	if alloc, ok := allocators[sim.Solver.Type]; ok {
		o.Solver = alloc()
	} else {
		return nil, chk.Err("cannot find solver type named %q. Valid names: %v", sim.Solver.Type, SolverNames())
	}
	o.moments, err = out.NewMoments("number", "volume")
	return
}

// SolverNames returns the sorted names of available solvers
func SolverNames() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Run runs the simulation up to the final time
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running %s solver\n", o.Sim.Solver.Type)
	}

	// time loop
	t, tf, dt := 0.0, o.Sim.Solver.Tf, o.Sim.Solver.Dt
	nsteps := int(math.Ceil(tf/dt - 1e-8))
	nout := int(math.Max(1, math.Round(o.Sim.Solver.DtOut/dt)))
	o.output(t)
	for step := 1; step <= nsteps; step++ {
		tnew := math.Min(float64(step)*dt, tf)
		o.Solver.SetDt(tnew - t)
		for _, mdl := range o.Balances {
			err = mdl.Solve(o.Solver)
			if err != nil {
				return chk.Err("cannot solve at t = %g:\n%v", t, err)
			}
		}
		t = tnew
		if step%nout == 0 || step == nsteps {
			o.output(t)
		}
	}
	return
}

// SaveHistory writes the output records to a table in DirOut
func (o *Main) SaveHistory() {
	var b strings.Builder
	b.WriteString(io.Sf("%23s %12s %23s %23s %23s\n", "time", "balance", "alpha", "dsm", "number"))
	for _, r := range o.History {
		b.WriteString(io.Sf("%23.15e %12s %23.15e %23.15e %23.15e\n", r.Time, r.Balance, r.Alpha, r.Dsm, r.Number))
	}
	io.WriteStringToFileD(o.Sim.DirOut, o.Sim.Key+".txt", b.String())
	if o.ShowMsg {
		io.Pf("> History saved in %s/%s.txt\n", o.Sim.DirOut, o.Sim.Key)
	}
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// initialise sets the initial fractions of vg from an initial distribution or field, if any
func (o *Main) initialise(vg *pbe.VelocityGroup, dat *inp.VelocityGroupData) (err error) {
	switch {
	case dat.Distribution != nil:
		first, last := vg.Groups[0], vg.Groups[len(vg.Groups)-1]
		dist, err := pbe.ReadDistribution(dat.Distribution, first.Dsph(), last.Dsph())
		if err != nil {
			return err
		}
		return out.Initialise(vg, dist)
	case dat.Initial != "":
		fld, err := bcs.New(dat.Initial)
		if err != nil {
			return err
		}
		err = fld.Init(dat.InitialPrms)
		if err != nil {
			return err
		}
		return bcs.Apply(fld, vg)
	}
	return
}

// output records and logs the state of all balances
func (o *Main) output(t float64) {
	ncells := float64(o.Sim.Data.NCells)
	for _, mdl := range o.Balances {
		r := &Record{Time: t, Balance: mdl.Name}
		for c := range mdl.Alphas {
			r.Alpha += mdl.Alphas[c] / ncells
			r.Dsm += mdl.Dsm[c] / ncells
			r.Number += o.moments.Integer(mdl.Groups, c, 0) / ncells
		}
		o.History = append(o.History, r)
		o.Log.WithFields(logrus.Fields{
			"time":    t,
			"balance": r.Balance,
			"alpha":   r.Alpha,
			"dsm":     r.Dsm,
			"number":  r.Number,
		}).Info("output")
	}
}

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) {
	if !o.ShowMsg {
		return
	}
	if prevErr == nil {
		io.PfGreen("> Success\n")
		io.Pf("> CPU time = %v\n", time.Since(cputime))
	} else {
		io.PfRed("> Failed\n")
	}
}
