// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pbe implements a population balance of dispersed particles discretised into size
// classes with the fixed-pivot technique. The fraction fᵢ of each class satisfies
//
//   α·Dfᵢ/Dt = Suᵢ − Spᵢ·fᵢ
//
// where the explicit birth Su and the implicit death Sp come from coalescence, breakup, drift
// (expansion) and model sources. Number and volume are conserved by each event.
package pbe

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopbe/inp"
	"github.com/cpmech/gopbe/mdl/binary"
	"github.com/cpmech/gopbe/mdl/breakup"
	"github.com/cpmech/gopbe/mdl/coalescence"
	"github.com/cpmech/gopbe/mdl/dsd"
	"github.com/cpmech/gopbe/mdl/pop"
)

// Model implements the population balance of one set of velocity groups
type Model struct {

	// data
	Name      string // name of balance
	Verbose   bool   // show messages
	Interval  int    // sources are updated every Interval solves
	SkipFirst bool   // do not force the computation of sources on the first solve

	// groups
	Pivots    Pivots           // representative volumes of all groups
	Groups    []*SizeGroup     // all groups ordered by volume
	VelGroups []*VelocityGroup // velocity groups ordered by volume
	cont      pop.Continuous   // continuous phase
	ncells    int              // number of cells

	// submodels
	coalescence   []coalescence.Model
	breakup       []breakup.Model
	dsds          []dsd.Model     // daughter distribution of each breakup model
	nik           [][][]float64   // daughter allocation of each breakup model
	binaryBreakup []binary.Model
	modelSources  []ModelSource
	srcRange      [][2]int // first and last group receiving each source

	// topology
	V                  []float64   // boundaries of sections [ngroups+1]
	Delta              [][]float64 // width of section i available to daughters of j [ngroups][ngroups]
	coalescencePairs   [][2]int    // (j,k) with j ≤ k
	binaryBreakupPairs [][2]int    // (i,j): daughter i of parent j

	// sources
	Su [][]float64 // explicit birth [ngroups][ncells]
	Sp [][]float64 // implicit death coefficient [ngroups][ncells]

	// mass transfer
	dmdtfs    Dmdtfs // due to coalescence and breakup
	expDmdtfs Dmdtfs // due to expansion
	srcDmdtfs Dmdtfs // due to model sources

	// derived
	Alphas []float64   // total fraction of dispersed phases per cell
	Dsm    []float64   // mean Sauter diameter per cell
	U      [][]float64 // mean velocity of dispersed phases per cell

	// auxiliary
	counter int         // number of calls to updateSources
	rate    []float64   // rate of one event type
	events  []float64   // number of events per unit volume and time
	birth   []float64   // birth due to one event type
	mass    []float64   // mass transfer due to one event type
	ni, nj  []float64   // number concentrations
	expRate [][]float64 // expansion rate of each group
}

// New allocates a new population balance. The context must be frozen.
func New(ctx *Context, dat *inp.BalanceData, cont pop.Continuous, ncells int) (o *Model, err error) {

	// velocity groups
	vgs, err := ctx.Groups(dat.Name)
	if err != nil {
		return
	}
	if cont == nil {
		return nil, chk.Err("balance %q: continuous phase is required", dat.Name)
	}
	o = &Model{Name: dat.Name, Interval: dat.Interval, SkipFirst: dat.SkipFirst, cont: cont, ncells: ncells}
	if o.Interval < 1 {
		o.Interval = 1
	}
	o.VelGroups = append(o.VelGroups, vgs...)
	sort.SliceStable(o.VelGroups, func(i, j int) bool { return o.VelGroups[i].Groups[0].x < o.VelGroups[j].Groups[0].x })

	// flat list of groups
	for _, vg := range o.VelGroups {
		vg.first = len(o.Groups)
		for _, g := range vg.Groups {
			g.idx = len(o.Groups)
			if g.idx > 0 && g.x <= o.Groups[g.idx-1].x {
				prev := o.Groups[g.idx-1]
				return nil, chk.Err("balance %q: size groups must be ordered by strictly increasing volume. %q of phase %q (d=%g) follows %q of phase %q (d=%g)",
					dat.Name, g.Name, vg.phase.Name(), g.dsph, prev.Name, prev.vg.phase.Name(), prev.dsph)
			}
			o.Groups = append(o.Groups, g)
			o.Pivots = append(o.Pivots, g.x)
		}
	}

	// submodels
	for _, md := range dat.Coalescence {
		m, err := coalescence.New(md.Type)
		if err != nil {
			return nil, err
		}
		if err = m.Init(md.Prms); err != nil {
			return nil, chk.Err("balance %q: coalescence model %q:\n%v", dat.Name, md.Type, err)
		}
		o.coalescence = append(o.coalescence, m)
	}
	for _, md := range dat.Breakup {
		m, err := breakup.New(md.Type)
		if err != nil {
			return nil, err
		}
		if err = m.Init(md.Prms); err != nil {
			return nil, chk.Err("balance %q: breakup model %q:\n%v", dat.Name, md.Type, err)
		}
		name := md.Dsd
		if name == "" {
			name = "uniformBinary"
		}
		d, err := dsd.New(name)
		if err != nil {
			return nil, err
		}
		if err = d.Init(md.DsdPrms); err != nil {
			return nil, chk.Err("balance %q: daughter size distribution %q:\n%v", dat.Name, name, err)
		}
		o.breakup = append(o.breakup, m)
		o.dsds = append(o.dsds, d)
		o.nik = append(o.nik, dsd.Nik(d, o.Pivots))
	}
	for _, md := range dat.BinaryBreakup {
		m, err := binary.New(md.Type)
		if err != nil {
			return nil, err
		}
		if err = m.Init(md.Prms); err != nil {
			return nil, chk.Err("balance %q: binary breakup model %q:\n%v", dat.Name, md.Type, err)
		}
		o.binaryBreakup = append(o.binaryBreakup, m)
	}
	// topology
	o.calcDeltas()
	o.calcCoalescencePairs()
	o.calcBinaryBreakupPairs()

	// memory
	n := len(o.Groups)
	o.Su = make([][]float64, n)
	o.Sp = make([][]float64, n)
	o.expRate = make([][]float64, n)
	for i := 0; i < n; i++ {
		o.Su[i] = make([]float64, ncells)
		o.Sp[i] = make([]float64, ncells)
	}
	o.rate = make([]float64, ncells)
	o.events = make([]float64, ncells)
	o.birth = make([]float64, ncells)
	o.mass = make([]float64, ncells)
	o.ni = make([]float64, ncells)
	o.nj = make([]float64, ncells)
	o.Alphas = make([]float64, ncells)
	o.Dsm = make([]float64, ncells)
	o.U = make([][]float64, ncells)
	o.dmdtfs = make(Dmdtfs)
	o.expDmdtfs = make(Dmdtfs)
	o.srcDmdtfs = make(Dmdtfs)
	for i, a := range o.VelGroups {
		for _, b := range o.VelGroups[i+1:] {
			o.dmdtfs.Ensure(a.phase.Name(), b.phase.Name(), ncells)
			o.expDmdtfs.Ensure(a.phase.Name(), b.phase.Name(), ncells)
		}
	}

	// model sources
	for _, sd := range dat.Sources {
		err = o.AddSource(&ConstantSource{Orig: sd.Origin, Target: sd.Phase, R: sd.Rate, Dn: sd.D})
		if err != nil {
			return nil, err
		}
	}
	o.Correct()
	return
}

// AddSource adds a model source. The target velocity group is given by the name of its phase.
func (o *Model) AddSource(src ModelSource) error {
	for _, vg := range o.VelGroups {
		if vg.phase.Name() == src.Phase() {
			o.modelSources = append(o.modelSources, src)
			o.srcRange = append(o.srcRange, [2]int{vg.First(), vg.Last()})
			if src.Origin() != "" {
				o.srcDmdtfs.Ensure(src.Origin(), src.Phase(), o.ncells)
			}
			return nil
		}
	}
	return chk.Err("balance %q: source targets phase %q which carries no velocity group of this balance", o.Name, src.Phase())
}

// Continuous returns the continuous phase
func (o *Model) Continuous() pop.Continuous { return o.cont }

// Dmdtfs returns the mass transfer due to coalescence and breakup
func (o *Model) Dmdtfs() Dmdtfs { return o.dmdtfs }

// ExpansionDmdtfs returns the mass transfer due to drift between velocity groups
func (o *Model) ExpansionDmdtfs() Dmdtfs { return o.expDmdtfs }

// ModelSourceDmdtfs returns the mass transfer due to model sources
func (o *Model) ModelSourceDmdtfs() Dmdtfs { return o.srcDmdtfs }

// CoalescencePairs returns the pairs of groups that may coalesce
func (o *Model) CoalescencePairs() [][2]int { return o.coalescencePairs }

// BinaryBreakupPairs returns the pairs (daughter, parent) of binary breakup
func (o *Model) BinaryBreakupPairs() [][2]int { return o.binaryBreakupPairs }

// Solve advances the fractions of all groups using eng
func (o *Model) Solve(eng pop.Engine) (err error) {
	o.precompute()
	if o.updateSources() {
		o.sources()
	}
	for i, g := range o.Groups {
		err = eng.Solve(g.Fld, g.vg.phase, o.Su[i], o.Sp[i])
		if err != nil {
			return chk.Err("balance %q: cannot solve size group %q:\n%v", o.Name, g.Name, err)
		}
	}
	for i, g := range o.Groups {
		err = g.shape.Solve(eng, o.Sp[i])
		if err != nil {
			return chk.Err("balance %q: cannot solve shape of size group %q:\n%v", o.Name, g.Name, err)
		}
	}
	for _, vg := range o.VelGroups {
		vg.PostSolve()
	}
	o.Correct()
	return
}

// precompute refreshes data of submodels; done on every solve
func (o *Model) precompute() {
	for _, m := range o.coalescence {
		if p, ok := m.(pop.Precomputer); ok {
			p.Precompute()
		}
	}
	for _, m := range o.breakup {
		if p, ok := m.(pop.Precomputer); ok {
			p.Precompute()
		}
	}
	for _, m := range o.binaryBreakup {
		if p, ok := m.(pop.Precomputer); ok {
			p.Precompute()
		}
	}
	for _, g := range o.Groups {
		g.shape.Precompute()
	}
}

// updateSources tells whether the sources must be recomputed in this solve
func (o *Model) updateSources() (update bool) {
	if o.SkipFirst {
		update = (o.counter+1)%o.Interval == 0
	} else {
		update = o.counter%o.Interval == 0
	}
	o.counter++
	return
}

// sources recomputes all sources
func (o *Model) sources() {
	if o.Verbose {
		io.Pf("> %s: updating sources (solve #%d)\n", o.Name, o.counter)
	}
	o.reset()
	o.precomputeCoalescenceAndBreakup()
	o.precomputeExpansion()
	o.precomputeModelSources()
}

// reset zeroes all accumulated sources
func (o *Model) reset() {
	for i, g := range o.Groups {
		for c := 0; c < o.ncells; c++ {
			o.Su[i][c], o.Sp[i][c] = 0, 0
		}
		g.shape.Reset()
	}
	o.dmdtfs.Reset()
	o.expDmdtfs.Reset()
	o.srcDmdtfs.Reset()
}

// addBirth adds birth to the explicit source of group i
func (o *Model) addBirth(i int, birth []float64) {
	su := o.Su[i]
	for c := range birth {
		su[c] += birth[c]
	}
}

// transfer records the mass of the share 'fraction' of the volume birth of group fi coming
// from the particles of parent, if their phases differ
func (o *Model) transfer(dmdtfs Dmdtfs, parent, fi *SizeGroup, fraction float64, birth []float64) {
	from, to := parent.vg.phase, fi.vg.phase
	if from.Name() == to.Name() {
		return
	}
	rho := from.Rho()
	for c := range birth {
		o.mass[c] = rho[c] * birth[c] * fraction
	}
	dmdtfs.Add(from.Name(), to.Name(), o.mass)
}

// Correct computes the derived quantities: Sauter diameters, total dispersed fraction, mean
// Sauter diameter and mean velocity
func (o *Model) Correct() {
	for _, vg := range o.VelGroups {
		vg.Correct()
	}
	for c := 0; c < o.ncells; c++ {
		sa, sad := 0.0, 0.0
		var u []float64
		for _, vg := range o.VelGroups {
			a := vg.phase.Alpha()[c]
			sa += a
			sad += a / vg.D32[c]
			uc := vg.phase.U()[c]
			if u == nil {
				u = make([]float64, len(uc))
			}
			for k := range uc {
				u[k] += a * uc[k]
			}
		}
		o.Alphas[c] = sa
		if sad > 0 {
			o.Dsm[c] = sa / sad
		} else {
			o.Dsm[c] = o.VelGroups[0].D32[c]
		}
		if sa > 0 {
			for k := range u {
				u[k] /= sa
			}
		}
		o.U[c] = u
	}
}
