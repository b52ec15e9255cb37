// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gopbe/inp"
	"github.com/cpmech/gopbe/mdl/pop"
	"github.com/cpmech/gopbe/mdl/shape"
)

// VelocityGroup holds the size groups carried by one dispersed phase
type VelocityGroup struct {
	Balance   string       // name of balance
	Groups    []*SizeGroup // size groups ordered by volume
	Normalise bool         // rescale fractions to sum to one after each solve
	Verbose   bool         // show messages
	D32       []float64    // Sauter mean diameter per cell
	FSum      []float64    // sum of fractions per cell
	phase     pop.Dispersed
	first     int // index of first group within balance
}

// NewVelocityGroup allocates the size groups and shapes of a velocity group and registers it
// in the context
func NewVelocityGroup(ctx *Context, dat *inp.VelocityGroupData, phase pop.Dispersed, ncells int) (o *VelocityGroup, err error) {
	if len(dat.SizeGroups) == 0 {
		return nil, chk.Err("velocity group of phase %q has no size groups", phase.Name())
	}
	o = &VelocityGroup{Balance: dat.Balance, Normalise: dat.Normalise, phase: phase}
	o.D32 = make([]float64, ncells)
	o.FSum = make([]float64, ncells)
	sum := 0.0
	for i, sd := range dat.SizeGroups {
		if sd.D <= 0 {
			return nil, chk.Err("size group %q of phase %q: diameter must be positive. d = %g is invalid", sd.Name, phase.Name(), sd.D)
		}
		if i > 0 && sd.D <= dat.SizeGroups[i-1].D {
			return nil, chk.Err("size groups of phase %q must be ordered by strictly increasing diameter. %q (d=%g) follows %q (d=%g)",
				phase.Name(), sd.Name, sd.D, dat.SizeGroups[i-1].Name, dat.SizeGroups[i-1].D)
		}
		if sd.Value < 0 {
			return nil, chk.Err("size group %q of phase %q: initial fraction must be non-negative. value = %g is invalid", sd.Name, phase.Name(), sd.Value)
		}
		sum += sd.Value
		g := &SizeGroup{Name: sd.Name, idx: i, local: i, dsph: sd.D, x: SphereVolume(sd.D), vg: o}
		g.Fld = make([]float64, ncells)
		for c := 0; c < ncells; c++ {
			g.Fld[c] = sd.Value
		}
		g.shape, err = shape.New(dat.Shape)
		if err != nil {
			return nil, err
		}
		err = g.shape.Init(dat.ShapePrms, g, ncells)
		if err != nil {
			return nil, chk.Err("shape of size group %q of phase %q:\n%v", sd.Name, phase.Name(), err)
		}
		o.Groups = append(o.Groups, g)
	}
	if dat.Distribution == nil && dat.Initial == "" && math.Abs(sum-1) > 1e-6 {
		return nil, chk.Err("initial fractions of the size groups of phase %q must sum up to one. sum = %g is inconsistent", phase.Name(), sum)
	}
	err = ctx.Register(dat.Balance, o)
	if err != nil {
		return nil, err
	}
	o.Correct()
	return
}

// Phase returns the carrier phase
func (o *VelocityGroup) Phase() pop.Dispersed { return o.phase }

// First returns the index of the first group within the balance
func (o *VelocityGroup) First() int { return o.first }

// Last returns the index of the last group within the balance
func (o *VelocityGroup) Last() int { return o.first + len(o.Groups) - 1 }

// Pivots returns the representative volumes of the groups
func (o *VelocityGroup) Pivots() (x Pivots) {
	x = make([]float64, len(o.Groups))
	for i, g := range o.Groups {
		x[i] = g.x
	}
	return
}

// PostSolve removes negative fractions and, if requested, rescales the fractions to sum to one
func (o *VelocityGroup) PostSolve() {
	maxdev := 0.0
	for c := range o.FSum {
		sum := 0.0
		for _, g := range o.Groups {
			if g.Fld[c] < 0 {
				g.Fld[c] = 0
			}
			sum += g.Fld[c]
		}
		maxdev = math.Max(maxdev, math.Abs(sum-1))
		if o.Normalise && sum > 0 {
			for _, g := range o.Groups {
				g.Fld[c] /= sum
			}
			sum = 1
		}
		o.FSum[c] = sum
	}
	if o.Verbose {
		io.Pf("> %s: max deviation of sum of fractions from one = %g\n", o.phase.Name(), maxdev)
	}
}

// Correct computes the sum of fractions and the Sauter mean diameter d32 = 6·Σf / Σ(f·κ)
func (o *VelocityGroup) Correct() {
	for _, g := range o.Groups {
		g.shape.Correct()
	}
	for c := range o.D32 {
		num, den := 0.0, 0.0
		for _, g := range o.Groups {
			num += g.Fld[c]
			den += g.Fld[c] * g.shape.Kappa()[c]
		}
		o.FSum[c] = num
		if den > 0 {
			o.D32[c] = 6.0 * num / den
		} else {
			o.D32[c] = o.Groups[0].dsph
		}
	}
}
