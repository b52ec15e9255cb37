// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Tracer implements spherical particles carrying a passive property p; e.g. age or the mass
// fraction of a species. The property is volume-averaged when particles coalesce and is
// inherited from the parent and from the class of origin in breakup and drift. Classes whose
// shape carries no tracer contribute p = 0.
type Tracer struct {
	Secondary

	// parameters
	P0 float64 // initial property

	// internal
	g     Group
	p     []float64 // property
	q     []float64 // fraction × p
	kappa []float64 // 6/d
	d     []float64 // sphere diameter
	zero  []float64 // property of classes without tracer
}

// add model to factory
func init() {
	allocators["tracer"] = func() Model { return new(Tracer) }
}

// Init initialises model
func (o *Tracer) Init(prms dbf.Params, g Group, ncells int) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "p0":
			o.P0 = p.V
		default:
			return chk.Err("tracer: parameter named %q is incorrect\n", p.N)
		}
	}
	o.g = g
	o.p = utl.Vals(ncells, o.P0)
	o.q = make([]float64, ncells)
	o.kappa = utl.Vals(ncells, 6.0/g.Dsph())
	o.d = utl.Vals(ncells, g.Dsph())
	o.zero = make([]float64, ncells)
	o.InitSecondary(ncells, o.property)
	return
}

// GetPrms gets (an example) of parameters
func (o Tracer) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "p0", V: 1},
	}
}

// P returns the property
func (o *Tracer) P() []float64 { return o.p }

// Kappa returns 6/d
func (o *Tracer) Kappa() []float64 { return o.kappa }

// D returns the sphere diameter
func (o *Tracer) D() []float64 { return o.d }

// Precompute stores fraction × p at the beginning of a solve
func (o *Tracer) Precompute() {
	f := o.g.F()
	for c := range o.q {
		o.q[c] = f[c] * o.p[c]
	}
}

// Solve transports fraction × p with the class sink sp
//  ∂(α·f·p)/∂t = Src − sp·f·p
func (o *Tracer) Solve(eng pop.Engine, sp []float64) (err error) {
	err = eng.Solve(o.q, o.g.Phase(), o.Src, sp)
	if err != nil {
		return
	}
	f := o.g.F()
	for c := range o.q {
		if f[c] > 1e-12 {
			o.p[c] = o.q[c] / f[c]
		}
	}
	return
}

// Correct does nothing
func (o *Tracer) Correct() {}

// property returns the property of class g
func (o *Tracer) property(g Group) []float64 {
	if t, ok := g.Shape().(*Tracer); ok {
		return t.p
	}
	return o.zero
}
