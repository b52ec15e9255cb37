// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Spherical implements spherical particles: κ = 6/d and the collisional diameter is d
type Spherical struct {
	kappa []float64
	d     []float64
}

// add model to factory
func init() {
	allocators["spherical"] = func() Model { return new(Spherical) }
}

// Init initialises model
func (o *Spherical) Init(prms dbf.Params, g Group, ncells int) (err error) {
	if len(prms) > 0 {
		return chk.Err("spherical: model has no parameters. %q is incorrect\n", prms[0].N)
	}
	d := g.Dsph()
	o.d = utl.Vals(ncells, d)
	o.kappa = utl.Vals(ncells, 6.0/d)
	return
}

// GetPrms gets (an example) of parameters
func (o Spherical) GetPrms(example bool) dbf.Params { return nil }

// Kappa returns 6/d
func (o *Spherical) Kappa() []float64 { return o.kappa }

// D returns the sphere diameter
func (o *Spherical) D() []float64 { return o.d }

func (o *Spherical) Precompute()                               {}
func (o *Spherical) Reset()                                    {}
func (o *Spherical) AddCoalescence(su []float64, fj, fk Group) {}
func (o *Spherical) AddBreakup(su []float64, fj Group)         {}
func (o *Spherical) AddDrift(su []float64, fu Group)           {}
func (o *Spherical) Solve(eng pop.Engine, sp []float64) error  { return nil }
func (o *Spherical) Correct()                                  {}
