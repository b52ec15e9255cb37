// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/pbe"
)

// Nucleation sets the fractions of particles of one diameter: the volume of the nuclei is shared
// by the two groups of the velocity group bracketing it, or is put in the edge group if the
// nuclei are out of range. The diameter may be given per cell by the host; e.g. the diameter
// passed to ModelSource.Rate
type Nucleation struct {
	D  float64   // diameter of nuclei
	Dc []float64 // diameter of nuclei per cell; overrides D if not nil
}

// add field to factory
func init() {
	allocators["nucleation"] = func() Field { return new(Nucleation) }
}

// Init initialises field
func (o *Nucleation) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "d":
			o.D = p.V
		default:
			return chk.Err("nucleation: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.D <= 0 {
		return chk.Err("nucleation: diameter must be positive. d = %g is invalid\n", o.D)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Nucleation) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "d", V: 1e-4},
	}
}

// SetDiameters sets the diameter of nuclei in each cell
func (o *Nucleation) SetDiameters(dc []float64) {
	o.Dc = dc
}

// Check checks the per-cell diameters, if any
func (o Nucleation) Check(vg *pbe.VelocityGroup) error {
	if o.Dc == nil {
		return nil
	}
	if len(o.Dc) != len(vg.FSum) {
		return chk.Err("nucleation: number of diameters must be equal to the number of cells. %d != %d\n", len(o.Dc), len(vg.FSum))
	}
	for c, d := range o.Dc {
		if d <= 0 {
			return chk.Err("nucleation: diameter must be positive. d[%d] = %g is invalid\n", c, d)
		}
	}
	return nil
}

// Value sets ηᵥ of the nuclei with the groups of the velocity group as pivots
func (o Nucleation) Value(vals []float64, g *pbe.SizeGroup) {
	x := g.VelocityGroup().Pivots()
	for c := range vals {
		d := o.D
		if o.Dc != nil {
			d = o.Dc[c]
		}
		vals[c] = x.EtaV(g.Local(), pbe.SphereVolume(d))
	}
}
