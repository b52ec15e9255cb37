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

// SingleGroupFraction puts all particles into one group
type SingleGroupFraction struct {
	Index int // index of the group within the velocity group
}

// add field to factory
func init() {
	allocators["singleGroupFraction"] = func() Field { return new(SingleGroupFraction) }
}

// Init initialises field
func (o *SingleGroupFraction) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "index":
			o.Index = int(p.V)
			if float64(o.Index) != p.V || o.Index < 0 {
				return chk.Err("singleGroupFraction: index must be a non-negative integer. %g is invalid\n", p.V)
			}
		default:
			return chk.Err("singleGroupFraction: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o SingleGroupFraction) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "index", V: 0},
	}
}

// Check checks whether the index refers to a group of vg
func (o SingleGroupFraction) Check(vg *pbe.VelocityGroup) error {
	if o.Index >= len(vg.Groups) {
		return chk.Err("singleGroupFraction: index %d is out of range; velocity group of phase %q has %d groups", o.Index, vg.Phase().Name(), len(vg.Groups))
	}
	return nil
}

// Value sets 1 for the selected group and 0 otherwise
func (o SingleGroupFraction) Value(vals []float64, g *pbe.SizeGroup) {
	v := 0.0
	if g.Local() == o.Index {
		v = 1
	}
	for c := range vals {
		vals[c] = v
	}
}
