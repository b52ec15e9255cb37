// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcs implements fields prescribed on the size groups of a velocity group; e.g. the
// initial fractions or the fractions entering through an inlet
package bcs

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/pbe"
)

// Field computes the fraction of a size group from its index within the velocity group
type Field interface {
	Init(prms dbf.Params) error             // initialises field
	GetPrms(example bool) dbf.Params        // gets (an example) of parameters
	Check(vg *pbe.VelocityGroup) error      // checks whether the field fits vg
	Value(vals []float64, g *pbe.SizeGroup) // sets the fraction of g per cell
}

// New returns a new field
func New(name string) (fld Field, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("field %q is not available in 'bcs' database. Valid names: %v", name, Names())
	}
	return allocator(), nil
}

// Names returns the sorted names of available fields
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Apply sets the fractions of all groups of vg and updates the derived quantities
func Apply(fld Field, vg *pbe.VelocityGroup) (err error) {
	err = fld.Check(vg)
	if err != nil {
		return
	}
	for _, g := range vg.Groups {
		fld.Value(g.Fld, g)
	}
	vg.Correct()
	return
}

// allocators holds all available fields
var allocators = map[string]func() Field{}
