// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shape implements models for the shape of the particles of a size class. Shapes give
// the surface-to-volume ratio κ and the collisional diameter of the class and may transport a
// secondary property through the events of the population balance.
package shape

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Group is a size class owning a shape
type Group interface {
	pop.Group
	Shape() Model
}

// Model defines a shape model. The Add* functions receive the volume-fraction birth rate su of
// the owning class caused by one event type and the classes the particles come from.
type Model interface {
	Init(prms dbf.Params, g Group, ncells int) error // initialises model
	GetPrms(example bool) dbf.Params                 // gets (an example) of parameters
	Kappa() []float64                                // surface area per unit volume [1/m]
	D() []float64                                    // collisional diameter [m]
	Precompute()                                     // stores the state at the beginning of a solve
	Reset()                                          // clears accumulated sources
	AddCoalescence(su []float64, fj, fk Group)       // particles from coalescence of j and k
	AddBreakup(su []float64, fj Group)               // fragments of parent j
	AddDrift(su []float64, fu Group)                 // particles drifting from class u
	Solve(eng pop.Engine, sp []float64) error        // transports the property; sp is the class' sink
	Correct()                                        // updates derived fields
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'shape' database. Valid names: %v", name, Names())
	}
	return allocator(), nil
}

// Names returns the sorted names of available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
