// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coalescence implements models for the coalescence kernel of two size classes
package coalescence

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Model defines the coalescence kernel c(i,j) [m³/s]; i.e. the number of coalescence events
// per unit volume and time is c·nᵢ·nⱼ, with n the number concentration of each class
type Model interface {
	Init(prms dbf.Params) error                                      // initialises model
	GetPrms(example bool) dbf.Params                                 // gets (an example) of parameters
	AddToRate(rate []float64, fi, fj pop.Group, cont pop.Continuous) // adds c(i,j) per cell to rate
}

// Pruner is implemented by models whose kernel vanishes for some pairs of classes.
// Pairs reported as inactive are never visited by the population balance.
type Pruner interface {
	Active(fi, fj pop.Group) bool
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'coalescence' database. Valid names: %v", name, Names())
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
