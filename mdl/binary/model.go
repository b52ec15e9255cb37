// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package binary implements models for binary breakup; i.e. the rate at which a parent of class j
// splits into a daughter of class i and its complement xⱼ - xᵢ
package binary

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Model defines the binary breakup rate b(i,j) [1/(m³·s)]; i.e. the breakup frequency of one
// parent j per unit volume of the smaller daughter i
type Model interface {
	Init(prms dbf.Params) error                                      // initialises model
	GetPrms(example bool) dbf.Params                                 // gets (an example) of parameters
	AddToRate(rate []float64, fi, fj pop.Group, cont pop.Continuous) // adds b(i,j) per cell to rate
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'binaryBreakup' database. Valid names: %v", name, Names())
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
