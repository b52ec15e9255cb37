// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package breakup implements models for the total breakup frequency of a size class.
// The distribution of the fragments is given by a daughter size distribution (package dsd).
package breakup

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// Model defines the breakup frequency g(i) [1/s]
type Model interface {
	Init(prms dbf.Params) error                                  // initialises model
	GetPrms(example bool) dbf.Params                             // gets (an example) of parameters
	AddToRate(rate []float64, fi pop.Group, cont pop.Continuous) // adds g(i) per cell to rate
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'breakup' database. Valid names: %v", name, Names())
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
