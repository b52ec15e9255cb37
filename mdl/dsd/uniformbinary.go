// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// UniformBinary implements two daughters with uniformly distributed volume: β = 2/xₖ
type UniformBinary struct{}

// add model to factory
func init() {
	allocators["uniformBinary"] = func() Model { return new(UniformBinary) }
}

// Init initialises model
func (o *UniformBinary) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("uniformBinary: model has no parameters. %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o UniformBinary) GetPrms(example bool) dbf.Params {
	return nil
}

// Beta computes the daughter density
func (o UniformBinary) Beta(v, xk float64) float64 {
	if v <= 0 || v > xk {
		return 0
	}
	return 2.0 / xk
}
