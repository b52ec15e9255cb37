// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LaakkonenAlopaeusAittamaa implements the beta-like binary distribution
//  β = (60/xₖ)·u²·(1-u)²   with   u = v/xₖ
//  References:
//   [1] Laakkonen M, Alopaeus V and Aittamaa J (2006) Validation of bubble breakage, coalescence
//       and mass transfer models for gas-liquid dispersion in agitated vessel.
//       Chemical Engineering Science, 61(1), 218-228
type LaakkonenAlopaeusAittamaa struct{}

// add model to factory
func init() {
	allocators["LaakkonenAlopaeusAittamaa"] = func() Model { return new(LaakkonenAlopaeusAittamaa) }
}

// Init initialises model
func (o *LaakkonenAlopaeusAittamaa) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("LaakkonenAlopaeusAittamaa: model has no parameters. %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LaakkonenAlopaeusAittamaa) GetPrms(example bool) dbf.Params {
	return nil
}

// Beta computes the daughter density
func (o LaakkonenAlopaeusAittamaa) Beta(v, xk float64) float64 {
	if v <= 0 || v > xk {
		return 0
	}
	u := v / xk
	return 60.0 / xk * u * u * (1 - u) * (1 - u)
}
