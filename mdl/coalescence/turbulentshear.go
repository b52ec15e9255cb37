// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coalescence

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gopbe/mdl/pop"
)

// TurbulentShear implements the collision kernel of particles smaller than the Kolmogorov scale
//  c(i,j) = C·√(8π/15)·(rᵢ + rⱼ)³·√(ε/ν)
//  References:
//   [1] Saffman PG and Turner JS (1956) On the collision of drops in turbulent clouds.
//       Journal of Fluid Mechanics, 1(1), 16-30
type TurbulentShear struct {
	C float64 // collision efficiency
}

// add model to factory
func init() {
	allocators["turbulentShear"] = func() Model { return new(TurbulentShear) }
}

// Init initialises model
func (o *TurbulentShear) Init(prms dbf.Params) (err error) {
	o.C = 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "c":
			o.C = p.V
		default:
			return chk.Err("turbulentShear: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o TurbulentShear) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "C", V: 1.0},
	}
}

// AddToRate adds the kernel using the collisional diameters of both classes
func (o TurbulentShear) AddToRate(rate []float64, fi, fj pop.Group, cont pop.Continuous) {
	di, dj := fi.D(), fj.D()
	eps, nu := cont.Epsilon(), cont.Nu()
	coef := o.C * math.Sqrt(8.0*math.Pi/15.0)
	for c := range rate {
		if nu[c] <= 0 || eps[c] <= 0 {
			continue
		}
		r := 0.5 * (di[c] + dj[c])
		rate[c] += coef * r * r * r * math.Sqrt(eps[c]/nu[c])
	}
}
