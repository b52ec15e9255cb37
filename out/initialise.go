// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopbe/pbe"
)

// Initialise sets the fractions of the groups of vg to the volume fractions of dist assigned to
// each group by ηᵥ, with the groups of vg as pivots. The fractions must sum up to one.
func Initialise(vg *pbe.VelocityGroup, dist *pbe.Distribution) (err error) {
	x := vg.Pivots()
	last := len(x) - 1
	for i, g := range vg.Groups {
		f := x.EtaVDist(i, 0, last, dist)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return chk.Err("initial fraction of group %d is not finite: f = %g", i, f)
		}
		for c := range g.Fld {
			g.Fld[c] = f
		}
	}
	vg.Correct()
	for c, sum := range vg.FSum {
		if math.Abs(sum-1) > 1e-8 {
			return chk.Err("initial fractions must sum up to one. Σf = %g in cell %d", sum, c)
		}
	}
	return
}
