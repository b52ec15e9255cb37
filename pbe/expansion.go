// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

// precomputeExpansion computes the drift of particles between neighbouring groups due to the
// expansion rate e = (1/v)·dv/dt of the carrier phases. Growing particles (e > 0) move to the next
// group and shrinking particles (e < 0) to the previous one with upwind pivot fluxes
//  growth:     (number)  e·α·f/(xᵢ₊₁ − xᵢ)
//  shrinkage:  (number) −e·α·f/(xᵢ − xᵢ₋₁)
// The in-place change e·α·f is supplied by the continuity of the carrier phase. The first and last
// groups keep the particles that cannot leave the range of pivots.
func (o *Model) precomputeExpansion() {
	for i, g := range o.Groups {
		o.expRate[i] = g.vg.phase.ExpansionRate()
	}
	for i, fi := range o.Groups {
		for _, u := range []int{i - 1, i + 1} {
			if u < 0 || u >= len(o.Groups) {
				continue
			}
			fu := o.Groups[u]
			if !o.expansionFrom(o.birth, i, u, nil) {
				continue
			}
			o.addBirth(i, o.birth)
			o.transfer(o.expDmdtfs, fu, fi, 1, o.birth)
			fi.shape.AddDrift(o.birth, fu)
		}
		sp := o.Sp[i]
		for c, v := range o.ExpansionSp(i) {
			sp[c] += v
		}
	}
}

// expansionFrom computes in su the volume birth of group i due to particles drifting from the
// neighbour u. If flds is given, flds[u] replaces the fraction of u. Returns false if no particle
// can drift from u to i.
func (o *Model) expansionFrom(su []float64, i, u int, flds [][]float64) (drift bool) {
	fi, fu := o.Groups[i], o.Groups[u]
	e := o.expRate[u]
	if e == nil {
		e = fu.vg.phase.ExpansionRate()
	}
	alpha := fu.vg.phase.Alpha()
	f := fu.Fld
	if flds != nil {
		f = flds[u]
	}
	for c := range su {
		su[c] = 0
		if u < i && e[c] > 0 {
			su[c] = fi.x * e[c] * alpha[c] * f[c] / (fi.x - fu.x)
			drift = true
		}
		if u > i && e[c] < 0 {
			su[c] = -fi.x * e[c] * alpha[c] * f[c] / (fu.x - fi.x)
			drift = true
		}
	}
	return
}

// ExpansionSu returns the volume birth of group i due to particles drifting from both
// neighbours. If flds is given, flds[u] replaces the fraction of each neighbour u; e.g. to
// transport a secondary property.
func (o *Model) ExpansionSu(i int, flds [][]float64) (su []float64) {
	su = make([]float64, o.ncells)
	tmp := make([]float64, o.ncells)
	for _, u := range []int{i - 1, i + 1} {
		if u < 0 || u >= len(o.Groups) {
			continue
		}
		if o.expansionFrom(tmp, i, u, flds) {
			for c := range su {
				su[c] += tmp[c]
			}
		}
	}
	return
}

// ExpansionSp returns the implicit coefficient of the particles of group i leaving to its
// neighbours
//  e > 0:  α·e·xᵢ₊₁/(xᵢ₊₁ − xᵢ)
//  e < 0: −α·e·xᵢ₋₁/(xᵢ − xᵢ₋₁)
func (o *Model) ExpansionSp(i int) (sp []float64) {
	sp = make([]float64, o.ncells)
	fi := o.Groups[i]
	e := o.expRate[i]
	if e == nil {
		e = fi.vg.phase.ExpansionRate()
	}
	alpha := fi.vg.phase.Alpha()
	n := len(o.Groups)
	for c := range sp {
		if e[c] > 0 && i < n-1 {
			xu := o.Groups[i+1].x
			sp[c] = alpha[c] * e[c] * xu / (xu - fi.x)
		}
		if e[c] < 0 && i > 0 {
			xd := o.Groups[i-1].x
			sp[c] = -alpha[c] * e[c] * xd / (fi.x - xd)
		}
	}
	return
}
