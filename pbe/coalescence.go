// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

import "github.com/cpmech/gopbe/mdl/coalescence"

// calcCoalescencePairs finds all pairs (j,k), j ≤ k, that may coalesce
func (o *Model) calcCoalescencePairs() {
	o.coalescencePairs = nil
	if len(o.coalescence) == 0 {
		return
	}
	for j, fj := range o.Groups {
		for k := j; k < len(o.Groups); k++ {
			fk := o.Groups[k]
			active := false
			for _, m := range o.coalescence {
				p, ok := m.(coalescence.Pruner)
				if !ok || p.Active(fj, fk) {
					active = true
					break
				}
			}
			if active {
				o.coalescencePairs = append(o.coalescencePairs, [2]int{j, k})
			}
		}
	}
}

// coalescenceRate sums the kernels of all models for the pair (j,k)
func (o *Model) coalescenceRate(fj, fk *SizeGroup) {
	for c := range o.rate {
		o.rate[c] = 0
	}
	for _, m := range o.coalescence {
		m.AddToRate(o.rate, fj, fk, o.cont)
	}
}

// birthByCoalescence and deathByCoalescence of all pairs
//  events:  E = s·c·nⱼ·nₖ  with  s = ½ if j = k
//  birth:   Suᵢ += xᵢ·η(i, xⱼ+xₖ)·E
//  death:   Spⱼ += s·c·αⱼ·nₖ   and   Spₖ += s·c·αₖ·nⱼ
func (o *Model) coalescenceSources() {
	for _, pair := range o.coalescencePairs {
		j, k := pair[0], pair[1]
		fj, fk := o.Groups[j], o.Groups[k]
		o.coalescenceRate(fj, fk)
		s := 1.0
		if j == k {
			s = 0.5
		}
		aj, ak := fj.vg.phase.Alpha(), fk.vg.phase.Alpha()
		fj.N(o.ni)
		fk.N(o.nj)
		for c := range o.rate {
			o.events[c] = s * o.rate[c] * o.ni[c] * o.nj[c]
			o.Sp[j][c] += s * o.rate[c] * aj[c] * o.nj[c]
			o.Sp[k][c] += s * o.rate[c] * ak[c] * o.ni[c]
		}
		v := fj.x + fk.x
		lo, hi := o.Pivots.Bracket(v)
		for i := lo; i <= hi; i++ {
			eta := o.Pivots.Eta(i, v)
			if eta == 0 {
				continue
			}
			fi := o.Groups[i]
			for c := range o.birth {
				o.birth[c] = fi.x * eta * o.events[c]
			}
			o.addBirth(i, o.birth)
			o.transfer(o.dmdtfs, fj, fi, fj.x/v, o.birth)
			o.transfer(o.dmdtfs, fk, fi, fk.x/v, o.birth)
			fi.shape.AddCoalescence(o.birth, fj, fk)
		}
	}
}
