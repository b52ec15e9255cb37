// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

// precomputeCoalescenceAndBreakup computes the sources of all particle events
func (o *Model) precomputeCoalescenceAndBreakup() {
	o.coalescenceSources()
	o.breakupSources()
	o.binaryBreakupSources()
}

// calcDeltas computes the section boundaries
//  V₀ = x₀,  Vᵢ = (xᵢ₋₁ + xᵢ)/2,  Vₙ = xₙ₋₁
// and the width of section i available to the smaller daughter of parent j; i.e. the part of
// [Vᵢ, Vᵢ₊₁] below xⱼ/2
func (o *Model) calcDeltas() {
	n := len(o.Pivots)
	x := o.Pivots
	o.V = make([]float64, n+1)
	o.V[0] = x[0]
	for i := 1; i < n; i++ {
		o.V[i] = 0.5 * (x[i-1] + x[i])
	}
	o.V[n] = x[n-1]
	o.Delta = make([][]float64, n)
	for i := 0; i < n; i++ {
		o.Delta[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			h := 0.5 * x[j]
			switch {
			case h <= o.V[i]:
				o.Delta[i][j] = 0
			case h < o.V[i+1]:
				o.Delta[i][j] = h - o.V[i]
			default:
				o.Delta[i][j] = o.V[i+1] - o.V[i]
			}
		}
	}
}

// calcBinaryBreakupPairs finds all pairs (i,j) with non-zero section width
func (o *Model) calcBinaryBreakupPairs() {
	o.binaryBreakupPairs = nil
	if len(o.binaryBreakup) == 0 {
		return
	}
	for j := range o.Groups {
		for i := range o.Groups {
			if o.Delta[i][j] != 0 {
				o.binaryBreakupPairs = append(o.binaryBreakupPairs, [2]int{i, j})
			}
		}
	}
}

// breakupSources computes birthByBreakup and deathByBreakup
//  birth:  Suᵢ += xᵢ·nik[i][k]·gₖ·nₖ
//  death:  Spₖ += gₖ·αₖ
func (o *Model) breakupSources() {
	for m, bm := range o.breakup {
		nik := o.nik[m]
		for k, fk := range o.Groups {
			for c := range o.rate {
				o.rate[c] = 0
			}
			bm.AddToRate(o.rate, fk, o.cont)
			ak := fk.vg.phase.Alpha()
			fk.N(o.nj)
			for c := range o.rate {
				o.events[c] = o.rate[c] * o.nj[c]
				o.Sp[k][c] += o.rate[c] * ak[c]
			}
			for i := 0; i <= k; i++ {
				if nik[i][k] == 0 {
					continue
				}
				fi := o.Groups[i]
				for c := range o.birth {
					o.birth[c] = fi.x * nik[i][k] * o.events[c]
				}
				o.addBirth(i, o.birth)
				o.transfer(o.dmdtfs, fk, fi, 1, o.birth)
				fi.shape.AddBreakup(o.birth, fk)
			}
		}
	}
}

// binaryBreakupSources computes birthByBinaryBreakup and deathByBinaryBreakup
//  events:  E = b·Δᵢⱼ·nⱼ
//  birth:   Suᵢ += xᵢ·E   and   Suₖ += xₖ·η(k, xⱼ − xᵢ)·E
//  death:   Spⱼ += b·Δᵢⱼ·αⱼ
func (o *Model) binaryBreakupSources() {
	for _, pair := range o.binaryBreakupPairs {
		i, j := pair[0], pair[1]
		fi, fj := o.Groups[i], o.Groups[j]
		for c := range o.rate {
			o.rate[c] = 0
		}
		for _, m := range o.binaryBreakup {
			m.AddToRate(o.rate, fi, fj, o.cont)
		}
		delta := o.Delta[i][j]
		aj := fj.vg.phase.Alpha()
		fj.N(o.nj)
		for c := range o.rate {
			o.events[c] = o.rate[c] * delta * o.nj[c]
			o.Sp[j][c] += o.rate[c] * delta * aj[c]
		}

		// daughter in section i
		for c := range o.birth {
			o.birth[c] = fi.x * o.events[c]
		}
		o.addBirth(i, o.birth)
		o.transfer(o.dmdtfs, fj, fi, 1, o.birth)
		fi.shape.AddBreakup(o.birth, fj)

		// complement
		v := fj.x - fi.x
		lo, hi := o.Pivots.Bracket(v)
		for k := lo; k <= hi; k++ {
			eta := o.Pivots.Eta(k, v)
			if eta == 0 {
				continue
			}
			fk := o.Groups[k]
			for c := range o.birth {
				o.birth[c] = fk.x * eta * o.events[c]
			}
			o.addBirth(k, o.birth)
			o.transfer(o.dmdtfs, fj, fk, 1, o.birth)
			fk.shape.AddBreakup(o.birth, fj)
		}
	}
}
