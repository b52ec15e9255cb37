// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

// ModelSource defines a source of particles computed outside the balance; e.g. nucleation
type ModelSource interface {
	Origin() string         // phase the volume comes from; "" => external
	Phase() string          // phase of the receiving velocity group
	Rate(rate, d []float64) // computes the volumetric rate [1/s] and the particle diameter per cell
}

// ConstantSource implements a source with constant rate and particle diameter
type ConstantSource struct {
	Orig   string  // origin phase
	Target string  // receiving phase
	R      float64 // volumetric rate [1/s]; negative => extraction
	Dn     float64 // diameter of created particles
}

// Origin returns the origin phase
func (o *ConstantSource) Origin() string { return o.Orig }

// Phase returns the receiving phase
func (o *ConstantSource) Phase() string { return o.Target }

// Rate sets constant values
func (o *ConstantSource) Rate(rate, d []float64) {
	for c := range rate {
		rate[c], d[c] = o.R, o.Dn
	}
}

// precomputeModelSources adds the contributions of all model sources. Created particles are
// allocated to the groups of the receiving velocity group with ηᵥ restricted to its range;
// extraction removes volume from each group of the range in proportion to its fraction.
func (o *Model) precomputeModelSources() {
	if len(o.modelSources) == 0 {
		return
	}
	rate := make([]float64, o.ncells)
	d := make([]float64, o.ncells)
	for s, src := range o.modelSources {
		first, last := o.srcRange[s][0], o.srcRange[s][1]
		src.Rate(rate, d)
		phase := o.Groups[first].vg.phase
		alpha := phase.Alpha()
		for c := range rate {
			if rate[c] >= 0 {
				v := SphereVolume(d[c])
				for i := first; i <= last; i++ {
					o.Su[i][c] += o.Pivots.EtaVRange(i, first, last, v) * rate[c]
				}
				continue
			}
			total := 0.0
			for i := first; i <= last; i++ {
				total += alpha[c] * o.Groups[i].Fld[c]
			}
			if total <= 0 {
				continue
			}
			for i := first; i <= last; i++ {
				o.Sp[i][c] -= rate[c] * alpha[c] / total
			}
		}
		if src.Origin() != "" && src.Origin() != phase.Name() {
			rho := phase.Rho()
			for c := range rate {
				o.mass[c] = rho[c] * rate[c]
			}
			o.srcDmdtfs.Add(src.Origin(), phase.Name(), o.mass)
		}
	}
}
