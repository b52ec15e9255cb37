// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

import (
	"github.com/cpmech/gopbe/mdl/pop"
	"github.com/cpmech/gopbe/mdl/shape"
)

// SizeGroup is a size class: particles of one velocity group with representative volume x
type SizeGroup struct {
	Name  string    // name; e.g. "f1"
	Fld   []float64 // fraction of the carrier phase per cell
	idx   int       // index within balance
	local int       // index within velocity group
	dsph  float64   // sphere-equivalent diameter
	x     float64   // representative volume
	vg    *VelocityGroup
	shape shape.Model
}

// Index returns the index within the balance
func (o *SizeGroup) Index() int { return o.idx }

// Local returns the index within the velocity group
func (o *SizeGroup) Local() int { return o.local }

// X returns the representative volume
func (o *SizeGroup) X() float64 { return o.x }

// Dsph returns the sphere-equivalent diameter
func (o *SizeGroup) Dsph() float64 { return o.dsph }

// D returns the collisional diameter given by the shape
func (o *SizeGroup) D() []float64 { return o.shape.D() }

// F returns the fraction field
func (o *SizeGroup) F() []float64 { return o.Fld }

// Phase returns the carrier phase
func (o *SizeGroup) Phase() pop.Dispersed { return o.vg.phase }

// Shape returns the shape model
func (o *SizeGroup) Shape() shape.Model { return o.shape }

// VelocityGroup returns the owning velocity group
func (o *SizeGroup) VelocityGroup() *VelocityGroup { return o.vg }

// N computes the number concentration αf/x [1/m³] per cell
func (o *SizeGroup) N(res []float64) {
	alpha := o.vg.phase.Alpha()
	for c := range res {
		res[c] = alpha[c] * o.Fld[c] / o.x
	}
}
