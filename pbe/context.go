// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Context collects the velocity groups of all balances while the phases are being built.
// Registration is closed by Freeze; afterwards each balance retrieves its groups exactly once.
type Context struct {
	frozen    bool
	groups    map[string][]*VelocityGroup
	retrieved map[string]bool
}

// NewContext returns a new open context
func NewContext() *Context {
	return &Context{groups: make(map[string][]*VelocityGroup), retrieved: make(map[string]bool)}
}

// Register adds a velocity group to balance
func (o *Context) Register(balance string, vg *VelocityGroup) error {
	if o.frozen {
		return chk.Err("cannot register velocity group of phase %q with balance %q: registration is closed", vg.Phase().Name(), balance)
	}
	o.groups[balance] = append(o.groups[balance], vg)
	return nil
}

// Freeze closes registration
func (o *Context) Freeze() {
	o.frozen = true
}

// Groups returns the velocity groups of balance
func (o *Context) Groups(balance string) ([]*VelocityGroup, error) {
	if !o.frozen {
		return nil, chk.Err("cannot retrieve velocity groups of balance %q: registration is still open", balance)
	}
	vgs, ok := o.groups[balance]
	if !ok {
		return nil, chk.Err("no velocity group is registered with balance %q. Registered balances: %v", balance, o.Balances())
	}
	if o.retrieved[balance] {
		return nil, chk.Err("velocity groups of balance %q have already been retrieved", balance)
	}
	o.retrieved[balance] = true
	return vgs, nil
}

// Balances returns the sorted names of balances with registered groups
func (o *Context) Balances() (names []string) {
	for name := range o.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
