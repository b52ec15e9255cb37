// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/spf13/cobra"

	"github.com/cpmech/gopbe/bcs"
	"github.com/cpmech/gopbe/box"
	"github.com/cpmech/gopbe/mdl/binary"
	"github.com/cpmech/gopbe/mdl/breakup"
	"github.com/cpmech/gopbe/mdl/coalescence"
	"github.com/cpmech/gopbe/mdl/dsd"
	"github.com/cpmech/gopbe/mdl/shape"
)

// family holds the names of the models of one kind and gives their parameters
type family struct {
	key   string
	names func() []string
	prms  func(name string) dbf.Params
}

var families = []family{
	{"coalescence", coalescence.Names, func(name string) dbf.Params {
		m, _ := coalescence.New(name)
		return m.GetPrms(true)
	}},
	{"breakup", breakup.Names, func(name string) dbf.Params {
		m, _ := breakup.New(name)
		return m.GetPrms(true)
	}},
	{"dsd", dsd.Names, func(name string) dbf.Params {
		m, _ := dsd.New(name)
		return m.GetPrms(true)
	}},
	{"binarybreakup", binary.Names, func(name string) dbf.Params {
		m, _ := binary.New(name)
		return m.GetPrms(true)
	}},
	{"shape", shape.Names, func(name string) dbf.Params {
		m, _ := shape.New(name)
		return m.GetPrms(true)
	}},
	{"initial", bcs.Names, func(name string) dbf.Params {
		m, _ := bcs.New(name)
		return m.GetPrms(true)
	}},
	{"solver", box.SolverNames, nil},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the available models.",
	Long: `models lists the names of the models that can be used in simulation files, grouped by the
key of the simulation file where they are given. With --prms, example parameters are shown.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withPrms := Cfg.GetBool("prms")
		for _, f := range families {
			cmd.Printf("%s:\n", f.key)
			for _, name := range f.names() {
				cmd.Printf("  %s\n", name)
				if withPrms && f.prms != nil {
					for _, p := range f.prms(name) {
						cmd.Printf("    {\"n\":%q, \"v\":%g}\n", p.N, p.V)
					}
				}
			}
		}
	},
	DisableAutoGenTag: true,
}
