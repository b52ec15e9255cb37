// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpmech/gopbe/box"
	"github.com/cpmech/gopbe/inp"
)

var runCmd = &cobra.Command{
	Use:   "run [simfile]",
	Short: "Run a simulation.",
	Long: `run solves all population balances of a simulation file up to the final time. One
record per balance and output time is logged and, unless --save=false, saved in the output directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := newMain(cmd, args)
		if err != nil {
			return err
		}
		err = analysis.Run()
		if err != nil {
			return err
		}
		if Cfg.GetBool("save") {
			analysis.SaveHistory()
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var checkCmd = &cobra.Command{
	Use:   "check [simfile]",
	Short: "Check a simulation file.",
	Long: `check reads a simulation file and allocates all phases, velocity groups and balances
without solving.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := newMain(cmd, args)
		if err != nil {
			return err
		}
		for _, mdl := range analysis.Balances {
			cmd.Printf("balance %q: %d velocity groups, %d size groups, %d coalescence pairs, %d binary breakup pairs\n",
				mdl.Name, len(mdl.VelGroups), len(mdl.Groups), len(mdl.CoalescencePairs()), len(mdl.BinaryBreakupPairs()))
		}
		cmd.Printf("simulation %q is consistent\n", analysis.Sim.Key)
		return nil
	},
	DisableAutoGenTag: true,
}

// newMain reads the simulation file and allocates the homogeneous mixture
func newMain(cmd *cobra.Command, args []string) (*box.Main, error) {
	path, err := configPath(args)
	if err != nil {
		return nil, err
	}
	sim, err := inp.ReadSim(path)
	if err != nil {
		return nil, err
	}
	if solver := Cfg.GetString("solver"); solver != "" {
		sim.Solver.Type = solver
	}
	log := logrus.New()
	log.Out = cmd.OutOrStdout()
	verbose := Cfg.GetBool("verbose")
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return box.NewMain(sim, verbose, log)
}
