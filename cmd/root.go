// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is the version of gopbe
const Version = "1.0.0"

// Cfg holds the configuration given by flags and environment variables (GOPBE_var)
var Cfg *viper.Viper

// options holds the flags bound to Cfg
var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name:       "config",
			usage:      "simulation file (.sim, .json, .yaml or .toml)",
			shorthand:  "c",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name:       "verbose",
			usage:      "show messages",
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name:       "solver",
			usage:      "overrides the solver type of the simulation file; e.g. explicit",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name:       "save",
			usage:      "save the history of all balances in the output directory",
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name:       "prms",
			usage:      "show example parameters of each model",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{modelsCmd.Flags()},
		},
	}

	Cfg = viper.New()
	Cfg.SetEnvPrefix("GOPBE")
	Cfg.AutomaticEnv()

	for _, option := range options {
		set := option.flagsets[0]
		switch val := option.defaultVal.(type) {
		case string:
			set.StringP(option.name, option.shorthand, val, option.usage)
		case bool:
			set.BoolP(option.name, option.shorthand, val, option.usage)
		default:
			chk.Panic("invalid default value of flag %q", option.name)
		}
		Cfg.BindPFlag(option.name, set.Lookup(option.name))
	}

	// link the commands together
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(checkCmd)
	Root.AddCommand(modelsCmd)
}

// Root is the main command
var Root = &cobra.Command{
	Use:   "gopbe",
	Short: "A population balance solver.",
	Long: `gopbe solves population balances of dispersed particles (bubbles, drops) discretised into
size groups with the fixed-pivot technique. Coalescence, breakup, drift between velocity groups and
model sources are accounted for.

The simulation file is given with the --config flag or the GOPBE_CONFIG environment variable.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("gopbe v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

// configPath returns the simulation file given by the first argument or by the config option
func configPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if path := Cfg.GetString("config"); path != "" {
		return path, nil
	}
	return "", chk.Err("simulation file must be given as argument or with the --config flag")
}
