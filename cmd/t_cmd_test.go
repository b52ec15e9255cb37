// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	Root.SetOut(buf)
	Root.SetErr(buf)
	Root.SetArgs(args)
	err := Root.Execute()
	return buf.String(), err
}

func Test_cmd01(t *testing.T) {
	res, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "gopbe v"+Version+"\n", res)
}

func Test_cmd02(t *testing.T) {
	res, err := execute("models", "--prms")
	require.NoError(t, err)
	for _, name := range []string{
		"coalescence:", "constant", "hydrodynamic", "turbulentShear",
		"breakup:", "powerLaw", "exponential",
		"dsd:", "uniformBinary", "LaakkonenAlopaeusAittamaa",
		"binarybreakup:", "powerLawUniformBinary",
		"shape:", "spherical", "fractal",
		"initial:", "singleGroupFraction", "nucleation",
		"solver:", "explicit", "implicit",
	} {
		assert.Contains(t, res, name)
	}
	assert.Contains(t, res, `{"n":"C", "v":1e-12}`)
}

func Test_cmd03(t *testing.T) {
	res, err := execute("check", "../inp/data/fiveclasses.sim")
	require.NoError(t, err)
	assert.Contains(t, res, `balance "bubbles": 1 velocity groups, 5 size groups, 15 coalescence pairs, 0 binary breakup pairs`)
	assert.Contains(t, res, `simulation "fiveclasses" is consistent`)

	_, err = execute("check", "../inp/data/missing.sim")
	assert.Error(t, err)
}

func Test_cmd04(t *testing.T) {
	res, err := execute("run", "--config", "../inp/data/fiveclasses.sim", "--solver", "implicit", "--save=false")
	require.NoError(t, err)
	assert.Contains(t, res, "msg=output")
	assert.Contains(t, res, "balance=bubbles")

	_, err = execute("run", "--config", "../inp/data/fiveclasses.sim", "--solver", "rk4", "--save=false")
	assert.Error(t, err)
}
