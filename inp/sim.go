// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON, YAML or TOML file
package inp

import (
	goio "io"
	"math"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/viper"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gopbe
	NCells  int    `json:"ncells"`  // number of (identical) cells of the homogeneous mixture
	Verbose bool   `json:"verbose"` // show messages
}

// SolverData holds data for the time integration
type SolverData struct {
	Type  string  `json:"type"`  // engine type: "explicit" or "implicit"
	Dt    float64 `json:"dt"`    // time step
	Tf    float64 `json:"tf"`    // final time
	DtOut float64 `json:"dtout"` // time step for output; 0 => every step
}

// PhaseData holds the state of one phase. The state is the same on all cells.
type PhaseData struct {
	Name      string    `json:"name"`      // unique name
	Type      string    `json:"type"`      // "dispersed" or "continuous"
	Alpha     float64   `json:"alpha"`     // volume fraction
	Rho       float64   `json:"rho"`       // density
	Nu        float64   `json:"nu"`        // kinematic viscosity (continuous)
	Epsilon   float64   `json:"epsilon"`   // turbulent dissipation rate (continuous)
	Expansion float64   `json:"expansion"` // expansion rate of the particles (1/v)dv/dt (dispersed)
	U         []float64 `json:"u"`         // velocity
}

// SizeGroupData holds data of one size group
type SizeGroupData struct {
	Name  string  `json:"name"`  // name; e.g. "f1"
	D     float64 `json:"d"`     // sphere-equivalent diameter
	Value float64 `json:"value"` // initial fraction
}

// DistributionData holds an initial size distribution
type DistributionData struct {
	Type        string     `json:"type"`        // "lognormal", "normal", "uniform" or "tabulated"
	Prms        dbf.Params `json:"prms"`        // parameters of the distribution
	Npts        int        `json:"npts"`        // number of sampling points
	Dmin        float64    `json:"dmin"`        // min sampled diameter; 0 => smallest group
	Dmax        float64    `json:"dmax"`        // max sampled diameter; 0 => largest group
	VolumeBased bool       `json:"volumebased"` // the density refers to volume instead of number
	D           []float64  `json:"d"`           // tabulated diameters
	Q           []float64  `json:"q"`           // tabulated densities
}

// VelocityGroupData holds data of the velocity group carried by one dispersed phase
type VelocityGroupData struct {
	Phase        string            `json:"phase"`        // carrier phase
	Balance      string            `json:"balance"`      // population balance
	Shape        string            `json:"shape"`        // shape model; default = "spherical"
	ShapePrms    dbf.Params        `json:"shapeprms"`    // parameters of shape model
	Normalise    bool              `json:"normalise"`    // rescale fractions to sum to one after each solve
	SizeGroups   []*SizeGroupData  `json:"sizegroups"`   // size groups
	Dmin         float64           `json:"dmin"`         // generate geometric groups from Dmin ...
	Dmax         float64           `json:"dmax"`         // ... to Dmax ...
	Ngroups      int               `json:"ngroups"`      // ... with Ngroups groups
	Distribution *DistributionData `json:"distribution"` // initial distribution; overrides values
	Initial      string            `json:"initial"`      // kind of initial field; e.g. "singleGroupFraction"; overrides values
	InitialPrms  dbf.Params        `json:"initialprms"`  // parameters of the initial field
}

// ModelData holds data of one submodel
type ModelData struct {
	Type    string     `json:"type"`    // model name
	Prms    dbf.Params `json:"prms"`    // parameters
	Dsd     string     `json:"dsd"`     // daughter size distribution (breakup only)
	DsdPrms dbf.Params `json:"dsdprms"` // parameters of daughter size distribution
}

// SourceData holds data of a constant model source
type SourceData struct {
	Origin string  `json:"origin"` // phase the volume comes from; "" => external
	Phase  string  `json:"phase"`  // phase of the receiving velocity group
	Rate   float64 `json:"rate"`   // volumetric rate [1/s]; negative => extraction
	D      float64 `json:"d"`      // diameter of the created particles
}

// BalanceData holds data of one population balance
type BalanceData struct {
	Name          string        `json:"name"`          // unique name
	Continuous    string        `json:"continuous"`    // continuous phase
	Coalescence   []*ModelData  `json:"coalescence"`   // coalescence models
	Breakup       []*ModelData  `json:"breakup"`       // breakup models
	BinaryBreakup []*ModelData  `json:"binarybreakup"` // binary breakup models
	Sources       []*SourceData `json:"sources"`       // model sources
	Interval      int           `json:"interval"`      // update sources every Interval iterations
	SkipFirst     bool          `json:"skipfirst"`     // do not force the computation of sources on the first iteration
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data           Data                 `json:"data"`           // global data
	Solver         SolverData           `json:"solver"`         // time integration data
	Phases         []*PhaseData         `json:"phases"`         // phases
	VelocityGroups []*VelocityGroupData `json:"velocitygroups"` // velocity groups
	Balances       []*BalanceData       `json:"balances"`       // population balances

	// derived
	Key      string                // simulation key; e.g. mysim01.sim => mysim01
	DirOut   string                // directory to save results
	PhaseMap map[string]*PhaseData // phases by name
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "implicit"
}

// PostProcess performs a post-processing of the just read json file
func (o *SolverData) PostProcess() (err error) {
	if o.Dt <= 0 {
		return chk.Err("time step must be positive. dt = %g is invalid", o.Dt)
	}
	if o.Tf < 0 {
		return chk.Err("final time must be non-negative. tf = %g is invalid", o.Tf)
	}
	if o.DtOut < o.Dt {
		o.DtOut = o.Dt
	}
	return
}

// GenerateSizeGroups generates groups with diameters in geometric progression. Does nothing if
// size groups are given.
func (o *VelocityGroupData) GenerateSizeGroups() (err error) {
	if len(o.SizeGroups) > 0 {
		return
	}
	if o.Ngroups < 1 || o.Dmin <= 0 || o.Dmax < o.Dmin {
		return chk.Err("velocity group of phase %q: size groups must be given or generated with 0 < dmin <= dmax and ngroups > 0", o.Phase)
	}
	r := 1.0
	if o.Ngroups > 1 {
		r = math.Pow(o.Dmax/o.Dmin, 1.0/float64(o.Ngroups-1))
	}
	for i := 0; i < o.Ngroups; i++ {
		o.SizeGroups = append(o.SizeGroups, &SizeGroupData{Name: io.Sf("f%d", i), D: o.Dmin * math.Pow(r, float64(i))})
	}
	return
}

// Balance returns the balance named name or nil
func (o *Simulation) Balance(name string) *BalanceData {
	for _, b := range o.Balances {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// PostProcess checks the consistency of all data and sets derived values
func (o *Simulation) PostProcess() (err error) {

	// global data
	if o.Data.NCells < 1 {
		o.Data.NCells = 1
	}
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopbe/" + o.Key
	}

	// solver
	if o.Solver.Type == "" {
		o.Solver.SetDefault()
	}
	err = o.Solver.PostProcess()
	if err != nil {
		return
	}

	// phases
	if len(o.Phases) == 0 {
		return chk.Err("at least one phase must be given")
	}
	o.PhaseMap = make(map[string]*PhaseData)
	for _, p := range o.Phases {
		if _, ok := o.PhaseMap[p.Name]; ok {
			return chk.Err("phase named %q is duplicated", p.Name)
		}
		switch p.Type {
		case "dispersed", "continuous":
		default:
			return chk.Err("type of phase %q must be \"dispersed\" or \"continuous\". %q is invalid", p.Name, p.Type)
		}
		o.PhaseMap[p.Name] = p
	}

	// balances
	names := make(map[string]bool)
	for _, b := range o.Balances {
		if names[b.Name] {
			return chk.Err("balance named %q is duplicated", b.Name)
		}
		names[b.Name] = true
		cont, ok := o.PhaseMap[b.Continuous]
		if !ok || cont.Type != "continuous" {
			return chk.Err("balance %q: continuous phase %q is not available", b.Name, b.Continuous)
		}
		if b.Interval < 1 {
			b.Interval = 1
		}
		for _, m := range b.Breakup {
			if m.Dsd == "" {
				m.Dsd = "uniformBinary"
			}
		}
		for _, s := range b.Sources {
			if s.Origin != "" {
				if _, ok := o.PhaseMap[s.Origin]; !ok {
					return chk.Err("balance %q: origin phase %q of source is not available", b.Name, s.Origin)
				}
			}
		}
	}

	// velocity groups
	for _, vg := range o.VelocityGroups {
		p, ok := o.PhaseMap[vg.Phase]
		if !ok || p.Type != "dispersed" {
			return chk.Err("velocity group: dispersed phase %q is not available", vg.Phase)
		}
		if !names[vg.Balance] {
			return chk.Err("velocity group of phase %q: balance %q is not available", vg.Phase, vg.Balance)
		}
		if vg.Shape == "" {
			vg.Shape = "spherical"
		}
		if vg.Initial != "" && vg.Distribution != nil {
			return chk.Err("velocity group of phase %q: initial field %q and initial distribution cannot be given together", vg.Phase, vg.Initial)
		}
		err = vg.GenerateSizeGroups()
		if err != nil {
			return
		}
	}
	return
}

// ReadSim reads all simulation data from a .sim file. The format is deduced from the extension;
// files with the .sim extension are JSON files.
func ReadSim(simfilepath string) (o *Simulation, err error) {
	v := viper.New()
	v.SetConfigFile(simfilepath)
	if strings.ToLower(filepath.Ext(simfilepath)) == ".sim" {
		v.SetConfigType("json")
	}
	err = v.ReadInConfig()
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}
	return decode(v, io.FnKey(filepath.Base(simfilepath)))
}

// ReadSimReader reads simulation data from r. format is "json", "yaml" or "toml".
func ReadSimReader(r goio.Reader, format, key string) (o *Simulation, err error) {
	v := viper.New()
	v.SetConfigType(format)
	err = v.ReadConfig(r)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation data:\n%v", err)
	}
	return decode(v, key)
}

// decode unmarshals and post-processes
func decode(v *viper.Viper, key string) (o *Simulation, err error) {
	o = new(Simulation)
	o.Solver.SetDefault()
	err = v.Unmarshal(o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation data:\n%v", err)
	}
	o.Key = key
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("ReadSim: inconsistent simulation data:\n%v", err)
	}
	return
}
