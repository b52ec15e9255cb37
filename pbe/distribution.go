// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbe

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cpmech/gopbe/inp"
)

// SphereVolume returns the volume of the sphere of diameter d
func SphereVolume(d float64) float64 {
	return math.Pi * d * d * d / 6.0
}

// SphereDiameter returns the diameter of the sphere of volume x
func SphereDiameter(x float64) float64 {
	return math.Cbrt(6.0 * x / math.Pi)
}

// Distribution is a size distribution sampled at increasing diameters
type Distribution struct {
	D []float64 // diameters
	Q []float64 // number density per unit diameter; any scaling
}

// NewDistribution returns a sampled distribution. If volumeBased, q is a volume density and is
// converted to a number density.
func NewDistribution(d, q []float64, volumeBased bool) (o *Distribution, err error) {
	if len(d) < 2 || len(d) != len(q) {
		return nil, chk.Err("distribution needs at least two samples and one density per diameter. len(d)=%d, len(q)=%d", len(d), len(q))
	}
	o = &Distribution{D: make([]float64, len(d)), Q: make([]float64, len(d))}
	copy(o.D, d)
	for k := range d {
		if math.IsNaN(d[k]) || math.IsInf(d[k], 0) || d[k] <= 0 || (k > 0 && d[k] <= d[k-1]) {
			return nil, chk.Err("diameters of distribution must be positive and increasing. d[%d] = %g is invalid", k, d[k])
		}
		if math.IsNaN(q[k]) || math.IsInf(q[k], 0) || q[k] < 0 {
			return nil, chk.Err("densities of distribution must be finite and non-negative. q[%d] = %g is invalid", k, q[k])
		}
		o.Q[k] = q[k]
		if volumeBased {
			o.Q[k] /= SphereVolume(d[k])
		}
	}
	if integrate.Trapezoidal(o.D, o.Q) <= 0 {
		return nil, chk.Err("distribution has no particles in [%g, %g]: all densities are zero", d[0], d[len(d)-1])
	}
	return
}

// density is a continuous distribution of diameters
type density interface {
	Prob(x float64) float64
}

// SampleDistribution samples a parametric distribution with npts points in [dmin, dmax]
//  lognormal: dm (median diameter), sigma (standard deviation of ln(d))
//  normal:    mean, sd
//  uniform:   min, max
func SampleDistribution(name string, prms dbf.Params, dmin, dmax float64, npts int, volumeBased bool) (o *Distribution, err error) {
	if npts < 2 {
		npts = 101
	}
	if dmin <= 0 || dmax <= dmin {
		return nil, chk.Err("sampling range of distribution must satisfy 0 < dmin < dmax. [%g, %g] is invalid", dmin, dmax)
	}
	var pdf density
	switch name {
	case "lognormal":
		ln := distuv.LogNormal{Mu: math.NaN()}
		for _, p := range prms {
			switch strings.ToLower(p.N) {
			case "dm":
				if p.V <= 0 {
					return nil, chk.Err("lognormal: median diameter dm must be positive. dm = %g is invalid", p.V)
				}
				ln.Mu = math.Log(p.V)
			case "sigma":
				ln.Sigma = p.V
			default:
				return nil, chk.Err("lognormal: parameter named %q is incorrect\n", p.N)
			}
		}
		if math.IsNaN(ln.Mu) {
			return nil, chk.Err("lognormal: median diameter dm is missing")
		}
		if ln.Sigma <= 0 {
			return nil, chk.Err("lognormal: sigma must be given and positive. sigma = %g is invalid", ln.Sigma)
		}
		pdf = ln
	case "normal":
		nm := distuv.Normal{Mu: math.NaN()}
		for _, p := range prms {
			switch strings.ToLower(p.N) {
			case "mean":
				nm.Mu = p.V
			case "sd":
				nm.Sigma = p.V
			default:
				return nil, chk.Err("normal: parameter named %q is incorrect\n", p.N)
			}
		}
		if math.IsNaN(nm.Mu) {
			return nil, chk.Err("normal: mean diameter is missing")
		}
		if nm.Sigma <= 0 {
			return nil, chk.Err("normal: sd must be given and positive. sd = %g is invalid", nm.Sigma)
		}
		pdf = nm
	case "uniform":
		un := distuv.Uniform{Min: dmin, Max: dmax}
		for _, p := range prms {
			switch strings.ToLower(p.N) {
			case "min":
				un.Min = p.V
			case "max":
				un.Max = p.V
			default:
				return nil, chk.Err("uniform: parameter named %q is incorrect\n", p.N)
			}
		}
		if un.Min >= un.Max {
			return nil, chk.Err("uniform: min must be smaller than max. [%g, %g] is invalid", un.Min, un.Max)
		}
		pdf = un
	default:
		return nil, chk.Err("distribution %q is not available. Valid names: [lognormal normal uniform]", name)
	}
	d := utl.LinSpace(dmin, dmax, npts)
	q := make([]float64, npts)
	for k := range d {
		q[k] = pdf.Prob(d[k])
	}
	return NewDistribution(d, q, volumeBased)
}

// ReadDistribution builds the distribution described by input data. Unset sampling limits are
// taken from the given range of diameters.
func ReadDistribution(dat *inp.DistributionData, dmin, dmax float64) (*Distribution, error) {
	if dat.Type == "tabulated" {
		return NewDistribution(dat.D, dat.Q, dat.VolumeBased)
	}
	if dat.Dmin > 0 {
		dmin = dat.Dmin
	}
	if dat.Dmax > 0 {
		dmax = dat.Dmax
	}
	return SampleDistribution(dat.Type, dat.Prms, dmin, dmax, dat.Npts, dat.VolumeBased)
}
