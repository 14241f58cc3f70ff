// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yellowcub/Statistics/stats"
)

// model is a distribution built by a family. Discrete quantiles are
// widened to float64 so every model can be sampled and tabulated the
// same way.
type model struct {
	dist     any
	quantile func(p float64) float64
}

func (m model) Quantile(p float64) float64 {
	return m.quantile(p)
}

func (m model) String() string {
	return fmt.Sprintf("%+v", m.dist)
}

func continuous[D stats.Quantiler[float64]](d D, err error) (model, error) {
	if err != nil {
		return model{}, err
	}
	return model{d, d.Quantile}, nil
}

func discrete[D stats.Quantiler[int]](d D, err error) (model, error) {
	if err != nil {
		return model{}, err
	}
	return model{d, func(p float64) float64 { return float64(d.Quantile(p)) }}, nil
}

// fitOptions carries the flags some families need to fit a sample.
type fitOptions struct {
	lo, hi float64
	trials int
	// points limits the CDF table of a ranked fit. Zero keeps
	// every point.
	points int
}

type family struct {
	// params names the parameters taken by build, in order.
	params []string
	// build is nil if the family can only be fit to data.
	build func(ps []float64) (model, error)
	fit   func(xs []float64, opts fitOptions) (model, error)
}

var families = map[string]family{
	"bernoulli": {
		params: []string{"p"},
		build:  func(ps []float64) (model, error) { return discrete(stats.NewBernoulli(ps[0])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return discrete(stats.BernoulliFit(xs)) },
	},
	"binomial": {
		params: []string{"n", "p"},
		build: func(ps []float64) (model, error) {
			if ps[0] != float64(int(ps[0])) {
				return model{}, fmt.Errorf("%w: binomial trials %v", stats.ErrInvalidArgument, ps[0])
			}
			return discrete(stats.NewBinomial(int(ps[0]), ps[1]))
		},
		fit: func(xs []float64, opts fitOptions) (model, error) {
			return discrete(stats.BinomialFit(opts.trials, xs))
		},
	},
	"geometric": {
		params: []string{"p"},
		build:  func(ps []float64) (model, error) { return discrete(stats.NewGeometric(ps[0])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return discrete(stats.GeometricFit(xs)) },
	},
	"poisson": {
		params: []string{"lambda"},
		build:  func(ps []float64) (model, error) { return discrete(stats.NewPoisson(ps[0])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return discrete(stats.PoissonFit(xs)) },
	},
	"normal": {
		params: []string{"mu", "sigma"},
		build:  func(ps []float64) (model, error) { return continuous(stats.NewNormal(ps[0], ps[1])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return continuous(stats.NormalFit(xs)) },
	},
	"lognormal": {
		params: []string{"mu", "sigma"},
		build:  func(ps []float64) (model, error) { return continuous(stats.NewLogNormal(ps[0], ps[1])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return continuous(stats.LogNormalFit(xs)) },
	},
	"laplace": {
		params: []string{"mu", "scale"},
		build:  func(ps []float64) (model, error) { return continuous(stats.NewLaplace(ps[0], ps[1])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return continuous(stats.LaplaceFit(xs)) },
	},
	"weibull": {
		params: []string{"k", "lambda"},
		build:  func(ps []float64) (model, error) { return continuous(stats.NewWeibull(ps[0], ps[1])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return continuous(stats.WeibullFit(xs)) },
	},
	"exponential": {
		params: []string{"rate"},
		build:  func(ps []float64) (model, error) { return continuous(stats.NewExponential(ps[0])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return continuous(stats.ExponentialFit(xs)) },
	},
	"uniform": {
		params: []string{"min", "max"},
		build:  func(ps []float64) (model, error) { return continuous(stats.NewUniform(ps[0], ps[1])) },
		fit:    func(xs []float64, _ fitOptions) (model, error) { return continuous(stats.UniformFit(xs)) },
	},
	"kde": {
		fit: func(xs []float64, _ fitOptions) (model, error) {
			return continuous(stats.KDE{}.From(stats.Sample{Xs: xs}))
		},
	},
	"ranked": {
		fit: func(xs []float64, opts fitOptions) (model, error) {
			r, err := stats.NewRanked(xs, opts.lo, opts.hi)
			if err == nil && opts.points > 0 {
				r, err = r.Compress(opts.points)
			}
			return continuous(r, err)
		},
	},
}

func familyNames() string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupFamily(name string) (family, error) {
	f, ok := families[strings.ToLower(name)]
	if !ok {
		return family{}, fmt.Errorf("unknown family %q (known: %s)", name, familyNames())
	}
	return f, nil
}

// buildModel constructs a family from its parameters.
func buildModel(name string, ps []float64) (model, error) {
	f, err := lookupFamily(name)
	if err != nil {
		return model{}, err
	}
	if f.build == nil {
		return model{}, fmt.Errorf("family %s must be fit to a sample", name)
	}
	if len(ps) != len(f.params) {
		return model{}, fmt.Errorf("family %s takes parameters (%s), got %d", name, strings.Join(f.params, ", "), len(ps))
	}
	return f.build(ps)
}

// fitModel fits a family to xs.
func fitModel(name string, xs []float64, opts fitOptions) (model, error) {
	f, err := lookupFamily(name)
	if err != nil {
		return model{}, err
	}
	return f.fit(xs, opts)
}
