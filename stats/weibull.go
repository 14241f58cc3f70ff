// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Weibull is a Weibull distribution with shape K and scale Lambda.
type Weibull struct {
	K, Lambda float64
}

// NewWeibull returns the Weibull distribution with shape k and scale
// lambda.
func NewWeibull(k, lambda float64) (Weibull, error) {
	if !(k > 0) || math.IsInf(k, 1) || !(lambda > 0) || math.IsInf(lambda, 1) {
		return Weibull{}, invalid("Weibull parameters k=%v lambda=%v", k, lambda)
	}
	return Weibull{K: k, Lambda: lambda}, nil
}

// WeibullFit estimates a Weibull distribution from a sample of
// positive values by least squares on the Weibull plot.
//
// The i'th order statistic of the N values is assigned the median
// rank F = (i-0.3)/(N+0.4), and ln(-ln(1-F)) is regressed on ln(x).
// The slope is K and the intercept is -K ln(Lambda).
func WeibullFit(xs []float64) (Weibull, error) {
	if len(xs) < 2 {
		return Weibull{}, invalid("Weibull fit needs at least 2 values, got %d", len(xs))
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	lx := make([]float64, len(s))
	ly := make([]float64, len(s))
	for i, x := range s {
		if !(x > 0) {
			return Weibull{}, invalid("Weibull sample value %v", x)
		}
		lx[i] = math.Log(x)
		ly[i] = math.Log(-math.Log1p(-plottingPosition(i+1, len(s))))
	}
	k, c, err := LSR(lx, ly)
	if err != nil {
		return Weibull{}, err
	}
	return NewWeibull(k, math.Exp(-c/k))
}

func (d Weibull) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	z := x / d.Lambda
	return d.K / d.Lambda * math.Pow(z, d.K-1) * math.Exp(-math.Pow(z, d.K))
}

func (d Weibull) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.Lambda, d.K))
}

func (d Weibull) Quantile(p float64) float64 {
	checkProb(p)
	return d.Lambda * math.Pow(-math.Log1p(-p), 1/d.K)
}

func (d Weibull) Bounds() (float64, float64) {
	return 0, d.Quantile(0.999)
}
