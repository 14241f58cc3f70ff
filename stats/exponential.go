// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Exponential is an exponential distribution with rate Rate.
type Exponential struct {
	Rate float64
}

// NewExponential returns the exponential distribution with the given
// rate.
func NewExponential(rate float64) (Exponential, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return Exponential{}, invalid("exponential rate %v", rate)
	}
	return Exponential{Rate: rate}, nil
}

// ExponentialFit estimates an exponential distribution from xs. Rate
// is the reciprocal of the sample mean.
func ExponentialFit(xs []float64) (Exponential, error) {
	m, err := Mean(xs)
	if err != nil {
		return Exponential{}, err
	}
	return NewExponential(1 / m)
}

func (d Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Rate * math.Exp(-d.Rate*x)
}

func (d Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-d.Rate * x)
}

func (d Exponential) Quantile(p float64) float64 {
	checkProb(p)
	return -math.Log1p(-p) / d.Rate
}

func (d Exponential) Bounds() (float64, float64) {
	return 0, 7 / d.Rate
}

func (d Exponential) Mean() float64 {
	return 1 / d.Rate
}
