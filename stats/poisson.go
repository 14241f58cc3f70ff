// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Poisson is a Poisson distribution with rate Lambda.
type Poisson struct {
	// Lambda is the expected number of events. Lambda >= 0.
	Lambda float64
}

// NewPoisson returns the Poisson distribution with rate lambda.
func NewPoisson(lambda float64) (Poisson, error) {
	if !(lambda >= 0) || math.IsInf(lambda, 1) {
		return Poisson{}, invalid("Poisson rate %v", lambda)
	}
	return Poisson{Lambda: lambda}, nil
}

// PoissonFit estimates a Poisson distribution from a sample of counts
// by the method of moments: Lambda is the sample mean.
func PoissonFit(xs []float64) (Poisson, error) {
	m, err := Mean(xs)
	if err != nil {
		return Poisson{}, err
	}
	return NewPoisson(m)
}

func (d Poisson) pmf(k int) float64 {
	if k < 0 {
		return 0
	}
	if d.Lambda == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	lg, _ := math.Lgamma(float64(k + 1))
	return math.Exp(float64(k)*math.Log(d.Lambda) - d.Lambda - lg)
}

// PMF is the probability of exactly int(k) events.
func (d Poisson) PMF(k float64) float64 {
	return d.pmf(int(math.Floor(k)))
}

// CDF is the probability of int(k) or fewer events.
func (d Poisson) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if d.Lambda == 0 {
		return 1
	}
	return mathext.GammaIncRegComp(k+1, d.Lambda)
}

// Quantile accumulates PMF(k) upward from well below the mean until
// the sum reaches p.
func (d Poisson) Quantile(p float64) int {
	checkProb(p)
	return sumQuantile(d.pmf, d.Lambda, math.Sqrt(d.Lambda), math.MaxInt, p)
}

func (d Poisson) Step() float64 {
	return 1
}

func (d Poisson) Bounds() (float64, float64) {
	return 0, float64(d.Quantile(0.9999))
}

func (d Poisson) Mean() float64 {
	return d.Lambda
}

func (d Poisson) Variance() float64 {
	return d.Lambda
}
