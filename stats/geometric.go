// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Geometric is the distribution of the number of failures before the
// first success in independent Bernoulli trials with success
// probability P. Its support is {0, 1, 2, ...}.
type Geometric struct {
	// P is the probability of success in each trial. 0 < P <= 1.
	P float64
}

// NewGeometric returns the geometric distribution with success
// probability p.
func NewGeometric(p float64) (Geometric, error) {
	if !(0 < p && p <= 1) {
		return Geometric{}, invalid("geometric probability %v", p)
	}
	return Geometric{P: p}, nil
}

// GeometricFit estimates a geometric distribution from a sample of
// failure counts by the method of moments: P = 1/(1+mean).
func GeometricFit(xs []float64) (Geometric, error) {
	m, err := Mean(xs)
	if err != nil {
		return Geometric{}, err
	}
	if m < 0 {
		return Geometric{}, invalid("negative mean %v for geometric sample", m)
	}
	return NewGeometric(1 / (1 + m))
}

func (d Geometric) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return math.Pow(1-d.P, k) * d.P
}

func (d Geometric) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	return -math.Expm1((k + 1) * math.Log1p(-d.P))
}

// Quantile returns the smallest k with CDF(k) >= p. Quantile(1) is
// math.MaxInt since the support is unbounded, as is any quantile too
// large for an int.
func (d Geometric) Quantile(p float64) int {
	checkProb(p)
	if p == 0 || d.P == 1 {
		return 0
	}
	if p == 1 {
		return math.MaxInt
	}
	est := math.Max(0, math.Ceil(math.Log1p(-p)/math.Log1p(-d.P))-1)
	if est >= float64(math.MaxInt) {
		return math.MaxInt
	}
	k := int(est)
	if est > 1<<53 {
		// Neighboring k are not distinguishable as float64.
		return k
	}
	// Correct for round-off in the closed form.
	for i := 0; i < geometricCorrections && k > 0 && d.CDF(float64(k-1)) >= p; i++ {
		k--
	}
	for i := 0; i < geometricCorrections && d.CDF(float64(k)) < p; i++ {
		k++
	}
	return k
}

// geometricCorrections bounds the steps Quantile takes away from the
// closed-form estimate.
const geometricCorrections = 64

func (d Geometric) Step() float64 {
	return 1
}

func (d Geometric) Bounds() (float64, float64) {
	return 0, float64(d.Quantile(0.9999))
}

func (d Geometric) Mean() float64 {
	return (1 - d.P) / d.P
}

func (d Geometric) Variance() float64 {
	return (1 - d.P) / (d.P * d.P)
}
