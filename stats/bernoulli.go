// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Bernoulli is a Bernoulli distribution: X is 1 with probability P
// and 0 otherwise.
type Bernoulli struct {
	// P is the probability of success. 0 <= P <= 1.
	P float64
}

// NewBernoulli returns the Bernoulli distribution with success
// probability p.
func NewBernoulli(p float64) (Bernoulli, error) {
	if !(0 <= p && p <= 1) {
		return Bernoulli{}, invalid("Bernoulli probability %v", p)
	}
	return Bernoulli{P: p}, nil
}

// BernoulliFit estimates a Bernoulli distribution from a sample of
// 0s and 1s. P is the sample mean.
func BernoulliFit(xs []float64) (Bernoulli, error) {
	for _, x := range xs {
		if x != 0 && x != 1 {
			return Bernoulli{}, invalid("Bernoulli sample value %v", x)
		}
	}
	m, err := Mean(xs)
	if err != nil {
		return Bernoulli{}, err
	}
	return Bernoulli{P: m}, nil
}

func (d Bernoulli) PMF(k float64) float64 {
	switch math.Floor(k) {
	case 0:
		return 1 - d.P
	case 1:
		return d.P
	}
	return 0
}

func (d Bernoulli) CDF(k float64) float64 {
	if k < 0 {
		return 0
	} else if k < 1 {
		return 1 - d.P
	}
	return 1
}

func (d Bernoulli) Quantile(p float64) int {
	checkProb(p)
	if p <= 1-d.P {
		return 0
	}
	return 1
}

func (d Bernoulli) Step() float64 {
	return 1
}

func (d Bernoulli) Bounds() (float64, float64) {
	return 0, 1
}

func (d Bernoulli) Mean() float64 {
	return d.P
}

func (d Bernoulli) Variance() float64 {
	return d.P * (1 - d.P)
}
