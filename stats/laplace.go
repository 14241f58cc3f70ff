// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Laplace is a Laplace (double exponential) distribution with location
// Mu and scale Scale.
type Laplace struct {
	Mu, Scale float64
}

// NewLaplace returns the Laplace distribution with location mu and
// scale b.
func NewLaplace(mu, b float64) (Laplace, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || !(b > 0) || math.IsInf(b, 1) {
		return Laplace{}, invalid("Laplace parameters mu=%v scale=%v", mu, b)
	}
	return Laplace{Mu: mu, Scale: b}, nil
}

// LaplaceFit estimates a Laplace distribution from xs. Mu is the
// sample median and Scale is the mean absolute deviation from it.
func LaplaceFit(xs []float64) (Laplace, error) {
	med, err := Median(xs)
	if err != nil {
		return Laplace{}, err
	}
	dev := make([]float64, len(xs))
	for i, x := range xs {
		dev[i] = math.Abs(x - med)
	}
	b, err := Mean(dev)
	if err != nil {
		return Laplace{}, err
	}
	if b == 0 {
		return Laplace{}, ErrSamplesEqual
	}
	return NewLaplace(med, b)
}

func (d Laplace) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-d.Mu)/d.Scale) / (2 * d.Scale)
}

func (d Laplace) CDF(x float64) float64 {
	if x < d.Mu {
		return math.Exp((x-d.Mu)/d.Scale) / 2
	}
	return 1 - math.Exp(-(x-d.Mu)/d.Scale)/2
}

func (d Laplace) Quantile(p float64) float64 {
	checkProb(p)
	if p <= 0.5 {
		return d.Mu + d.Scale*math.Log(2*p)
	}
	return d.Mu - d.Scale*math.Log(2-2*p)
}

func (d Laplace) Bounds() (float64, float64) {
	const scales = 6
	return d.Mu - scales*d.Scale, d.Mu + scales*d.Scale
}
