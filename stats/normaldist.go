// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/yellowcub/Statistics/mathx"
)

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = Normal{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// NewNormal returns the normal distribution with mean mu and standard
// deviation sigma.
func NewNormal(mu, sigma float64) (Normal, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || !(sigma > 0) || math.IsInf(sigma, 1) {
		return Normal{}, invalid("normal parameters mu=%v sigma=%v", mu, sigma)
	}
	return Normal{Mu: mu, Sigma: sigma}, nil
}

// NormalFit estimates a normal distribution from the sample mean and
// sample standard deviation of xs.
func NormalFit(xs []float64) (Normal, error) {
	mu, err := Mean(xs)
	if err != nil {
		return Normal{}, err
	}
	sigma, err := StdDev(xs)
	if err != nil {
		return Normal{}, err
	}
	if sigma == 0 {
		return Normal{}, ErrSamplesEqual
	}
	return NewNormal(mu, sigma)
}

func (n Normal) PDF(x float64) float64 {
	z := x - n.Mu
	return math.Exp(-z*z/(2*n.Sigma*n.Sigma)) * invSqrt2Pi / n.Sigma
}

func (n Normal) CDF(x float64) float64 {
	return (1 + math.Erf((x-n.Mu)/(n.Sigma*math.Sqrt2))) / 2
}

// Quantile returns Mu + Sigma*sqrt(2)*erfinv(2p-1). It returns -inf
// and +inf where 2p-1 rounds to -1 and 1. A failure of erfinv to
// converge panics with an error wrapping ErrNoConvergence.
func (n Normal) Quantile(p float64) float64 {
	checkProb(p)
	y := 2*p - 1
	if y <= -1 {
		return -inf
	} else if y >= 1 {
		return inf
	}
	z, err := mathx.Erfinv(y)
	if err != nil {
		panic(err)
	}
	return n.Mu + n.Sigma*math.Sqrt2*z
}

func (n Normal) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

func (n Normal) Mean() float64 {
	return n.Mu
}

func (n Normal) Variance() float64 {
	return n.Sigma * n.Sigma
}
