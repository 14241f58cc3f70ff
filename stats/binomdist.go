// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Binomial is a binomial distribution.
type Binomial struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// NewBinomial returns the binomial distribution of n trials with
// success probability p.
func NewBinomial(n int, p float64) (Binomial, error) {
	if n < 0 {
		return Binomial{}, invalid("binomial trial count %d", n)
	}
	if !(0 <= p && p <= 1) {
		return Binomial{}, invalid("binomial probability %v", p)
	}
	return Binomial{N: n, P: p}, nil
}

// BinomialFit estimates the success probability of a binomial
// distribution with n trials from a sample of success counts:
// P = mean/n.
func BinomialFit(n int, xs []float64) (Binomial, error) {
	if n <= 0 {
		return Binomial{}, invalid("binomial trial count %d", n)
	}
	m, err := Mean(xs)
	if err != nil {
		return Binomial{}, err
	}
	return NewBinomial(n, m/float64(n))
}

func (d Binomial) pmf(k int) float64 {
	if k < 0 || k > d.N {
		return 0
	}
	c := math.Exp(lchoose(d.N, k))
	if c < 1<<52 {
		// Small coefficients are integers; round off the
		// Lgamma error.
		c = math.Round(c)
	}
	pmf := c * math.Pow(d.P, float64(k)) * math.Pow(1-d.P, float64(d.N-k))
	if math.IsNaN(pmf) || math.IsInf(pmf, 0) {
		// The factors overflow separately for large N.
		return math.Exp(lchoose(d.N, k) + float64(k)*math.Log(d.P) + float64(d.N-k)*math.Log1p(-d.P))
	}
	return pmf
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d Binomial) PMF(k float64) float64 {
	return d.pmf(int(math.Floor(k)))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d Binomial) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}
	switch d.P {
	case 0:
		return 1
	case 1:
		return 0
	}
	return mathext.RegIncBeta(float64(d.N-ki), k+1, 1-d.P)
}

// Quantile accumulates PMF(k) upward from well below the mean until
// the sum reaches p.
func (d Binomial) Quantile(p float64) int {
	checkProb(p)
	return sumQuantile(d.pmf, d.Mean(), math.Sqrt(d.Variance()), d.N, p)
}

func (d Binomial) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d Binomial) Step() float64 {
	return 1
}

func (d Binomial) Mean() float64 {
	return float64(d.N) * d.P
}

func (d Binomial) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d Binomial) NormalApprox() Normal {
	return Normal{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
