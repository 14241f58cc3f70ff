// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// LogNormal is the distribution of exp(X) where X is normally
// distributed with mean Mu and standard deviation Sigma.
type LogNormal struct {
	Mu, Sigma float64
}

// NewLogNormal returns the log-normal distribution whose logarithm
// has mean mu and standard deviation sigma.
func NewLogNormal(mu, sigma float64) (LogNormal, error) {
	n, err := NewNormal(mu, sigma)
	if err != nil {
		return LogNormal{}, err
	}
	return LogNormal(n), nil
}

// LogNormalFit estimates a log-normal distribution from the mean and
// standard deviation of log(xs). Every x must be positive.
func LogNormalFit(xs []float64) (LogNormal, error) {
	logs := make([]float64, len(xs))
	for i, x := range xs {
		if !(x > 0) {
			return LogNormal{}, invalid("log-normal sample value %v", x)
		}
		logs[i] = math.Log(x)
	}
	n, err := NormalFit(logs)
	if err != nil {
		return LogNormal{}, err
	}
	return LogNormal(n), nil
}

func (d LogNormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return Normal(d).PDF(math.Log(x)) / x
}

func (d LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return Normal(d).CDF(math.Log(x))
}

func (d LogNormal) Quantile(p float64) float64 {
	return math.Exp(Normal(d).Quantile(p))
}

func (d LogNormal) Bounds() (float64, float64) {
	lo, hi := Normal(d).Bounds()
	return math.Exp(lo), math.Exp(hi)
}

func (d LogNormal) Mean() float64 {
	return math.Exp(d.Mu + d.Sigma*d.Sigma/2)
}
