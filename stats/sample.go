// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample is a collection of unweighted data points.
//
// The summary methods return NaN where the corresponding function
// (Mean, StdDev, ...) would return an error.
type Sample struct {
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Weight returns the number of data points in s.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Sum returns the sum of the data points in s.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

func (s Sample) Mean() float64 {
	m, _ := Mean(s.Xs)
	return m
}

func (s Sample) Variance() float64 {
	v, _ := Variance(s.Xs)
	return v
}

func (s Sample) StdDev() float64 {
	sd, _ := StdDev(s.Xs)
	return sd
}

// Bounds returns the minimum and maximum values of s. If s is empty,
// both are NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Quantile returns the sample value X at which q*len(s.Xs) of the
// samples are <= X. This uses interpolation method R8 from Hyndman
// and Fan (1996). q outside [0, 1] returns the sample bounds.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	n := float64(len(s.Xs))
	h := (n+1.0/3)*q + 1.0/3
	if h <= 1 {
		return s.Xs[0]
	} else if h >= n {
		return s.Xs[len(s.Xs)-1]
	}
	lo := math.Floor(h)
	x0 := s.Xs[int(lo)-1]
	return x0 + (h-lo)*(s.Xs[int(lo)]-x0)
}

// MeanCI returns the mean and the bounds of the confidence interval
// of the mean of xs at the given confidence level, using Student's t
// distribution. If xs is empty, all three results are NaN. If the
// interval is unbounded, lo and hi are -inf and +inf.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return nan, nan, nan
	}
	mean = stat.Mean(xs, nil)
	if confidence <= 0 {
		return mean, mean, mean
	}
	if confidence >= 1 || len(xs) < 2 {
		return mean, -inf, inf
	}
	n := float64(len(xs))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}.Quantile((1 + confidence) / 2)
	d := t * stat.StdErr(stat.StdDev(xs, nil), n)
	return mean, mean - d, mean + d
}
