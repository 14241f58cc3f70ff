// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Summary statistics of unweighted samples. These are the estimators
// the *Fit constructors are built on.

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return nan, invalid("mean of empty sample")
	}
	return stat.Mean(xs, nil), nil
}

// Variance returns the sample (n-1) variance of xs.
func Variance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return nan, invalid("variance needs at least 2 values, got %d", len(xs))
	}
	return stat.Variance(xs, nil), nil
}

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return nan, err
	}
	return math.Sqrt(v), nil
}

// PopVariance returns the population (n) variance of xs.
func PopVariance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return nan, invalid("variance of empty sample")
	}
	return stat.PopVariance(xs, nil), nil
}

// Median returns the middle value of xs, or the mean of the two
// middle values if len(xs) is even. xs is not modified.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return nan, invalid("median of empty sample")
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return median(s), nil
}

// median returns the median of the sorted, non-empty slice s.
func median(s []float64) float64 {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// LSR returns the slope and intercept of the least-squares line
// through the points (xs[i], ys[i]).
func LSR(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return nan, nan, invalid("least squares over %d x values and %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nan, nan, invalid("least squares needs at least 2 points, got %d", len(xs))
	}
	if stat.PopVariance(xs, nil) == 0 {
		return nan, nan, ErrSamplesEqual
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept, nil
}
