// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Miscellaneous helper algorithms

import (
	"fmt"
	"math"
)

// sign returns the sign of x: -1 if x < 0, 0 if x == 0, 1 if x > 0.
// If x is NaN, it returns NaN.
func sign(x float64) float64 {
	if x == 0 {
		return 0
	} else if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return nan
}

// lchoose returns math.Log(choose(n, k)) for 0 <= k <= n.
func lchoose(n, k int) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}

// bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method.
//
// f(low) and f(high) must have opposite signs.
//
// If f does not have a root in this interval (e.g., it is
// discontiguous), this returns the X of the apparent discontinuity
// and false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if -tolerance <= flow && flow <= tolerance {
		return low, true
	}
	if -tolerance <= fhigh && fhigh <= tolerance {
		return high, true
	}
	if sign(flow) == sign(fhigh) {
		panic(fmt.Sprintf("root of f is not bracketed by [low, high]; f(%g)=%g f(%g)=%g", low, flow, high, fhigh))
	}
	for {
		mid := (high + low) / 2
		fmid := f(mid)
		if -tolerance <= fmid && fmid <= tolerance {
			return mid, true
		}
		if mid == high || mid == low {
			return mid, false
		}
		if sign(fmid) == sign(flow) {
			low = mid
			flow = fmid
		} else {
			high = mid
			fhigh = fmid
		}
	}
}

// series returns the sum of the series f(0), f(1), ...
//
// This implementation is fast, but subject to round-off error.
func series(f func(float64) float64) float64 {
	y, yp := 0.0, 1.0
	for n := 0.0; y != yp; n++ {
		yp = y
		y += f(n)
	}
	return y
}

// maxQuantileSearch bounds the number of PMF terms summed by
// sumQuantile. This is a variable for testing.
var maxQuantileSearch = 1 << 24

// quantileWindow is how many standard deviations below the mean
// sumQuantile starts summing.
const quantileWindow = 10

// sumQuantile returns the smallest k in [0, hi] such that
// pmf(0) + ... + pmf(k) >= p, for a distribution with the given mean
// and standard deviation.
//
// Summation starts quantileWindow standard deviations below the mean.
// The mass below that point is summed downward until its terms
// vanish. Round-off can leave the running sum just short of p when p
// is close to 1. Once k is past mean and pmf(k) no longer changes the
// sum, the representable mass is exhausted and sumQuantile returns
// k-1. It panics with an error wrapping ErrNoConvergence if either
// walk takes more than maxQuantileSearch terms.
func sumQuantile(pmf func(k int) float64, mean, sd float64, hi int, p float64) int {
	if p == 0 {
		return 0
	}
	k0 := 0
	if lo := math.Floor(mean - quantileWindow*sd); lo > 0 {
		k0 = int(math.Min(lo, float64(hi)))
	}

	below := 0.0
	for k := k0 - 1; k >= 0; k-- {
		if k0-k > maxQuantileSearch {
			panic(searchExhausted(k0 - k))
		}
		next := below + pmf(k)
		if next == below {
			break
		}
		below = next
	}
	if below >= p {
		// p falls below the window. Walk down until CDF(k-1) < p.
		t := 0.0
		for k := k0 - 1; k > 0; k-- {
			if k0-k > maxQuantileSearch {
				panic(searchExhausted(k0 - k))
			}
			t += pmf(k)
			if below-t < p {
				return k
			}
		}
		return 0
	}

	sum := below
	for k := k0; k < hi; k++ {
		if k-k0 >= maxQuantileSearch {
			panic(searchExhausted(k - k0))
		}
		next := sum + pmf(k)
		if next >= p {
			return k
		}
		if next == sum && float64(k) > mean {
			return k - 1
		}
		sum = next
	}
	return hi
}

func searchExhausted(n int) error {
	return fmt.Errorf("%w: quantile search exceeded %d terms", ErrNoConvergence, n)
}
