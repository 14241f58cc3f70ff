// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Quantiler maps a probability in [0, 1] to a value of a
// distribution. It is the only capability inverse-transform sampling
// needs; see Rand.
type Quantiler[T any] interface {
	// Quantile returns the smallest value x such that the
	// cumulative probability at x is at least p. It panics with
	// an error wrapping ErrInvalidArgument if p is outside [0, 1].
	Quantile(p float64) T
}

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64

	// Quantile returns the inverse of the CDF for p. That is,
	// Quantile(CDF(x)) = x. The value of p must be in [0, 1].
	Quantile(p float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A DiscreteDist is a discrete statistical distribution over the
// integers.
//
// The random variable is passed as a float64 so that discrete and
// continuous CDFs can be evaluated at the same points. Integer values
// between ±2**53 are exactly representable, so this generally
// shouldn't be an issue.
type DiscreteDist interface {
	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// defined point on the distribution.
	//
	// Note for implementers: round x using int(math.Floor(x)).
	// Do not use int(x), since that truncates toward zero.
	PMF(x float64) float64

	// CDF returns the cumulative probability Pr[X <= x].
	CDF(x float64) float64

	// Quantile returns the smallest k in the support such that
	// CDF(k) >= p. The value of p must be in [0, 1].
	Quantile(p float64) int

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF. Both bounds must be integer multiples of
	// Step().
	//
	// If this distribution has finite support, this must return
	// exact bounds l, h such that PMF(l')=0 for all l' < l and
	// PMF(h')=0 for all h' >= h+Step().
	Bounds() (float64, float64)
}
