// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// QuantileCIResult is the confidence interval for a quantile.
type QuantileCIResult struct {
	// Quantile is the quantile of this confidence interval. This
	// is simply a copy of the argument to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of this interval.
	// This will be >= the requested confidence.
	Confidence float64

	// LoOrder and HiOrder are the order statistics that bound the
	// confidence interval. By convention, these are 1-based, so
	// given an ordered slice of samples Xs, the CI is
	// Xs[LoOrder-1] to Xs[HiOrder-1].
	//
	// These may be outside the range of the sample, which
	// indicates that corresponding bound is negative or positive
	// infinity. This happens if the sample is too small for a high
	// confidence level, or the quantile is close to 0 or 1.
	LoOrder, HiOrder int

	// Ambiguous indicates that the given confidence interval is
	// ambiguous. In this case, the interval LoOrder+1 to
	// HiOrder+1 has equivalent confidence.
	Ambiguous bool
}

// FromSample returns the confidence interval of q in terms of values
// from a sample. It may return negative or positive infinity if the
// interval lies outside the sample. It panics if s does not have q.N
// values.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if len(s.Xs) != q.N {
		panic(invalid("quantile CI of %d values applied to a sample of %d", q.N, len(s.Xs)))
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if q.LoOrder < 1 {
		lo = -inf
	} else {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder-1 >= len(s.Xs) {
		hi = inf
	} else {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which QuantileCI
// uses a normal approximation. This is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the bounds of the confidence interval of the
// q'th quantile in a sample of size n. It panics if q is not in
// [0, 1].
//
// The number of sample values below the population quantile is
// Binomial{n, q}, so PMF(k) is the probability that the quantile lies
// between the k'th and (k+1)'th order statistics. Small samples sum
// that distribution outward from its mode; larger ones use its normal
// approximation with a continuity correction.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	checkProb(q)
	res := QuantileCIResult{N: n, Quantile: q}
	if confidence >= 1 {
		res.Confidence = 1
		res.LoOrder = 0
		res.HiOrder = n + 1
		return res
	}

	samp := Binomial{N: n, P: q}
	var l, r int
	if samp.N <= quantileCIApproxThreshold {
		l, r = quantileCIExact(samp, confidence, &res)
	} else {
		l, r = quantileCIApprox(samp, confidence, &res)
	}

	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}

// quantileCIExact accumulates the PMF of samp outward from its mode,
// taking the larger neighbor first and the left one on ties, until the
// sum reaches confidence. It returns the half-open band [l, r).
func quantileCIExact(samp Binomial, confidence float64, res *QuantileCIResult) (l, r int) {
	// Of two equal modes, start at the lower one.
	x := int(math.Ceil(float64(samp.N+1)*samp.P) - 1)
	if samp.P == 0 {
		x = 0
	}
	accum := samp.PMF(float64(x))

	l, r = x, x+1
	lp, rp := samp.PMF(float64(l-1)), samp.PMF(float64(r))
	res.Ambiguous = rp == accum

	// Stop if there's nothing left to accumulate.
	for accum < confidence && (lp > 0 || rp > 0) {
		res.Ambiguous = lp == rp
		if lp >= rp {
			accum += lp
			l--
			lp = samp.PMF(float64(l - 1))
		} else {
			accum += rp
			r++
			rp = samp.PMF(float64(r))
		}
	}
	res.Confidence = accum
	return l, r
}

// quantileCIApprox finds the band of samp's normal approximation that
// holds the central confidence weight, left-biasing it when that
// still meets confidence.
func quantileCIApprox(samp Binomial, confidence float64, res *QuantileCIResult) (l, r int) {
	norm := samp.NormalApprox()
	alpha := (1 - confidence) / 2

	l1 := norm.Quantile(alpha)
	r1 := 2*norm.Mu - l1

	// Point k of the binomial is the band [k-0.5, k+0.5] of the
	// normal, so round out to ℕ + 0.5 boundaries and recover k.
	floorInt := func(x float64) int {
		return int(math.Floor(x))
	}
	l = floorInt(math.Floor(l1-0.5)+0.5) + 1
	r = floorInt(math.Ceil(r1-0.5)+0.5) + 1

	// Pr[l <= X < r] with the continuity correction.
	cdf := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = cdf(l, r)
	rBiased := r - 1
	if aBiased := cdf(l, rBiased); aBiased >= confidence && aBiased < res.Confidence {
		res.Confidence, res.Ambiguous = aBiased, true
		r = rBiased
	}
	if l <= 0 && r >= samp.N+1 {
		// The normal has infinite support, so its weight over
		// the whole range is not quite 1.
		res.Confidence = 1
		res.Ambiguous = false
	}
	return l, r
}
