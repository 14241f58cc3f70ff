// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "sort"

// DiscreteEmpirical is the empirical distribution of a sample of
// arbitrary comparable values. The probability of a value is its
// relative frequency in the sample.
//
// The support is ordered by first appearance in the sample; CDF and
// Quantile accumulate mass in that order. Sort the sample first to
// get the conventional ordering of an ordered type.
type DiscreteEmpirical[T comparable] struct {
	support []T
	index   map[T]int
	pmf     []float64
	cdf     []float64
}

// NewDiscreteEmpirical returns the empirical distribution of xs. It
// is an error if xs is empty.
func NewDiscreteEmpirical[T comparable](xs []T) (*DiscreteEmpirical[T], error) {
	if len(xs) == 0 {
		return nil, invalid("empty sample")
	}
	d := &DiscreteEmpirical[T]{index: make(map[T]int)}
	var counts []int
	for _, x := range xs {
		i, ok := d.index[x]
		if !ok {
			i = len(d.support)
			d.index[x] = i
			d.support = append(d.support, x)
			counts = append(counts, 0)
		}
		counts[i]++
	}

	// Accumulate integer counts so the final entry is exactly 1.
	n := float64(len(xs))
	d.pmf = make([]float64, len(counts))
	d.cdf = make([]float64, len(counts))
	cum := 0
	for i, c := range counts {
		cum += c
		d.pmf[i] = float64(c) / n
		d.cdf[i] = float64(cum) / n
	}
	return d, nil
}

// Support returns the distinct values of the sample in order of first
// appearance.
func (d *DiscreteEmpirical[T]) Support() []T {
	return append([]T(nil), d.support...)
}

func (d *DiscreteEmpirical[T]) PMF(x T) float64 {
	i, ok := d.index[x]
	if !ok {
		return 0
	}
	return d.pmf[i]
}

// CDF returns the total probability of x and every value that
// precedes it in the support. It is 0 if x is not in the support.
func (d *DiscreteEmpirical[T]) CDF(x T) float64 {
	i, ok := d.index[x]
	if !ok {
		return 0
	}
	return d.cdf[i]
}

// Quantile returns the first value in the support whose cumulative
// probability is at least p.
func (d *DiscreteEmpirical[T]) Quantile(p float64) T {
	checkProb(p)
	return d.support[sort.SearchFloat64s(d.cdf, p)]
}
