// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "golang.org/x/exp/rand"

// Rand draws a random variate from d by inverse transform sampling:
// it draws u uniformly from [0, 1) and returns d.Quantile(u).
//
// Rand consumes exactly one value from rng, so the result is
// deterministic for a seeded rng. If rng is nil, the process-wide
// source is used. Rand does not lock rng.
func Rand[T any](d Quantiler[T], rng *rand.Rand) T {
	var u float64
	if rng == nil {
		u = rand.Float64()
	} else {
		u = rng.Float64()
	}
	return d.Quantile(u)
}

// RandN returns n independent variates from d, each drawn by Rand.
func RandN[T any](d Quantiler[T], n int, rng *rand.Rand) []T {
	if n < 0 {
		panic(invalid("negative sample count %d", n))
	}
	res := make([]T, n)
	for i := range res {
		res[i] = Rand(d, rng)
	}
	return res
}
