// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"sort"
	"testing"

	"golang.org/x/exp/rand"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks that f(x) ≅ want for each x, want in tests.
func testFunc(t *testing.T, name string, f func(float64) float64, tests map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(tests))
	for x := range tests {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want, got := tests[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || want == got {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// testDiscreteCDF checks that dist.CDF is the running sum of
// dist.PMF over dist's bounds and is constant between steps.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()
	sum := dist.CDF(lo - step)
	for x := lo; x <= hi; x += step {
		sum += dist.PMF(x)
		if got := dist.CDF(x); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, sum)
		}
		if got := dist.CDF(x + step/2); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x+step/2, got, sum)
		}
	}
}

// testQuantile checks that Quantile inverts CDF at random
// probabilities and that CDF is nondecreasing across its bounds.
func testQuantile(t *testing.T, name string, dist Dist) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := rng.Float64()
		x := dist.Quantile(p)
		if got := dist.CDF(x); math.Abs(got-p) > 1e-6 {
			t.Errorf("%s: CDF(Quantile(%v)) = CDF(%v) = %v", name, p, x, got)
		}
	}
	testMonotone(t, name, dist.CDF, dist)
}

// testDiscreteQuantile checks that Quantile(p) is the smallest k with
// CDF(k) >= p.
func testDiscreteQuantile(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	const slack = 1e-9
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := rng.Float64()
		k := float64(dist.Quantile(p))
		if dist.CDF(k) < p-slack {
			t.Errorf("%s: Quantile(%v) = %v, but CDF(%v) = %v < p", name, p, k, k, dist.CDF(k))
		}
		if k > 0 && dist.CDF(k-1) >= p+slack {
			t.Errorf("%s: Quantile(%v) = %v, but CDF(%v) = %v >= p", name, p, k, k-1, dist.CDF(k-1))
		}
	}
	testMonotone(t, name, dist.CDF, dist)
}

func testMonotone(t *testing.T, name string, cdf func(float64) float64, b interface{ Bounds() (float64, float64) }) {
	t.Helper()
	lo, hi := b.Bounds()
	width := hi - lo
	prev := 0.0
	for i := -10; i <= 110; i++ {
		x := lo + width*float64(i)/100
		y := cdf(x)
		if y < prev || y < 0 || y > 1 {
			t.Errorf("%s: CDF(%v) = %v after %v", name, x, y, prev)
		}
		prev = y
	}
}

// testQuantilePanics checks that Quantile rejects probabilities
// outside [0, 1].
func testQuantilePanics[T any](t *testing.T, name string, d Quantiler[T]) {
	t.Helper()
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		func() {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("%s: Quantile(%v) did not panic with ErrInvalidArgument (got %v)", name, p, err)
				}
			}()
			d.Quantile(p)
		}()
	}
}

func wantInvalid(t *testing.T, name string, err error) {
	t.Helper()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("%s: want ErrInvalidArgument, got %v", name, err)
	}
}

func mustFit[T any](t *testing.T, name string) func(T, error) T {
	return func(d T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		return d
	}
}
