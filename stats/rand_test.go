// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// countingQuantiler records the probabilities it is asked for.
type countingQuantiler struct {
	ps []float64
}

func (c *countingQuantiler) Quantile(p float64) float64 {
	c.ps = append(c.ps, p)
	return p
}

func TestRandDeterministic(t *testing.T) {
	q := &countingQuantiler{}
	got := RandN[float64](q, 5, rand.New(rand.NewSource(7)))
	want := rand.New(rand.NewSource(7))
	for i, x := range got {
		if w := want.Float64(); x != w {
			t.Errorf("draw %d: got %v, want %v", i, x, w)
		}
	}
	if len(q.ps) != 5 {
		t.Errorf("want 5 quantile evaluations, got %d", len(q.ps))
	}
}

func TestRandDefaultSource(t *testing.T) {
	q := &countingQuantiler{}
	for i := 0; i < 100; i++ {
		if u := Rand[float64](q, nil); u < 0 || u >= 1 {
			t.Fatalf("draw %v outside [0, 1)", u)
		}
	}
}

func TestRandNSupport(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, k := range RandN[int](Bernoulli{P: 0.3}, 1000, rng) {
		if k != 0 && k != 1 {
			t.Fatalf("Bernoulli draw %d outside {0, 1}", k)
		}
	}
	r, err := NewRanked([]float64{2, 3, 5, 7, 11}, 1, 12)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range RandN[float64](r, 1000, rng) {
		if x < 1 || x > 12 {
			t.Fatalf("ranked draw %v outside [1, 12]", x)
		}
	}
	if got := RandN[int](Poisson{Lambda: 2}, 0, rng); len(got) != 0 {
		t.Errorf("RandN(0) returned %d values", len(got))
	}
}

func TestRandNNegative(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		wantInvalid(t, "RandN(-1)", err)
	}()
	RandN[int](Bernoulli{P: 0.5}, -1, nil)
}

// chiSquaredOK reports whether observed counts are consistent with
// the expected probabilities at significance alpha.
func chiSquaredOK(counts []int, probs []float64, n int, alpha float64) bool {
	chi2 := 0.0
	for i, c := range counts {
		e := probs[i] * float64(n)
		d := float64(c) - e
		chi2 += d * d / e
	}
	df := float64(len(counts) - 1)
	return chi2 <= distuv.ChiSquared{K: df, Src: nil}.Quantile(1-alpha)
}

func TestRandPoissonGoodnessOfFit(t *testing.T) {
	const n = 20000
	d := Poisson{Lambda: 3}
	rng := rand.New(rand.NewSource(11))
	// Bucket 0..7 and a tail bucket.
	counts := make([]int, 9)
	for _, k := range RandN[int](d, n, rng) {
		if k > 7 {
			k = 8
		}
		counts[k]++
	}
	probs := make([]float64, 9)
	for k := 0; k < 8; k++ {
		probs[k] = d.PMF(float64(k))
	}
	probs[8] = 1 - d.CDF(7)
	if !chiSquaredOK(counts, probs, n, 0.001) {
		t.Errorf("Poisson draws %v do not fit %v", counts, probs)
	}
}

func TestRandNormalGoodnessOfFit(t *testing.T) {
	const n = 20000
	d := Normal{Mu: 10, Sigma: 2}
	rng := rand.New(rand.NewSource(5))
	// Ten equiprobable buckets.
	edges := make([]float64, 9)
	for i := range edges {
		edges[i] = d.Quantile(float64(i+1) / 10)
	}
	counts := make([]int, 10)
	for _, x := range RandN[float64](d, n, rng) {
		b := 0
		for b < len(edges) && x > edges[b] {
			b++
		}
		counts[b]++
	}
	probs := make([]float64, 10)
	for i := range probs {
		probs[i] = 0.1
	}
	if !chiSquaredOK(counts, probs, n, 0.001) {
		t.Errorf("normal draws %v are not equiprobable across deciles", counts)
	}
}

func ExampleRand() {
	rng := rand.New(rand.NewSource(42))
	d := Bernoulli{P: 0}
	fmt.Println(Rand[int](d, rng), RandN[int](d, 3, rng))
	// Output: 0 [0 0 0]
}
