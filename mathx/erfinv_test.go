// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"math"
	"testing"
)

func TestErfinv(t *testing.T) {
	got, err := Erfinv(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.476936276) > 1e-6 {
		t.Errorf("Erfinv(0.5) = %v, want 0.476936276", got)
	}

	if got, err := Erfinv(0); err != nil || got != 0 {
		t.Errorf("Erfinv(0) = %v, %v, want 0, nil", got, err)
	}

	// erf is odd.
	pos, _ := Erfinv(0.3)
	neg, _ := Erfinv(-0.3)
	if pos != -neg {
		t.Errorf("Erfinv(-0.3) = %v, want %v", neg, -pos)
	}
}

func TestErfinvRoundTrip(t *testing.T) {
	for x := -3.5; x <= 3.5; x += 0.125 {
		y := math.Erf(x)
		got, err := Erfinv(y)
		if err != nil {
			t.Errorf("Erfinv(Erf(%v)): %v", x, err)
			continue
		}
		if r := math.Abs(math.Erf(got) - y); r > DefaultErfinvEps {
			t.Errorf("Erfinv(Erf(%v)) = %v, residual %g exceeds tolerance", x, got, r)
		}
		if math.Abs(x) <= 2 && math.Abs(got-x) > 1e-6 {
			t.Errorf("Erfinv(Erf(%v)) = %v", x, got)
		}
	}
}

func TestErfinvDomain(t *testing.T) {
	for _, y := range []float64{1, -1, 1.5, -2, math.Inf(1), math.NaN()} {
		if _, err := Erfinv(y); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Erfinv(%v): want ErrInvalidArgument, got %v", y, err)
		}
	}
	if _, err := ErfinvEps(0.5, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ErfinvEps(0.5, 0): want ErrInvalidArgument, got %v", err)
	}
}

func TestErfinvNoConvergence(t *testing.T) {
	defer func(n int) { erfinvMaxIterations = n }(erfinvMaxIterations)
	// The initial approximation alone is not within 1e-7 of 0.5.
	erfinvMaxIterations = 0
	x, err := Erfinv(0.5)
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("want ErrNoConvergence, got %v", err)
	}
	if math.Abs(x-0.4769) > 1e-3 {
		t.Errorf("want the initial estimate near 0.4769, got %v", x)
	}
}

func BenchmarkErfinv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Erfinv(0.9)
	}
}
