// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"
)

// DefaultErfinvEps is the tolerance used by Erfinv.
const DefaultErfinvEps = 1e-7

// erfinvMaxIterations bounds the number of Newton steps ErfinvEps
// takes before giving up. This is a variable for testing.
var erfinvMaxIterations = 100

// winitzkiA is the constant of Winitzki's approximation to erf.
const winitzkiA = 0.147

// 2/sqrt(pi)
const twoOverSqrtPi = 1.12837916709551257389615890312154517168810125865799771368817144

// Erfinv returns x such that math.Erf(x) = y to within
// DefaultErfinvEps. See ErfinvEps.
func Erfinv(y float64) (float64, error) {
	return ErfinvEps(y, DefaultErfinvEps)
}

// ErfinvEps returns x such that |math.Erf(x) - y| <= eps.
//
// y must lie strictly inside (-1, 1). The result starts from
// Winitzki's closed-form approximation and is refined by
// Newton-Raphson iteration. If the tolerance is not met after
// 100 steps, ErfinvEps returns the last estimate and
// an error wrapping ErrNoConvergence.
func ErfinvEps(y, eps float64) (float64, error) {
	if !(-1 < y && y < 1) {
		return math.NaN(), fmt.Errorf("%w: erfinv(%v) requires -1 < y < 1", ErrInvalidArgument, y)
	}
	if !(eps > 0) {
		return math.NaN(), fmt.Errorf("%w: erfinv tolerance %v", ErrInvalidArgument, eps)
	}
	if y == 0 {
		return 0, nil
	}
	// erf is odd, so solve for |y| and restore the sign.
	neg := y < 0
	if neg {
		y = -y
	}

	x := winitzki(y)
	for i := 0; ; i++ {
		r := math.Erf(x) - y
		if math.Abs(r) <= eps {
			break
		}
		if i == erfinvMaxIterations {
			if neg {
				x = -x
			}
			return x, fmt.Errorf("%w: erfinv(%v) after %d iterations (residual %g)", ErrNoConvergence, y, i, r)
		}
		x -= r / (twoOverSqrtPi * math.Exp(-x*x))
	}
	if neg {
		x = -x
	}
	return x, nil
}

// winitzki returns Winitzki's approximation of erfinv(y) for
// 0 < y < 1. Its relative error is below 2e-3 everywhere.
func winitzki(y float64) float64 {
	ln := math.Log1p(-y * y)
	t := 2/(math.Pi*winitzkiA) + ln/2
	return math.Sqrt(math.Sqrt(t*t-ln/winitzkiA) - t)
}
