// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"
)

// Factorial returns n!, computed as Γ(n+1).
//
// n must be positive.
func Factorial(n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: factorial of %d", ErrInvalidArgument, n)
	}
	return math.Gamma(float64(n) + 1), nil
}

// Choose returns the binomial coefficient of n and k, computed from
// the gamma function.
//
// n must be positive and 0 <= k < n.
func Choose(n, k int) (float64, error) {
	if n <= 0 || k < 0 || k >= n {
		return 0, fmt.Errorf("%w: choose(%d, %d)", ErrInvalidArgument, n, k)
	}
	return math.Gamma(float64(n)+1) / (math.Gamma(float64(k)+1) * math.Gamma(float64(n-k)+1)), nil
}
