// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats is a grab bag of statistical routines: parametric and
// empirical distributions, inverse-transform sampling, and the sample
// summaries they are estimated from.
package stats // import "github.com/yellowcub/Statistics/stats"

import (
	"fmt"
	"math"

	"github.com/yellowcub/Statistics/mathx"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrInvalidArgument is wrapped by every error caused by an
	// argument outside the domain of an operation.
	ErrInvalidArgument = mathx.ErrInvalidArgument

	// ErrNoConvergence is wrapped by errors from iterative
	// methods that exceed their iteration limit.
	ErrNoConvergence = mathx.ErrNoConvergence

	// ErrSamplesEqual is returned by estimators that need spread
	// in the sample when every value is equal. It wraps
	// ErrInvalidArgument.
	ErrSamplesEqual = fmt.Errorf("%w: all samples are equal", ErrInvalidArgument)
)

// checkProb panics if p is not a probability.
func checkProb(p float64) {
	if !(0 <= p && p <= 1) {
		panic(fmt.Errorf("%w: probability %v outside [0, 1]", ErrInvalidArgument, p))
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
