// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions not provided by the
// standard math package.
package mathx // import "github.com/yellowcub/Statistics/mathx"

import "errors"

var (
	// ErrInvalidArgument indicates that an argument lies outside the
	// domain of the function it was passed to.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoConvergence indicates that an iterative method did not
	// reach its tolerance within its iteration limit.
	ErrNoConvergence = errors.New("no convergence")
)
