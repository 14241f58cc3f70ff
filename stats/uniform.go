// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Uniform is the continuous uniform distribution on [Min, Max].
type Uniform struct {
	Min, Max float64
}

// NewUniform returns the uniform distribution on [min, max].
func NewUniform(min, max float64) (Uniform, error) {
	if math.IsInf(min, 0) || math.IsInf(max, 0) || !(min < max) {
		return Uniform{}, invalid("uniform range [%v, %v]", min, max)
	}
	return Uniform{Min: min, Max: max}, nil
}

// UniformFit returns the uniform distribution spanning the smallest
// and largest values of xs.
func UniformFit(xs []float64) (Uniform, error) {
	if len(xs) == 0 {
		return Uniform{}, invalid("empty sample")
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		return Uniform{}, ErrSamplesEqual
	}
	return NewUniform(lo, hi)
}

func (d Uniform) PDF(x float64) float64 {
	if x < d.Min || x > d.Max {
		return 0
	}
	return 1 / (d.Max - d.Min)
}

func (d Uniform) CDF(x float64) float64 {
	if x <= d.Min {
		return 0
	} else if x >= d.Max {
		return 1
	}
	return (x - d.Min) / (d.Max - d.Min)
}

func (d Uniform) Quantile(p float64) float64 {
	checkProb(p)
	return d.Min + p*(d.Max-d.Min)
}

func (d Uniform) Bounds() (float64, float64) {
	return d.Min, d.Max
}
