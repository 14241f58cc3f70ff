// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation builds a smooth estimate ƒ̂(x) of an
// unknown distribution ƒ(x) from a sample of it. The estimate is the
// average of one Gaussian kernel centered on each data point. It
// makes no assumption about the true distribution, but the result
// depends heavily on the bandwidth.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the standard deviation of each kernel.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// BoundaryMethod is the boundary correction method to use for
	// the KDE. The default value is BoundaryReflect; however, the
	// default bounds are effectively +/-inf, which is equivalent
	// to performing no boundary correction.
	BoundaryMethod KDEBoundaryMethod

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// KDEBoundaryMethod represents a boundary correction method for
// constructing a KDE with bounded support.
type KDEBoundaryMethod int

const (
	// BoundaryReflect reflects the density estimate at the
	// boundaries. For example, for a KDE with support [0, inf),
	// this is equivalent to ƒ̂ᵣ(x)=ƒ̂(x)+ƒ̂(-x) for x>=0. This is a
	// simple and fast technique, but enforces that ƒ̂ᵣ'(0)=0, so
	// it may not be applicable to all distributions.
	BoundaryReflect KDEBoundaryMethod = iota

	// boundaryNone is used internally when the bounds are -/+inf.
	boundaryNone
)

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Quantile(float64) float64
}) float64 {
	iqr := data.Quantile(0.75) - data.Quantile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// From returns the kernel density estimate for the sample s. It is an
// error if s is empty, if the bandwidth is not positive, which
// happens with the default bandwidth when all samples are equal, or
// if a sample lies outside the boundaries.
func (k KDE) From(s Sample) (*KDEDist, error) {
	if len(s.Xs) == 0 {
		return nil, invalid("empty sample")
	}

	// Normalize boundaries
	bm := k.BoundaryMethod
	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = -inf, inf
	}
	if !(min < max) {
		return nil, invalid("KDE boundaries [%v, %v)", min, max)
	}
	if math.IsInf(min, -1) && math.IsInf(max, 1) {
		bm = boundaryNone
	} else if bm != BoundaryReflect {
		return nil, invalid("unknown KDE boundary method %d", bm)
	}
	for _, x := range s.Xs {
		if x < min || x >= max {
			return nil, invalid("sample %v outside KDE boundaries [%v, %v)", x, min, max)
		}
	}

	h := k.Bandwidth
	if h == 0 && len(s.Xs) > 1 {
		h = BandwidthScott(s)
	}
	if !(h > 0) || math.IsInf(h, 1) {
		if h == 0 {
			return nil, ErrSamplesEqual
		}
		return nil, invalid("KDE bandwidth %v", h)
	}
	xs := append([]float64(nil), s.Xs...)
	return &KDEDist{kernel: Normal{0, h}, xs: xs, bm: bm, min: min, max: max}, nil
}

// KDEDist is a kernel density estimate. It implements Dist.
type KDEDist struct {
	kernel   Normal
	xs       []float64
	bm       KDEBoundaryMethod
	min, max float64 // Support bounds
}

// Bandwidth returns the kernel bandwidth of kde.
func (kde *KDEDist) Bandwidth() float64 {
	return kde.kernel.Sigma
}

// each returns the average of f shifted to each data point and
// evaluated at x.
func (kde *KDEDist) each(f func(float64) float64, x float64) float64 {
	sum := 0.0
	for _, xi := range kde.xs {
		sum += f(x - xi)
	}
	return sum / float64(len(kde.xs))
}

func (kde *KDEDist) PDF(x float64) float64 {
	// Apply boundary
	if x < kde.min || x >= kde.max {
		return 0
	}
	y := func(x float64) float64 { return kde.each(kde.kernel.PDF, x) }
	if kde.bm == boundaryNone {
		return y(x)
	}
	if math.IsInf(kde.max, 1) {
		return y(x) + y(2*kde.min-x)
	} else if math.IsInf(kde.min, -1) {
		return y(x) + y(2*kde.max-x)
	}
	d := 2 * (kde.max - kde.min)
	w := 2 * (x - kde.min)
	return series(func(n float64) float64 {
		// Points >= x
		return y(x+n*d) + y(x+n*d-w)
	}) + series(func(n float64) float64 {
		// Points < x
		return y(x-(n+1)*d) + y(x-(n+1)*d-w)
	})
}

func (kde *KDEDist) CDF(x float64) float64 {
	// Apply boundary
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}
	y := func(x float64) float64 { return kde.each(kde.kernel.CDF, x) }
	if kde.bm == boundaryNone {
		return y(x)
	}
	if math.IsInf(kde.max, 1) {
		return y(x) - y(2*kde.min-x)
	} else if math.IsInf(kde.min, -1) {
		return y(x) + (1 - y(2*kde.max-x))
	}
	d := 2 * (kde.max - kde.min)
	w := 2 * (x - kde.min)
	return series(func(n float64) float64 {
		// Windows >= x-w
		return y(x+n*d) - y(x+n*d-w)
	}) + series(func(n float64) float64 {
		// Windows < x-w
		return y(x-(n+1)*d) - y(x-(n+1)*d-w)
	})
}

// quantileTolerance is the accepted error in CDF(Quantile(p)).
const quantileTolerance = 1e-10

// Quantile inverts the CDF by bisection. Quantile(0) and Quantile(1)
// are the boundaries, which are infinite for an unbounded KDE.
func (kde *KDEDist) Quantile(p float64) float64 {
	checkProb(p)
	switch p {
	case 0:
		return kde.min
	case 1:
		return kde.max
	}
	lowX, highX := kde.dataBounds()
	// Expand until the root is bracketed.
	for kde.CDF(lowX) > p {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < p {
		highX += highX - lowX
	}
	x, _ := bisect(func(x float64) float64 { return kde.CDF(x) - p }, lowX, highX, quantileTolerance)
	return math.Max(kde.min, math.Min(x, kde.max))
}

// dataBounds returns the smallest and largest data points, widened by
// one bandwidth.
func (kde *KDEDist) dataBounds() (float64, float64) {
	lo, hi := Sample{Xs: kde.xs}.Bounds()
	h := kde.kernel.Sigma
	return lo - h, hi + h
}

func (kde *KDEDist) Bounds() (low float64, high float64) {
	// Find the end points that contain 99% of the CDF's weight
	// and expand width by 20% to give some margins.
	low, high = kde.Quantile(0.005), kde.Quantile(0.995)
	width := high - low
	low, high = low-0.1*width, high+0.1*width

	// Limit to bounds
	return math.Max(low, kde.min), math.Min(high, kde.max)
}
