// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// plottingPosition returns the approximate cumulative probability of
// the i'th (1-based) of n order statistics, (i-0.3)/(n+0.4).
func plottingPosition(i, n int) float64 {
	return (float64(i) - 0.3) / (float64(n) + 0.4)
}

// Ranked is a continuous empirical distribution over a closed range
// [lo, hi]. Its CDF linearly interpolates the plotting positions of
// the sorted sample, with lo at probability 0 and hi at probability 1.
type Ranked struct {
	// xs is lo, the sorted sample, then hi. ps holds the
	// cumulative probability of each xs and is strictly
	// increasing from 0 to 1.
	xs, ps []float64

	// n is the number of sample values the table was built from.
	n int
}

// NewRanked returns the ranked distribution of the values of xs that
// lie in [lo, hi]. xs is not modified. It is an error if no value
// lies in the range.
func NewRanked(xs []float64, lo, hi float64) (*Ranked, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil, invalid("ranked range [%v, %v]", lo, hi)
	}
	r := &Ranked{xs: []float64{lo}}
	for _, x := range xs {
		if lo <= x && x <= hi {
			r.xs = append(r.xs, x)
		}
	}
	n := len(r.xs) - 1
	if n == 0 {
		return nil, invalid("no sample values in [%v, %v]", lo, hi)
	}
	sort.Float64s(r.xs[1:])
	r.xs = append(r.xs, hi)

	r.ps = make([]float64, len(r.xs))
	for i := 1; i <= n; i++ {
		r.ps[i] = plottingPosition(i, n)
	}
	r.ps[n+1] = 1
	r.n = n
	return r, nil
}

// N returns the number of sample values the distribution was built
// from. Compress does not change N.
func (r *Ranked) N() int {
	return r.n
}

// Points returns the number of (x, p) points in the CDF table,
// including the end points at lo and hi.
func (r *Ranked) Points() int {
	return len(r.xs)
}

// Compress returns a copy of r whose CDF table is reduced to at most
// points entries by the Visvalingam-Whyatt algorithm. The end points
// are always kept, so points must be at least 2.
func (r *Ranked) Compress(points int) (*Ranked, error) {
	if points < 2 {
		return nil, invalid("ranked table of %d points", points)
	}
	ls := make(orb.LineString, len(r.xs))
	for i := range r.xs {
		ls[i] = orb.Point{r.xs[i], r.ps[i]}
	}
	ls = simplify.VisvalingamKeep(points).Simplify(ls).(orb.LineString)
	c := &Ranked{xs: make([]float64, len(ls)), ps: make([]float64, len(ls)), n: r.n}
	for i, pt := range ls {
		c.xs[i], c.ps[i] = pt[0], pt[1]
	}
	return c, nil
}

// segment returns the index b of the table entry such that
// xs[b-1] <= x < xs[b]. x must be in [lo, hi).
func (r *Ranked) segment(x float64) int {
	return sort.Search(len(r.xs), func(i int) bool { return r.xs[i] > x })
}

func (r *Ranked) PDF(x float64) float64 {
	lo, hi := r.Bounds()
	if x < lo || x >= hi {
		return 0
	}
	b := r.segment(x)
	return (r.ps[b] - r.ps[b-1]) / (r.xs[b] - r.xs[b-1])
}

func (r *Ranked) CDF(x float64) float64 {
	lo, hi := r.Bounds()
	if x < lo {
		return 0
	} else if x >= hi {
		return 1
	}
	b := r.segment(x)
	a := b - 1
	return r.ps[a] + (x-r.xs[a])/(r.xs[b]-r.xs[a])*(r.ps[b]-r.ps[a])
}

// Quantile finds the number of table entries whose cumulative
// probability is below p and interpolates within the segment that
// ends at the next entry.
func (r *Ranked) Quantile(p float64) float64 {
	checkProb(p)
	b := sort.SearchFloat64s(r.ps, p)
	if b == 0 {
		return r.xs[0]
	}
	a := b - 1
	return r.xs[a] + (p-r.ps[a])/(r.ps[b]-r.ps[a])*(r.xs[b]-r.xs[a])
}

func (r *Ranked) Bounds() (float64, float64) {
	return r.xs[0], r.xs[len(r.xs)-1]
}

func (r *Ranked) String() string {
	lo, hi := r.Bounds()
	return fmt.Sprintf("Ranked{N:%d Lo:%v Hi:%v}", r.N(), lo, hi)
}
