// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"github.com/yellowcub/Statistics/internal/logger"
	"github.com/yellowcub/Statistics/stats"
	"golang.org/x/exp/rand"
)

var (
	familyFlag = cli.StringFlag{
		Name:     "family",
		Aliases:  []string{"f"},
		Usage:    "distribution family",
		Required: true,
	}
	paramFlag = cli.Float64SliceFlag{
		Name:    "param",
		Aliases: []string{"p"},
		Usage:   "family parameter, repeated in the family's order",
	}
	countFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of variates to draw",
		Value: 10,
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "random seed; the process-wide source is used if unset",
	}
	loFlag = cli.Float64Flag{
		Name:  "lo",
		Usage: "lower bound of a ranked fit (default: sample minimum)",
	}
	hiFlag = cli.Float64Flag{
		Name:  "hi",
		Usage: "upper bound of a ranked fit (default: sample maximum)",
	}
	trialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of trials of a binomial fit",
	}
	pointsFlag = cli.IntFlag{
		Name:  "points",
		Usage: "compress the CDF table of a ranked fit to this many points",
	}
)

var describeCommand = cli.Command{
	Name:      "describe",
	Usage:     "summarize a sample",
	ArgsUsage: "[file]",
	Action:    describeAction,
}

var fitCommand = cli.Command{
	Name:      "fit",
	Usage:     "fit a distribution family to a sample",
	ArgsUsage: "[file]",
	Flags:     []cli.Flag{&familyFlag, &loFlag, &hiFlag, &trialsFlag, &pointsFlag},
	Action:    fitAction,
}

var sampleCommand = cli.Command{
	Name:   "sample",
	Usage:  "draw random variates from a distribution family",
	Flags:  []cli.Flag{&familyFlag, &paramFlag, &countFlag, &seedFlag},
	Action: sampleAction,
}

// tableProbs are the probabilities tabulated for a fitted model.
var tableProbs = []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99}

func describeAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "dist-describe")
	xs, err := readSample(ctx)
	if err != nil {
		return err
	}
	log.Debugf("read %d values", len(xs))
	if len(xs) == 0 {
		return fmt.Errorf("%w: empty sample", stats.ErrInvalidArgument)
	}
	s := stats.Sample{Xs: xs}
	s.Sort()
	lo, hi := s.Bounds()
	mean, ciLo, ciHi := stats.MeanCI(xs, 0.95)

	tbl := tablewriter.NewWriter(ctx.App.Writer)
	tbl.SetHeader([]string{"Statistic", "Value"})
	tbl.SetBorder(true)
	tbl.Append([]string{"N", strconv.Itoa(len(xs))})
	tbl.Append([]string{"Mean", formatFloat(mean)})
	tbl.Append([]string{"StdDev", formatFloat(s.StdDev())})
	tbl.Append([]string{"Min", formatFloat(lo)})
	tbl.Append([]string{"Median", formatFloat(s.Quantile(0.5))})
	tbl.Append([]string{"Max", formatFloat(hi)})
	tbl.Append([]string{"Mean 95% CI", fmt.Sprintf("[%s, %s]", formatFloat(ciLo), formatFloat(ciHi))})
	mlo, mhi := stats.QuantileCI(len(xs), 0.5, 0.95).FromSample(s)
	tbl.Append([]string{"Median 95% CI", fmt.Sprintf("[%s, %s]", formatFloat(mlo), formatFloat(mhi))})
	tbl.Render()
	return nil
}

func fitAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "dist-fit")
	xs, err := readSample(ctx)
	if err != nil {
		return err
	}
	log.Debugf("read %d values", len(xs))

	opts := fitOptions{trials: ctx.Int(trialsFlag.Name), points: ctx.Int(pointsFlag.Name)}
	opts.lo, opts.hi = stats.Sample{Xs: xs}.Bounds()
	if ctx.IsSet(loFlag.Name) {
		opts.lo = ctx.Float64(loFlag.Name)
	}
	if ctx.IsSet(hiFlag.Name) {
		opts.hi = ctx.Float64(hiFlag.Name)
	}

	name := ctx.String(familyFlag.Name)
	m, err := fitModel(name, xs, opts)
	if err != nil {
		return fmt.Errorf("cannot fit %s; %w", name, err)
	}
	log.Infof("fitted %s to %d values", name, len(xs))

	fmt.Fprintf(ctx.App.Writer, "%v\n", m)
	writeQuantiles(ctx.App.Writer, m)
	return nil
}

func sampleAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "dist-sample")
	name := ctx.String(familyFlag.Name)
	m, err := buildModel(name, ctx.Float64Slice(paramFlag.Name))
	if err != nil {
		return err
	}
	n := ctx.Int(countFlag.Name)
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", stats.ErrInvalidArgument, n)
	}

	var rng *rand.Rand
	if ctx.IsSet(seedFlag.Name) {
		rng = rand.New(rand.NewSource(ctx.Uint64(seedFlag.Name)))
	}
	log.Debugf("drawing %d variates from %v", n, m)
	for _, x := range stats.RandN[float64](m, n, rng) {
		fmt.Fprintln(ctx.App.Writer, formatFloat(x))
	}
	return nil
}

// writeQuantiles renders the quantiles of q at tableProbs.
func writeQuantiles(w io.Writer, q stats.Quantiler[float64]) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"P", "Quantile"})
	tbl.SetBorder(true)
	for _, p := range tableProbs {
		tbl.Append([]string{formatFloat(p), formatFloat(q.Quantile(p))})
	}
	tbl.Render()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
