// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// readInput parses one number per line from r. Blank lines are
// skipped.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

// readSample reads the sample named by the command's only argument,
// or the app's reader if there is none.
func readSample(ctx *cli.Context) ([]float64, error) {
	switch ctx.Args().Len() {
	case 0:
		return readInput(ctx.App.Reader)
	case 1:
		f, err := os.Open(ctx.Args().First())
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readInput(f)
	}
	return nil, fmt.Errorf("expected at most one input file, got %d arguments", ctx.Args().Len())
}
