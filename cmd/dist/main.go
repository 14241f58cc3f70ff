// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist describes samples of numbers, fits distributions to them, and
// draws random variates from distributions.
//
// Samples are newline-separated numbers read from a file argument or
// stdin. For example,
//
//	$ seq 1 20 | dist describe
//	$ seq 1 20 | dist fit --family normal
//	$ dist sample --family weibull --param 1.5 --param 2 -n 5 --seed 1
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/yellowcub/Statistics/internal/logger"
)

func initApp() *cli.App {
	return &cli.App{
		Name:  "dist",
		Usage: "describe, fit and sample statistical distributions",
		Flags: []cli.Flag{&logger.LogLevelFlag},
		Commands: []*cli.Command{
			&describeCommand,
			&fitCommand,
			&sampleCommand,
		},
	}
}

func main() {
	app := initApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
