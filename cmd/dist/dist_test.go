// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yellowcub/Statistics/stats"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := initApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"dist", "--log", "critical"}, args...))
	return out.String(), err
}

func TestReadInput(t *testing.T) {
	xs, err := readInput(strings.NewReader("1\n\n 2.5 \n-3e1\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2.5, -30}
	if len(xs) != len(want) {
		t.Fatalf("want %v, got %v", want, xs)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("want %v, got %v", want, xs)
		}
	}

	if _, err := readInput(strings.NewReader("1\nx\n")); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("want line 2 parse error, got %v", err)
	}
}

func TestBuildModel(t *testing.T) {
	m, err := buildModel("Normal", []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Quantile(0.5); got != 0 {
		t.Errorf("normal median: want 0, got %v", got)
	}
	m, err = buildModel("bernoulli", []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Quantile(0.5); got != 1 {
		t.Errorf("bernoulli median: want 1, got %v", got)
	}

	for _, test := range []struct {
		name string
		ps   []float64
	}{
		{"cauchy", []float64{0, 1}},
		{"normal", []float64{0}},
		{"ranked", nil},
		{"binomial", []float64{2.5, 0.5}},
	} {
		if _, err := buildModel(test.name, test.ps); err == nil {
			t.Errorf("buildModel(%q, %v): want error", test.name, test.ps)
		}
	}
	if _, err := buildModel("normal", []float64{0, -1}); !errors.Is(err, stats.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
}

func TestFitModel(t *testing.T) {
	m, err := fitModel("poisson", []float64{1, 2, 3}, fitOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := m.dist.(stats.Poisson); !ok || d.Lambda != 2 {
		t.Errorf("want Poisson{Lambda:2}, got %v", m)
	}
	m, err = fitModel("binomial", []float64{1, 2, 3}, fitOptions{trials: 4})
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := m.dist.(stats.Binomial); !ok || d.N != 4 || d.P != 0.5 {
		t.Errorf("want Binomial{N:4 P:0.5}, got %v", m)
	}
	m, err = fitModel("ranked", []float64{1, 2, 3}, fitOptions{lo: 0, hi: 4})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Quantile(1); got != 4 {
		t.Errorf("ranked Quantile(1): want 4, got %v", got)
	}
	m, err = fitModel("ranked", []float64{1, 2, 3, 4, 5, 6}, fitOptions{lo: 0, hi: 7, points: 3})
	if err != nil {
		t.Fatal(err)
	}
	if r := m.dist.(*stats.Ranked); r.Points() > 3 || r.N() != 6 {
		t.Errorf("compressed ranked fit: %d points, N=%d", r.Points(), r.N())
	}
	if _, err := fitModel("exponential", nil, fitOptions{}); !errors.Is(err, stats.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, got %v", err)
	}
}

func TestDescribeCommand(t *testing.T) {
	out, err := runApp(t, "5\n1\n3\n", "describe")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"STATISTIC", "Median", "Mean 95% CI", "Median 95% CI", "StdDev"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if _, err := runApp(t, "", "describe"); !errors.Is(err, stats.ErrInvalidArgument) {
		t.Errorf("empty input: want ErrInvalidArgument, got %v", err)
	}
}

func TestFitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xs.txt")
	if err := os.WriteFile(path, []byte("3\n3\n5\n9\n11\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runApp(t, "", "fit", "--family", "normal", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Mu:6.2") || !strings.Contains(out, "QUANTILE") {
		t.Errorf("unexpected fit output:\n%s", out)
	}
	if _, err := runApp(t, "1\n1\n", "fit", "--family", "normal"); !errors.Is(err, stats.ErrSamplesEqual) {
		t.Errorf("equal samples: want ErrSamplesEqual, got %v", err)
	}
}

func TestSampleCommand(t *testing.T) {
	args := []string{"sample", "--family", "weibull", "--param", "1.5", "--param", "2", "-n", "5", "--seed", "1"}
	out1, err := runApp(t, "", args...)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := runApp(t, "", args...)
	if err != nil {
		t.Fatal(err)
	}
	if out1 != out2 {
		t.Errorf("seeded runs differ:\n%s\n%s", out1, out2)
	}
	if lines := strings.Fields(out1); len(lines) != 5 {
		t.Errorf("want 5 variates, got %d:\n%s", len(lines), out1)
	}

	out, err := runApp(t, "", "sample", "--family", "bernoulli", "--param", "0", "-n", "3")
	if err != nil {
		t.Fatal(err)
	}
	if out != "0\n0\n0\n" {
		t.Errorf("want three zeros, got %q", out)
	}
}
