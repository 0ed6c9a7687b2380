// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-segdist/stats"
)

// report is the segmentation of one variable.
type report struct {
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	Dist      string     `json:"dist" yaml:"dist"`
	Mass      float64    `json:"mass" yaml:"mass"`
	Intervals []interval `json:"intervals" yaml:"intervals"`
}

type interval struct {
	Lower       float64 `json:"lower" yaml:"lower"`
	Upper       float64 `json:"upper" yaml:"upper"`
	Probability float64 `json:"probability" yaml:"probability"`
	Expectation float64 `json:"expectation" yaml:"expectation"`
	Variance    float64 `json:"variance" yaml:"variance"`
}

func newReport(name string, d stats.Continuous, ivs []stats.Interval) report {
	r := report{Name: name, Dist: label(d), Intervals: make([]interval, len(ivs))}
	ps := make([]float64, len(ivs))
	for i, iv := range ivs {
		r.Intervals[i] = interval(iv)
		ps[i] = iv.Probability
	}
	r.Mass = floats.Sum(ps)
	return r
}

// label formats d as, for example, "Normal(μ=10.0000, σ=2.0000)".
func label(d stats.Continuous) string {
	var ps []string
	for _, p := range d.Params() {
		ps = append(ps, fmt.Sprintf("%s=%.4f", p.Symbol, p.Value))
	}
	return d.Family().String() + "(" + strings.Join(ps, ", ") + ")"
}

func writeReports(w io.Writer, format string, reports []report) error {
	switch format {
	case "text":
		return writeText(w, reports)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeText(w io.Writer, reports []report) error {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if r.Name != "" {
			fmt.Fprintf(w, "%s ~ %s  mass %.6g\n", r.Name, r.Dist, r.Mass)
		} else {
			fmt.Fprintf(w, "%s  mass %.6g\n", r.Dist, r.Mass)
		}
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "lower\tupper\tprobability\texpectation\tvariance\t")
		for _, iv := range r.Intervals {
			fmt.Fprintf(tw, "%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t\n", iv.Lower, iv.Upper, iv.Probability, iv.Expectation, iv.Variance)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
