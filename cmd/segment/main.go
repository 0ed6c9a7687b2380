// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// segment splits a continuous distribution at a set of separating
// points and reports the probability, conditional expectation and
// conditional variance of each piece.
//
//	segment normal 10 2 8 12
//	seq 1 5 | segment pareto 1 2 -
//	segment batch variables.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/go-segdist/stats"
)

type options struct {
	resolution int
	stepwise   bool
	format     string
	verbose    bool
}

func (o *options) integrator() stats.Integrator {
	return stats.Integrator{Resolution: o.resolution, StepwiseVariance: o.stepwise}
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "segment FAMILY PARAM PARAM [POINT... | -]",
		Short: "Discretize a continuous distribution into intervals",
		Long: `segment splits a uniform, normal, beta or pareto distribution at the
given separating points and prints the probability mass, conditional
expectation and conditional variance of every interval.

Parameters are a b (uniform), mu sigma (normal), alpha beta (beta) or
xm alpha (pareto). A lone "-" reads newline-separated points from
stdin. Normal expectations and variances are in standard units.`,
		Args:         cobra.MinimumNArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := variable{Family: args[0], Params: parseParams(args[1:3])}
			points := args[3:]
			if len(points) == 1 && points[0] == "-" {
				var err error
				if v.Points, err = readPoints(cmd.InOrStdin()); err != nil {
					return err
				}
			} else {
				for _, s := range points {
					x, err := parsePoint(s)
					if err != nil {
						return err
					}
					v.Points = append(v.Points, x)
				}
			}

			log := opts.logger(cmd.ErrOrStderr())
			r, err := segmentVariable(opts.integrator(), v, log)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), opts.format, []report{r})
		},
	}

	// Stop at FAMILY so negative parameters and points are not
	// taken for flags.
	root.Flags().SetInterspersed(false)

	flags := root.PersistentFlags()
	flags.IntVar(&opts.resolution, "resolution", stats.DefaultResolution, "Simpson panels per interval")
	flags.BoolVar(&opts.stepwise, "stepwise-variance", false, "use the legacy per-panel variance accumulation")
	flags.StringVarP(&opts.format, "format", "o", "text", "output format: text, json or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each segmented variable to stderr")

	root.AddCommand(newBatchCmd(opts))
	return root
}

func newBatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Segment every variable listed in a YAML file",
		Long: `batch reads a YAML file of the form

  resolution: 20            # optional, overrides --resolution
  stepwise_variance: false  # optional
  variables:
    - name: latency
      family: normal
      params: [10, 2]
      points: [8, 12]

and segments the variables concurrently. Results are printed in file
order. Any failing variable fails the whole batch.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			in := opts.integrator()
			if cfg.Resolution != nil {
				in.Resolution = *cfg.Resolution
			}
			if cfg.StepwiseVariance != nil {
				in.StepwiseVariance = *cfg.StepwiseVariance
			}

			log := opts.logger(cmd.ErrOrStderr())
			reports, err := segmentAll(cmd.Context(), in, cfg.Variables, log)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return writeReports(cmd.OutOrStdout(), opts.format, reports)
		},
	}
}
