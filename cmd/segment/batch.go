// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-segdist/stats"
)

// maxConfigSize bounds the size of a batch file.
const maxConfigSize = 1 << 20

// config is the contents of a batch file.
type config struct {
	// Resolution and StepwiseVariance override the command-line
	// flags when set.
	Resolution       *int  `yaml:"resolution,omitempty"`
	StepwiseVariance *bool `yaml:"stepwise_variance,omitempty"`

	Variables []variable `yaml:"variables"`
}

// variable is a named distribution to segment.
type variable struct {
	Name   string    `yaml:"name"`
	Family string    `yaml:"family"`
	Params []any     `yaml:"params"`
	Points []float64 `yaml:"points,omitempty"`
}

func loadConfig(path string) (*config, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.Size() > maxConfigSize {
		return nil, fmt.Errorf("%s: file too large (%d bytes, limit %d)", path, fi.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*config, error) {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	if len(cfg.Variables) == 0 {
		return nil, fmt.Errorf("batch file lists no variables")
	}
	seen := make(map[string]bool)
	for i, v := range cfg.Variables {
		if v.Name == "" {
			return nil, fmt.Errorf("variable %d has no name", i)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("duplicate variable %q", v.Name)
		}
		seen[v.Name] = true
	}
	return &cfg, nil
}

// segmentAll segments vars concurrently. The reports are in the same
// order as vars. The first error cancels the remaining work.
func segmentAll(ctx context.Context, in stats.Integrator, vars []variable, log *slog.Logger) ([]report, error) {
	reports := make([]report, len(vars))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range vars {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := segmentVariable(in, v, log)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func segmentVariable(in stats.Integrator, v variable, log *slog.Logger) (report, error) {
	d, err := stats.NewContinuous(v.Family, v.Params...)
	var ivs []stats.Interval
	if err == nil {
		ivs, err = in.Segment(d, v.Points)
	}
	if err != nil {
		log.Warn("segmentation failed", "variable", v.Name, "family", v.Family, "err", err)
		if v.Name != "" {
			err = fmt.Errorf("%s: %w", v.Name, err)
		}
		return report{}, err
	}
	log.Debug("segmented", "variable", v.Name, "dist", label(d), "points", len(v.Points), "intervals", len(ivs))
	return newReport(v.Name, d, ivs), nil
}
