// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readPoints reads newline-separated numbers from r. Blank lines are
// skipped.
func readPoints(r io.Reader) (points []float64, err error) {
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
		points = append(points, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return
}

func parsePoint(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("separating point %q: %w", s, err)
	}
	return x, nil
}

// parseParams converts command-line parameters to integers or reals
// where possible. Anything else is passed through unchanged so that
// the distribution constructor reports it as a parameter type error.
func parseParams(args []string) []any {
	params := make([]any, len(args))
	for i, s := range args {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			params[i] = n
		} else if x, err := strconv.ParseFloat(s, 64); err == nil {
			params[i] = x
		} else {
			params[i] = s
		}
	}
	return params
}
