// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-segdist/stats"
)

func TestLabel(t *testing.T) {
	for _, tt := range []struct {
		d    stats.Continuous
		want string
	}{
		{stats.UniformDist{A: 0, B: 10}, "Uniform(a=0.0000, b=10.0000)"},
		{stats.NormalDist{Mu: 10, Sigma: 2}, "Normal(μ=10.0000, σ=2.0000)"},
		{stats.BetaDist{Alpha: 0.5, Beta: 3.25}, "Beta(α=0.5000, β=3.2500)"},
		{stats.ParetoDist{Xm: 1, Alpha: 2}, "Pareto(x_m=1.0000, α=2.0000)"},
	} {
		assert.Equal(t, tt.want, label(tt.d))
	}
}

func TestWriteReports(t *testing.T) {
	d := stats.UniformDist{A: 0, B: 10}
	ivs, err := stats.Integrator{}.Segment(d, []float64{4})
	require.NoError(t, err)
	reports := []report{newReport("x", d, ivs), newReport("", d, ivs)}

	var buf bytes.Buffer
	require.NoError(t, writeReports(&buf, "text", reports))
	out := buf.String()
	assert.Contains(t, out, "x ~ Uniform(a=0.0000, b=10.0000)  mass 1\n")
	assert.Contains(t, out, "\nUniform(a=0.0000, b=10.0000)  mass 1\n")
	assert.Equal(t, 2, strings.Count(out, "expectation"))

	buf.Reset()
	require.NoError(t, writeReports(&buf, "yaml", reports))
	var got []report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "x", got[0].Name)
	assert.Empty(t, got[1].Name)
	assert.InDelta(t, 0.6, got[0].Intervals[1].Probability, 1e-9)

	assert.Error(t, writeReports(&buf, "csv", reports))
}
