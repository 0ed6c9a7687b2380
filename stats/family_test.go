// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestParseFamily(t *testing.T) {
	for name, want := range map[string]Family{
		"uniform": Uniform,
		"Normal":  Normal,
		"BETA":    Beta,
		"pareto":  Pareto,
	} {
		got, err := ParseFamily(name)
		if err != nil || got != want {
			t.Errorf("ParseFamily(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	for _, name := range []string{"", "gamma", "normal "} {
		if _, err := ParseFamily(name); !errors.Is(err, ErrUnsupportedFamily) {
			t.Errorf("ParseFamily(%q): want ErrUnsupportedFamily, got %v", name, err)
		}
	}

	if got := Family(7).String(); got != "Family(7)" {
		t.Errorf("Family(7).String() = %q", got)
	}
}

func TestNewContinuous(t *testing.T) {
	check := func(family string, params []any, want Continuous) {
		t.Helper()
		got, err := NewContinuous(family, params...)
		if err != nil {
			t.Errorf("NewContinuous(%q, %v): %v", family, params, err)
			return
		}
		if got != want {
			t.Errorf("NewContinuous(%q, %v) = %+v, want %+v", family, params, got, want)
		}
	}
	check("uniform", []any{0, 10}, UniformDist{A: 0, B: 10})
	check("normal", []any{int64(10), float32(2)}, NormalDist{Mu: 10, Sigma: 2})
	check("beta", []any{uint8(2), 5.0}, BetaDist{Alpha: 2, Beta: 5})
	check("pareto", []any{1, 2.5}, ParetoDist{Xm: 1, Alpha: 2.5})

	fails := func(family string, params []any, want error) {
		t.Helper()
		_, err := NewContinuous(family, params...)
		if !errors.Is(err, want) {
			t.Errorf("NewContinuous(%q, %v): want %v, got %v", family, params, want, err)
		}
	}
	fails("gamma", []any{1, 2}, ErrUnsupportedFamily)
	fails("normal", []any{0, "1"}, ErrInvalidParameterType)
	fails("normal", []any{true, 1}, ErrInvalidParameterType)
	fails("beta", []any{nil, 1}, ErrInvalidParameterType)
	fails("normal", []any{0}, ErrInvalidParameterValue)
	fails("normal", []any{0, 1, 2}, ErrInvalidParameterValue)
	fails("normal", []any{0, 0}, ErrInvalidParameterValue)
	fails("normal", []any{math.NaN(), 1}, ErrInvalidParameterValue)
	fails("uniform", []any{1, 1}, ErrInvalidParameterValue)
	fails("uniform", []any{2, 1}, ErrInvalidParameterValue)
	fails("uniform", []any{0, math.Inf(1)}, ErrInvalidParameterValue)
	fails("beta", []any{0, 1}, ErrInvalidParameterValue)
	fails("beta", []any{1, -1}, ErrInvalidParameterValue)
	fails("pareto", []any{0, 1}, ErrInvalidParameterValue)
	fails("pareto", []any{1, 0}, ErrInvalidParameterValue)

	// The error names the offending parameter.
	_, err := NewContinuous("pareto", 1, -2)
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Param != "alpha" || pe.Value != -2.0 {
		t.Errorf("want ParamError for alpha=-2, got %#v", err)
	}
}

func TestFamilyDists(t *testing.T) {
	u := UniformDist{A: 0, B: 10}
	testFunc(t, fmt.Sprintf("%+v.PDF", u), u.PDF, map[float64]float64{
		-1: 0, 0: 0.1, 5: 0.1, 10: 0.1, 11: 0,
	})
	testFunc(t, fmt.Sprintf("%+v.CDF", u), u.CDF, map[float64]float64{
		-1: 0, 0: 0, 2.5: 0.25, 10: 1, 11: 1,
	})

	n := NormalDist{Mu: 0, Sigma: 1}
	testFunc(t, fmt.Sprintf("%+v.PDF", n), n.PDF, map[float64]float64{
		0: 0.3989422804014327, 1: 0.24197072451914337, -1: 0.24197072451914337,
	})
	testFunc(t, fmt.Sprintf("%+v.CDF", n), n.CDF, map[float64]float64{
		0: 0.5, 1.96: 0.9750021048517795, -1.96: 0.024997895148220435,
	})

	b := BetaDist{Alpha: 2, Beta: 2}
	testFunc(t, fmt.Sprintf("%+v.PDF", b), b.PDF, map[float64]float64{
		-0.5: 0, 0.5: 1.5, 0.25: 1.125, 1.5: 0,
	})
	testFunc(t, fmt.Sprintf("%+v.CDF", b), b.CDF, map[float64]float64{
		0: 0, 0.5: 0.5, 0.25: 0.15625, 1: 1,
	})

	p := ParetoDist{Xm: 1, Alpha: 2}
	testFunc(t, fmt.Sprintf("%+v.PDF", p), p.PDF, map[float64]float64{
		0.5: 0, 1: 2, 2: 0.25,
	})
	testFunc(t, fmt.Sprintf("%+v.CDF", p), p.CDF, map[float64]float64{
		0.5: 0, 1: 0, 2: 0.75, 10: 0.99,
	})
}

func TestMoments(t *testing.T) {
	for _, tt := range []struct {
		d          Continuous
		mean, vari float64
	}{
		{UniformDist{A: 0, B: 10}, 5, 100.0 / 12},
		{NormalDist{Mu: 10, Sigma: 2}, 10, 4},
		{BetaDist{Alpha: 2, Beta: 2}, 0.5, 0.05},
		{ParetoDist{Xm: 1, Alpha: 3}, 1.5, 0.75},
		{ParetoDist{Xm: 1, Alpha: 1}, inf, inf},
	} {
		if m := tt.d.Mean(); m != tt.mean && !aeq(tt.mean, m) {
			t.Errorf("%+v.Mean() = %v, want %v", tt.d, m, tt.mean)
		}
		if v := tt.d.Variance(); v != tt.vari && !aeq(tt.vari, v) {
			t.Errorf("%+v.Variance() = %v, want %v", tt.d, v, tt.vari)
		}
	}
}

func TestNormalStandardize(t *testing.T) {
	d := NormalDist{Mu: 10, Sigma: 2}
	if z := d.Standardize(14); z != 2 {
		t.Errorf("Standardize(14) = %v, want 2", z)
	}
	if e, v := d.Destandardize(1, 0.25); e != 12 || v != 1 {
		t.Errorf("Destandardize(1, 0.25) = %v, %v, want 12, 1", e, v)
	}
}
