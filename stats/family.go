// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"strings"
)

// Family identifies a continuous distribution family.
type Family int

const (
	Uniform Family = iota
	Normal
	Beta
	Pareto
)

var familyNames = [...]string{
	Uniform: "Uniform",
	Normal:  "Normal",
	Beta:    "Beta",
	Pareto:  "Pareto",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily returns the family with the given name. Matching is
// case-insensitive.
func ParseFamily(name string) (Family, error) {
	for f, n := range familyNames {
		if strings.EqualFold(name, n) {
			return Family(f), nil
		}
	}
	return 0, &ParamError{Family: name, Err: ErrUnsupportedFamily, Reason: `want one of "uniform", "normal", "beta", "pareto"`}
}

// NewContinuous returns the distribution of the named family with the
// given parameters, in the order reported by Params:
//
//	uniform  a, b
//	normal   μ, σ
//	beta     α, β
//	pareto   x_m, α
//
// Each parameter may be any Go integer or floating-point value.
func NewContinuous(family string, params ...any) (Continuous, error) {
	f, err := ParseFamily(family)
	if err != nil {
		return nil, err
	}
	if len(params) != 2 {
		return nil, &ParamError{Family: f.String(), Value: len(params), Err: ErrInvalidParameterValue,
			Reason: fmt.Sprintf("want 2 parameters, got %d", len(params))}
	}
	var vs [2]float64
	for i, p := range params {
		v, ok := toFloat(p)
		if !ok {
			return nil, &ParamError{Family: f.String(), Param: paramNames[f][i], Value: p, Err: ErrInvalidParameterType,
				Reason: fmt.Sprintf("must be an integer or real number, not %T", p)}
		}
		vs[i] = v
	}

	var d Continuous
	switch f {
	case Uniform:
		d = UniformDist{A: vs[0], B: vs[1]}
	case Normal:
		d = NormalDist{Mu: vs[0], Sigma: vs[1]}
	case Beta:
		d = BetaDist{Alpha: vs[0], Beta: vs[1]}
	case Pareto:
		d = ParetoDist{Xm: vs[0], Alpha: vs[1]}
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

var paramNames = [...][2]string{
	Uniform: {"a", "b"},
	Normal:  {"mu", "sigma"},
	Beta:    {"alpha", "beta"},
	Pareto:  {"xm", "alpha"},
}

// toFloat converts any integer or floating-point kind to float64.
func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// checkFinite returns an ErrInvalidParameterValue error for the first
// non-finite parameter of d.
func checkFinite(d Continuous) error {
	for _, p := range d.Params() {
		if !isFinite(p.Value) {
			return badParam(d, p, "must be finite")
		}
	}
	return nil
}

func badParam(d Continuous, p Param, reason string) error {
	return &ParamError{Family: d.Family().String(), Param: p.Name, Value: p.Value, Err: ErrInvalidParameterValue, Reason: reason}
}

// checkOpen checks that lo < x < hi.
func checkOpen(f Family, x, lo, hi float64) error {
	if !(x > lo) {
		return &PointError{Family: f, Point: x, Bound: lo}
	}
	if !(x < hi) {
		return &PointError{Family: f, Point: x, Bound: hi, Upper: true}
	}
	return nil
}
