// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
)

// Errors returned by Segment and Integrate. The concrete error values
// are *ParamError, *PointError or *IntervalError, which unwrap to one
// of these, so callers should test with errors.Is.
var (
	ErrUnsupportedFamily     = errors.New("unsupported distribution family")
	ErrInvalidParameterType  = errors.New("invalid parameter type")
	ErrInvalidParameterValue = errors.New("invalid parameter value")
	ErrPointOutOfSupport     = errors.New("separating point out of support")
	ErrDegenerateInterval    = errors.New("degenerate interval")
	ErrIntegrationFailure    = errors.New("integration failure")
)

// A ParamError reports a family name or parameter that could not be
// used to construct a distribution.
type ParamError struct {
	// Family is the family name as given by the caller.
	Family string

	// Param is the parameter name, or "" if the error concerns
	// the family or the parameter list as a whole.
	Param string

	// Value is the offending value.
	Value any

	Reason string
	Err    error
}

func (e *ParamError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %v: %s", e.Family, e.Err, e.Reason)
	}
	return fmt.Sprintf("%s: %v: %s=%v: %s", e.Family, e.Err, e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return e.Err }

// A PointError reports a separating point that lies outside the
// support of its distribution.
type PointError struct {
	Family Family
	Point  float64

	// Bound is the violated bound. Upper reports whether it is
	// the upper end of the support.
	Bound float64
	Upper bool
}

func (e *PointError) Error() string {
	side := "lower"
	if e.Upper {
		side = "upper"
	}
	return fmt.Sprintf("%s: %v: %g violates %s bound %g", e.Family, ErrPointOutOfSupport, e.Point, side, e.Bound)
}

func (e *PointError) Unwrap() error { return ErrPointOutOfSupport }

// An IntervalError reports an interval that could not be integrated.
// Err is ErrDegenerateInterval or ErrIntegrationFailure.
type IntervalError struct {
	Lower, Upper float64

	// Probability is the interval's probability mass, if it was
	// computed.
	Probability float64

	Reason string
	Err    error
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("[%g, %g]: %v: %s", e.Lower, e.Upper, e.Err, e.Reason)
}

func (e *IntervalError) Unwrap() error { return e.Err }
