// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"sort"
)

// Segment constructs the named distribution (see NewContinuous) and
// segments it at points using the zero Integrator.
func Segment(family string, params []any, points []float64) ([]Interval, error) {
	d, err := NewContinuous(family, params...)
	if err != nil {
		return nil, err
	}
	return Integrator{}.Segment(d, points)
}

// Boundaries returns the sorted separating points of d closed off by
// the outer bounds of d.
//
// The outer bounds depend on the family:
//
//	Uniform  [A, B].
//	Beta     [0, 1].
//	Normal   5σ around Mu with no points. Otherwise 5σ beyond the
//	         outermost points, or 5σ beyond Mu on a side where Mu
//	         lies outside the points.
//	Pareto   Xm, and Xm/1e-6^(1/Alpha) added to the last point (or
//	         to 0 with no points).
//
// Points must be finite and inside the support of d: strictly inside
// for Uniform and Beta, at or above Xm for Pareto. points is not
// modified.
func Boundaries(d Continuous, points []float64) ([]float64, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	for _, x := range points {
		if err := d.checkPoint(x); err != nil {
			return nil, err
		}
	}

	sorted := append([]float64(nil), points...)
	sort.Float64s(sorted)
	lo, hi := d.outerBounds(sorted)

	bs := make([]float64, 0, len(sorted)+2)
	bs = append(bs, lo)
	bs = append(bs, sorted...)
	return append(bs, hi), nil
}

// Segment splits d at points and integrates every resulting interval.
// It returns one Interval per adjacent pair of Boundaries(d, points),
// in increasing order, or the first error encountered.
func (in Integrator) Segment(d Continuous, points []float64) ([]Interval, error) {
	bs, err := Boundaries(d, points)
	if err != nil {
		return nil, err
	}

	oracle, transform := d.oracle()
	out := make([]Interval, 0, len(bs)-1)
	for i := 0; i+1 < len(bs); i++ {
		l, u := bs[i], bs[i+1]
		iv, err := in.Integrate(oracle, transform(l), transform(u))
		if err != nil {
			// Report the bounds the caller knows about.
			var ie *IntervalError
			if errors.As(err, &ie) {
				ie.Lower, ie.Upper = l, u
			}
			return nil, err
		}
		iv.Lower, iv.Upper = l, u
		out = append(out, iv)
	}
	return out, nil
}
