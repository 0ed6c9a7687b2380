// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ParetoDist is a Pareto (type I) distribution with scale Xm and
// shape Alpha, supported on [Xm, +inf).
type ParetoDist struct {
	Xm, Alpha float64
}

// paretoTailMass is the probability mass left beyond the upper outer
// bound when no separating points are given.
const paretoTailMass = 0.000001

func (d ParetoDist) dist() distuv.Pareto {
	return distuv.Pareto{Xm: d.Xm, Alpha: d.Alpha}
}

func (d ParetoDist) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d ParetoDist) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d ParetoDist) Family() Family { return Pareto }

func (d ParetoDist) Params() []Param {
	return []Param{{"xm", "x_m", d.Xm}, {"alpha", "α", d.Alpha}}
}

// Support returns [Xm, +inf).
func (d ParetoDist) Support() (float64, float64) { return d.Xm, inf }

// Mean returns +inf if Alpha <= 1.
func (d ParetoDist) Mean() float64 {
	if d.Alpha <= 1 {
		return inf
	}
	return d.Alpha * d.Xm / (d.Alpha - 1)
}

// Variance returns +inf if Alpha <= 2.
func (d ParetoDist) Variance() float64 {
	if d.Alpha <= 2 {
		return inf
	}
	a1 := d.Alpha - 1
	return d.Xm * d.Xm * d.Alpha / (a1 * a1 * (d.Alpha - 2))
}

func (d ParetoDist) validate() error {
	if err := checkFinite(d); err != nil {
		return err
	}
	for _, p := range d.Params() {
		if !(p.Value > 0) {
			return badParam(d, p, "must be > 0")
		}
	}
	return nil
}

func (d ParetoDist) checkPoint(x float64) error {
	if !(x >= d.Xm) {
		return &PointError{Family: Pareto, Point: x, Bound: d.Xm}
	}
	if math.IsInf(x, 1) {
		return &PointError{Family: Pareto, Point: x, Bound: inf, Upper: true}
	}
	return nil
}

// outerBounds starts at Xm. The upper bound is the point where the
// CDF reaches 1-1e-6, shifted right by the last separating point when
// there is one. The shifted bound is not a tight tail bound.
func (d ParetoDist) outerBounds(points []float64) (lo, hi float64) {
	hi = d.Xm / math.Pow(paretoTailMass, 1/d.Alpha)
	if len(points) > 0 {
		hi += points[len(points)-1]
	}
	return d.Xm, hi
}

func (d ParetoDist) oracle() (Dist, func(float64) float64) {
	return d, identity
}
