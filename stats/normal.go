// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal distribution with mean Mu and standard
// deviation Sigma.
//
// Intervals of a NormalDist are integrated against the standard
// normal distribution, so the Expectation and Variance that Segment
// reports for them are in standard units z = (x - Mu) / Sigma. Use
// Destandardize to convert them back.
type NormalDist struct {
	Mu, Sigma float64
}

// normalTail is the number of standard deviations the outer bounds
// extend past the peak or the outermost separating point. The mass
// beyond 5σ on one side is about 2.9e-7.
const normalTail = 5

func (d NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d NormalDist) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d NormalDist) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d NormalDist) Family() Family { return Normal }

func (d NormalDist) Params() []Param {
	return []Param{{"mu", "μ", d.Mu}, {"sigma", "σ", d.Sigma}}
}

// Support returns (-inf, +inf).
func (d NormalDist) Support() (float64, float64) { return -inf, inf }

func (d NormalDist) Mean() float64 { return d.Mu }

func (d NormalDist) Variance() float64 { return d.Sigma * d.Sigma }

// Standardize returns z = (x - Mu) / Sigma.
func (d NormalDist) Standardize(x float64) float64 {
	return (x - d.Mu) / d.Sigma
}

// Destandardize converts an expectation and variance in standard
// units back to the units of x.
func (d NormalDist) Destandardize(e, v float64) (float64, float64) {
	return d.Mu + d.Sigma*e, d.Sigma * d.Sigma * v
}

func (d NormalDist) validate() error {
	if err := checkFinite(d); err != nil {
		return err
	}
	if !(d.Sigma > 0) {
		return badParam(d, d.Params()[1], "must be > 0")
	}
	return nil
}

func (d NormalDist) checkPoint(x float64) error {
	return checkOpen(Normal, x, -inf, inf)
}

// outerBounds extends 5σ past the outermost separating points, or
// past the peak on the side where the peak lies outside them.
func (d NormalDist) outerBounds(points []float64) (lo, hi float64) {
	tail := normalTail * d.Sigma
	if len(points) == 0 {
		return d.Mu - tail, d.Mu + tail
	}
	left, right := points[0], points[len(points)-1]
	switch {
	case left < d.Mu && d.Mu < right:
		return left - tail, right + tail
	case d.Mu <= left-tail:
		return d.Mu - tail, right + tail
	default:
		// The peak is to the right. If it sits within 5σ left of
		// the points, right+tail is the farther bound.
		return left - tail, math.Max(d.Mu, right) + tail
	}
}

func (d NormalDist) oracle() (Dist, func(float64) float64) {
	return distFuncs{distuv.UnitNormal.Prob, distuv.UnitNormal.CDF}, d.Standardize
}
