// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution, reduced to the two
// functions the Integrator needs. Implementations must be pure: the
// same x always yields the same value and there is no shared state.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64
}

// A Continuous is one of the distribution families that can be
// segmented: UniformDist, NormalDist, BetaDist or ParetoDist.
//
// The interface is closed. Each family carries its own parameter
// record, support, bound-selection rule and integration oracle.
type Continuous interface {
	Dist

	// Family returns the family tag of this distribution.
	Family() Family

	// Params returns the named parameters of this distribution
	// in their conventional order.
	Params() []Param

	// Support returns the admissible range for separating
	// points. Unbounded sides are -inf or +inf.
	Support() (lo, hi float64)

	// Mean and Variance return the exact moments of the
	// untruncated distribution.
	Mean() float64
	Variance() float64

	// validate checks the parameters for family-specific
	// constraints.
	validate() error

	// checkPoint checks that x is an admissible separating point.
	checkPoint(x float64) error

	// outerBounds returns the bounds that close off the
	// sorted, validated separating points.
	outerBounds(points []float64) (lo, hi float64)

	// oracle returns the distribution to integrate against and
	// the coordinate transform applied to interval bounds
	// before integration.
	oracle() (Dist, func(float64) float64)
}

// Param is a single named distribution parameter.
type Param struct {
	// Name is the ASCII name of the parameter, such as "sigma".
	Name string

	// Symbol is the conventional mathematical symbol, such as
	// "σ".
	Symbol string

	Value float64
}

// distFuncs adapts a pair of functions to Dist.
type distFuncs struct {
	pdf, cdf func(float64) float64
}

func (d distFuncs) PDF(x float64) float64 { return d.pdf(x) }
func (d distFuncs) CDF(x float64) float64 { return d.cdf(x) }

func identity(x float64) float64 { return x }
