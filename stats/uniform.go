// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// UniformDist is a continuous uniform distribution over [A, B].
type UniformDist struct {
	// A and B are the ends of the support. A < B.
	A, B float64
}

func (d UniformDist) dist() distuv.Uniform {
	return distuv.Uniform{Min: d.A, Max: d.B}
}

func (d UniformDist) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d UniformDist) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d UniformDist) Family() Family { return Uniform }

func (d UniformDist) Params() []Param {
	return []Param{{"a", "a", d.A}, {"b", "b", d.B}}
}

// Support returns [A, B].
func (d UniformDist) Support() (float64, float64) { return d.A, d.B }

func (d UniformDist) Mean() float64 { return (d.A + d.B) / 2 }

func (d UniformDist) Variance() float64 {
	w := d.B - d.A
	return w * w / 12
}

func (d UniformDist) validate() error {
	if err := checkFinite(d); err != nil {
		return err
	}
	if !(d.A < d.B) {
		return badParam(d, d.Params()[0], "must be less than b")
	}
	return nil
}

func (d UniformDist) checkPoint(x float64) error {
	return checkOpen(Uniform, x, d.A, d.B)
}

// outerBounds always closes the sequence at the ends of the support.
func (d UniformDist) outerBounds([]float64) (float64, float64) {
	return d.A, d.B
}

func (d UniformDist) oracle() (Dist, func(float64) float64) {
	return d, identity
}
