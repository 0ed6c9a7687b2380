// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// BetaDist is a beta distribution on [0, 1].
//
// When Alpha < 1 or Beta < 1 the density is unbounded at the
// corresponding end of the support, so integrating an interval that
// touches that end fails with ErrIntegrationFailure.
type BetaDist struct {
	// Alpha and Beta are the shape parameters. Both must be > 0.
	Alpha, Beta float64
}

func (d BetaDist) dist() distuv.Beta {
	return distuv.Beta{Alpha: d.Alpha, Beta: d.Beta}
}

func (d BetaDist) PDF(x float64) float64 { return d.dist().Prob(x) }

func (d BetaDist) CDF(x float64) float64 { return d.dist().CDF(x) }

func (d BetaDist) Family() Family { return Beta }

func (d BetaDist) Params() []Param {
	return []Param{{"alpha", "α", d.Alpha}, {"beta", "β", d.Beta}}
}

// Support returns [0, 1].
func (d BetaDist) Support() (float64, float64) { return 0, 1 }

func (d BetaDist) Mean() float64 { return d.Alpha / (d.Alpha + d.Beta) }

func (d BetaDist) Variance() float64 {
	s := d.Alpha + d.Beta
	return d.Alpha * d.Beta / (s * s * (s + 1))
}

func (d BetaDist) validate() error {
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

func (d BetaDist) checkPoint(x float64) error {
	return checkOpen(Beta, x, 0, 1)
}

func (d BetaDist) outerBounds([]float64) (float64, float64) {
	return 0, 1
}

func (d BetaDist) oracle() (Dist, func(float64) float64) {
	return d, identity
}
