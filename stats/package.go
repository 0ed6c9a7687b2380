// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats discretizes continuous distributions into contiguous
// intervals and reports, for each interval, the probability mass and
// the conditional expectation and variance of the distribution
// restricted to that interval.
//
// The four supported families are UniformDist, NormalDist, BetaDist
// and ParetoDist. Segment picks outer bounds for a distribution,
// splits its support at caller-supplied separating points, and
// integrates each piece with composite Simpson's rule at a fixed
// resolution (see Integrator).
package stats // import "github.com/aclements/go-segdist/stats"

import "math"

var inf = math.Inf(1)
