// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws pseudo-random numbers
type Sampler interface {
	Rand() float64
}

// NewSampler returns a uniform sampler in [lo, hi).
//  seed -- 0 means unseeded (global source); otherwise the sequence is reproducible
func NewSampler(lo, hi float64, seed uint64) Sampler {
	u := distuv.Uniform{Min: lo, Max: hi}
	if seed > 0 {
		u.Src = rand.NewPCG(seed, seed)
	}
	return u
}
