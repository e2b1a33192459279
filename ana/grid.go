// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// InvalidDomainError reports a grid that is empty, too short or not strictly increasing
type InvalidDomainError struct {
	Min, Max float64 // requested range
	N        int     // number of points
	Index    int     // index of the first offending value; -1 if not applicable
	Msg      string  // description
}

// Error implements error
func (o *InvalidDomainError) Error() string {
	if o.Index < 0 {
		return io.Sf("invalid domain [%g, %g] with %d points: %s", o.Min, o.Max, o.N, o.Msg)
	}
	return io.Sf("invalid domain [%g, %g] with %d points: %s (index %d)", o.Min, o.Max, o.N, o.Msg, o.Index)
}

// NewGrid returns n linearly spaced values in [min, max]
func NewGrid(min, max float64, n int) ([]float64, error) {
	fail := func(msg string) ([]float64, error) {
		return nil, &InvalidDomainError{Min: min, Max: max, N: n, Index: -1, Msg: msg}
	}
	if n < 2 {
		return fail("at least 2 points are required")
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fail("limits must be finite")
	}
	if min >= max {
		return fail("min must be smaller than max")
	}
	s := utl.LinSpace(min, max, n)
	s[n-1] = max
	return s, nil
}

// CheckGrid checks that s has at least 2 finite and strictly increasing values
func CheckGrid(s []float64) error {
	n := len(s)
	if n < 2 {
		return &InvalidDomainError{N: n, Index: -1, Msg: "at least 2 points are required"}
	}
	min, max := floats.Min(s), floats.Max(s)
	if floats.HasNaN(s) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return &InvalidDomainError{Min: min, Max: max, N: n, Index: -1, Msg: "values must be finite"}
	}
	for i := 1; i < n; i++ {
		if s[i] <= s[i-1] {
			return &InvalidDomainError{Min: min, Max: max, N: n, Index: i, Msg: "values must be strictly increasing"}
		}
	}
	return nil
}
