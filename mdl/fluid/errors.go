// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// causes of lookup failures
var (
	ErrUnknownFluid    = errors.New("fluid: unknown fluid")
	ErrUnknownQuantity = errors.New("fluid: unknown quantity")
	ErrBadInputs       = errors.New("fluid: unsupported pair of inputs")
	ErrOutOfDomain     = errors.New("fluid: state point out of domain")
)

// LookupError reports a property that could not be computed
type LookupError struct {
	Fluid    string // name of fluid
	Quantity string // requested quantity; e.g. "H"
	Inputs   string // state point; e.g. "T=300, Q=0". empty for state-independent quantities
	Err      error  // cause
}

// Error implements error
func (o *LookupError) Error() string {
	if o.Inputs == "" {
		return io.Sf("cannot compute %q of %q: %v", o.Quantity, o.Fluid, o.Err)
	}
	return io.Sf("cannot compute %q of %q @ %s: %v", o.Quantity, o.Fluid, o.Inputs, o.Err)
}

// Unwrap returns the cause
func (o *LookupError) Unwrap() error {
	return o.Err
}

// FmtInputs formats a pair of inputs
func FmtInputs(name1 string, v1 float64, name2 string, v2 float64) string {
	return io.Sf("%s=%g, %s=%g", name1, v1, name2, v2)
}
