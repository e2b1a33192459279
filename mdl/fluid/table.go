// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/interp"
)

// Table implements a provider based on tabulated saturation properties.
// Properties along the saturation dome are interpolated in temperature; states
// inside the dome (0 < Q < 1) are computed with the lever rule:
//   y = yl + Q・(yv - yl)
type Table struct {

	// data
	name    string    // name of fluid
	tTriple float64   // triple-point temperature [K]
	tCrit   float64   // critical-point temperature [K]
	T       []float64 // temperatures [K]
	Hl, Hv  []float64 // enthalpies of saturated liquid and vapour [J/kg]
	Sl, Sv  []float64 // entropies of saturated liquid and vapour [J/(kg·K)]

	// interpolators
	hl, hv, sl, sv interp.PiecewiseLinear
}

// Init initialises this structure. T must start at the triple point and end
// at the critical point
func (o *Table) Init(name string, T, Hl, Hv, Sl, Sv []float64) (err error) {
	n := len(T)
	if n < 2 {
		return chk.Err("table of %q needs at least 2 temperatures. %d is invalid", name, n)
	}
	if len(Hl) != n || len(Hv) != n || len(Sl) != n || len(Sv) != n {
		return chk.Err("table of %q: all columns must have %d rows", name, n)
	}
	for i := 1; i < n; i++ {
		if !(T[i] > T[i-1]) {
			return chk.Err("table of %q: temperatures must be strictly increasing. T[%d]=%g and T[%d]=%g are invalid", name, i-1, T[i-1], i, T[i])
		}
	}
	o.name = name
	o.tTriple, o.tCrit = T[0], T[n-1]
	o.T, o.Hl, o.Hv, o.Sl, o.Sv = T, Hl, Hv, Sl, Sv
	for _, c := range []struct {
		pl *interp.PiecewiseLinear
		y  []float64
		k  string
	}{
		{&o.hl, Hl, "hl"}, {&o.hv, Hv, "hv"}, {&o.sl, Sl, "sl"}, {&o.sv, Sv, "sv"},
	} {
		err = c.pl.Fit(T, c.y)
		if err != nil {
			return chk.Err("table of %q: cannot fit %s column: %v", name, c.k, err)
		}
	}
	return
}

// Name returns the name of fluid
func (o *Table) Name() string {
	return o.name
}

// Trivial computes state-independent quantities
func (o *Table) Trivial(output string) (float64, error) {
	switch output {
	case KeyTtriple, "Ttriple":
		return o.tTriple, nil
	case KeyTcritical, "Tcrit":
		return o.tCrit, nil
	}
	return 0, &LookupError{Fluid: o.name, Quantity: output, Err: ErrUnknownQuantity}
}

// Props computes output @ (name1=v1, name2=v2). Only the (T,Q) pair, in any order, is supported
func (o *Table) Props(output, name1 string, v1 float64, name2 string, v2 float64) (float64, error) {
	fail := func(cause error) (float64, error) {
		return 0, &LookupError{Fluid: o.name, Quantity: output, Inputs: FmtInputs(name1, v1, name2, v2), Err: cause}
	}

	// inputs
	var T, Q float64
	switch {
	case name1 == KeyT && name2 == KeyQ:
		T, Q = v1, v2
	case name1 == KeyQ && name2 == KeyT:
		T, Q = v2, v1
	default:
		return fail(ErrBadInputs)
	}
	tol := 1e-9 * o.tCrit
	if math.IsNaN(T) || T < o.tTriple-tol || T > o.tCrit+tol {
		return fail(ErrOutOfDomain)
	}
	if math.IsNaN(Q) || Q < 0 || Q > 1 {
		return fail(ErrOutOfDomain)
	}
	T = math.Min(math.Max(T, o.tTriple), o.tCrit)

	// output
	var liq, vap *interp.PiecewiseLinear
	switch output {
	case KeyH, "Hmass":
		liq, vap = &o.hl, &o.hv
	case KeyS, "Smass":
		liq, vap = &o.sl, &o.sv
	case KeyT:
		return T, nil
	case KeyQ:
		return Q, nil
	default:
		return fail(ErrUnknownQuantity)
	}
	switch Q {
	case 0:
		return liq.Predict(T), nil
	case 1:
		return vap.Predict(T), nil
	}
	yl, yv := liq.Predict(T), vap.Predict(T)
	return yl + Q*(yv-yl), nil
}

// newTableC allocates a table from rows given as {θ [°C], hl, hv [kJ/kg], sl, sv [kJ/(kg·K)]}.
// The first and last temperatures are replaced by the exact Ttriple and Tcrit [K]
func newTableC(name string, rows [][5]float64, Ttriple, Tcrit float64) *Table {
	n := len(rows)
	T := make([]float64, n)
	Hl := make([]float64, n)
	Hv := make([]float64, n)
	Sl := make([]float64, n)
	Sv := make([]float64, n)
	for i, row := range rows {
		T[i] = row[0] + 273.15
		Hl[i] = row[1] * 1000.0
		Hv[i] = row[2] * 1000.0
		Sl[i] = row[3] * 1000.0
		Sv[i] = row[4] * 1000.0
	}
	T[0], T[n-1] = Ttriple, Tcrit
	o := new(Table)
	err := o.Init(name, T, Hl, Hv, Sl, Sv)
	if err != nil {
		chk.Panic("cannot initialise table of %s:\n%v", name, err)
	}
	return o
}
