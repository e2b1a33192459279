// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sat computes saturation lines of real fluids from a property provider
package sat

import (
	"context"
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/le-nicolas/mollier/mdl/fluid"
	"golang.org/x/sync/errgroup"
)

// Kilo converts provider units to diagram units: J/kg => kJ/kg and J/(kg·K) => kJ/(kg·K)
const Kilo = 1000.0

// ToKilo converts one value from provider units to diagram units
func ToKilo(v float64) float64 {
	return v / Kilo
}

// ToKiloAll converts all values in place and returns v
func ToKiloAll(v []float64) []float64 {
	for i := range v {
		v[i] = ToKilo(v[i])
	}
	return v
}

// Lines holds the saturation lines of a fluid
type Lines struct {
	Fluid string    // name of fluid
	T     []float64 // temperatures [K]
	Hl    []float64 // enthalpy of saturated liquid [kJ/kg]
	Hv    []float64 // enthalpy of saturated vapour [kJ/kg]
	Sl    []float64 // entropy of saturated liquid [kJ/(kg·K)]
	Sv    []float64 // entropy of saturated vapour [kJ/(kg·K)]
}

// TemperatureGrid returns n temperatures from the triple point to the critical point (inclusive)
func TemperatureGrid(p fluid.Provider, n int) (T []float64, err error) {
	if n < 2 {
		return nil, chk.Err("number of temperatures must be at least 2. n=%d is invalid", n)
	}
	Tt, err := trivial(p, fluid.KeyTtriple)
	if err != nil {
		return
	}
	Tc, err := trivial(p, fluid.KeyTcritical)
	if err != nil {
		return
	}
	if Tc <= Tt {
		return nil, chk.Err("%s: critical temperature (%g) must be greater than triple-point temperature (%g)", p.Name(), Tc, Tt)
	}
	T = utl.LinSpace(Tt, Tc, n)
	T[0], T[n-1] = Tt, Tc
	return
}

// Compute computes the saturation lines with n temperatures.
//  nworkers -- number of concurrent queries; <= 1 means sequential
// Any failure aborts the computation and no lines are returned.
func Compute(p fluid.Provider, n, nworkers int) (o *Lines, err error) {

	// temperatures
	T, err := TemperatureGrid(p, n)
	if err != nil {
		return
	}
	res := &Lines{
		Fluid: p.Name(),
		T:     T,
		Hl:    make([]float64, n),
		Hv:    make([]float64, n),
		Sl:    make([]float64, n),
		Sv:    make([]float64, n),
	}
	columns := []struct {
		key string
		q   float64
		y   []float64
	}{
		{fluid.KeyH, 0, res.Hl},
		{fluid.KeyH, 1, res.Hv},
		{fluid.KeyS, 0, res.Sl},
		{fluid.KeyS, 1, res.Sv},
	}

	// compute row i
	row := func(i int) error {
		for _, c := range columns {
			v, e := props(p, c.key, T[i], c.q)
			if e != nil {
				return e
			}
			c.y[i] = ToKilo(v)
		}
		return nil
	}

	// sequential
	if nworkers <= 1 {
		for i := range T {
			if err = row(i); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	// concurrent. each task writes to its own index
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(nworkers)
	for i := range T {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			return row(i)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Critical computes (s, h) at the critical temperature with Q=1, in diagram units
func Critical(p fluid.Provider) (s, h float64, err error) {
	Tc, err := trivial(p, fluid.KeyTcritical)
	if err != nil {
		return
	}
	hc, err := props(p, fluid.KeyH, Tc, 1)
	if err != nil {
		return
	}
	sc, err := props(p, fluid.KeyS, Tc, 1)
	if err != nil {
		return
	}
	return ToKilo(sc), ToKilo(hc), nil
}

// trivial calls p.Trivial and makes sure failures are LookupErrors
func trivial(p fluid.Provider, key string) (float64, error) {
	v, err := p.Trivial(key)
	if err != nil {
		return 0, asLookup(err, p.Name(), key, "")
	}
	return v, nil
}

// props calls p.Props with (T, Q) and makes sure failures are LookupErrors
func props(p fluid.Provider, key string, T, Q float64) (float64, error) {
	v, err := p.Props(key, fluid.KeyT, T, fluid.KeyQ, Q)
	if err != nil {
		return 0, asLookup(err, p.Name(), key, fluid.FmtInputs(fluid.KeyT, T, fluid.KeyQ, Q))
	}
	return v, nil
}

// asLookup wraps err into a LookupError unless it is one already
func asLookup(err error, name, key, inputs string) error {
	var lerr *fluid.LookupError
	if errors.As(err, &lerr) {
		return err
	}
	return &fluid.LookupError{Fluid: name, Quantity: key, Inputs: inputs, Err: err}
}
