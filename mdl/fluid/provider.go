// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements thermodynamic property providers for real fluids.
// All values are in SI units:
//   T [K], H [J/kg], S [J/(kg·K)], Q [-]
package fluid

import (
	"sort"
	"strings"
)

// quantity keys
const (
	KeyT         = "T"          // temperature
	KeyQ         = "Q"          // vapour quality; 0=saturated liquid, 1=saturated vapour
	KeyH         = "H"          // specific enthalpy
	KeyS         = "S"          // specific entropy
	KeyTtriple   = "T_triple"   // triple-point temperature
	KeyTcritical = "T_critical" // critical-point temperature
)

// Provider computes properties of one fluid
type Provider interface {

	// Name returns the name of fluid
	Name() string

	// Trivial computes state-independent quantities; e.g. T_critical
	Trivial(output string) (float64, error)

	// Props computes output @ (name1=v1, name2=v2); e.g. Props("H", "T", 300, "Q", 0)
	Props(output, name1 string, v1 float64, name2 string, v2 float64) (float64, error)
}

// New returns the property provider of fluid "name". Names are case-insensitive
func New(name string) (Provider, error) {
	allocator, ok := allocators[strings.ToLower(name)]
	if !ok {
		return nil, &LookupError{Fluid: name, Quantity: "fluid", Err: ErrUnknownFluid}
	}
	return allocator(), nil
}

// Names returns the sorted names of all available fluids (aliases included)
func Names() (names []string) {
	for key := range allocators {
		names = append(names, key)
	}
	sort.Strings(names)
	return
}

// PropsSI computes output @ (name1=v1, name2=v2) for fluid with name fluidName
func PropsSI(output, name1 string, v1 float64, name2 string, v2 float64, fluidName string) (float64, error) {
	p, err := New(fluidName)
	if err != nil {
		return 0, err
	}
	return p.Props(output, name1, v1, name2, v2)
}

// PropsSI1 computes a state-independent output for fluid with name fluidName; e.g. "T_critical"
func PropsSI1(output, fluidName string) (float64, error) {
	p, err := New(fluidName)
	if err != nil {
		return 0, err
	}
	return p.Trivial(output)
}

// allocators holds all available fluids
var allocators = map[string]func() Provider{}
