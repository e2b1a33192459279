// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sat

import (
	"github.com/cpmech/gosl/io"
	"github.com/le-nicolas/mollier/dgm"
	"github.com/le-nicolas/mollier/mdl/fluid"
)

// DefaultFluid is used when no fluid is given
const DefaultFluid = "Water"

// Diagram collects the saturation lines and the critical point of p in a diagram
func Diagram(p fluid.Provider, n, nworkers int) (d *dgm.Diagram, err error) {
	lines, err := Compute(p, n, nworkers)
	if err != nil {
		return
	}
	sc, hc, err := Critical(p)
	if err != nil {
		return
	}
	cp := dgm.XY{X: sc, Y: hc}
	d = dgm.New(io.Sf("Mollier Diagram for %s", p.Name()), "Entropy, s [kJ/kg·K]", "Enthalpy, h [kJ/kg]")
	d.AddLine("Saturated Liquid", lines.Sl, lines.Hl, dgm.Style{C: "blue"})
	d.AddLine("Saturated Vapor", lines.Sv, lines.Hv, dgm.Style{C: "red"})
	d.AddPoint("Critical Point", cp, dgm.Style{C: "black", M: "o"})
	d.AddNote("Critical Point", cp, nil, dgm.Style{Fsz: 10})
	err = d.Check()
	return
}

// Generate resolves fluid "name" and computes its diagram. Empty name means DefaultFluid
func Generate(name string, n, nworkers int) (*dgm.Diagram, error) {
	if name == "" {
		name = DefaultFluid
	}
	p, err := fluid.New(name)
	if err != nil {
		return nil, err
	}
	return Diagram(p, n, nworkers)
}
