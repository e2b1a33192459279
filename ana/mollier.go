// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/le-nicolas/mollier/dgm"
)

// sPositive replaces non-positive entropies in the isentropes
const sPositive = 1e-12

// Mollier implements closed-form approximations of the h-s diagram of water/steam.
//   liquid line:  hl = K1・√s
//   vapour line:  hv = hl + ΔH
//   isentropes:   h  = H0 + K2・ln(1 + s0/s)
// The critical point (Sc, Hc) is a fixed constant; it is not computed from the lines.
// Units: s [kJ/(kg·K)], h [kJ/kg], A [cm²]
type Mollier struct {

	// saturation lines
	K1 float64 // liquid line factor
	DH float64 // constant gap between liquid and vapour lines

	// critical point
	Sc float64 // entropy
	Hc float64 // enthalpy

	// isentropes
	H0        float64   // base enthalpy
	K2        float64   // logarithm factor
	Landmarks []float64 // values of s0

	// uncertainty bands
	DHmax float64 // perturbations are uniform in [-DHmax, DHmax)
	Amin  float64 // smallest inlet area
	Amax  float64 // largest inlet area
	NA    int     // number of inlet areas

	// entropy grid
	Smin float64 // first value
	Smax float64 // last value
	Ns   int     // number of points
}

// Isentrope holds one isentropic line
type Isentrope struct {
	S0 float64   // landmark entropy
	H  []float64 // enthalpies along the entropy grid
}

// Band holds one uncertainty band
type Band struct {
	A     float64   // inlet area
	Lower []float64 // baseline liquid enthalpy (shared by all bands)
	Upper []float64 // perturbed liquid enthalpy
}

// Init initialises this structure. Parameters not given keep their default values
func (o *Mollier) Init(prms dbf.Params) (err error) {
	o.setDefault()
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k1":
			o.K1 = p.V
		case "dh":
			o.DH = p.V
		case "sc":
			o.Sc = p.V
		case "hc":
			o.Hc = p.V
		case "h0":
			o.H0 = p.V
		case "k2":
			o.K2 = p.V
		case "dhmax":
			o.DHmax = p.V
		case "amin":
			o.Amin = p.V
		case "amax":
			o.Amax = p.V
		case "na":
			o.NA = int(p.V)
		case "smin":
			o.Smin = p.V
		case "smax":
			o.Smax = p.V
		case "ns":
			o.Ns = int(p.V)
		default:
			return chk.Err("mollier: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.NA < 0 {
		return chk.Err("mollier: number of inlet areas must be non-negative. nA=%d is invalid\n", o.NA)
	}
	if o.DHmax < 0 {
		return chk.Err("mollier: dHmax must be non-negative. dHmax=%g is invalid\n", o.DHmax)
	}
	return
}

// setDefault sets default values
func (o *Mollier) setDefault() {
	o.K1, o.DH = 100, 2000
	o.Sc, o.Hc = 6.4, 2800
	o.H0, o.K2 = 200, 300
	o.DHmax, o.Amin, o.Amax, o.NA = 50, 50, 150, 5
	o.Smin, o.Smax, o.Ns = 0.5, 8, 500
	if o.Landmarks == nil {
		o.Landmarks = []float64{2, 4, 6}
	}
}

// GetPrms gets (an example) of parameters
func (o Mollier) GetPrms(example bool) dbf.Params {
	if example {
		o.Landmarks = nil
		o.setDefault()
	}
	return dbf.Params{
		&dbf.P{N: "k1", V: o.K1},
		&dbf.P{N: "dH", V: o.DH},
		&dbf.P{N: "sc", V: o.Sc},
		&dbf.P{N: "hc", V: o.Hc},
		&dbf.P{N: "H0", V: o.H0},
		&dbf.P{N: "k2", V: o.K2},
		&dbf.P{N: "dHmax", V: o.DHmax},
		&dbf.P{N: "Amin", V: o.Amin},
		&dbf.P{N: "Amax", V: o.Amax},
		&dbf.P{N: "nA", V: float64(o.NA)},
		&dbf.P{N: "smin", V: o.Smin},
		&dbf.P{N: "smax", V: o.Smax},
		&dbf.P{N: "ns", V: float64(o.Ns)},
	}
}

// Grid returns the entropy grid
func (o Mollier) Grid() ([]float64, error) {
	return NewGrid(o.Smin, o.Smax, o.Ns)
}

// LiquidLine computes the saturated liquid line. Zero is returned where s <= 0
func (o Mollier) LiquidLine(s []float64) (hl []float64) {
	hl = make([]float64, len(s))
	for i, v := range s {
		if v > 0 {
			hl[i] = o.K1 * math.Sqrt(v)
		}
	}
	return
}

// VaporLine computes the saturated vapour line from the liquid line
func (o Mollier) VaporLine(hl []float64) (hv []float64) {
	hv = make([]float64, len(hl))
	for i, h := range hl {
		hv[i] = h + o.DH
	}
	return
}

// CriticalPoint returns the (fixed) critical point
func (o Mollier) CriticalPoint() dgm.XY {
	return dgm.XY{X: o.Sc, Y: o.Hc}
}

// Isentrope computes the isentrope with landmark s0 along the whole grid s
func (o Mollier) Isentrope(s []float64, s0 float64) (h []float64) {
	h = make([]float64, len(s))
	for i, v := range s {
		if v <= 0 {
			v = sPositive
		}
		h[i] = o.H0 + o.K2*math.Log(1.0+s0/v)
	}
	return
}

// Isentropes computes all isentropes
func (o Mollier) Isentropes(s []float64) (res []Isentrope) {
	res = make([]Isentrope, len(o.Landmarks))
	for i, s0 := range o.Landmarks {
		res[i] = Isentrope{S0: s0, H: o.Isentrope(s, s0)}
	}
	return
}

// Areas returns the inlet areas
func (o Mollier) Areas() []float64 {
	switch {
	case o.NA < 1:
		return nil
	case o.NA == 1:
		return []float64{o.Amin}
	}
	return utl.LinSpace(o.Amin, o.Amax, o.NA)
}

// Bands computes one uncertainty band per inlet area. Draws are independent
// for each band and each grid point; they are taken band after band.
//  hl  -- baseline liquid line; used as the lower curve of all bands
//  rnd -- sampler of perturbations
func (o Mollier) Bands(hl []float64, rnd Sampler) (res []*Band) {
	for _, A := range o.Areas() {
		b := &Band{A: A, Lower: hl, Upper: make([]float64, len(hl))}
		for i, h := range hl {
			b.Upper[i] = h + rnd.Rand()
		}
		res = append(res, b)
	}
	return
}

// Diagram computes all curves along the entropy grid and collects them in a diagram.
//  seed -- seed of perturbations; 0 means unseeded
func (o Mollier) Diagram(seed uint64) (*dgm.Diagram, error) {
	s, err := o.Grid()
	if err != nil {
		return nil, err
	}
	return o.DiagramOn(s, seed)
}

// DiagramOn computes all curves along the given entropy grid s
func (o Mollier) DiagramOn(s []float64, seed uint64) (d *dgm.Diagram, err error) {

	// saturation lines
	err = CheckGrid(s)
	if err != nil {
		return
	}
	hl := o.LiquidLine(s)
	hv := o.VaporLine(hl)
	cp := o.CriticalPoint()

	// diagram
	d = dgm.New("Mollier Diagram (h-s) with Parametric and Stochastic Analysis", "Entropy, s (kJ/kg·K)", "Enthalpy, h (kJ/kg)")
	d.AddLine("Saturation Line (Liquid)", s, hl, dgm.Style{C: "blue"})
	d.AddLine("Saturation Line (Vapor)", s, hv, dgm.Style{C: "orange"})
	d.AddPoint("Critical Point", cp, dgm.Style{C: "red", M: "o", Z: 5})

	// isentropes
	for _, iso := range o.Isentropes(s) {
		d.AddLine(io.Sf("Isentropic Process s=%g kJ/kg·K", iso.S0), s, iso.H, dgm.Style{Ls: "--"})
	}

	// uncertainty
	for i, b := range o.Bands(hl, NewSampler(-o.DHmax, o.DHmax, seed)) {
		var label string
		if i == 0 {
			label = io.Sf("A_in=%g cm² (uncertainty)", b.A)
		}
		d.AddBand(label, s, b.Lower, b.Upper, dgm.Style{Alpha: 0.2})
	}

	// notes
	d.AddNote("Critical Point\nPhase Transition", dgm.XY{X: 6, Y: 3000}, &cp, dgm.Style{C: "red", Fsz: 12})
	d.AddNote("Parametric Effect\n(Inlet Area)", dgm.XY{X: 2, Y: 2000}, &dgm.XY{X: 4, Y: 1500}, dgm.Style{C: "black", Fsz: 12})
	err = d.Check()
	return
}

// Generate computes the analytic diagram with given parameters and landmarks.
// nil landmarks means the default ones.
func Generate(prms dbf.Params, landmarks []float64, seed uint64) (*dgm.Diagram, error) {
	o := Mollier{Landmarks: landmarks}
	err := o.Init(prms)
	if err != nil {
		return nil, err
	}
	return o.Diagram(seed)
}
