// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of diagram runs
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// variants
const (
	Analytic = "analytic" // closed-form approximations
	Property = "property" // property-backed saturation lines
)

// Dia holds the input data of one diagram run
type Dia struct {

	// input
	Desc      string     `json:"desc"`      // description of run
	Variant   string     `json:"variant"`   // "analytic" or "property"
	Fluid     string     `json:"fluid"`     // name of fluid (property variant); e.g. "Water"
	Npts      int        `json:"npts"`      // number of temperatures or entropies (grid size)
	Nworkers  int        `json:"nworkers"`  // number of concurrent property queries
	Seed      uint64     `json:"seed"`      // seed of perturbations (analytic variant); 0 means unseeded
	DirOut    string     `json:"dirout"`    // directory for output; e.g. /tmp/mollier
	FnKey     string     `json:"fnkey"`     // file name key of figure; "" means show figure
	Landmarks []float64  `json:"landmarks"` // landmark entropies of isentropes (analytic variant)
	Prms      dbf.Params `json:"prms"`      // parameters of analytic model

	// derived
	Key string // file name key of .dia file, if any
}

// SetDefault sets default values
func (o *Dia) SetDefault() {
	if o.Variant == "" {
		o.Variant = Analytic
	}
	if o.Fluid == "" {
		o.Fluid = "Water"
	}
	if o.Npts == 0 {
		o.Npts = 500
	}
	if o.Nworkers == 0 {
		o.Nworkers = 1
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/mollier"
	}
}

// Check checks input data
func (o Dia) Check() error {
	switch o.Variant {
	case Analytic, Property:
	default:
		return chk.Err("variant %q is incorrect; options are %q and %q", o.Variant, Analytic, Property)
	}
	if o.Npts < 2 {
		return chk.Err("number of points must be at least 2. npts=%d is invalid", o.Npts)
	}
	if o.Nworkers < 1 {
		return chk.Err("number of workers must be at least 1. nworkers=%d is invalid", o.Nworkers)
	}
	return nil
}

// ModelPrms returns the parameters of the analytic model. The grid size "ns"
// is taken from Npts unless Prms sets it
func (o Dia) ModelPrms() (prms dbf.Params) {
	prms = append(prms, o.Prms...)
	for _, p := range o.Prms {
		if strings.EqualFold(p.N, "ns") {
			return
		}
	}
	return append(prms, &dbf.P{N: "ns", V: float64(o.Npts)})
}

// NewDia returns input data with default values
func NewDia() *Dia {
	o := new(Dia)
	o.SetDefault()
	return o
}

// ReadDia reads input data from a .dia JSON file
func ReadDia(dir, fn string) (o *Dia, err error) {

	// read file
	fullpath := filepath.Join(dir, fn)
	fi, err := os.Stat(os.ExpandEnv(fullpath))
	if err != nil {
		return nil, chk.Err("cannot read %q:\n%v", fullpath, err)
	}
	if fi.IsDir() {
		return nil, chk.Err("cannot read %q: it is a directory", fullpath)
	}
	b := io.ReadFile(fullpath)

	// decode
	o = new(Dia)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode %q:\n%v", fn, err)
	}

	// derived
	o.SetDefault()
	o.Key = io.FnKey(fn)
	if o.FnKey == "" {
		o.FnKey = o.Key
	}
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}
