// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_anadiagram01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anadiagram01. analytic diagram")

	d, err := Generate(nil, nil, 2016)
	if err != nil {
		tst.Errorf("Generate failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of lines", len(d.Lines), 5)
	chk.Int(tst, "number of points", len(d.Points), 1)
	chk.Int(tst, "number of bands", len(d.Bands), 5)
	chk.Int(tst, "number of notes", len(d.Notes), 2)

	liq := d.Line("Saturation Line (Liquid)")
	vap := d.Line("Saturation Line (Vapor)")
	if liq == nil || vap == nil {
		tst.Errorf("saturation lines are missing\n")
		return
	}
	chk.Int(tst, "ns", len(liq.X), 500)
	chk.Float64(tst, "hl(0.5)", 1e-12, liq.Y[0], 100*math.Sqrt(0.5))
	chk.Float64(tst, "hv(0.5)", 1e-12, vap.Y[0], 100*math.Sqrt(0.5)+2000)
	if d.Line("Isentropic Process s=4 kJ/kg·K") == nil {
		tst.Errorf("isentrope s0=4 is missing\n")
	}

	cp := d.Points[0]
	chk.String(tst, cp.Label, "Critical Point")
	chk.Float64(tst, "sc", 1e-15, cp.At.X, 6.4)
	chk.Float64(tst, "hc", 1e-15, cp.At.Y, 2800)

	chk.String(tst, d.Bands[0].Label, "A_in=50 cm² (uncertainty)")
	for i, b := range d.Bands {
		if i > 0 && b.Label != "" {
			tst.Errorf("only the first band has a label\n")
		}
		if &b.Lower[0] != &liq.Y[0] {
			tst.Errorf("band %d must use the liquid line as lower curve\n", i)
		}
	}

	if d.Notes[0].Target == nil {
		tst.Errorf("first note must point to the critical point\n")
		return
	}
	chk.Float64(tst, "note target", 1e-15, d.Notes[0].Target.X, 6.4)

	// critical point does not depend on the grid
	d, err = Generate(dbf.Params{&dbf.P{N: "smin", V: 1}, &dbf.P{N: "smax", V: 3}, &dbf.P{N: "ns", V: 7}}, nil, 0)
	if err != nil {
		tst.Errorf("Generate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sc", 1e-15, d.Points[0].At.X, 6.4)
	chk.Float64(tst, "hc", 1e-15, d.Points[0].At.Y, 2800)
	chk.Int(tst, "ns", len(d.Lines[0].X), 7)
}

func Test_anadiagram02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anadiagram02. reproducibility and failures")

	d1, _ := Generate(nil, []float64{3}, 99)
	d2, _ := Generate(nil, []float64{3}, 99)
	chk.Int(tst, "number of lines", len(d1.Lines), 3)
	for k := range d1.Bands {
		chk.Array(tst, "upper", 1e-15, d1.Bands[k].Upper, d2.Bands[k].Upper)
	}

	_, err := Generate(dbf.Params{&dbf.P{N: "ns", V: 1}}, nil, 0)
	var derr *InvalidDomainError
	if !errors.As(err, &derr) {
		tst.Errorf("Generate should fail with InvalidDomainError. err=%v\n", err)
	}
}

func Test_anadiagram03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anadiagram03. given grids")

	var o Mollier
	o.Init(nil)
	d, err := o.DiagramOn([]float64{0.5, 1, 2, 4, 8}, 3)
	if err != nil {
		tst.Errorf("DiagramOn failed: %v\n", err)
		return
	}
	chk.Array(tst, "hl", 1e-12, d.Lines[0].Y, []float64{100 * math.Sqrt(0.5), 100, 100 * math.Sqrt(2), 200, 100 * math.Sqrt(8)})
	chk.Float64(tst, "sc", 1e-15, d.Points[0].At.X, 6.4)

	_, err = o.DiagramOn([]float64{1, 3, 2}, 3)
	var derr *InvalidDomainError
	if !errors.As(err, &derr) {
		tst.Errorf("DiagramOn should fail with InvalidDomainError. err=%v\n", err)
	}
}
