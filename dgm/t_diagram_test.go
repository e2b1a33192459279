// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dgm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_diagram01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagram01. builders")

	d := New("title", "x", "y")
	d.AddLine("a", []float64{0, 1}, []float64{2, 3}, Style{C: "b"})
	d.AddPoint("p", XY{1, 2}, Style{C: "r", M: "o"})
	d.AddBand("", []float64{0, 1}, []float64{0, 0}, []float64{1, 1}, Style{Alpha: 0.2})
	n := d.AddNote("hello", XY{3, 4}, &XY{1, 2}, Style{})

	chk.Int(tst, "nlines", len(d.Lines), 1)
	chk.Int(tst, "npoints", len(d.Points), 1)
	chk.Int(tst, "nbands", len(d.Bands), 1)
	chk.Int(tst, "nnotes", len(d.Notes), 1)
	chk.Float64(tst, "target x", 1e-15, n.Target.X, 1)
	chk.Float64(tst, "target y", 1e-15, n.Target.Y, 2)

	if d.Line("a") == nil {
		tst.Errorf("cannot find line \"a\"\n")
	}
	if d.Line("b") != nil {
		tst.Errorf("line \"b\" should not exist\n")
	}
	if err := d.Check(); err != nil {
		tst.Errorf("check failed: %v\n", err)
	}
}

func Test_diagram02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diagram02. check")

	d := New("", "", "")
	d.AddLine("bad", []float64{0, 1, 2}, []float64{0, 1}, Style{})
	if err := d.Check(); err == nil {
		tst.Errorf("check should have failed with different lengths\n")
	}

	d = New("", "", "")
	d.AddLine("nan", []float64{0, 1}, []float64{0, math.NaN()}, Style{})
	if err := d.Check(); err == nil {
		tst.Errorf("check should have failed with NaN\n")
	}

	d = New("", "", "")
	d.AddBand("", []float64{0, 1}, []float64{0, 1}, []float64{1}, Style{})
	if err := d.Check(); err == nil {
		tst.Errorf("check should have failed with short upper curve\n")
	}
}
