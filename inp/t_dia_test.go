// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_dia01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dia01. read analytic run")

	dia, err := ReadDia("data", "analytic.dia")
	if err != nil {
		tst.Errorf("ReadDia failed:\n%v", err)
		return
	}
	io.Pforan("%+v\n", dia)
	chk.String(tst, dia.Variant, Analytic)
	chk.String(tst, dia.Fluid, "Water")
	chk.String(tst, dia.FnKey, "analytic")
	chk.String(tst, dia.Key, "analytic")
	chk.Int(tst, "seed", int(dia.Seed), 2016)
	chk.Int(tst, "npts (default)", dia.Npts, 500)
	chk.Array(tst, "landmarks", 1e-15, dia.Landmarks, []float64{2, 4, 6})
	chk.Int(tst, "number of parameters", len(dia.Prms), 4)
	chk.String(tst, dia.Prms[1].N, "dH")
	chk.Float64(tst, "dH", 1e-15, dia.Prms[1].V, 2000)
}

func Test_dia02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dia02. read property run")

	dia, err := ReadDia("data", "water.dia")
	if err != nil {
		tst.Errorf("ReadDia failed:\n%v", err)
		return
	}
	chk.String(tst, dia.Variant, Property)
	chk.String(tst, dia.Fluid, "Water")
	chk.Int(tst, "npts", dia.Npts, 500)
	chk.Int(tst, "nworkers", dia.Nworkers, 4)
	chk.String(tst, dia.DirOut, "/tmp/mollier")
	if dia.Prms != nil {
		tst.Errorf("there should be no parameters\n")
	}
}

func Test_dia03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dia03. defaults and checks")

	dia := NewDia()
	chk.String(tst, dia.Variant, Analytic)
	chk.String(tst, dia.Fluid, "Water")
	chk.Int(tst, "npts", dia.Npts, 500)
	chk.Int(tst, "nworkers", dia.Nworkers, 1)
	if err := dia.Check(); err != nil {
		tst.Errorf("Check failed: %v\n", err)
	}

	dia.Variant = "numerical"
	if err := dia.Check(); err == nil {
		tst.Errorf("Check should have failed with wrong variant\n")
	}
	dia.Variant = Property
	dia.Npts = 1
	if err := dia.Check(); err == nil {
		tst.Errorf("Check should have failed with npts=1\n")
	}

	_, err := ReadDia("data", "nonexistent.dia")
	if err == nil {
		tst.Errorf("ReadDia should have failed with nonexistent file\n")
	}
}

func Test_dia04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dia04. grid size of analytic model")

	dia, err := ReadDia("data", "coarse.dia")
	if err != nil {
		tst.Errorf("ReadDia failed:\n%v", err)
		return
	}
	prms := dia.ModelPrms()
	chk.Int(tst, "number of parameters", len(prms), 1)
	chk.String(tst, prms[0].N, "ns")
	chk.Float64(tst, "ns from npts", 1e-15, prms[0].V, 37)

	dia, err = ReadDia("data", "analytic.dia")
	if err != nil {
		tst.Errorf("ReadDia failed:\n%v", err)
		return
	}
	prms = dia.ModelPrms()
	chk.Int(tst, "number of parameters", len(prms), 4)
	chk.Float64(tst, "ns from prms", 1e-15, prms[3].V, 500)

	// directories are not input files
	_, err = ReadDia(".", "data")
	if err == nil {
		tst.Errorf("ReadDia should have failed with directory\n")
	}
}
