// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/le-nicolas/mollier/ana"
	"github.com/le-nicolas/mollier/dgm"
	"github.com/le-nicolas/mollier/inp"
	"github.com/le-nicolas/mollier/out"
	"github.com/le-nicolas/mollier/sat"
	"go.uber.org/zap"
)

func main() {

	// read input parameters
	first := io.ArgToString(0, inp.Analytic)
	fluidName := io.ArgToString(1, sat.DefaultFluid)
	npts := io.ArgToInt(2, 500)
	seed := io.ArgToInt(3, 0)
	fnkey := io.ArgToString(4, "mollier")
	verbose := io.ArgToBool(5, true)

	// logger
	logger := newLogger(verbose)
	defer logger.Sync()

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			os.Exit(report(logger, err))
		}
	}()

	// input data
	dia, err := getDia(first, fluidName, npts, seed, fnkey)
	if err != nil {
		chk.Panic("cannot read input data:\n%v", err)
	}

	// message
	if verbose {
		io.PfWhite("\nMollier -- enthalpy-entropy diagrams\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"variant or .dia file", "first", first,
			"name of fluid", "fluidName", dia.Fluid,
			"number of points", "npts", dia.Npts,
			"seed of perturbations (0=none)", "seed", dia.Seed,
			"figure key (show=display)", "fnkey", dia.FnKey,
			"show messages", "verbose", verbose,
		))
	}

	// compute
	start := time.Now()
	d, err := Build(dia)
	if err != nil {
		chk.Panic("cannot generate diagram:\n%v", err)
	}
	logger.Infow("diagram generated",
		"variant", dia.Variant,
		"fluid", dia.Fluid,
		"lines", len(d.Lines),
		"bands", len(d.Bands),
		"elapsed", time.Since(start),
	)
	if verbose {
		io.Pforan("%s", out.Summary(d))
	}

	// render
	if dia.FnKey == "show" {
		dia.FnKey = ""
	}
	err = out.Draw(d, dia.DirOut, dia.FnKey)
	if err != nil {
		chk.Panic("cannot draw diagram:\n%v", err)
	}
	if dia.FnKey != "" {
		logger.Infow("figure saved", "dirout", dia.DirOut, "fnkey", dia.FnKey)
	}
}

// Build computes the diagram described by dia
func Build(dia *inp.Dia) (*dgm.Diagram, error) {
	err := dia.Check()
	if err != nil {
		return nil, err
	}
	if dia.Variant == inp.Property {
		return sat.Generate(dia.Fluid, dia.Npts, dia.Nworkers)
	}
	return ana.Generate(dia.ModelPrms(), dia.Landmarks, dia.Seed)
}

// getDia returns input data from a .dia file or from the command line arguments
func getDia(first, fluidName string, npts, seed int, fnkey string) (dia *inp.Dia, err error) {
	if strings.HasSuffix(first, ".dia") {
		return inp.ReadDia(filepath.Dir(first), filepath.Base(first))
	}
	if seed < 0 {
		return nil, chk.Err("seed must be non-negative. seed=%d is invalid", seed)
	}
	dia = &inp.Dia{
		Variant: first,
		Fluid:   fluidName,
		Npts:    npts,
		Seed:    uint64(seed),
		FnKey:   fnkey,
	}
	dia.SetDefault()
	err = dia.Check()
	return
}

// report prints and logs the error of a failed run and returns the exit status
func report(logger *zap.SugaredLogger, err interface{}) int {
	io.PfRed("\nERROR: %v\n", err)
	logger.Errorw("run failed", "error", err)
	logger.Sync()
	return 1
}

// newLogger returns a development logger if verbose; otherwise a production one
func newLogger(verbose bool) *zap.SugaredLogger {
	var l *zap.Logger
	var err error
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}
