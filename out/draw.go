// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the renderer of diagrams
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/le-nicolas/mollier/dgm"
)

// Draw draws diagram and saves or shows the figure
//  dirout -- directory to save figure
//  fnkey  -- file name key (without extension). Use "" to show figure instead
// Failures of the plotting backend are returned as they come.
func Draw(d *dgm.Diagram, dirout, fnkey string) (err error) {

	// catch errors from the backend
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()

	// check data
	err = d.Check()
	if err != nil {
		return
	}

	// figure
	plt.Reset(false, nil)
	if d.Title != "" {
		plt.Title(texSafe(d.Title), &plt.A{Fsz: 16})
	}

	// filled regions go first
	for i, b := range d.Bands {
		plt.Polyline(BandPolygon(b), BandArgs(b.Style, i))
		if b.Label != "" {
			plt.Plot(nil, nil, BandLegendArgs(b.Style, b.Label, i))
		}
	}

	// lines and points
	for i, s := range d.Lines {
		plt.Plot(s.X, s.Y, LineArgs(s.Style, s.Label, i))
	}
	for i, p := range d.Points {
		plt.PlotOne(p.At.X, p.At.Y, PointArgs(p.Style, p.Label, i))
	}

	// notes
	for _, n := range d.Notes {
		plt.Text(n.Anchor.X, n.Anchor.Y, texSafe(n.Text), NoteArgs(n.Style))
		if n.Target != nil {
			plt.Arrow(n.Anchor.X, n.Anchor.Y, n.Target.X, n.Target.Y, ArrowArgs(n.Style))
		}
	}

	// axes, legend and grid
	plt.Gll(texSafe(d.Xlabel), texSafe(d.Ylabel), nil)
	if fnkey == "" {
		plt.Show()
		return
	}
	plt.Save(dirout, fnkey)
	return
}

// BandPolygon returns the closed polygon of a band: lower curve from left to
// right followed by upper curve from right to left
func BandPolygon(b *dgm.Band) (P [][]float64) {
	n := len(b.X)
	P = make([][]float64, 2*n)
	for i := 0; i < n; i++ {
		P[i] = []float64{b.X[i], b.Lower[i]}
		P[2*n-1-i] = []float64{b.X[i], b.Upper[i]}
	}
	return
}
