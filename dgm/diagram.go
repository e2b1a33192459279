// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dgm implements the data model of a diagram: line series, scatter points,
// shaded bands and text notes. Nothing in here draws; see package out.
package dgm

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// XY holds one point
type XY struct {
	X float64 // horizontal coordinate
	Y float64 // vertical coordinate
}

// Style holds drawing hints. Empty values mean "renderer default"
type Style struct {
	C     string  // color
	Ls    string  // line style; e.g. "-", "--"
	M     string  // marker; e.g. "o"
	Lw    float64 // line width
	Alpha float64 // transparency of filled regions
	Fsz   float64 // font size of notes
	Z     int     // z-order
}

// Series holds an ordered list of (x,y) pairs
type Series struct {
	Label string    // legend entry
	X     []float64 // x-values
	Y     []float64 // y-values
	Style Style     // hints
}

// Point holds a single scatter point
type Point struct {
	Label string // legend entry
	At    XY     // coordinates
	Style Style  // hints
}

// Band holds a region between two curves sharing the same x-values
type Band struct {
	Label string    // legend entry; may be empty
	X     []float64 // x-values
	Lower []float64 // lower curve
	Upper []float64 // upper curve
	Style Style     // hints
}

// Note holds a text annotation
//  Anchor -- position of the text
//  Target -- point where an arrow points to; nil means no arrow
type Note struct {
	Text   string
	Anchor XY
	Target *XY
	Style  Style
}

// Diagram collects everything a renderer needs to draw one figure
type Diagram struct {
	Title  string    // figure title
	Xlabel string    // horizontal axis label
	Ylabel string    // vertical axis label
	Lines  []*Series // line series
	Points []*Point  // scatter points
	Bands  []*Band   // filled regions
	Notes  []*Note   // annotations
}

// New returns a new empty diagram
func New(title, xlabel, ylabel string) *Diagram {
	return &Diagram{Title: title, Xlabel: xlabel, Ylabel: ylabel}
}

// AddLine adds a line series
func (o *Diagram) AddLine(label string, x, y []float64, sty Style) *Series {
	s := &Series{Label: label, X: x, Y: y, Style: sty}
	o.Lines = append(o.Lines, s)
	return s
}

// AddPoint adds a scatter point
func (o *Diagram) AddPoint(label string, at XY, sty Style) *Point {
	p := &Point{Label: label, At: at, Style: sty}
	o.Points = append(o.Points, p)
	return p
}

// AddBand adds a filled region between lower and upper
func (o *Diagram) AddBand(label string, x, lower, upper []float64, sty Style) *Band {
	b := &Band{Label: label, X: x, Lower: lower, Upper: upper, Style: sty}
	o.Bands = append(o.Bands, b)
	return b
}

// AddNote adds a text annotation. target may be nil
func (o *Diagram) AddNote(text string, anchor XY, target *XY, sty Style) *Note {
	n := &Note{Text: text, Anchor: anchor, Target: target, Style: sty}
	o.Notes = append(o.Notes, n)
	return n
}

// Line returns the line series with the given label or nil
func (o *Diagram) Line(label string) *Series {
	for _, s := range o.Lines {
		if s.Label == label {
			return s
		}
	}
	return nil
}

// Check checks lengths and values of all series and bands
func (o *Diagram) Check() error {
	for _, s := range o.Lines {
		if len(s.X) != len(s.Y) {
			return chk.Err("series %q: lengths of x- and y-values are different. %d != %d", s.Label, len(s.X), len(s.Y))
		}
		if floats.HasNaN(s.X) || floats.HasNaN(s.Y) {
			return chk.Err("series %q has NaN values", s.Label)
		}
	}
	for i, b := range o.Bands {
		if len(b.X) != len(b.Lower) || len(b.X) != len(b.Upper) {
			return chk.Err("band %d: lengths are different. len(x)=%d, len(lower)=%d, len(upper)=%d", i, len(b.X), len(b.Lower), len(b.Upper))
		}
		if floats.HasNaN(b.Lower) || floats.HasNaN(b.Upper) {
			return chk.Err("band %d has NaN values", i)
		}
	}
	return nil
}
