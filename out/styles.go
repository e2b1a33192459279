// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/le-nicolas/mollier/dgm"
	"gonum.org/v1/gonum/floats"
)

// Colors holds the color cycle used when a style has no color
var Colors = []string{"C0", "C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9"}

// GetColor returns the style color or the i-th color of the cycle
func GetColor(sty dgm.Style, i int) string {
	if sty.C != "" {
		return sty.C
	}
	return Colors[i%len(Colors)]
}

// LineArgs converts line hints to plotting arguments
func LineArgs(sty dgm.Style, label string, i int) *plt.A {
	a := &plt.A{C: GetColor(sty, i), Ls: sty.Ls, M: sty.M, L: texSafe(label), Z: sty.Z, NoClip: true}
	if a.Ls == "" && a.M == "" {
		a.Ls = "-"
	}
	if sty.Lw > 0 {
		a.Lw = sty.Lw
	}
	return a
}

// PointArgs converts scatter hints to plotting arguments
func PointArgs(sty dgm.Style, label string, i int) *plt.A {
	a := &plt.A{C: GetColor(sty, i), M: sty.M, Ls: "none", L: texSafe(label), Z: sty.Z, NoClip: true}
	if a.M == "" {
		a.M = "o"
	}
	return a
}

// BandArgs converts band hints to shape arguments
func BandArgs(sty dgm.Style, i int) *plt.A {
	alpha := sty.Alpha
	if alpha <= 0 {
		alpha = 0.2
	}
	c := GetColor(sty, i)
	return &plt.A{Fc: c, Ec: "none", A: alpha, Closed: true, Z: sty.Z}
}

// BandLegendArgs returns the arguments of the legend entry of a band. The entry
// is drawn as a wide line with the face color of the band and no data points
func BandLegendArgs(sty dgm.Style, label string, i int) *plt.A {
	f := BandArgs(sty, i)
	return &plt.A{C: f.Fc, A: f.A, Lw: 10, L: texSafe(label)}
}

// NoteArgs converts note hints to text arguments
func NoteArgs(sty dgm.Style) *plt.A {
	a := &plt.A{C: sty.C, Fsz: sty.Fsz}
	if a.C == "" {
		a.C = "black"
	}
	return a
}

// ArrowArgs converts note hints to arrow arguments
func ArrowArgs(sty dgm.Style) *plt.A {
	c := sty.C
	if c == "" {
		c = "black"
	}
	return &plt.A{Fc: c, Ec: c, Style: "->", Scale: 12}
}

// texSafe escapes characters that matplotlib would interpret as mathtext or
// that would break the generated python strings
func texSafe(txt string) string {
	txt = strings.Replace(txt, "$", "\\$", -1)
	txt = strings.Replace(txt, "'", "\\'", -1)
	return strings.Replace(txt, "\n", "\\n", -1)
}

// Summary returns a table with the contents of d
func Summary(d *dgm.Diagram) string {
	l := io.Sf("%s\n", d.Title)
	l += io.Sf("%-40s%8s%14s%14s%14s%14s\n", "series", "npts", "xmin", "xmax", "ymin", "ymax")
	for _, s := range d.Lines {
		l += io.Sf("%-40s%8d", s.Label, len(s.X))
		if len(s.X) > 0 {
			l += io.Sf("%14.6g%14.6g%14.6g%14.6g", floats.Min(s.X), floats.Max(s.X), floats.Min(s.Y), floats.Max(s.Y))
		}
		l += "\n"
	}
	for _, p := range d.Points {
		l += io.Sf("%-40s%8d%14.6g%14s%14.6g\n", p.Label, 1, p.At.X, "", p.At.Y)
	}
	l += io.Sf("%d bands, %d notes\n", len(d.Bands), len(d.Notes))
	return l
}
