// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/seqbench/cacheplot/series"
)

// A Style is how one series is drawn.
type Style struct {
	Label string
	Color color.Color
	Glyph draw.GlyphDrawer // nil draws the line only
}

// A Styler chooses the Style of the i'th series of a chart.
type Styler interface {
	Style(s *series.Series, i int) (Style, error)
}

// LookupStyle returns the Styler named by s: "explicit" or "default".
func LookupStyle(s string) (Styler, error) {
	switch s {
	case "explicit":
		return ExplicitStyle{}, nil
	case "default":
		return DefaultStyle{}, nil
	}
	return nil, fmt.Errorf("unknown chart style %q", s)
}

// An UnknownContainerError reports a container that ExplicitStyle has
// no entry for.
type UnknownContainerError struct {
	Container string
}

func (e *UnknownContainerError) Error() string {
	return fmt.Sprintf("no chart style for container %q", e.Container)
}

type containerKind int

const (
	kindOther containerKind = iota
	kindVector
	kindPointerVector
	kindList
)

// kindOf classifies a container name. Names folding the initializer
// into the container ("ReservingVector") classify as the base container.
func kindOf(container string) containerKind {
	switch strings.TrimPrefix(container, "Reserving") {
	case "std::vector", "Vector":
		return kindVector
	case "PointerVector":
		return kindPointerVector
	case "std::list", "List":
		return kindList
	}
	return kindOther
}

// Matplotlib's "b", "g", "r", "orange" and "y".
var (
	mplBlue   = color.NRGBA{0x00, 0x00, 0xFF, 0xFF}
	mplGreen  = color.NRGBA{0x00, 0x80, 0x00, 0xFF}
	mplRed    = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	mplOrange = color.NRGBA{0xFF, 0xA5, 0x00, 0xFF}
	mplYellow = color.NRGBA{0xBF, 0xBF, 0x00, 0xFF}
)

const reservedSuffix = " (reserved)"

// ExplicitStyle assigns fixed colors and markers to the known
// containers. Vectors are blue (green when reserved), vectors of heap
// pointers red (orange when reserved) and lists yellow. Vector series
// use down-pointing triangles, the rest up-pointing ones. Any other
// container is an *UnknownContainerError.
type ExplicitStyle struct{}

func (ExplicitStyle) Style(s *series.Series, _ int) (Style, error) {
	var st Style
	switch kindOf(s.Container) {
	case kindVector:
		st.Label = fmt.Sprintf("std::vector<%dB>", s.ElementSize)
		st.Color = mplBlue
		if s.Reserved {
			st.Label += reservedSuffix
			st.Color = mplGreen
		}
	case kindPointerVector:
		st.Label = fmt.Sprintf("std::vector<%dB*>", s.ElementSize)
		st.Color = mplRed
		if s.Reserved {
			st.Label += reservedSuffix
			st.Color = mplOrange
		}
	case kindList:
		st.Label = fmt.Sprintf("std::list<%dB>", s.ElementSize)
		st.Color = mplYellow
	default:
		return Style{}, &UnknownContainerError{s.Container}
	}

	if strings.Contains(st.Label, "vector") {
		st.Glyph = triangleDownGlyph{}
	} else {
		st.Glyph = draw.TriangleGlyph{}
	}
	return st, nil
}

// DefaultStyle accepts any container. Colors cycle through a
// qualitative palette and no markers are drawn.
type DefaultStyle struct{}

var cycle = mustPalette("Dark2", 8)

func mustPalette(name string, n int) []color.Color {
	p, err := brewer.GetPalette(brewer.TypeQualitative, name, n)
	if err != nil {
		panic(err)
	}
	return p.Colors()
}

func (DefaultStyle) Style(s *series.Series, i int) (Style, error) {
	label := fmt.Sprintf("%s<%dB>", s.Container, s.ElementSize)
	if s.Reserved {
		label += reservedSuffix
	}
	return Style{Label: label, Color: cycle[i%len(cycle)]}, nil
}

const (
	sinπover6 = vg.Length(.500000000025921)
	cosπover6 = vg.Length(.866025403769473)
)

// triangleDownGlyph is draw.TriangleGlyph turned upside down.
type triangleDownGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (triangleDownGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius + (sty.Radius-sty.Radius*sinπover6)/2
	p := []vg.Point{
		{X: pt.X, Y: pt.Y - r},
		{X: pt.X - r*cosπover6, Y: pt.Y + r*sinπover6},
		{X: pt.X + r*cosπover6, Y: pt.Y + r*sinπover6},
	}
	c.FillPolygon(sty.Color, p)
}
