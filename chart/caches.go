// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/seqbench/cacheplot/report"
)

// A CacheLine is a vertical reference line at the size of one CPU
// cache. It spans the full height of the plot and does not affect the
// Y range.
type CacheLine struct {
	Level int
	Type  string
	Size  int64  // bytes
	Label string // legend entry; "" keeps the line out of the legend

	draw.LineStyle
}

// A MissingCacheError reports a report context with no cache at a
// level a chart marks.
type MissingCacheError struct {
	Level int
	Type  string // required type, or "" for any
}

func (e *MissingCacheError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("no L%d %s cache in report context", e.Level, e.Type)
	}
	return fmt.Sprintf("no L%d cache in report context", e.Level)
}

// cacheLevels are the caches marked on every chart: the first L1
// data cache and the first L2 and L3 caches of any type.
var cacheLevels = []struct {
	level int
	typ   string
}{
	{1, "Data"},
	{2, ""},
	{3, ""},
}

// CacheLabel is the legend entry shared by all cache lines.
const CacheLabel = "Caches"

func blue(alpha uint8) color.Color {
	return color.NRGBA{0, 0, 0xFF, alpha}
}

// CacheLines returns the reference lines for caches. Only the first
// line is labeled, so the legend has a single "Caches" entry.
func CacheLines(caches []report.Cache) ([]*CacheLine, error) {
	ctx := report.Context{Caches: caches}
	lines := make([]*CacheLine, 0, len(cacheLevels))
	for i, want := range cacheLevels {
		c, ok := ctx.FirstCache(want.level, want.typ)
		if !ok {
			return nil, &MissingCacheError{want.level, want.typ}
		}
		l := &CacheLine{
			Level: c.Level,
			Type:  c.Type,
			Size:  c.Size,
			LineStyle: draw.LineStyle{
				Color:  blue(0x80),
				Width:  vg.Points(1),
				Dashes: []vg.Length{vg.Points(6), vg.Points(3)},
			},
		}
		if i == 0 {
			l.Label = CacheLabel
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// Plot implements the plot.Plotter interface.
func (l *CacheLine) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	x := trX(float64(l.Size))
	if !c.ContainsX(x) {
		return
	}
	c.StrokeLine2(l.LineStyle, x, c.Min.Y, x, c.Max.Y)
}

// DataRange implements the plot.DataRanger interface. The infinite Y
// bounds leave the Y range to the other plotters.
func (l *CacheLine) DataRange() (xmin, xmax, ymin, ymax float64) {
	x := float64(l.Size)
	return x, x, math.Inf(1), math.Inf(-1)
}

// Thumbnail implements the plot.Thumbnailer interface.
func (l *CacheLine) Thumbnail(c *draw.Canvas) {
	y := (c.Min.Y + c.Max.Y) / 2
	c.StrokeLine2(l.LineStyle, c.Min.X, y, c.Max.X, y)
}
