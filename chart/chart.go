// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws log-log charts of insertion time per item
// against container size, one chart per element size, with the CPU
// cache sizes marked.
package chart

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/seqbench/cacheplot/report"
	"github.com/seqbench/cacheplot/series"
)

// DefaultPrefix is the default file name prefix of saved charts.
const DefaultPrefix = "random_insertion_performance_plot"

// Options configures Render and Figure.Save.
type Options struct {
	Style  Styler // nil means ExplicitStyle
	Prefix string // "" means DefaultPrefix
	Format string // image format; "" means "jpg"

	// Width and Height of saved charts; 0 means 16 by 12 inches.
	Width, Height vg.Length

	Logger *slog.Logger // nil discards
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o Options) styler() Styler {
	if o.Style == nil {
		return ExplicitStyle{}
	}
	return o.Style
}

// formats are the file extensions plot.Save understands.
var formats = []string{"jpg", "jpeg", "png", "svg", "pdf", "eps", "tif", "tiff"}

// LookupFormat validates an image format name and returns it in
// lower case.
func LookupFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(s, "."))
	for _, ok := range formats {
		if f == ok {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported image format %q (want one of %s)", s, strings.Join(formats, ", "))
}

// ErrNoSeries is returned by Render for a group whose families were
// all calibration runs or have no point with a positive, finite size
// and time.
var ErrNoSeries = errors.New("no series to chart")

// A Line is one drawn series.
type Line struct {
	Series *series.Series
	Style  Style
	XYs    plotter.XYs // collection size (B), seconds per item
}

// A Figure is the chart of one element size.
type Figure struct {
	ElementSize int64
	Plot        *plot.Plot
	Lines       []Line
	Caches      []*CacheLine

	opts Options
}

// onLogAxis reports whether v can be placed on a log scale.
func onLogAxis(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Title returns the chart title for an element size.
func Title(elementSize int64) string {
	return fmt.Sprintf("Performance of Random Insertion with %dB Elements", elementSize)
}

// FileName returns the name a chart is saved under.
func FileName(prefix string, elementSize int64, format string) string {
	return fmt.Sprintf("%s_%dB.%s", prefix, elementSize, format)
}

// logMargin pads both axes by this factor, keeping points off the
// plot border. It also keeps a single-valued range from collapsing.
const logMargin = 1.25

// Render builds the chart of g. Points with a collection size or time
// that is not positive and finite are left out with a warning.
func Render(g *series.Group, caches []report.Cache, opts Options) (*Figure, error) {
	if len(g.Series) == 0 {
		return nil, ErrNoSeries
	}
	cacheLines, err := CacheLines(caches)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = Title(g.ElementSize)
	p.X.Label.Text = "Container Size (B)"
	p.Y.Label.Text = "Time per Insert (s)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = bytesTicks{}
	p.Y.Tick.Marker = secondsTicks{}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	fig := &Figure{ElementSize: g.ElementSize, Plot: p, Caches: cacheLines, opts: opts}
	styler := opts.styler()
	log := opts.logger()
	for i, s := range g.Series {
		st, err := styler.Style(s, i)
		if err != nil {
			return nil, err
		}
		xys := make(plotter.XYs, 0, len(s.Points))
		for _, pt := range s.Points {
			x, y := float64(pt.CollectionSize), pt.SecondsPerItem
			if !onLogAxis(x) || !onLogAxis(y) {
				log.Warn("dropping point off the log axes", "series", st.Label,
					"collection_size", pt.CollectionSize, "seconds_per_item", y)
				continue
			}
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		if len(xys) == 0 {
			log.Warn("no plottable points", "series", st.Label)
			continue
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", st.Label, err)
		}
		line.LineStyle.Color = st.Color
		line.LineStyle.Width = vg.Points(1.5)
		if st.Glyph != nil {
			points.GlyphStyle.Color = st.Color
			points.GlyphStyle.Shape = st.Glyph
			points.GlyphStyle.Radius = vg.Points(4)
			p.Add(line, points)
			p.Legend.Add(st.Label, line, points)
		} else {
			p.Add(line)
			p.Legend.Add(st.Label, line)
		}
		fig.Lines = append(fig.Lines, Line{Series: s, Style: st, XYs: xys})
	}

	if len(fig.Lines) == 0 {
		return nil, ErrNoSeries
	}

	for _, l := range cacheLines {
		p.Add(l)
		if l.Label != "" {
			p.Legend.Add(l.Label, l)
		}
	}

	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Min /= logMargin
		a.Max *= logMargin
	}
	return fig, nil
}

// FileName returns the file name Save writes.
func (f *Figure) FileName() string {
	prefix := f.opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	format := f.opts.Format
	if format == "" {
		format = "jpg"
	}
	return FileName(prefix, f.ElementSize, format)
}

// Save writes the chart into dir and returns the file's path.
func (f *Figure) Save(dir string) (string, error) {
	w, h := f.opts.Width, f.opts.Height
	if w == 0 {
		w = 16 * vg.Inch
	}
	if h == 0 {
		h = 12 * vg.Inch
	}
	path := filepath.Join(dir, f.FileName())
	if err := f.Plot.Save(w, h, path); err != nil {
		return "", fmt.Errorf("saving chart: %w", err)
	}
	return path, nil
}
