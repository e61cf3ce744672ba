// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cacheplot charts the results of a Google Benchmark JSON report of
// container insertion benchmarks.
//
// Usage:
//
//	cacheplot [flags] report.json
//
// For every element size in the report, cacheplot saves a log-log chart
// of seconds per inserted item against collection size in bytes, one
// line per container, with the machine's L1 data, L2 and L3 cache sizes
// marked as dashed vertical lines. Charts are named
// <prefix>_<element size>B.<format>.
//
// Every flag can also be set with a CACHEPLOT_* environment variable
// (CACHEPLOT_OUT_DIR for --out-dir) or a key in the --config file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqbench/cacheplot/benchname"
	"github.com/seqbench/cacheplot/chart"
	"github.com/seqbench/cacheplot/export"
	"github.com/seqbench/cacheplot/internal/config"
	"github.com/seqbench/cacheplot/report"
	"github.com/seqbench/cacheplot/series"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fail("%v\n", err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "cacheplot: "+format, args...)
	os.Exit(1)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:           "cacheplot [flags] report.json",
		Short:         "Chart container insertion benchmarks against cache sizes",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			return run(args[0], cfg, stdout, log)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&cfgFile, "config", "", "read settings from this YAML file")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// run charts and exports the report at path.
func run(path string, cfg *config.Config, stdout io.Writer, log *slog.Logger) error {
	grammar, err := benchname.LookupGrammar(cfg.Grammar)
	if err != nil {
		return err
	}
	combine, err := series.LookupCombine(cfg.Combine)
	if err != nil {
		return err
	}
	styler, err := chart.LookupStyle(cfg.Style)
	if err != nil {
		return err
	}
	format, err := chart.LookupFormat(cfg.Format)
	if err != nil {
		return err
	}

	rep, err := report.Load(path)
	if err != nil {
		return err
	}
	log.Debug("loaded report", "file", path, "benchmarks", len(rep.Benchmarks), "caches", len(rep.Context.Caches))

	opts := &series.Options{Grammar: grammar, Combine: combine, Logger: log}
	recs, err := series.FromReport(rep.Benchmarks, opts)
	if err != nil {
		return err
	}
	groups := series.Build(recs, opts)

	if err := os.MkdirAll(cfg.OutDir, 0o777); err != nil {
		return err
	}
	chartOpts := chart.Options{Style: styler, Prefix: cfg.Prefix, Format: format, Logger: log}
	for _, g := range groups {
		fig, err := chart.Render(g, rep.Context.Caches, chartOpts)
		if errors.Is(err, chart.ErrNoSeries) {
			log.Warn("nothing to chart", "element_size", g.ElementSize)
			continue
		} else if err != nil {
			return fmt.Errorf("%dB elements: %w", g.ElementSize, err)
		}
		out, err := fig.Save(cfg.OutDir)
		if err != nil {
			return err
		}
		log.Info("saved chart", "element_size", g.ElementSize, "series", len(fig.Lines), "file", out)
	}

	if cfg.CSV != "" {
		if err := writeTo(cfg.CSV, stdout, func(w io.Writer) error {
			return export.WriteCSV(w, groups)
		}); err != nil {
			return err
		}
	}
	if cfg.XLSX != "" {
		if err := export.WriteXLSX(cfg.XLSX, groups); err != nil {
			return err
		}
		log.Info("saved workbook", "file", cfg.XLSX)
	}
	if cfg.Benchfmt != "" {
		if err := writeTo(cfg.Benchfmt, stdout, func(w io.Writer) error {
			return export.WriteBenchfmt(w, &rep.Context, groups)
		}); err != nil {
			return err
		}
	}
	return nil
}

// writeTo calls write with stdout if path is "-" or with the created
// file at path otherwise.
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
