// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config layers cacheplot's settings: command-line flags over
// CACHEPLOT_* environment variables over a YAML config file over the
// flag defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variable of every setting, e.g.
// CACHEPLOT_OUT_DIR for --out-dir.
const EnvPrefix = "CACHEPLOT"

// Config holds the resolved settings.
type Config struct {
	OutDir   string
	Prefix   string
	Format   string
	Grammar  string
	Style    string
	Combine  string
	CSV      string
	XLSX     string
	Benchfmt string
	Verbose  bool
}

// RegisterFlags adds the setting flags, with their defaults, to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("out-dir", ".", "directory to write charts into")
	fs.String("prefix", "random_insertion_performance_plot", "chart file name prefix")
	fs.String("format", "jpg", "chart image format (jpg, png, svg, pdf, eps, tif)")
	fs.String("grammar", "auto", "benchmark name grammar (auto, initializer, folded)")
	fs.String("style", "explicit", "series styling (explicit, default)")
	fs.String("combine", "none", "merge repeated runs (none, median, mean, min)")
	fs.String("csv", "", "also write the plotted points as CSV to this file (- for stdout)")
	fs.String("xlsx", "", "also write the plotted points as an XLSX workbook to this file")
	fs.String("benchfmt", "", "also write the plotted points in Go benchmark format to this file (- for stdout)")
	fs.BoolP("verbose", "v", false, "log debug messages")
}

// Load resolves the settings registered on fs. If cfgFile is not
// empty, it is read as a config file whose keys are the flag names.
func Load(fs *pflag.FlagSet, cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return &Config{
		OutDir:   v.GetString("out-dir"),
		Prefix:   v.GetString("prefix"),
		Format:   v.GetString("format"),
		Grammar:  v.GetString("grammar"),
		Style:    v.GetString("style"),
		Combine:  v.GetString("combine"),
		CSV:      v.GetString("csv"),
		XLSX:     v.GetString("xlsx"),
		Benchfmt: v.GetString("benchfmt"),
		Verbose:  v.GetBool("verbose"),
	}, nil
}
