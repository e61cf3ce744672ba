// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seqbench/cacheplot/report"
	"github.com/seqbench/cacheplot/series"
)

// WriteBenchfmt writes groups in the Go benchmark format
// (golang.org/design/14313-benchmark-format). The report context
// becomes file configuration lines, and each point one result line
// with sub-benchmark keys for its grouping fields:
//
//	BenchmarkInsert_in_sorted_order/elem=8B/container=std::vector/init=Reserver/bytes=1024 1 1000000 ns/item 1000 items/s
//
// Each result has an iteration count of 1 since the report does not
// say how many insertions a run timed.
func WriteBenchfmt(w io.Writer, ctx *report.Context, groups []*series.Group) error {
	bw := bufio.NewWriter(w)

	config := func(key, val string) {
		if val != "" {
			fmt.Fprintf(bw, "%s: %s\n", key, val)
		}
	}
	if ctx != nil {
		config("date", ctx.Date)
		config("host", ctx.HostName)
		config("executable", ctx.Executable)
		if ctx.NumCPUs > 0 {
			config("cpus", fmt.Sprint(ctx.NumCPUs))
		}
		if ctx.MHzPerCPU > 0 {
			config("mhz-per-cpu", fmt.Sprint(ctx.MHzPerCPU))
		}
		config("build-type", ctx.LibraryBuildType)
		for _, c := range ctx.Caches {
			key := fmt.Sprintf("cache-l%d", c.Level)
			if c.Type != "" {
				key += "-" + strings.ToLower(c.Type)
			}
			config(key, fmt.Sprintf("%d", c.Size))
		}
		bw.WriteString("\n")
	}

	for _, g := range groups {
		for _, s := range g.Series {
			name := benchmarkName(s)
			for _, p := range s.Points {
				fmt.Fprintf(bw, "%s/bytes=%d 1 %s ns/item %s items/s\n",
					name, p.CollectionSize, decimal(p.SecondsPerItem*1e9), decimal(p.ItemsPerSecond))
			}
		}
	}
	return bw.Flush()
}

// benchmarkName returns the result name of s without the collection
// size. The harness prefix is turned into a Go benchmark name, so
// "BM_insert" becomes "BenchmarkInsert".
func benchmarkName(s *series.Series) string {
	base := strings.TrimPrefix(strings.TrimPrefix(s.Prefix, "BM"), "_")
	if base == "" {
		base = "Insert"
	}
	r, size := utf8.DecodeRuneInString(base)
	base = string(unicode.ToUpper(r)) + base[size:]
	base = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, base)

	var buf strings.Builder
	buf.WriteString("Benchmark")
	buf.WriteString(base)
	fmt.Fprintf(&buf, "/elem=%dB/container=%s", s.ElementSize, clean(s.Container))
	if s.Initializer != "" {
		fmt.Fprintf(&buf, "/init=%s", clean(s.Initializer))
	}
	return buf.String()
}

func decimal(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// clean makes v safe as a sub-benchmark value: no spaces or slashes.
func clean(v string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, v)
}
