// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report reads the JSON reports written by Google Benchmark
// (--benchmark_format=json or --benchmark_out).
//
// A report has a "context" object describing the machine, including
// its CPU caches, and a "benchmarks" array with one entry per run:
//
//	{
//	  "context": {
//	    "caches": [{"type": "Data", "level": 1, "size": 32768}, ...]
//	  },
//	  "benchmarks": [
//	    {"name": "BM_insert<8, std::vector, NullIniter>/1024/iterations:1",
//	     "family_index": 1, "items_per_second": 1.5e7, ...}
//	  ]
//	}
//
// Numeric benchmark fields are accepted either as JSON numbers or as
// strings holding a number.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// A Report is a decoded benchmark report.
type Report struct {
	Context    Context
	Benchmarks []Benchmark
}

// Context describes the machine and build that produced a report.
type Context struct {
	Date              string  `json:"date"`
	HostName          string  `json:"host_name"`
	Executable        string  `json:"executable"`
	NumCPUs           int     `json:"num_cpus"`
	MHzPerCPU         float64 `json:"mhz_per_cpu"`
	CPUScalingEnabled bool    `json:"cpu_scaling_enabled"`
	LibraryBuildType  string  `json:"library_build_type"`
	Caches            []Cache `json:"caches"`
}

// A Cache is one CPU cache entry of a report context.
type Cache struct {
	Type       string `json:"type"` // "Data", "Instruction", "Unified"; may be empty
	Level      int    `json:"level"`
	Size       int64  `json:"size"` // bytes
	NumSharing int    `json:"num_sharing"`
}

// FirstCache returns the first cache at level. If typ is not empty,
// the cache type must also equal typ.
func (c *Context) FirstCache(level int, typ string) (Cache, bool) {
	for _, cache := range c.Caches {
		if cache.Level != level {
			continue
		}
		if typ != "" && cache.Type != typ {
			continue
		}
		return cache, true
	}
	return Cache{}, false
}

// RunType values.
const (
	RunIteration = "iteration"
	RunAggregate = "aggregate"
)

// A Benchmark is one row of the benchmarks array.
type Benchmark struct {
	Name                   string
	RunName                string
	RunType                string
	AggregateName          string
	FamilyIndex            int
	PerFamilyInstanceIndex int
	RepetitionIndex        int
	Repetitions            int
	Threads                int
	Iterations             int64
	RealTime               float64
	CPUTime                float64
	TimeUnit               string
	ItemsPerSecond         float64 // 0 if the run did not report items
	BytesPerSecond         float64
	ErrorOccurred          bool
	ErrorMessage           string
}

// IsAggregate reports whether b is a mean/median/stddev row computed
// by the harness from repeated runs.
func (b *Benchmark) IsAggregate() bool {
	return b.RunType == RunAggregate
}

// number holds the text of a JSON number or of a string containing one.
type number string

func (n *number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = number(s)
		return nil
	}
	*n = number(data)
	return nil
}

type rawBenchmark struct {
	Name                   *string `json:"name"`
	RunName                string  `json:"run_name"`
	RunType                string  `json:"run_type"`
	AggregateName          string  `json:"aggregate_name"`
	FamilyIndex            *number `json:"family_index"`
	PerFamilyInstanceIndex number  `json:"per_family_instance_index"`
	RepetitionIndex        number  `json:"repetition_index"`
	Repetitions            number  `json:"repetitions"`
	Threads                number  `json:"threads"`
	Iterations             number  `json:"iterations"`
	RealTime               number  `json:"real_time"`
	CPUTime                number  `json:"cpu_time"`
	TimeUnit               string  `json:"time_unit"`
	ItemsPerSecond         number  `json:"items_per_second"`
	BytesPerSecond         number  `json:"bytes_per_second"`
	ErrorOccurred          bool    `json:"error_occurred"`
	ErrorMessage           string  `json:"error_message"`
}

// fieldParser converts the number fields of one row, remembering the
// first failure.
type fieldParser struct {
	err error
}

func (p *fieldParser) int(field string, n number) int64 {
	if n == "" || p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", field, err)
	}
	return v
}

func (p *fieldParser) float(field string, n number) float64 {
	if n == "" || p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", field, err)
	}
	return v
}

func (b *Benchmark) UnmarshalJSON(data []byte) error {
	var raw rawBenchmark
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == nil {
		return fmt.Errorf("benchmark has no name")
	}
	if raw.FamilyIndex == nil || *raw.FamilyIndex == "" {
		return fmt.Errorf("benchmark %q has no family_index", *raw.Name)
	}

	var p fieldParser
	*b = Benchmark{
		Name:                   *raw.Name,
		RunName:                raw.RunName,
		RunType:                raw.RunType,
		AggregateName:          raw.AggregateName,
		FamilyIndex:            int(p.int("family_index", *raw.FamilyIndex)),
		PerFamilyInstanceIndex: int(p.int("per_family_instance_index", raw.PerFamilyInstanceIndex)),
		RepetitionIndex:        int(p.int("repetition_index", raw.RepetitionIndex)),
		Repetitions:            int(p.int("repetitions", raw.Repetitions)),
		Threads:                int(p.int("threads", raw.Threads)),
		Iterations:             p.int("iterations", raw.Iterations),
		RealTime:               p.float("real_time", raw.RealTime),
		CPUTime:                p.float("cpu_time", raw.CPUTime),
		TimeUnit:               raw.TimeUnit,
		ItemsPerSecond:         p.float("items_per_second", raw.ItemsPerSecond),
		BytesPerSecond:         p.float("bytes_per_second", raw.BytesPerSecond),
		ErrorOccurred:          raw.ErrorOccurred,
		ErrorMessage:           raw.ErrorMessage,
	}
	if p.err != nil {
		return fmt.Errorf("benchmark %q: %w", *raw.Name, p.err)
	}
	return nil
}

// A FormatError reports a report file that could not be decoded or
// that lacks a required section.
type FormatError struct {
	FileName string
	Msg      string
	Err      error // underlying decoding error, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.FileName, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Load reads the report stored at path.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, path)
}

// Decode reads a report from r. fileName is used in error messages;
// it is purely diagnostic.
func Decode(r io.Reader, fileName string) (*Report, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}

	var doc struct {
		Context *struct {
			Context
			Caches *[]Cache `json:"caches"`
		} `json:"context"`
		Benchmarks *[]Benchmark `json:"benchmarks"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &FormatError{fileName, "cannot decode report", err}
	}
	switch {
	case doc.Context == nil:
		return nil, &FormatError{FileName: fileName, Msg: `missing "context"`}
	case doc.Context.Caches == nil:
		return nil, &FormatError{FileName: fileName, Msg: `missing "context.caches"`}
	case doc.Benchmarks == nil:
		return nil, &FormatError{FileName: fileName, Msg: `missing "benchmarks"`}
	}

	rep := &Report{
		Context:    doc.Context.Context,
		Benchmarks: *doc.Benchmarks,
	}
	rep.Context.Caches = *doc.Context.Caches
	return rep, nil
}
