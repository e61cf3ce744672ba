// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series groups decoded benchmark runs into the series drawn
// on one chart per element size.
//
// Runs are grouped first by element size and then by the harness's
// family index, which identifies one container/initializer
// combination swept over collection sizes.
package series

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/seqbench/cacheplot/benchname"
	"github.com/seqbench/cacheplot/report"
)

// NullContainer is the container of calibration runs. Families using
// it are never charted.
const NullContainer = "NullContainer"

// Options configures FromReport and Build.
type Options struct {
	Grammar benchname.Grammar
	Combine Combine
	Logger  *slog.Logger // nil discards
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// A Record is one benchmark run with its name decoded.
type Record struct {
	Name           benchname.Name
	FamilyIndex    int
	ItemsPerSecond float64
}

// SecondsPerItem is the average time to insert one item.
func (r *Record) SecondsPerItem() float64 {
	return 1 / r.ItemsPerSecond
}

// SecondsPerItemPerItems normalizes SecondsPerItem by the number of
// items in the collection.
func (r *Record) SecondsPerItemPerItems() float64 {
	return r.SecondsPerItem() / r.Name.CollectionItems()
}

// FromReport decodes the names of bs. Aggregate rows and runs that
// reported an error are skipped. It fails on the first name that does
// not parse or run without a finite, positive items_per_second.
func FromReport(bs []report.Benchmark, opts *Options) ([]Record, error) {
	log := opts.logger()
	var grammar benchname.Grammar
	if opts != nil {
		grammar = opts.Grammar
	}

	recs := make([]Record, 0, len(bs))
	for i := range bs {
		b := &bs[i]
		if b.IsAggregate() {
			log.Debug("skipping aggregate run", "name", b.Name, "aggregate", b.AggregateName)
			continue
		}
		if b.ErrorOccurred {
			log.Warn("skipping failed run", "name", b.Name, "error", b.ErrorMessage)
			continue
		}
		name, err := benchname.ParseWith(b.Name, grammar)
		if err != nil {
			return nil, err
		}
		if !(b.ItemsPerSecond > 0) || math.IsInf(b.ItemsPerSecond, 0) {
			return nil, fmt.Errorf("benchmark %q: items_per_second is %v, want finite and > 0", b.Name, b.ItemsPerSecond)
		}
		recs = append(recs, Record{
			Name:           name,
			FamilyIndex:    b.FamilyIndex,
			ItemsPerSecond: b.ItemsPerSecond,
		})
	}
	return recs, nil
}

// A Point is one plotted measurement.
type Point struct {
	CollectionSize         int64 // bytes
	CollectionItems        float64
	ItemsPerSecond         float64
	SecondsPerItem         float64
	SecondsPerItemPerItems float64
	Runs                   int // records combined into this point
}

// A Series is the points of one benchmark family.
type Series struct {
	FamilyIndex int
	ElementSize int64
	Prefix      string
	// Container and Initializer come from the family's first record.
	// Every record of a family is assumed to share them.
	Container   string
	Initializer string
	Reserved    bool
	Points      []Point
}

// A Group is every charted series with one element size.
type Group struct {
	ElementSize int64
	Series      []*Series
}

// Build groups recs by element size (ascending) and, within each
// group, by family index (ascending). A family's points are every
// record with its index, including records of other element sizes.
// Families of NullContainer runs are dropped, so a group may have no
// series. Points keep the order of recs unless opts.Combine merges
// them.
func Build(recs []Record, opts *Options) []*Group {
	log := opts.logger()
	combine := CombineNone
	if opts != nil {
		combine = opts.Combine
	}

	families := make(map[int][]*Record)
	sizeFamilies := make(map[int64]map[int]struct{})
	for i := range recs {
		r := &recs[i]
		families[r.FamilyIndex] = append(families[r.FamilyIndex], r)
		fams := sizeFamilies[r.Name.ElementSize]
		if fams == nil {
			fams = make(map[int]struct{})
			sizeFamilies[r.Name.ElementSize] = fams
		}
		fams[r.FamilyIndex] = struct{}{}
	}

	sizes := make([]int64, 0, len(sizeFamilies))
	for size := range sizeFamilies {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	groups := make([]*Group, 0, len(sizes))
	for _, size := range sizes {
		g := &Group{ElementSize: size}
		for _, fam := range sortedKeys(sizeFamilies[size]) {
			members := families[fam]
			first := members[0]
			if first.Name.Container == NullContainer {
				log.Debug("skipping calibration family", "family", fam, "element_size", size)
				continue
			}
			g.Series = append(g.Series, &Series{
				FamilyIndex: fam,
				ElementSize: size,
				Prefix:      first.Name.Prefix,
				Container:   first.Name.Container,
				Initializer: first.Name.Initializer,
				Reserved:    first.Name.Reserved(),
				Points:      combine.points(members),
			})
		}
		groups = append(groups, g)
	}
	return groups
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
