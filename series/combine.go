// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Combine selects how repeated runs of one family and collection size
// are merged into a single point.
type Combine int

const (
	// CombineNone plots every run as its own point.
	CombineNone Combine = iota
	// CombineMedian plots the median time per item.
	CombineMedian
	// CombineMean plots the mean time per item.
	CombineMean
	// CombineMin plots the fastest run.
	CombineMin
)

var combineNames = []string{
	CombineNone:   "none",
	CombineMedian: "median",
	CombineMean:   "mean",
	CombineMin:    "min",
}

func (c Combine) String() string {
	if c >= 0 && int(c) < len(combineNames) {
		return combineNames[c]
	}
	return fmt.Sprintf("Combine(%d)", int(c))
}

// LookupCombine returns the Combine named by s.
func LookupCombine(s string) (Combine, error) {
	for c, name := range combineNames {
		if s == name {
			return Combine(c), nil
		}
	}
	return 0, fmt.Errorf("unknown combine mode %q", s)
}

func pointOf(secondsPerItem, collectionItems float64, size int64, runs int) Point {
	return Point{
		CollectionSize:         size,
		CollectionItems:        collectionItems,
		ItemsPerSecond:         1 / secondsPerItem,
		SecondsPerItem:         secondsPerItem,
		SecondsPerItemPerItems: secondsPerItem / collectionItems,
		Runs:                   runs,
	}
}

// points converts the records of one family. Merged points are
// ordered by the first appearance of their collection size.
func (c Combine) points(recs []*Record) []Point {
	if c == CombineNone {
		pts := make([]Point, len(recs))
		for i, r := range recs {
			pts[i] = pointOf(r.SecondsPerItem(), r.Name.CollectionItems(), r.Name.CollectionSize, 1)
			pts[i].ItemsPerSecond = r.ItemsPerSecond
		}
		return pts
	}

	var order []int64
	bySize := make(map[int64][]*Record)
	for _, r := range recs {
		size := r.Name.CollectionSize
		if _, ok := bySize[size]; !ok {
			order = append(order, size)
		}
		bySize[size] = append(bySize[size], r)
	}

	pts := make([]Point, 0, len(order))
	for _, size := range order {
		rs := bySize[size]
		xs := make([]float64, len(rs))
		for i, r := range rs {
			xs[i] = r.SecondsPerItem()
		}
		pts = append(pts, pointOf(c.reduce(xs), rs[0].Name.CollectionItems(), size, len(rs)))
	}
	return pts
}

func (c Combine) reduce(xs []float64) float64 {
	sort.Float64s(xs)
	s := stats.Sample{Xs: xs, Sorted: true}
	switch c {
	case CombineMean:
		return s.Mean()
	case CombineMin:
		min, _ := s.Bounds()
		return min
	default:
		return s.Quantile(0.5)
	}
}
