// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes grouped series as tables: CSV, XLSX workbooks
// and the Go benchmark format understood by benchstat.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/seqbench/cacheplot/series"
)

// Header names the columns of every table.
var Header = []string{
	"element_size",
	"family_index",
	"container",
	"initializer",
	"reserved",
	"collection_size",
	"collection_items",
	"items_per_second",
	"seconds_per_item",
	"seconds_per_item_per_items",
	"runs",
}

// row returns the cells of one point, typed for spreadsheets.
func row(s *series.Series, p *series.Point) []interface{} {
	return []interface{}{
		s.ElementSize,
		s.FamilyIndex,
		s.Container,
		s.Initializer,
		s.Reserved,
		p.CollectionSize,
		p.CollectionItems,
		p.ItemsPerSecond,
		p.SecondsPerItem,
		p.SecondsPerItemPerItems,
		p.Runs,
	}
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// WriteCSV writes a header and one record per point of groups.
func WriteCSV(w io.Writer, groups []*series.Group) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, g := range groups {
		for _, s := range g.Series {
			for i := range s.Points {
				p := &s.Points[i]
				rec := []string{
					strconv.FormatInt(s.ElementSize, 10),
					strconv.Itoa(s.FamilyIndex),
					s.Container,
					s.Initializer,
					strconv.FormatBool(s.Reserved),
					strconv.FormatInt(p.CollectionSize, 10),
					strof(p.CollectionItems),
					strof(p.ItemsPerSecond),
					strof(p.SecondsPerItem),
					strof(p.SecondsPerItemPerItems),
					strconv.Itoa(p.Runs),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
