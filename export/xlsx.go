// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/seqbench/cacheplot/series"
)

// defaultSheet is the sheet excelize.NewFile creates.
const defaultSheet = "Sheet1"

// SheetName returns the worksheet name used for an element size.
func SheetName(elementSize int64) string {
	return fmt.Sprintf("%dB", elementSize)
}

// WriteXLSX writes a workbook to path with one sheet per group. Each
// sheet starts with Header and has one row per point.
func WriteXLSX(path string, groups []*series.Group) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, g := range groups {
		sheet := SheetName(g.ElementSize)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}

		header := make([]interface{}, len(Header))
		for i, h := range Header {
			header[i] = h
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		r := 2
		for _, s := range g.Series {
			for i := range s.Points {
				cell, err := excelize.CoordinatesToCellName(1, r)
				if err != nil {
					return err
				}
				vals := row(s, &s.Points[i])
				if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
					return err
				}
				r++
			}
		}
	}

	if len(groups) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
		idx, err := f.GetSheetIndex(SheetName(groups[0].ElementSize))
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
