// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/bitjungle/weightipy/pkg/types"
)

// WriteCSV writes dataset to w in column order, one header row followed by
// one row per observation.
func WriteCSV(w io.Writer, dataset *types.Dataset) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	names := dataset.ColumnNames()
	if err := writer.Write(names); err != nil {
		return fmt.Errorf("table: failed to write header: %w", err)
	}

	row := make([]string, len(names))
	for r := 0; r < dataset.Len(); r++ {
		for i, name := range names {
			col, _ := dataset.Column(name)
			row[i] = col.StringAt(r)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("table: failed to write row %d: %w", r, err)
		}
	}

	return writer.Error()
}

// WriteXLSX writes dataset to an .xlsx workbook at path, one sheet named
// "Data" with a bold header row (grounded on the teacher's Excel export,
// adapted from a Wails-bound dialog handler into a plain file writer).
func WriteXLSX(path string, dataset *types.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Data"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("table: failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("table: failed to create header style: %w", err)
	}

	names := dataset.ColumnNames()
	for i, name := range names {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, name)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for r := 0; r < dataset.Len(); r++ {
		for i, name := range names {
			col, _ := dataset.Column(name)
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if col.Kind == types.ColumnNumeric {
				f.SetCellValue(sheet, cell, col.Floats[r])
			} else {
				f.SetCellValue(sheet, cell, col.Strs[r])
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("table: failed to save workbook: %w", err)
	}
	return nil
}

// FormatFloat renders a weight value with four fixed decimal places, suitable
// for tabular display. The CLI's --format flag offers only csv and xlsx and
// does not use it.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
