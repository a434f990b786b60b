// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hklau/bookreg/internal/ingest"
	"github.com/hklau/bookreg/pkg/types"
)

// recordsSheet is the single sheet the XLSX backend writes.
const recordsSheet = "Records"

// XLSXWriter emits the record table as a spreadsheet, for readers who want
// to filter and sort the catalogue by hand.
type XLSXWriter struct {
	Path string
}

func (w *XLSXWriter) Write(results []ingest.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(recordsSheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("dropping default sheet: %w", err)
	}

	if err := setRow(f, 1, headerCells()); err != nil {
		return err
	}
	for i, res := range results {
		if err := setRow(f, i+2, res.Record.Row()); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.Path); err != nil {
		return fmt.Errorf("saving %s: %w", w.Path, err)
	}
	return nil
}

func headerCells() []string {
	return append([]string(nil), types.Columns...)
}

func setRow(f *excelize.File, row int, cells []string) error {
	for col, cell := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell (%d,%d): %w", col+1, row, err)
		}
		if err := f.SetCellValue(recordsSheet, name, cell); err != nil {
			return fmt.Errorf("cell %s: %w", name, err)
		}
	}
	return nil
}
