// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders extracted records as aligned text tables for
// terminal inspection. Column widths use display width, so tables stay
// aligned when cells mix Latin and CJK text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hklau/bookreg/internal/ingest"
	"github.com/hklau/bookreg/pkg/types"
)

// inspectColumns is the compact column set for terminal output; the full
// 22-column table is unreadable on a terminal.
var inspectColumns = []string{"position", "serial", "language", "title", "author", "publisher"}

// WriteTable renders results as an aligned table.
func WriteTable(w io.Writer, results []ingest.Result) error {
	rows := make([][]string, 0, len(results)+1)
	rows = append(rows, inspectColumns)
	for _, res := range results {
		rows = append(rows, inspectRow(res))
	}
	return writeAligned(w, rows)
}

// WriteRecord renders one record as a field/value listing with every
// column, empty ones included.
func WriteRecord(w io.Writer, rec types.Record) error {
	rows := make([][]string, 0, len(types.Columns))
	cells := rec.Row()
	for i, col := range types.Columns {
		rows = append(rows, []string{col, cells[i]})
	}
	return writeAligned(w, rows)
}

func inspectRow(res ingest.Result) []string {
	rec := res.Record
	title := rec.TitleEng
	if rec.Language == types.LanguageChinese && rec.TitleChi != "" {
		title = rec.TitleChi
	}
	return []string{
		fmt.Sprintf("%ds%d#%d", res.Year, res.Season, res.Rank),
		rec.Serial,
		string(rec.Language),
		title,
		rec.Author,
		rec.Publisher,
	}
}

func writeAligned(w io.Writer, rows [][]string) error {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	widths := make([]int, colCount)
	for _, row := range rows {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	for _, row := range rows {
		var sb strings.Builder
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(cell)
			if i == colCount-1 {
				break
			}
			if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			sb.WriteString("  ")
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
