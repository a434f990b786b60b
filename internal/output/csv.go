// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hklau/bookreg/internal/ingest"
	"github.com/hklau/bookreg/pkg/types"
)

// CSVWriter emits the canonical comma-separated table: one header row with
// the fixed column names, then one row per record.
type CSVWriter struct {
	Path string
}

func (w *CSVWriter) Write(results []ingest.Result) error {
	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", w.Path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(types.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, res := range results {
		if err := cw.Write(res.Record.Row()); err != nil {
			return fmt.Errorf("writing row %d-%d: %w", res.Year, res.Rank, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}
