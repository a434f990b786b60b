// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes extracted records as tables with pluggable
// backends (CSV, XLSX, Parquet). Every backend emits the same fixed
// column order.
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hklau/bookreg/internal/ingest"
)

// Writer persists a batch of extraction results to one destination.
// Different backends (CSV, XLSX, Parquet) implement this interface.
type Writer interface {
	// Write persists the results, replacing any previous content at the
	// writer's destination.
	Write(results []ingest.Result) error
}

// ForPath picks a backend from the destination's file extension.
func ForPath(path string) (Writer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &CSVWriter{Path: path}, nil
	case ".xlsx":
		return &XLSXWriter{Path: path}, nil
	case ".parquet":
		return &ParquetWriter{Path: path}, nil
	default:
		return nil, fmt.Errorf("no output backend for %q", path)
	}
}
