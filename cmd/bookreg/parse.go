// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hklau/bookreg/internal/ingest"
	"github.com/hklau/bookreg/internal/output"
	"github.com/hklau/bookreg/internal/store"
	"github.com/hklau/bookreg/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract records from the catalogue issue files",
	Long: `Parse walks the configured year range, slices each season file into
numbered entries, and extracts a structured record per entry. Entries that
resist segmentation are logged and skipped; the rest are written to every
requested output table and, when --db is given, indexed into the SQLite
catalogue as well.`,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, tables, err := ingestConfig(cmd)
	if err != nil {
		return err
	}

	csvPath := stringSetting(cmd, "csv", "output.csv_path", "records.csv")
	xlsxPath := stringSetting(cmd, "xlsx", "output.xlsx_path", "")
	parquetPath := stringSetting(cmd, "parquet", "output.parquet_path", "")

	runner := ingest.NewRunner(cfg, tables, slog.Default())
	results, sum, err := runner.Run()
	if err != nil {
		return err
	}

	for _, path := range []string{csvPath, xlsxPath, parquetPath} {
		if path == "" {
			continue
		}
		w, err := output.ForPath(path)
		if err != nil {
			return err
		}
		if err := w.Write(results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(results), path)
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		s, err := store.Open(types.StoreConfig{Path: dbPath})
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Index(context.Background(), results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d records into %s\n", len(results), dbPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "issues: %d, entries: %d, parsed: %d, failed: %d\n",
		sum.Issues, sum.Scanned, sum.Parsed, sum.Failed)
	return nil
}

func init() {
	addIngestFlags(parseCmd)
	parseCmd.Flags().String("csv", "records.csv", "CSV output path")
	parseCmd.Flags().String("xlsx", "", "XLSX output path (empty = skip)")
	parseCmd.Flags().String("parquet", "", "Parquet output path (empty = skip)")
	parseCmd.Flags().String("db", "", "also index records into this SQLite catalogue (empty = skip)")

	rootCmd.AddCommand(parseCmd)
}
