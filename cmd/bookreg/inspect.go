// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hklau/bookreg/internal/ingest"
	"github.com/hklau/bookreg/internal/report"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Extract records and print them as an aligned table",
	Long: `Inspect runs the same extraction as parse but renders the records to
the terminal instead of writing output files. Column alignment accounts for
the display width of CJK text.`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, tables, err := ingestConfig(cmd)
	if err != nil {
		return err
	}

	runner := ingest.NewRunner(cfg, tables, slog.Default())
	results, sum, err := runner.Run()
	if err != nil {
		return err
	}

	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if err := report.WriteTable(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nissues: %d, entries: %d, parsed: %d, failed: %d\n",
		sum.Issues, sum.Scanned, sum.Parsed, sum.Failed)
	return nil
}

func init() {
	addIngestFlags(inspectCmd)
	inspectCmd.Flags().Int("limit", 0, "show at most this many records (0 = all)")

	rootCmd.AddCommand(inspectCmd)
}
