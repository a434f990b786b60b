// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hklau/bookreg/internal/ingest"
	"github.com/hklau/bookreg/internal/report"
	"github.com/hklau/bookreg/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the searchable SQLite catalogue",
}

var storeIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Extract records and index them into the catalogue database",
	Long: `Index runs extraction over the configured year range and writes the
records into the SQLite catalogue, replacing any previous rows for the same
issues. The full-text index over titles, author, and publisher is kept in
sync by triggers.`,
	RunE: runStoreIndex,
}

func runStoreIndex(cmd *cobra.Command, args []string) error {
	cfg, tables, err := ingestConfig(cmd)
	if err != nil {
		return err
	}

	runner := ingest.NewRunner(cfg, tables, slog.Default())
	results, sum, err := runner.Run()
	if err != nil {
		return err
	}

	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Index(ctx, results); err != nil {
		return err
	}
	total, err := s.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "indexed %d records (%d failed entries skipped), %d total in catalogue\n",
		sum.Parsed, sum.Failed, total)
	return nil
}

var storeSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over the indexed catalogue",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreSearch,
}

func runStoreSearch(cmd *cobra.Command, args []string) error {
	s, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	hits, err := s.Search(context.Background(), args[0], limit)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no matches")
		return nil
	}

	results := make([]ingest.Result, len(hits))
	for i, h := range hits {
		results[i] = ingest.Result{Year: h.Year, Season: h.Season, Rank: h.Rank, Record: h.Record}
	}
	return report.WriteTable(cmd.OutOrStdout(), results)
}

func init() {
	storeCmd.PersistentFlags().String("db", "bookreg.db", "catalogue database file")

	addIngestFlags(storeIndexCmd)
	storeSearchCmd.Flags().Int("limit", 0, "maximum results (0 = store default)")

	storeCmd.AddCommand(storeIndexCmd)
	storeCmd.AddCommand(storeSearchCmd)
	rootCmd.AddCommand(storeCmd)
}
