// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/hklau/bookreg/internal/segment"
	"github.com/hklau/bookreg/pkg/types"
)

var entryCmd = &cobra.Command{
	Use:   "entry [file]",
	Short: "Parse a single raw entry from a file or stdin",
	Long: `Entry reads one raw catalogue entry from the given file, or from
standard input when no file is named, runs the segmentation heuristics for
the given catalogue year, and prints the resulting record as YAML. Useful
for debugging individual entries that failed during a full parse run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEntry,
}

func runEntry(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")

	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading entry: %w", err)
	}

	tablesFile, _ := cmd.Flags().GetString("tables")
	tables, err := types.LoadTables(tablesFile)
	if err != nil {
		return err
	}

	rec, err := segment.New(year, tables).Build(string(raw))
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func init() {
	entryCmd.Flags().Int("year", 2008, "catalogue year of the entry")
	entryCmd.Flags().String("tables", "", "YAML file overriding the built-in keyword tables")

	rootCmd.AddCommand(entryCmd)
}
