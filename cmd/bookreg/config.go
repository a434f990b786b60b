// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hklau/bookreg/pkg/types"
)

// stringSetting resolves a string option: an explicitly set flag wins, then
// the config file / environment, then the built-in fallback.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	v, _ := cmd.Flags().GetString(flag)
	if v != "" {
		return v
	}
	return fallback
}

func intSetting(cmd *cobra.Command, flag, key string, fallback int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	if v != 0 {
		return v
	}
	return fallback
}

// addIngestFlags registers the extraction flags shared by parse, inspect,
// and store index.
func addIngestFlags(cmd *cobra.Command) {
	cmd.Flags().String("input-dir", "txt", "directory holding <year>s<season>.txt issue files")
	cmd.Flags().Int("first-year", 2008, "first catalogue year to process")
	cmd.Flags().Int("last-year", 2014, "last catalogue year to process")
	cmd.Flags().String("tables", "", "YAML file overriding the built-in keyword tables")
	cmd.Flags().Int("workers", 1, "parallel entry parsers per issue")
}

func ingestConfig(cmd *cobra.Command) (types.IngestConfig, types.Tables, error) {
	cfg := types.IngestConfig{
		InputDir:   stringSetting(cmd, "input-dir", "ingest.input_dir", "txt"),
		FirstYear:  intSetting(cmd, "first-year", "ingest.first_year", 2008),
		LastYear:   intSetting(cmd, "last-year", "ingest.last_year", 2014),
		TablesFile: stringSetting(cmd, "tables", "ingest.tables_file", ""),
		Workers:    intSetting(cmd, "workers", "ingest.workers", 1),
	}
	if cfg.FirstYear > cfg.LastYear {
		return cfg, types.Tables{}, fmt.Errorf("first-year %d is after last-year %d", cfg.FirstYear, cfg.LastYear)
	}
	tables, err := types.LoadTables(cfg.TablesFile)
	if err != nil {
		return cfg, types.Tables{}, err
	}
	return cfg, tables, nil
}

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	return types.StoreConfig{
		Path:       stringSetting(cmd, "db", "store.path", "bookreg.db"),
		MaxResults: intSetting(cmd, "limit", "store.max_results", 0),
	}
}
