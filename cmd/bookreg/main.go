// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookreg CLI: extraction of
// structured bibliographic records from converted book-registration
// catalogue text.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bookreg CLI.
var rootCmd = &cobra.Command{
	Use:   "bookreg",
	Short: "Extract bibliographic records from book-registration catalogue text",
	Long: `bookreg parses plain-text dumps of a periodical book-registration
catalogue into structured records. Each quarterly issue file is sliced into
numbered entries, every entry is segmented by its bilingual layout, and the
surviving records are written as CSV, XLSX, or Parquet tables or indexed
into a searchable SQLite catalogue.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookreg.yaml or ~/.config/bookreg/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookreg")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookreg"))
		}
	}

	viper.SetEnvPrefix("BOOKREG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
