// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IngestConfig holds settings for the catalogue ingestion stage.
type IngestConfig struct {
	// InputDir is the directory holding the converted season files,
	// named "<year>s<season>.txt".
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// FirstYear and LastYear bound the catalogue years to process,
	// inclusive. The per-issue catalogue year also drives the
	// publisher-year and identifier-marker heuristics.
	FirstYear int `json:"first_year" yaml:"first_year"`
	LastYear  int `json:"last_year" yaml:"last_year"`

	// TablesFile optionally overrides the built-in keyword tables.
	TablesFile string `json:"tables_file,omitempty" yaml:"tables_file,omitempty"`

	// Workers is the number of concurrent entry parsers per issue.
	// Values below 2 parse sequentially. Output order is rank order
	// either way.
	Workers int `json:"workers" yaml:"workers"`
}

// OutputConfig holds settings for the table writers.
type OutputConfig struct {
	// CSVPath is the canonical output table. Always written.
	CSVPath string `json:"csv_path" yaml:"csv_path"`

	// XLSXPath and ParquetPath are optional additional outputs; empty
	// means the format is skipped.
	XLSXPath    string `json:"xlsx_path,omitempty" yaml:"xlsx_path,omitempty"`
	ParquetPath string `json:"parquet_path,omitempty" yaml:"parquet_path,omitempty"`
}

// StoreConfig holds settings for the SQLite catalogue store.
type StoreConfig struct {
	// Path is the database file, e.g. "catalogue.db".
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default search result cap (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Ingest IngestConfig `json:"ingest" yaml:"ingest"`
	Output OutputConfig `json:"output" yaml:"output"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}
