// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/hklau/bookreg/internal/segment"
	"github.com/hklau/bookreg/pkg/types"
)

// Result is one successfully extracted record with its catalogue position.
type Result struct {
	Year   int
	Season int
	Rank   int
	Record types.Record
}

// Summary counts the outcome of a run.
type Summary struct {
	Issues  int
	Scanned int
	Parsed  int
	Failed  int
}

// Runner walks the configured year range and extracts every issue it finds.
type Runner struct {
	Config types.IngestConfig
	Tables types.Tables
	Logger *slog.Logger
}

// NewRunner wires a Runner; a nil logger falls back to slog.Default.
func NewRunner(cfg types.IngestConfig, tables types.Tables, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{Config: cfg, Tables: tables, Logger: logger}
}

// Run extracts all issues in the configured range. Results come back in
// (year, season, rank) order. A missing season file ends that year; any
// other read error aborts the run.
func (r *Runner) Run() ([]Result, Summary, error) {
	var all []Result
	var sum Summary
	for year := r.Config.FirstYear; year <= r.Config.LastYear; year++ {
		for season := 1; season <= 4; season++ {
			path := filepath.Join(r.Config.InputDir, fmt.Sprintf("%ds%d.txt", year, season))
			raw, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				break
			}
			if err != nil {
				return nil, sum, fmt.Errorf("reading issue %s: %w", path, err)
			}
			results, issueSum, err := r.RunIssue(year, season, string(raw))
			if err != nil {
				return nil, sum, fmt.Errorf("issue %s: %w", path, err)
			}
			all = append(all, results...)
			sum.Issues++
			sum.Scanned += issueSum.Scanned
			sum.Parsed += issueSum.Parsed
			sum.Failed += issueSum.Failed
		}
	}
	return all, sum, nil
}

// RunIssue extracts one issue's text. Entries that fail to parse produce no
// result and exactly one log line each; the rest come back in rank order.
func (r *Runner) RunIssue(year, season int, txt string) ([]Result, Summary, error) {
	entries, missing, err := ScanIssue(txt)
	if err != nil {
		return nil, Summary{}, err
	}
	for _, rank := range missing {
		r.Logger.Warn("entry marker not found",
			"year", year, "season", season, "rank", rank)
	}

	parser := segment.New(year, r.Tables)
	records := r.parseAll(parser, entries)

	results := make([]Result, 0, len(entries))
	sum := Summary{Issues: 1, Scanned: len(entries)}
	for i, entry := range entries {
		if records[i] == nil {
			sum.Failed++
			continue
		}
		sum.Parsed++
		results = append(results, Result{
			Year:   year,
			Season: season,
			Rank:   entry.Rank,
			Record: *records[i],
		})
	}
	return results, sum, nil
}

// parseAll builds a record per entry, sequentially or fanned out over the
// configured worker count. The indexed result slice keeps rank order no
// matter which goroutine finishes first; entries share no mutable state.
func (r *Runner) parseAll(parser *segment.Parser, entries []RawEntry) []*types.Record {
	records := make([]*types.Record, len(entries))

	parse := func(i int) {
		rec, err := parser.Build(entries[i].Text)
		if err != nil {
			r.Logger.Warn("entry failed to parse",
				"year", parser.Year, "rank", entries[i].Rank,
				"err", err, "raw", entries[i].Text)
			return
		}
		records[i] = &rec
	}

	workers := r.Config.Workers
	if workers <= 1 || len(entries) < 2 {
		for i := range entries {
			parse(i)
		}
		return records
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				parse(i)
			}
		}()
	}
	for i := range entries {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return records
}
