// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest drives extraction over a directory of catalogue issue
// files: it slices each issue's text into numbered entries, parses every
// entry, and collects the surviving records in rank order.
package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// RawEntry is one sliced but unparsed catalogue entry.
type RawEntry struct {
	Rank int
	Text string
}

// ScanIssue slices one issue's plain text into its numbered entries.
//
// The first line of the file carries the issue's lowest rank and the last
// integer-parseable line its highest. Entry k spans from just after its
// "k\n" marker to the start of the "k+1\n" marker; the final entry runs to
// end of file. A rank whose marker never appears after the previous entry
// is skipped and reported in the second return value.
func ScanIssue(txt string) ([]RawEntry, []int, error) {
	// Stray column numbers from the PDF conversion glue themselves onto
	// the layout markers; strip them before anything else.
	txt = strings.ReplaceAll(txt, "1 =", "=")
	txt = strings.ReplaceAll(txt, "1 —", "—")

	lower, upper, err := rankBounds(txt)
	if err != nil {
		return nil, nil, err
	}

	type span struct {
		rank  int
		begin int // index of the marker's first digit
		after int // index just past the marker's newline
	}

	var spans []span
	var missing []int
	end := 0
	for rank := lower; rank <= upper; rank++ {
		marker := strconv.Itoa(rank) + "\n"
		at := strings.Index(txt[end:], marker)
		if at < 0 {
			missing = append(missing, rank)
			continue
		}
		begin := end + at
		spans = append(spans, span{rank: rank, begin: begin, after: begin + len(marker)})
		end = begin + len(marker)
	}

	entries := make([]RawEntry, 0, len(spans))
	for i, sp := range spans {
		stop := len(txt)
		if i+1 < len(spans) {
			stop = spans[i+1].begin
		}
		entries = append(entries, RawEntry{Rank: sp.rank, Text: txt[sp.after:stop]})
	}
	return entries, missing, nil
}

// rankBounds reads the lowest rank from the first line and the highest from
// the last line that parses as an integer.
func rankBounds(txt string) (int, int, error) {
	lines := strings.Split(txt, "\n")
	if len(lines) == 0 {
		return 0, 0, fmt.Errorf("empty issue text")
	}
	lower, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("first line %q is not a rank: %w", lines[0], err)
	}
	for i := len(lines) - 1; i >= 0; i-- {
		upper, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err == nil {
			return lower, upper, nil
		}
	}
	return 0, 0, fmt.Errorf("no closing rank line in issue text")
}
