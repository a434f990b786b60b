// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanIssueSlicesByRankMarkers(t *testing.T) {
	txt := "1\nalpha one\n2\nbeta two\n3\ngamma three\n"

	entries, missing, err := ScanIssue(txt)
	require.NoError(t, err)
	assert.Empty(t, missing)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "alpha one\n", entries[0].Text)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "beta two\n", entries[1].Text)
	assert.Equal(t, 3, entries[2].Rank)
	assert.Equal(t, "gamma three\n", entries[2].Text)
}

func TestScanIssueMissingMarker(t *testing.T) {
	txt := "1\nalpha\n3\nomega\n"

	entries, missing, err := ScanIssue(txt)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, missing)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 3, entries[1].Rank)
	// With rank 2 absent, entry 1 extends up to rank 3's marker.
	assert.Equal(t, "alpha\n", entries[0].Text)
}

func TestScanIssueStripsConversionArtifacts(t *testing.T) {
	txt := "7\nfoo 1 — bar 1 = baz\n8\n"

	entries, _, err := ScanIssue(txt)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "foo — bar = baz\n", entries[0].Text)
	assert.NotContains(t, entries[0].Text, "1 —")
	assert.NotContains(t, entries[0].Text, "1 =")
}

func TestScanIssueBadBounds(t *testing.T) {
	_, _, err := ScanIssue("not a rank\nsecond line\n")
	assert.Error(t, err)
}

func TestScanIssueLastEntryRunsToEOF(t *testing.T) {
	txt := "4\nfourth entry\nwith two lines\n"

	entries, missing, err := ScanIssue(txt)
	require.NoError(t, err)
	assert.Empty(t, missing)
	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].Rank)
	assert.Equal(t, "fourth entry\nwith two lines\n", entries[0].Text)
}
