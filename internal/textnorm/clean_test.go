// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"testing"

	"github.com/hklau/bookreg/pkg/types"
)

var whitelist = types.DefaultTables().PeriodWhitelist

func TestCleanBasics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"spaces only", "   ", ""},
		{"trailing period", "Some Title.", "Some Title"},
		{"trailing periods and spaces", "Some Title . . ", "Some Title"},
		{"leading spaces", "   Some Title", "Some Title"},
		{"embedded newline", "Some\nTitle", "Some Title"},
		{"copyright year", "c2008", "2008"},
		{"bracketed year", "[2008]", "2008"},
		{"bracketed non-year kept", "[abcd]", "[abcd]"},
		{"copyright non-year kept", "cabcd", "cabcd"},
		{"parenthesis wrapper", "(abc)", "abc"},
		{"short parenthesis kept", "()", "()"},
		{"single char", ".", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in, whitelist); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanKeepsWhitelistedPeriods(t *testing.T) {
	for _, in := range []string{"2nd ed.", "pbk.", "24 cm.", "New ed. "} {
		got := Clean(in, whitelist)
		if got == "" || got[len(got)-1] != '.' {
			t.Errorf("Clean(%q) = %q, abbreviation period must survive", in, got)
		}
	}
}

func TestCleanCJKSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"中 國", "中國"},
		{"中 國 歷 史", "中國歷史"},
		{"a 中", "a中"},
		{"中 a", "中a"},
		{"plain ascii", "plain ascii"},
	}
	for _, tt := range tests {
		if got := Clean(tt.in, whitelist); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"", "Some Title.", "c2008", "[2008]", "中 國 歷 史",
		"2nd ed.", " ISBN 978-1-4058-6246-2 ", "Acme Press, 2008.",
		"(pbk.)",
	}
	for _, in := range inputs {
		once := Clean(in, whitelist)
		twice := Clean(once, whitelist)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
