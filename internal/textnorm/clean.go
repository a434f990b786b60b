// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm cleans extracted field substrings and provides the small
// lexical predicates the segmenter locates field boundaries with. Everything
// here is a pure function over printable text; no function panics on any
// input, however short or malformed.
package textnorm

import (
	"strconv"
	"strings"
)

// Clean normalizes one extracted field value. It is total: empty input
// yields empty output, and applying it twice yields the same result as
// applying it once. The period whitelist lists abbreviation suffixes
// ("ed.", "pbk.", "cm.") whose trailing period must survive the strip.
func Clean(s string, periodWhitelist []string) string {
	if s == "" {
		return ""
	}

	result := strings.ReplaceAll(s, "\n", " ")

	// Strip trailing spaces and periods, re-checking the whitelist before
	// every strip so an abbreviation suffix keeps its period.
	for result != "" && (result[len(result)-1] == ' ' || result[len(result)-1] == '.') {
		if endsWithAny(result, periodWhitelist) {
			break
		}
		result = result[:len(result)-1]
	}

	result = strings.TrimLeft(result, " ")

	result = stripCopyrightYear(result)
	result = stripBracketedYear(result)
	result = collapseCJKSpaces(result)

	// Fully parenthesis-wrapped values lose the wrapper, once per pass.
	if len(result) >= 3 && result[0] == '(' && result[len(result)-1] == ')' {
		result = result[1 : len(result)-1]
	}

	return result
}

// stripCopyrightYear turns a copyright-year marker like "c2008" into "2008".
func stripCopyrightYear(s string) string {
	r := []rune(s)
	if len(r) != 5 || r[0] != 'c' {
		return s
	}
	if _, err := strconv.Atoi(string(r[1:])); err != nil {
		return s
	}
	return string(r[1:])
}

// stripBracketedYear turns an inferred-year marker like "[2008]" into "2008".
func stripBracketedYear(s string) string {
	r := []rune(s)
	if len(r) != 6 || r[0] != '[' || r[5] != ']' {
		return s
	}
	if _, err := strconv.Atoi(string(r[1:5])); err != nil {
		return s
	}
	return string(r[1:5])
}

// collapseCJKSpaces removes interior single spaces next to a CJK ideograph.
// The text conversion step inserts spurious spacing around CJK characters;
// a space whose left or right neighbor is an ideograph is an artifact, not
// a word boundary.
func collapseCJKSpaces(s string) string {
	r := []rune(s)
	if len(r) < 3 {
		return s
	}
	out := make([]rune, 0, len(r))
	out = append(out, r[0])
	for i := 1; i < len(r)-1; i++ {
		if r[i] == ' ' && (IsCJK(r[i-1]) || IsCJK(r[i+1])) {
			continue
		}
		out = append(out, r[i])
	}
	out = append(out, r[len(r)-1])
	return string(out)
}

func endsWithAny(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
