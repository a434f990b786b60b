// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"strings"
	"unicode"

	"github.com/hklau/bookreg/pkg/types"
)

// IsCJK reports whether r falls in the basic CJK ideograph block
// (U+4E00 through U+9FFF). The range is a deliberate over-approximation:
// it also matches some visually similar non-Chinese code points, and
// callers depend on that breadth when collapsing conversion artifacts.
func IsCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsBracketed reports whether s is wrapped in a parenthesis pair, the shape
// of the catalogue's identifier lines like "(2008-00042)".
func IsBracketed(s string) bool {
	return len(s) > 0 && s[0] == '(' && s[len(s)-1] == ')'
}

// StartsWithAny reports whether s starts with any of the prefixes.
func StartsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether s contains any of the keywords.
func ContainsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// IsDescription reports whether s is a boilerplate note line: an exact match
// against the known descriptions, or any descriptive keyword as substring.
func IsDescription(s string, t types.Tables) bool {
	if ContainsAny(s, t.DescriptionKeywords) {
		return true
	}
	for _, d := range t.Descriptions {
		if s == d {
			return true
		}
	}
	return false
}

// HasEditionInfo reports whether s carries a non-first-edition annotation
// such as "2nd ed." or "New ed.".
func HasEditionInfo(s string, t types.Tables) bool {
	return ContainsAny(s, t.EditionKeywords)
}

// HasAuthorshipMarker reports whether s contains a contributor role
// character (author, editor, translator, "text by").
func HasAuthorshipMarker(s string, t types.Tables) bool {
	return ContainsAny(s, t.ContributorKeywords)
}

// IsAuthorName reports whether s has the inverted English author-name shape
// "ANNELLS, Deborah": an all-capitals surname, a comma, and a given name in
// initial capital followed by lower case only. Multi-token given names like
// "Leslie R." are rejected; that false negative is part of the contract.
func IsAuthorName(s string) bool {
	comma := strings.Index(s, ",")
	if comma < 0 {
		return false
	}
	surname := s[:comma]
	given := s[comma+1:]
	if given != "" {
		given = given[1:] // the separating space
	}
	if given == "" {
		return false
	}
	r := []rune(given)
	return isUpperWord(surname) && unicode.IsUpper(r[0]) && isLowerWord(string(r[1:]))
}

// isUpperWord reports whether s contains at least one cased rune and no
// lower-case rune.
func isUpperWord(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isLowerWord is the lower-case counterpart of isUpperWord.
func isLowerWord(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}
