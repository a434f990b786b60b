// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package serialline parses one "serial number + medium + price" clause,
// e.g. "ISBN 978-1-4058-6246-2 (pbk.) : Unpriced", into its fields.
package serialline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hklau/bookreg/pkg/types"
)

// ErrMalformedLine reports a serial clause that could not be split into
// exactly one serial part and one price part after normalization.
var ErrMalformedLine = fmt.Errorf("malformed serial line")

// Parse extracts a SerialInfo from a single serial clause. The currency
// tokens come from the tables; the first one found in the price part wins.
// Empty input and clauses with no recoverable serial/price split fail with
// ErrMalformedLine.
func Parse(s string, t types.Tables) (types.SerialInfo, error) {
	if s == "" {
		return types.SerialInfo{}, fmt.Errorf("%w: empty clause", ErrMalformedLine)
	}

	// Price-only lines like "$35.00" carry no serial number at all. The
	// numeric check tolerates surrounding whitespace; the price keeps it.
	if s[0] == '$' {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s[1:]), 64); err == nil {
			return types.SerialInfo{Price: s[1:], Currency: "$"}, nil
		}
	}

	serialType := detectType(s, t.SerialPrefixes)

	// A parenthesized span is the medium annotation; lift it out and leave
	// a single space where it sat.
	var medium string
	if l := strings.Index(s, "("); l >= 0 {
		r := strings.Index(s, ")")
		if r > l {
			medium = s[l+1 : r]
			s = s[:l] + " " + s[r+1:]
		}
	}

	// No price indicators at all: the clause is a bare serial number after
	// the 4-character type tag and its trailing space.
	if !strings.Contains(s, "$") && !strings.Contains(s, ":") && !strings.Contains(s, "CNY") {
		return types.SerialInfo{
			Type:   serialType,
			Number: bareNumber(s),
			Medium: medium,
		}, nil
	}

	// Normalize to exactly one colon between serial part and price part.
	if !strings.Contains(s, ":") {
		s = strings.Replace(s, "  ", ":", 1)
	}
	if !strings.Contains(s, ":") {
		s = strings.Replace(s, " $", ":$", 1)
	}
	for strings.Count(s, ":") > 1 {
		// Redundant colons either pre-exist in the converted text or were
		// introduced by the replacements above.
		s = strings.Replace(s, ":", "", 1)
	}

	serialPart, pricePart, ok := strings.Cut(s, ":")
	if !ok {
		return types.SerialInfo{}, fmt.Errorf("%w: no serial/price separator in %q", ErrMalformedLine, s)
	}

	info := types.SerialInfo{
		Type:   serialType,
		Number: strings.ReplaceAll(serialPart, string(serialType)+" ", ""),
		Medium: medium,
		Price:  pricePart,
	}
	for _, currency := range t.Currencies {
		if strings.Contains(pricePart, currency) {
			info.Price = strings.ReplaceAll(pricePart, currency, "")
			info.Currency = currency
			break
		}
	}

	return info, nil
}

// detectType scans for a serial prefix anywhere in the clause. Order
// matters: the first prefix in the table that appears wins.
func detectType(s string, prefixes []string) types.SerialType {
	for _, prefix := range prefixes {
		if strings.Contains(s, prefix) {
			return types.SerialType(prefix)
		}
	}
	return types.SerialNone
}

// bareNumber drops the 4-character type tag and the following space. Short
// clauses yield an empty number rather than an out-of-range slice.
func bareNumber(s string) string {
	if len(s) <= 5 {
		return ""
	}
	return s[5:]
}
