// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment locates field boundaries inside one raw catalogue entry
// and assigns the substrings to bibliographic fields. Entries come in two
// layouts: English records separate regions with an em-dash, Chinese records
// are line-based. Each layout is an explicit state machine over an ordered
// segment list with named boundary positions; a boundary that cannot be
// found is an explicit absent value, never a silent zero.
package segment

import (
	"strings"

	"github.com/hklau/bookreg/pkg/types"
)

const (
	dash            = "—"
	slash           = "/"
	bilingualMarker = "="
)

// Parser holds the per-catalogue parameters of the heuristics: the issue
// year (drives publisher-year and identifier-marker detection) and the
// lexical tables. A Parser is stateless across entries and safe for
// concurrent use.
type Parser struct {
	Year   int
	Tables types.Tables
}

// New returns a Parser for one catalogue year.
func New(year int, tables types.Tables) *Parser {
	return &Parser{Year: year, Tables: tables}
}

// Segment splits one raw entry into fields, without normalizing the values.
// The layout discriminator is crude on purpose: an entry with no em-dash at
// all is Chinese, anything else is English. It holds because the em-dash
// never occurs inside Chinese free text in this catalogue.
func (p *Parser) Segment(raw string) (types.Record, error) {
	segs := strings.Split(raw, dash)
	if len(segs) == 1 {
		return p.segmentChinese(raw)
	}
	return p.segmentEnglish(segs)
}

// splitLines splits on newlines without producing a trailing empty segment
// for text that ends in a newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// joinRows joins segs[from:to] with single spaces. Bounds clamp to the
// slice, and an inverted range yields "", matching the positional grammar's
// tolerance for spans that collapse to nothing.
func joinRows(segs []string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(segs) {
		to = len(segs)
	}
	if to <= from {
		return ""
	}
	return strings.Join(segs[from:to], " ")
}

// removeRow deletes the row at index i.
func removeRow(segs []string, i int) []string {
	return append(segs[:i], segs[i+1:]...)
}

// applySerial sets the first serial clause's fields on the record.
func applySerial(rec *types.Record, info types.SerialInfo) {
	setSerialNumber(rec, info)
	rec.Medium1 = info.Medium
	rec.Price1 = info.Price
	rec.Price1Currency = info.Currency
}

// setSerialNumber routes the clause number to the field matching its type.
// Price-only clauses carry no number and set nothing.
func setSerialNumber(rec *types.Record, info types.SerialInfo) {
	switch info.Type {
	case types.SerialISBN:
		rec.ISBN1 = info.Number
	case types.SerialISSN:
		rec.ISSN1 = info.Number
	}
}
