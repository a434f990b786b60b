// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hklau/bookreg/internal/serialline"
	"github.com/hklau/bookreg/internal/textnorm"
	"github.com/hklau/bookreg/pkg/types"
)

// isbnToken partitions the identifier clause; the catalogue prints it in
// front of every serial clause.
const isbnToken = "ISBN"

// maxBareIDLen is the length of an identifier region like "(xxxx-yyyyy)\n";
// anything longer with an embedded newline carries page-header garbage.
const maxBareIDLen = len("(xxxx-yyyyy)\n")

// segmentEnglish parses an English-layout entry from its em-dash-delimited
// segments: title region, publisher clause, identifier clause, with an
// optional edition segment spliced between title and publisher.
func (p *Parser) segmentEnglish(segs []string) (types.Record, error) {
	rec := types.Record{Language: types.LanguageEnglish}
	t := p.Tables

	titleSeg := segs[0]
	titleSeg = strings.TrimPrefix(titleSeg, "\n")
	if titleSeg == "" {
		return rec, segErr("English entry has an empty title segment")
	}

	// An inverted "SURNAME, Given" first line is the author, set apart from
	// the title proper.
	firstLine, rest, hasMore := strings.Cut(titleSeg, "\n")
	if textnorm.IsAuthorName(firstLine) {
		rec.Author = firstLine
		if !hasMore {
			return rec, segErr("author line %q has no title line after it", firstLine)
		}
		titleSeg = rest
	}

	// A slash separates the title from the statement of responsibility.
	// With a "by" anywhere in the region the statement is kept verbatim;
	// otherwise the tail is taken as the author name.
	if idx := strings.LastIndex(titleSeg, slash); idx >= 0 {
		if strings.Contains(titleSeg, "by") {
			rec.DetailedAuthorship = titleSeg[idx+1:]
			titleSeg = titleSeg[:idx]
		} else {
			rec.Author = titleSeg[idx+1:]
			titleSeg = titleSeg[:idx]
		}
	}

	// A non-first edition inserts its own segment before the publisher
	// clause; record it and shift the later segments down.
	if len(segs) > 1 && textnorm.HasEditionInfo(segs[1], t) {
		rec.Edition = textnorm.Clean(segs[1], t.PeriodWhitelist)
		segs = removeRow(segs, 1)
	}

	if strings.Contains(titleSeg, bilingualMarker) {
		rec.TitleEng, rec.TitleChi, _ = strings.Cut(titleSeg, bilingualMarker)
	} else {
		rec.TitleEng = titleSeg
	}

	if len(segs) < 2 {
		return rec, segErr("entry has no publisher segment")
	}
	p.splitPublisherClause(&rec, segs[1])

	if len(segs) < 3 {
		return rec, segErr("entry has no identifier segment")
	}
	return rec, p.splitIdentifierClause(&rec, segs[2])
}

// splitPublisherClause reads "location : publisher, year". A missing colon
// or comma leaves the whole clause in the publisher field with location and
// year unset.
func (p *Parser) splitPublisherClause(rec *types.Record, clause string) {
	location, after, ok := strings.Cut(clause, ":")
	if !ok {
		rec.Publisher = clause
		return
	}
	comma := strings.LastIndex(after, ",")
	if comma < 0 {
		rec.Publisher = clause
		return
	}
	rec.LocationOfPublication = location
	rec.Publisher = after[:comma]
	rec.YearOfPublication = after[comma+1:]
}

// splitIdentifierClause partitions the final segment into format, serial,
// and identifier regions on the ISBN token and the "(<year>" marker, then
// parses the serial region's clause(s).
func (p *Parser) splitIdentifierClause(rec *types.Record, clause string) error {
	t := p.Tables
	yearMarker := "(" + strconv.Itoa(p.Year)

	var formatSeg, serialSeg, idSeg string
	if pos := strings.Index(clause, isbnToken); pos >= 0 {
		formatSeg = clause[:pos]
		rem := clause[pos:]
		mark := strings.Index(rem, yearMarker)
		if mark < 0 {
			return segErr("identifier clause lacks the year marker %q", yearMarker)
		}
		serialSeg = rem[:mark]
		idSeg = rem[mark:]
	} else {
		mark := strings.Index(clause, yearMarker)
		if mark < 0 {
			return segErr("identifier clause lacks both %q and the year marker %q", isbnToken, yearMarker)
		}
		formatSeg = clause[:mark]
		idSeg = clause[mark:]
	}

	switch strings.Count(serialSeg, isbnToken) {
	case 2:
		pos1 := strings.Index(serialSeg, isbnToken)
		end1 := lineEnd(serialSeg, pos1)
		pos2 := pos1 + 1 + strings.Index(serialSeg[pos1+1:], isbnToken)
		end2 := lineEnd(serialSeg, pos2)

		first, err := serialline.Parse(serialSeg[pos1:end1], t)
		if err != nil {
			return fmt.Errorf("first serial clause: %w", err)
		}
		second, err := serialline.Parse(serialSeg[pos2:end2], t)
		if err != nil {
			return fmt.Errorf("second serial clause: %w", err)
		}

		rec.ISBN1 = first.Number
		rec.Medium1 = first.Medium
		rec.Price1 = first.Price
		rec.Price1Currency = first.Currency

		rec.ISBN2 = second.Number
		rec.Medium2 = second.Medium
		rec.Price2 = second.Price
		// The second clause's currency comes from the first parse.
		// Kept as observed.
		rec.Price2Currency = first.Currency
	case 1:
		info, err := serialline.Parse(textnorm.Clean(serialSeg, t.PeriodWhitelist), t)
		if err != nil {
			return fmt.Errorf("serial clause: %w", err)
		}
		rec.ISBN1 = info.Number
		rec.Medium1 = info.Medium
		rec.Price1 = info.Price
		rec.Price1Currency = info.Currency
	}

	// An overlong identifier region with an embedded line break carries
	// page-header garbage after the break.
	if len(idSeg) > maxBareIDLen && strings.Contains(idSeg, "\n") {
		idSeg, _, _ = strings.Cut(idSeg, "\n")
	}
	rec.Serial = idSeg

	// "cm." closes the physical description; whatever follows is detail
	// notes.
	if before, after, ok := strings.Cut(formatSeg, "cm."); ok {
		rec.Format = before + "cm."
		rec.Details = after
	} else {
		rec.Format = formatSeg
	}

	return nil
}

// lineEnd returns the index of the newline terminating the line that starts
// at from, or len(s) when the line runs to the end.
func lineEnd(s string, from int) int {
	if i := strings.Index(s[from:], "\n"); i >= 0 {
		return from + i
	}
	return len(s)
}
