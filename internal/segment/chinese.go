// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hklau/bookreg/internal/serialline"
	"github.com/hklau/bookreg/internal/textnorm"
	"github.com/hklau/bookreg/pkg/types"
)

// fillerRow keeps positional indexing consistent when an entry has no
// serial clause above its identifier line. The text never matches any
// boundary predicate.
const fillerRow = "Serial filler row"

// strayIndexChar marks stroke-count index headings ("三劃") that leak into
// entries from the catalogue's section structure during text conversion.
const strayIndexChar = "劃"

// maxIDLineLen is the rune length of a bracketed identifier line like
// "(2008-00042)"; a final line longer than this is conversion garbage.
const maxIDLineLen = len("(200x-xxxxx)")

// segmentChinese parses a Chinese-layout entry. The segments are lines, and
// the grammar works last-to-first: identifier line, serial clause(s), then
// the optional description row, then boundary scans for the authorship,
// publisher, and format regions. Each boundary is -1 when absent.
func (p *Parser) segmentChinese(entry string) (types.Record, error) {
	rec := types.Record{Language: types.LanguageChinese}
	t := p.Tables

	segs := splitLines(entry)
	if len(segs) < 2 {
		return rec, segErr("Chinese entry has %d lines, need at least an identifier line", len(segs))
	}

	// Drop trailing conversion garbage: an implausibly long final line, or
	// a short stray index heading.
	last := segs[len(segs)-1]
	if utf8.RuneCountInString(last) > maxIDLineLen ||
		(strings.Contains(last, strayIndexChar) && utf8.RuneCountInString(last) <= 4) {
		segs = segs[:len(segs)-1]
	}
	if len(segs) == 0 {
		return rec, segErr("Chinese entry is all garbage lines")
	}

	// Sometimes two garbage lines arrive together; if the new final line is
	// still not the bracketed identifier, drop it too.
	if !textnorm.IsBracketed(segs[len(segs)-1]) {
		segs = segs[:len(segs)-1]
	}
	if len(segs) < 2 {
		return rec, segErr("Chinese entry too short after garbage removal")
	}

	rec.Serial = trimBrackets(segs[len(segs)-1])

	doubleSerial := strings.Count(entry, "ISBN ") == 2 || strings.Count(entry, "ISSN ") == 2

	if textnorm.StartsWithAny(segs[len(segs)-2], t.SerialPrefixes) {
		info, err := serialline.Parse(segs[len(segs)-2], t)
		if err != nil {
			return rec, fmt.Errorf("serial clause %q: %w", segs[len(segs)-2], err)
		}
		applySerial(&rec, info)

		if doubleSerial {
			if len(segs) < 3 {
				return rec, segErr("double serial marker but no second clause line")
			}
			second, err := serialline.Parse(segs[len(segs)-3], t)
			if err != nil {
				return rec, fmt.Errorf("second serial clause %q: %w", segs[len(segs)-3], err)
			}
			// The second clause's number overwrites the _1 slot; only its
			// medium and price reach the _2 fields. Kept as observed.
			setSerialNumber(&rec, second)
			rec.Medium2 = second.Medium
			rec.Price2 = second.Price
			rec.Price2Currency = second.Currency
			segs = removeRow(segs, len(segs)-3)
		}
	} else {
		bottom := segs[len(segs)-1]
		segs = append(segs[:len(segs)-1], fillerRow, bottom)
	}

	if len(segs) < 3 {
		return rec, segErr("Chinese entry has no content rows above the serial clause")
	}
	if textnorm.IsDescription(segs[len(segs)-3], t) || textnorm.IsBracketed(segs[len(segs)-3]) {
		rec.Details += segs[len(segs)-3]
		segs = removeRow(segs, len(segs)-3)
	}

	authorAt := -1
	for i, row := range segs {
		if textnorm.HasAuthorshipMarker(row, t) {
			authorAt = i
			break
		}
	}

	publisherAt := -1
	thisYear := strconv.Itoa(p.Year)
	prevYear := strconv.Itoa(p.Year - 1)
	for i, row := range segs {
		prefix := runePrefix(row, 4)
		if prefix == thisYear || prefix == prevYear {
			publisherAt = i
			break
		}
	}

	formatAt := -1
	for i := len(segs) - 1; i >= 0; i-- {
		if textnorm.ContainsAny(segs[i], t.FormatMarkers) {
			formatAt = i
			break
		}
	}

	// The title runs up to the first boundary that exists, in the fixed
	// order authorship, publisher, format; with none present the whole
	// sequence is the title.
	titleSeg := strings.Join(segs, " ")
	for _, b := range []int{authorAt, publisherAt, formatAt} {
		if b >= 0 {
			titleSeg = joinRows(segs, 0, b)
			break
		}
	}

	authorshipSeg := ""
	if authorAt >= 0 {
		for _, b := range []int{publisherAt, formatAt} {
			if b >= 0 {
				authorshipSeg = joinRows(segs, authorAt, b)
				break
			}
		}
	}

	publisherSeg := ""
	if publisherAt >= 0 {
		if formatAt >= 0 {
			publisherSeg = joinRows(segs, publisherAt, formatAt)
		} else {
			publisherSeg = joinRows(segs, publisherAt, len(segs)-2)
		}
	}

	formatSeg := " "
	if formatAt >= 0 {
		formatSeg = joinRows(segs, formatAt, len(segs)-3)
	}

	if strings.Contains(titleSeg, bilingualMarker) {
		rec.TitleChi, rec.TitleEng, _ = strings.Cut(titleSeg, bilingualMarker)
	} else {
		rec.TitleChi = titleSeg
	}

	rec.DetailedAuthorship = authorshipSeg
	for _, kw := range t.AuthorKeywords {
		if strings.Contains(authorshipSeg, kw) {
			rec.Author, _, _ = strings.Cut(authorshipSeg, kw)
			break
		}
	}

	// Publisher rows read "year location publisher"; anything that does not
	// split three ways stays whole in the publisher field.
	if parts := strings.SplitN(publisherSeg, " ", 3); len(parts) == 3 {
		rec.YearOfPublication = parts[0]
		rec.LocationOfPublication = parts[1]
		rec.Publisher = parts[2]
	} else {
		rec.Publisher = publisherSeg
	}

	rec.Format = formatSeg

	return rec, nil
}

// trimBrackets strips the first and last rune; the identifier line arrives
// bracket-wrapped.
func trimBrackets(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return ""
	}
	return string(r[1 : len(r)-1])
}

// runePrefix returns the first n runes of s, or all of s when shorter.
func runePrefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
