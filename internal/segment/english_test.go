// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"errors"
	"strings"
	"testing"

	"github.com/hklau/bookreg/pkg/types"
)

func newTestParser() *Parser {
	return New(2008, types.DefaultTables())
}

func TestBuildEnglishEntry(t *testing.T) {
	raw := "\nDOE, John\nSome Title / by John Doe — London : Acme Press, 2008 — ISBN 1234567890 (pbk.) : $20 (2008-00042)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if rec.Language != types.LanguageEnglish {
		t.Errorf("Language = %q, want English", rec.Language)
	}
	if rec.Author != "DOE, John" {
		t.Errorf("Author = %q, want %q", rec.Author, "DOE, John")
	}
	if rec.TitleEng != "Some Title" {
		t.Errorf("TitleEng = %q, want %q", rec.TitleEng, "Some Title")
	}
	if !strings.Contains(rec.DetailedAuthorship, "by John Doe") {
		t.Errorf("DetailedAuthorship = %q, want it to contain %q", rec.DetailedAuthorship, "by John Doe")
	}
	if rec.LocationOfPublication != "London" {
		t.Errorf("LocationOfPublication = %q, want London", rec.LocationOfPublication)
	}
	if rec.Publisher != "Acme Press" {
		t.Errorf("Publisher = %q, want %q", rec.Publisher, "Acme Press")
	}
	if rec.YearOfPublication != "2008" {
		t.Errorf("YearOfPublication = %q, want 2008", rec.YearOfPublication)
	}
	if rec.ISBN1 != "1234567890" {
		t.Errorf("ISBN1 = %q, want 1234567890", rec.ISBN1)
	}
	if rec.Medium1 != "pbk." {
		t.Errorf("Medium1 = %q, want pbk.", rec.Medium1)
	}
	if rec.Price1 != "20" || rec.Price1Currency != "$" {
		t.Errorf("Price1/Currency = %q/%q, want 20/$", rec.Price1, rec.Price1Currency)
	}
	if rec.Serial != "2008-00042" {
		t.Errorf("Serial = %q, want 2008-00042", rec.Serial)
	}
}

func TestBuildEnglishEditionSegment(t *testing.T) {
	raw := "\nAnother Title / by A. Writer — 2nd ed. — London : Pub House, 2008 — ISBN 1234567897 : $25 (2008-00100)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rec.Edition != "2nd ed." {
		t.Errorf("Edition = %q, want %q", rec.Edition, "2nd ed.")
	}
	// The edition segment is spliced out, so the publisher clause still
	// comes from the segment after the title.
	if rec.Publisher != "Pub House" || rec.YearOfPublication != "2008" {
		t.Errorf("Publisher/Year = %q/%q, want Pub House/2008", rec.Publisher, rec.YearOfPublication)
	}
	if rec.Serial != "2008-00100" {
		t.Errorf("Serial = %q, want 2008-00100", rec.Serial)
	}
}

func TestBuildEnglishBilingualTitle(t *testing.T) {
	raw := "\nHong Kong tales = 香港故事 / by T. Wong — Hong Kong : Local Press, 2008 — ISBN 9629962227 : $60 (2008-00200)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rec.TitleEng != "Hong Kong tales" {
		t.Errorf("TitleEng = %q, want %q", rec.TitleEng, "Hong Kong tales")
	}
	if rec.TitleChi != "香港故事" {
		t.Errorf("TitleChi = %q, want %q", rec.TitleChi, "香港故事")
	}
}

func TestBuildEnglishDoubleISBN(t *testing.T) {
	raw := "\nTwo Printings / by B. Writer — Oxford : Dual Press, 2008 — " +
		"xii, 300 p. ; 24 cm.ISBN 1111111111 (hbk.) : CNY 30\nISBN 2222222222 (pbk.) : $20\n(2008-00300)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rec.ISBN1 != "1111111111" {
		t.Errorf("ISBN1 = %q, want 1111111111", rec.ISBN1)
	}
	if rec.ISBN2 != "2222222222" {
		t.Errorf("ISBN2 = %q, want 2222222222", rec.ISBN2)
	}
	// "hbk." is not in the abbreviation whitelist, so cleanup strips its
	// trailing period; "pbk." keeps it.
	if rec.Medium1 != "hbk" || rec.Medium2 != "pbk." {
		t.Errorf("Medium1/Medium2 = %q/%q, want hbk/pbk.", rec.Medium1, rec.Medium2)
	}
	if rec.Price1Currency != "CNY" {
		t.Errorf("Price1Currency = %q, want CNY", rec.Price1Currency)
	}
	// The second clause's currency is taken from the first parse. This
	// mismatch is the observed behavior and must not be repaired.
	if rec.Price2Currency != "CNY" {
		t.Errorf("Price2Currency = %q, want CNY (from the first clause)", rec.Price2Currency)
	}
	if rec.Format != "xii, 300 p. ; 24 cm." {
		t.Errorf("Format = %q, want %q", rec.Format, "xii, 300 p. ; 24 cm.")
	}
}

func TestBuildEnglishPublisherWithoutComma(t *testing.T) {
	raw := "\nNo Year Title / by C. Writer — London : Lone Press — ISBN 3333333333 : $15 (2008-00400)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// A missing comma keeps the whole clause in the publisher field.
	if rec.Publisher != "London : Lone Press" {
		t.Errorf("Publisher = %q, want the whole clause", rec.Publisher)
	}
	if rec.LocationOfPublication != "" || rec.YearOfPublication != "" {
		t.Errorf("location/year should stay unset, got %q/%q",
			rec.LocationOfPublication, rec.YearOfPublication)
	}
}

func TestBuildEnglishEmptyTitleSegment(t *testing.T) {
	// Conversion sometimes leaves an entry starting with the em-dash, so
	// there is nothing in front of the publisher clause.
	raw := "\n— Oxford : Lone Press, 2008 — ISBN 3333333333 : $10\n(2008-00400)\n"

	_, err := newTestParser().Build(raw)
	var segErr *SegmentationError
	if !errors.As(err, &segErr) {
		t.Fatalf("Build error = %v, want SegmentationError", err)
	}
	if !strings.Contains(segErr.Reason, "title segment") {
		t.Errorf("Reason = %q, want it to name the empty title segment", segErr.Reason)
	}
}

func TestBuildEnglishMissingYearMarker(t *testing.T) {
	raw := "\nBroken Entry / by D. Writer — London : Pub, 2008 — ISBN 4444444444 : $10 (2009-00500)\n"

	_, err := newTestParser().Build(raw)
	var segErr *SegmentationError
	if !errors.As(err, &segErr) {
		t.Fatalf("Build error = %v, want SegmentationError", err)
	}
	if !strings.Contains(segErr.Reason, "year marker") {
		t.Errorf("Reason = %q, want it to name the missing year marker", segErr.Reason)
	}
}

func TestBuildEnglishMissingIdentifierSegment(t *testing.T) {
	raw := "\nShort Entry / by E. Writer — London : Pub, 2008"

	_, err := newTestParser().Build(raw)
	var segErr *SegmentationError
	if !errors.As(err, &segErr) {
		t.Fatalf("Build error = %v, want SegmentationError", err)
	}
}

func TestBuildEnglishAuthorLineWithoutTitle(t *testing.T) {
	raw := "DOE, Jane — London : Pub, 2008 — ISBN 5555555555 : $10 (2008-00600)\n"

	_, err := newTestParser().Build(raw)
	var segErr *SegmentationError
	if !errors.As(err, &segErr) {
		t.Fatalf("Build error = %v, want SegmentationError", err)
	}
}
