// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"testing"

	"github.com/hklau/bookreg/pkg/types"
)

func TestBuildChineseEntry(t *testing.T) {
	raw := "\n中國歷史研究 = A study of Chinese history\n王小明著\n2008 香港 中華書局\n" +
		"320面 : 圖 ; 24厘米\n中英對照\nISBN 978-962-04-1234-5 : $88\n(2008-10123)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if rec.Language != types.LanguageChinese {
		t.Errorf("Language = %q, want Chinese", rec.Language)
	}
	if rec.TitleChi != "中國歷史研究" {
		t.Errorf("TitleChi = %q, want 中國歷史研究", rec.TitleChi)
	}
	if rec.TitleEng != "A study of Chinese history" {
		t.Errorf("TitleEng = %q, want %q", rec.TitleEng, "A study of Chinese history")
	}
	if rec.Author != "王小明" {
		t.Errorf("Author = %q, want 王小明", rec.Author)
	}
	if rec.DetailedAuthorship != "王小明著" {
		t.Errorf("DetailedAuthorship = %q, want 王小明著", rec.DetailedAuthorship)
	}
	if rec.YearOfPublication != "2008" {
		t.Errorf("YearOfPublication = %q, want 2008", rec.YearOfPublication)
	}
	if rec.LocationOfPublication != "香港" {
		t.Errorf("LocationOfPublication = %q, want 香港", rec.LocationOfPublication)
	}
	if rec.Publisher != "中華書局" {
		t.Errorf("Publisher = %q, want 中華書局", rec.Publisher)
	}
	if rec.ISBN1 != "978-962-04-1234-5" {
		t.Errorf("ISBN1 = %q, want 978-962-04-1234-5", rec.ISBN1)
	}
	if rec.Price1 != "88" || rec.Price1Currency != "$" {
		t.Errorf("Price1/Currency = %q/%q, want 88/$", rec.Price1, rec.Price1Currency)
	}
	if rec.Details != "中英對照" {
		t.Errorf("Details = %q, want 中英對照", rec.Details)
	}
	if rec.Serial != "2008-10123" {
		t.Errorf("Serial = %q, want 2008-10123", rec.Serial)
	}
}

func TestBuildChineseEntryWithoutSerialClause(t *testing.T) {
	raw := "\n香港法律概論\n陳大文編\n2008 香港 法律出版社\n500面 ; 22厘米\n(2008-20456)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rec.TitleChi != "香港法律概論" {
		t.Errorf("TitleChi = %q, want 香港法律概論", rec.TitleChi)
	}
	// 編 is a contributor marker but not an author keyword, so the
	// contributor line survives only in the detailed field.
	if rec.DetailedAuthorship != "陳大文編" {
		t.Errorf("DetailedAuthorship = %q, want 陳大文編", rec.DetailedAuthorship)
	}
	if rec.Author != "" {
		t.Errorf("Author = %q, want empty", rec.Author)
	}
	if rec.Publisher != "法律出版社" {
		t.Errorf("Publisher = %q, want 法律出版社", rec.Publisher)
	}
	if rec.ISBN1 != "" || rec.ISSN1 != "" {
		t.Errorf("no serial clause, got ISBN1=%q ISSN1=%q", rec.ISBN1, rec.ISSN1)
	}
	if rec.Serial != "2008-20456" {
		t.Errorf("Serial = %q, want 2008-20456", rec.Serial)
	}
}

func TestBuildChineseMarkerInTitle(t *testing.T) {
	// 彙編 ends in a contributor character, so the authorship boundary
	// lands on the title row itself: the title comes out empty and the
	// whole span up to the publisher row reads as detailed authorship.
	raw := "\n香港法例彙編\n陳大文編\n2008 香港 法律出版社\n500面 ; 22厘米\n(2008-20456)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rec.TitleChi != "" {
		t.Errorf("TitleChi = %q, want empty", rec.TitleChi)
	}
	if rec.DetailedAuthorship != "香港法例彙編陳大文編" {
		t.Errorf("DetailedAuthorship = %q, want 香港法例彙編陳大文編", rec.DetailedAuthorship)
	}
	if rec.Publisher != "法律出版社" {
		t.Errorf("Publisher = %q, want 法律出版社", rec.Publisher)
	}
}

func TestBuildChineseGarbageLines(t *testing.T) {
	// Page-break residue after the identifier line: a long running header
	// and a short stroke-index marker. Both must be dropped.
	raw := "\n香港法律概論\n陳大文編\n2008 香港 法律出版社\n500面 ; 22厘米\n(2008-20456)\n" +
		"D1876 2009 something quite long indeed\n三劃\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rec.Serial != "2008-20456" {
		t.Errorf("Serial = %q, want 2008-20456", rec.Serial)
	}
	if rec.Publisher != "法律出版社" {
		t.Errorf("Publisher = %q, want 法律出版社", rec.Publisher)
	}
}

func TestBuildChineseDoubleSerial(t *testing.T) {
	raw := "\n雙書號測試\n2008 香港 出版社\nISBN 978-1-111 (平裝) : $50\nISBN 978-2-222 (精裝) : $80\n(2008-30001)\n"

	rec, err := newTestParser().Build(raw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// The second clause parse overwrites the first number slot, so the
	// physically earlier ISBN lands in ISBN_1 while its medium and price
	// land in the _2 slots. Observed behavior, kept as-is.
	if rec.ISBN1 != "978-1-111" {
		t.Errorf("ISBN1 = %q, want 978-1-111", rec.ISBN1)
	}
	if rec.ISBN2 != "" {
		t.Errorf("ISBN2 = %q, want empty", rec.ISBN2)
	}
	if rec.Medium1 != "精裝" {
		t.Errorf("Medium1 = %q, want 精裝", rec.Medium1)
	}
	if rec.Medium2 != "平裝" {
		t.Errorf("Medium2 = %q, want 平裝", rec.Medium2)
	}
	if rec.Price1 != "80" || rec.Price2 != "50" {
		t.Errorf("Price1/Price2 = %q/%q, want 80/50", rec.Price1, rec.Price2)
	}
	if rec.Price2Currency != "$" {
		t.Errorf("Price2Currency = %q, want $", rec.Price2Currency)
	}
	if rec.Serial != "2008-30001" {
		t.Errorf("Serial = %q, want 2008-30001", rec.Serial)
	}
	if rec.TitleChi != "雙書號測試" {
		t.Errorf("TitleChi = %q, want 雙書號測試", rec.TitleChi)
	}
	if rec.Publisher != "出版社" {
		t.Errorf("Publisher = %q, want 出版社", rec.Publisher)
	}
}

func TestBuildChineseTooShort(t *testing.T) {
	// A lone garbage line leaves nothing to segment once both drop rules
	// have fired.
	raw := "\n三劃\n"

	_, err := newTestParser().Build(raw)
	if err == nil {
		t.Fatal("Build should fail when nothing survives garbage removal")
	}
}
