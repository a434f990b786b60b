// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared value types of the catalogue extraction
// pipeline: the bibliographic Record, the SerialInfo clause result, the
// keyword Tables the heuristics are parameterized over, and the stage
// configurations.
package types

// Language classifies a catalogue entry's layout.
type Language string

const (
	LanguageChinese Language = "Chinese"
	LanguageEnglish Language = "English"
)

// Record is one extracted bibliographic record. Every field except Language
// is optional; absent fields stay empty. A Record is write-once: the builder
// populates and cleans it, and nothing mutates it afterwards.
type Record struct {
	// Serial is the catalogue's internal tracking number, e.g. "2008-00042".
	Serial string `json:"serial" yaml:"serial"`

	// TitleEng and TitleChi hold the parallel-language title parts. Entries
	// without a bilingual "=" marker fill only the side matching Language.
	TitleEng string `json:"title_eng" yaml:"title_eng"`
	TitleChi string `json:"title_chi" yaml:"title_chi"`

	Language Language `json:"language" yaml:"language"`

	// Author is the primary author name as printed.
	Author string `json:"author" yaml:"author"`

	// DetailedAuthorship is the full statement of responsibility
	// (e.g. "by John Doe ; illustrated by Jane Roe").
	DetailedAuthorship string `json:"detailed_authorship" yaml:"detailed_authorship"`

	// Edition holds non-first-edition annotations such as "2nd ed.".
	Edition string `json:"edition" yaml:"edition"`

	Publisher             string `json:"publisher" yaml:"publisher"`
	LocationOfPublication string `json:"location_of_publication" yaml:"location_of_publication"`
	YearOfPublication     string `json:"year_of_publication" yaml:"year_of_publication"`

	// Up to two serial clauses per entry (e.g. hardback and paperback
	// printings). Each clause carries its own medium, price, and currency.
	ISBN1          string `json:"isbn_1" yaml:"isbn_1"`
	ISSN1          string `json:"issn_1" yaml:"issn_1"`
	Medium1        string `json:"medium_1" yaml:"medium_1"`
	Price1         string `json:"price_1" yaml:"price_1"`
	Price1Currency string `json:"price_1_currency" yaml:"price_1_currency"`

	ISBN2          string `json:"isbn_2" yaml:"isbn_2"`
	ISSN2          string `json:"issn_2" yaml:"issn_2"`
	Medium2        string `json:"medium_2" yaml:"medium_2"`
	Price2         string `json:"price_2" yaml:"price_2"`
	Price2Currency string `json:"price_2_currency" yaml:"price_2_currency"`

	// Format is the physical description, e.g. "320面 : 圖 ; 24厘米" or
	// "xii, 298 p. : ill. ; 24 cm.".
	Format string `json:"format" yaml:"format"`

	// Details holds leftover descriptive notes ("中英對照", accompanying
	// material, and similar boilerplate).
	Details string `json:"details" yaml:"details"`
}

// Columns is the fixed output column order shared by every table writer.
var Columns = []string{
	"serial",
	"title_eng",
	"title_chi",
	"language",
	"author",
	"detailed_authorship",
	"publisher",
	"ISBN_1",
	"ISSN_1",
	"medium_1",
	"price_1_currency",
	"price_1",
	"ISBN_2",
	"ISSN_2",
	"medium_2",
	"price_2_currency",
	"price_2",
	"location_of_publication",
	"year_of_publication",
	"format",
	"details",
	"edition",
}

// Row returns the record's values in Columns order. Absent fields appear as
// empty strings so that row position is stable for ordering-sensitive
// consumers.
func (r Record) Row() []string {
	return []string{
		r.Serial,
		r.TitleEng,
		r.TitleChi,
		string(r.Language),
		r.Author,
		r.DetailedAuthorship,
		r.Publisher,
		r.ISBN1,
		r.ISSN1,
		r.Medium1,
		r.Price1Currency,
		r.Price1,
		r.ISBN2,
		r.ISSN2,
		r.Medium2,
		r.Price2Currency,
		r.Price2,
		r.LocationOfPublication,
		r.YearOfPublication,
		r.Format,
		r.Details,
		r.Edition,
	}
}

// fieldPtrs returns addressable references to every field in declaration
// order, for bulk operations such as the builder's final cleanup pass.
// Language is excluded: it is a classification, not extracted text.
func (r *Record) fieldPtrs() []*string {
	return []*string{
		&r.Serial,
		&r.TitleEng,
		&r.TitleChi,
		&r.Author,
		&r.DetailedAuthorship,
		&r.Edition,
		&r.Publisher,
		&r.LocationOfPublication,
		&r.YearOfPublication,
		&r.ISBN1,
		&r.ISSN1,
		&r.Medium1,
		&r.Price1,
		&r.Price1Currency,
		&r.ISBN2,
		&r.ISSN2,
		&r.Medium2,
		&r.Price2,
		&r.Price2Currency,
		&r.Format,
		&r.Details,
	}
}

// Apply runs fn over every text field in place. The builder uses this to
// normalize all populated values in one pass.
func (r *Record) Apply(fn func(string) string) {
	for _, p := range r.fieldPtrs() {
		*p = fn(*p)
	}
}
