// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Tables holds the lexical data the extraction heuristics are parameterized
// over. Catalogues from other years or publishers override individual lists
// through a YAML file; anything left empty keeps its default.
type Tables struct {
	// Currencies is scanned in order against a price clause; the first token
	// found is stripped out as the currency.
	Currencies []string `yaml:"currencies"`

	// SerialPrefixes are the identifier scheme tags, checked both as line
	// prefixes and as substrings.
	SerialPrefixes []string `yaml:"serial_prefixes"`

	// FormatMarkers mark the physical-description rows of Chinese-layout
	// entries ("厘米", centimeters).
	FormatMarkers []string `yaml:"format_markers"`

	// ContributorKeywords are the CJK role characters that open an
	// authorship region (author, editor, translator, "text by").
	ContributorKeywords []string `yaml:"contributor_keywords"`

	// AuthorKeywords split the primary author name off the authorship
	// region. Overlaps with, but is narrower than, ContributorKeywords.
	AuthorKeywords []string `yaml:"author_keywords"`

	// Descriptions are boilerplate note lines matched exactly.
	Descriptions []string `yaml:"descriptions"`

	// DescriptionKeywords match note lines by substring (parallel text,
	// accompanying material).
	DescriptionKeywords []string `yaml:"description_keywords"`

	// EditionKeywords signal a non-first-edition annotation segment.
	EditionKeywords []string `yaml:"edition_keywords"`

	// PeriodWhitelist lists abbreviation suffixes whose trailing period the
	// normalizer must not strip.
	PeriodWhitelist []string `yaml:"period_whitelist"`
}

// DefaultTables returns the lexical tables observed in the 2008-2014
// registration catalogues.
func DefaultTables() Tables {
	return Tables{
		Currencies:          []string{"$", "CNY", "USD", "GBP", "NTD"},
		SerialPrefixes:      []string{"ISBN", "ISSN"},
		FormatMarkers:       []string{"厘米"},
		ContributorKeywords: []string{"著", "編", "譯", "撰文"},
		AuthorKeywords:      []string{"著", "原作"},
		Descriptions: []string{
			"附唯讀記憶光碟1隻",
			"內容以簡體字排版",
			"中英對照",
			"中文內容以簡體字排版",
			"部分內容以英文排版",
			"附鐳射光碟1隻",
		},
		DescriptionKeywords: []string{"對照", "附"},
		EditionKeywords: []string{
			"ed.",
			"reissue",
			"Issue",
			"edition",
			"12.2007",
			"version",
			"Vol.",
		},
		PeriodWhitelist: []string{"ed.", "pbk.", "cm."},
	}
}

// LoadTables reads a YAML override file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("reading tables file %s: %w", path, err)
	}

	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Tables{}, fmt.Errorf("parsing tables file %s: %w", path, err)
	}

	t.merge(override)
	return t, nil
}

// merge copies every non-empty list from o over the receiver.
func (t *Tables) merge(o Tables) {
	if len(o.Currencies) > 0 {
		t.Currencies = o.Currencies
	}
	if len(o.SerialPrefixes) > 0 {
		t.SerialPrefixes = o.SerialPrefixes
	}
	if len(o.FormatMarkers) > 0 {
		t.FormatMarkers = o.FormatMarkers
	}
	if len(o.ContributorKeywords) > 0 {
		t.ContributorKeywords = o.ContributorKeywords
	}
	if len(o.AuthorKeywords) > 0 {
		t.AuthorKeywords = o.AuthorKeywords
	}
	if len(o.Descriptions) > 0 {
		t.Descriptions = o.Descriptions
	}
	if len(o.DescriptionKeywords) > 0 {
		t.DescriptionKeywords = o.DescriptionKeywords
	}
	if len(o.EditionKeywords) > 0 {
		t.EditionKeywords = o.EditionKeywords
	}
	if len(o.PeriodWhitelist) > 0 {
		t.PeriodWhitelist = o.PeriodWhitelist
	}
}
