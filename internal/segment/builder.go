// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"github.com/hklau/bookreg/internal/textnorm"
	"github.com/hklau/bookreg/pkg/types"
)

// Build parses one raw catalogue entry into a finished Record: it runs the
// segmenter, then normalizes every field value. An entry either fully
// classifies or fails as a whole with an UnparsableEntryError carrying the
// raw text; no partial record escapes.
func (p *Parser) Build(raw string) (types.Record, error) {
	rec, err := p.Segment(raw)
	if err != nil {
		return types.Record{}, &UnparsableEntryError{Raw: raw, Err: err}
	}

	rec.Apply(func(s string) string {
		return textnorm.Clean(s, p.Tables.PeriodWhitelist)
	})
	return rec, nil
}
