// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/hklau/bookreg/internal/ingest"
)

// parquetRow mirrors the record table plus the catalogue position, so
// dataset consumers can join rows back to their issue.
type parquetRow struct {
	Year   int32 `parquet:"year"`
	Season int32 `parquet:"season"`
	Rank   int32 `parquet:"rank"`

	Serial                string `parquet:"serial"`
	TitleEng              string `parquet:"title_eng"`
	TitleChi              string `parquet:"title_chi"`
	Language              string `parquet:"language"`
	Author                string `parquet:"author"`
	DetailedAuthorship    string `parquet:"detailed_authorship"`
	Publisher             string `parquet:"publisher"`
	ISBN1                 string `parquet:"ISBN_1"`
	ISSN1                 string `parquet:"ISSN_1"`
	Medium1               string `parquet:"medium_1"`
	Price1Currency        string `parquet:"price_1_currency"`
	Price1                string `parquet:"price_1"`
	ISBN2                 string `parquet:"ISBN_2"`
	ISSN2                 string `parquet:"ISSN_2"`
	Medium2               string `parquet:"medium_2"`
	Price2Currency        string `parquet:"price_2_currency"`
	Price2                string `parquet:"price_2"`
	LocationOfPublication string `parquet:"location_of_publication"`
	YearOfPublication     string `parquet:"year_of_publication"`
	Format                string `parquet:"format"`
	Details               string `parquet:"details"`
	Edition               string `parquet:"edition"`
}

// ParquetWriter emits the record table as a Parquet file.
type ParquetWriter struct {
	Path string
}

func (w *ParquetWriter) Write(results []ingest.Result) error {
	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", w.Path, err)
	}
	defer f.Close()

	pw := parquet.NewGenericWriter[parquetRow](f)
	rows := make([]parquetRow, len(results))
	for i, res := range results {
		rec := res.Record
		rows[i] = parquetRow{
			Year:   int32(res.Year),
			Season: int32(res.Season),
			Rank:   int32(res.Rank),

			Serial:                rec.Serial,
			TitleEng:              rec.TitleEng,
			TitleChi:              rec.TitleChi,
			Language:              string(rec.Language),
			Author:                rec.Author,
			DetailedAuthorship:    rec.DetailedAuthorship,
			Publisher:             rec.Publisher,
			ISBN1:                 rec.ISBN1,
			ISSN1:                 rec.ISSN1,
			Medium1:               rec.Medium1,
			Price1Currency:        rec.Price1Currency,
			Price1:                rec.Price1,
			ISBN2:                 rec.ISBN2,
			ISSN2:                 rec.ISSN2,
			Medium2:               rec.Medium2,
			Price2Currency:        rec.Price2Currency,
			Price2:                rec.Price2,
			LocationOfPublication: rec.LocationOfPublication,
			YearOfPublication:     rec.YearOfPublication,
			Format:                rec.Format,
			Details:               rec.Details,
			Edition:               rec.Edition,
		}
	}
	if _, err := pw.Write(rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return f.Close()
}
