// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted records in a SQLite database and keeps
// a full-text index over their searchable fields.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hklau/bookreg/internal/ingest"
	"github.com/hklau/bookreg/pkg/types"
)

const defaultMaxResults = 20

// Store manages the catalogue SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the catalogue database at path, creating the
// schema when it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			year INTEGER NOT NULL,
			season INTEGER NOT NULL,
			rank INTEGER NOT NULL,
			serial TEXT,
			title_eng TEXT,
			title_chi TEXT,
			language TEXT,
			author TEXT,
			detailed_authorship TEXT,
			publisher TEXT,
			isbn_1 TEXT,
			issn_1 TEXT,
			medium_1 TEXT,
			price_1_currency TEXT,
			price_1 TEXT,
			isbn_2 TEXT,
			issn_2 TEXT,
			medium_2 TEXT,
			price_2_currency TEXT,
			price_2 TEXT,
			location_of_publication TEXT,
			year_of_publication TEXT,
			format TEXT,
			details TEXT,
			edition TEXT,
			UNIQUE(year, season, rank)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_serial ON records(serial)`,
		`CREATE INDEX IF NOT EXISTS idx_records_language ON records(language)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='records_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE records_fts USING fts5(
				title_eng, title_chi, author, publisher,
				content=records, content_rowid=rowid)`,
			`CREATE TRIGGER records_ai AFTER INSERT ON records BEGIN
				INSERT INTO records_fts(rowid, title_eng, title_chi, author, publisher)
				VALUES (new.rowid, new.title_eng, new.title_chi, new.author, new.publisher);
			END`,
			`CREATE TRIGGER records_ad AFTER DELETE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, title_eng, title_chi, author, publisher)
				VALUES('delete', old.rowid, old.title_eng, old.title_chi, old.author, old.publisher);
			END`,
			`CREATE TRIGGER records_au AFTER UPDATE ON records BEGIN
				INSERT INTO records_fts(records_fts, rowid, title_eng, title_chi, author, publisher)
				VALUES('delete', old.rowid, old.title_eng, old.title_chi, old.author, old.publisher);
				INSERT INTO records_fts(rowid, title_eng, title_chi, author, publisher)
				VALUES (new.rowid, new.title_eng, new.title_chi, new.author, new.publisher);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}
	return nil
}

// Index writes a batch of results transactionally. Rows for an issue
// replace whatever that issue held before, so re-running extraction over
// the same season files is idempotent.
func (s *Store) Index(ctx context.Context, results []ingest.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	type issue struct{ year, season int }
	seen := map[issue]bool{}
	for _, res := range results {
		key := issue{res.Year, res.Season}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM records WHERE year = ? AND season = ?`,
			key.year, key.season); err != nil {
			return fmt.Errorf("clearing issue %ds%d: %w", key.year, key.season, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (
			year, season, rank,
			serial, title_eng, title_chi, language, author, detailed_authorship,
			publisher, isbn_1, issn_1, medium_1, price_1_currency, price_1,
			isbn_2, issn_2, medium_2, price_2_currency, price_2,
			location_of_publication, year_of_publication, format, details, edition
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, res := range results {
		rec := res.Record
		if _, err := stmt.ExecContext(ctx,
			res.Year, res.Season, res.Rank,
			rec.Serial, rec.TitleEng, rec.TitleChi, string(rec.Language),
			rec.Author, rec.DetailedAuthorship,
			rec.Publisher, rec.ISBN1, rec.ISSN1, rec.Medium1, rec.Price1Currency, rec.Price1,
			rec.ISBN2, rec.ISSN2, rec.Medium2, rec.Price2Currency, rec.Price2,
			rec.LocationOfPublication, rec.YearOfPublication, rec.Format, rec.Details, rec.Edition,
		); err != nil {
			return fmt.Errorf("inserting record %d/%d rank %d: %w",
				res.Year, res.Season, res.Rank, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&n)
	return n, err
}

// Hit is one search result with its catalogue position.
type Hit struct {
	Year   int
	Season int
	Rank   int
	Record types.Record
}

// Search runs a full-text query over titles, author, and publisher.
// Results come back in relevance order; limit <= 0 uses the store default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.year, r.season, r.rank,
			r.serial, r.title_eng, r.title_chi, r.language, r.author,
			r.detailed_authorship, r.publisher,
			r.isbn_1, r.issn_1, r.medium_1, r.price_1_currency, r.price_1,
			r.isbn_2, r.issn_2, r.medium_2, r.price_2_currency, r.price_2,
			r.location_of_publication, r.year_of_publication, r.format, r.details, r.edition
		FROM records_fts
		JOIN records r ON r.rowid = records_fts.rowid
		WHERE records_fts MATCH ?
		ORDER BY records_fts.rank
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying catalogue: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		var lang string
		if err := rows.Scan(
			&h.Year, &h.Season, &h.Rank,
			&h.Record.Serial, &h.Record.TitleEng, &h.Record.TitleChi, &lang,
			&h.Record.Author, &h.Record.DetailedAuthorship, &h.Record.Publisher,
			&h.Record.ISBN1, &h.Record.ISSN1, &h.Record.Medium1,
			&h.Record.Price1Currency, &h.Record.Price1,
			&h.Record.ISBN2, &h.Record.ISSN2, &h.Record.Medium2,
			&h.Record.Price2Currency, &h.Record.Price2,
			&h.Record.LocationOfPublication, &h.Record.YearOfPublication,
			&h.Record.Format, &h.Record.Details, &h.Record.Edition,
		); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		h.Record.Language = types.Language(lang)
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
