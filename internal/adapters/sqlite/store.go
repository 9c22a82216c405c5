package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	dob TEXT NOT NULL,
	date TEXT NOT NULL,
	cards TEXT NOT NULL,
	reading TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// Store is a durable reading cache on sqlite. The caller should call Close
// when the store is no longer needed.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and ensures the
// readings table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) (domain.ReadingRecord, error) {
	var rec domain.ReadingRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, dob, date, cards, reading FROM readings WHERE id = ?`, key,
	).Scan(&rec.ID, &rec.Name, &rec.DOB, &rec.Day, &rec.Cards, &rec.Reading)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ReadingRecord{}, domain.ErrReadingNotFound
	}
	if err != nil {
		return domain.ReadingRecord{}, fmt.Errorf("query reading: %w", err)
	}
	return rec, nil
}

// Put inserts the record. Records are never updated, so a concurrent
// duplicate insert keeps the first row rather than erroring.
func (s *Store) Put(ctx context.Context, rec domain.ReadingRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO readings (id, name, dob, date, cards, reading)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.Name, rec.DOB, rec.Day, rec.Cards, rec.Reading,
	)
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}
