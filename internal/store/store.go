// Package store is the optional result cache: analysis is a pure
// function of the document text, so results are memoized under a
// content hash. Callers that skip the store lose nothing but time.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"textmark/internal/analyze"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS results (
    fingerprint TEXT PRIMARY KEY,
    name TEXT,
    payload TEXT,
    created_at TEXT
);
`

type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached result for a content fingerprint, or false
// when absent.
func (s *Store) Get(fingerprint string) (analyze.Result, bool, error) {
	row := s.db.QueryRow(`SELECT payload FROM results WHERE fingerprint = ?`, fingerprint)
	var payload string
	if err := row.Scan(&payload); err == sql.ErrNoRows {
		return analyze.Result{}, false, nil
	} else if err != nil {
		return analyze.Result{}, false, fmt.Errorf("scan result: %w", err)
	}
	var res analyze.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return analyze.Result{}, false, fmt.Errorf("decode result: %w", err)
	}
	return res, true, nil
}

// Put upserts a result under its fingerprint.
func (s *Store) Put(fingerprint string, res analyze.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO results(fingerprint, name, payload, created_at) VALUES(?,?,?,?)
		 ON CONFLICT(fingerprint) DO UPDATE SET name=excluded.name, payload=excluded.payload, created_at=excluded.created_at`,
		fingerprint, res.Name, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert result: %w", err)
	}
	return nil
}

// Count reports how many results are cached.
func (s *Store) Count() (int, error) {
	row := s.db.QueryRow(`SELECT COUNT(*) FROM results`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
