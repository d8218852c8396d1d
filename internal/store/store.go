package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"newslens/internal/core"
)

// Store is the SQLite-backed document corpus. It sits outside the analytics
// core: the engine only ever sees the []core.Document slices this store
// produces.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the document database at path.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	s := &Store{db: db, path: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY,
		title TEXT,
		body TEXT NOT NULL,
		category TEXT NOT NULL,
		published_at DATETIME,
		source TEXT,
		sentiment REAL NOT NULL DEFAULT 0
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDocuments inserts or replaces a batch of documents in one transaction.
func (s *Store) SaveDocuments(docs []core.Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO documents (id, title, body, category, published_at, source, sentiment)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	for _, d := range docs {
		var published interface{}
		if !d.PublishedAt.IsZero() {
			published = d.PublishedAt.UTC()
		}
		if _, err := tx.Exec(query, d.ID, d.Title, d.Body, d.Category, published, d.Source, d.Sentiment); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save document %d: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

// ListDocuments returns the full corpus ordered by id.
func (s *Store) ListDocuments() ([]core.Document, error) {
	rows, err := s.db.Query(`
	SELECT id, title, body, category, published_at, source, sentiment
	FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []core.Document
	for rows.Next() {
		var d core.Document
		var published sql.NullTime
		if err := rows.Scan(&d.ID, &d.Title, &d.Body, &d.Category, &published, &d.Source, &d.Sentiment); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		if published.Valid {
			d.PublishedAt = published.Time
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// ListDocumentsSince returns documents published at or after the cutoff.
// Documents without a timestamp are excluded.
func (s *Store) ListDocumentsSince(cutoff time.Time) ([]core.Document, error) {
	rows, err := s.db.Query(`
	SELECT id, title, body, category, published_at, source, sentiment
	FROM documents WHERE published_at >= ? ORDER BY id`, cutoff.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []core.Document
	for rows.Next() {
		var d core.Document
		var published sql.NullTime
		if err := rows.Scan(&d.ID, &d.Title, &d.Body, &d.Category, &published, &d.Source, &d.Sentiment); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		if published.Valid {
			d.PublishedAt = published.Time
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Count returns the number of stored documents.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return n, nil
}
