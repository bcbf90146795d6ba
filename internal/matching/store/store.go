package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindMatch returns the category of the longest learned pattern contained
// in the description, case-insensitively. Matching happens in Go because
// SQLite has no ILIKE; the mapping table stays tiny.
func (s *Store) FindMatch(ctx context.Context, description string) (string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT pattern, category FROM category_mappings ORDER BY LENGTH(pattern) DESC, created_at DESC")
	if err != nil {
		return "", fmt.Errorf("loading mappings: %w", err)
	}
	defer rows.Close()

	haystack := strings.ToLower(description)

	for rows.Next() {
		var pattern, cat string
		if err := rows.Scan(&pattern, &cat); err != nil {
			return "", fmt.Errorf("scanning mapping: %w", err)
		}

		if strings.Contains(haystack, strings.ToLower(pattern)) {
			return cat, nil
		}
	}

	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterating mappings: %w", err)
	}

	return "", nil
}

// CreateMapping records a pattern for a category. Re-learning the same
// pair is a no-op.
func (s *Store) CreateMapping(ctx context.Context, pattern, category string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO category_mappings (pattern, category) VALUES (?, ?)
		ON CONFLICT (pattern, category) DO NOTHING
	`, pattern, category)
	if err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}
