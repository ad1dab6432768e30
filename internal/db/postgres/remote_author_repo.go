package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Tidepool/internal/core/identity"
)

type postgresRemoteAuthorRepo struct {
	db *sql.DB
}

// NewRemoteAuthorCache creates a new PostgreSQL remote author cache
func NewRemoteAuthorCache(db *sql.DB) identity.RemoteAuthorCache {
	return &postgresRemoteAuthorRepo{db: db}
}

// Get returns the cached record for an author id
func (r *postgresRemoteAuthorRepo) Get(ctx context.Context, authorID string) (*identity.RemoteAuthorRecord, error) {
	query := `
		SELECT author_id, host, display_name, url, COALESCE(github, ''), resolved_at
		FROM remote_authors
		WHERE author_id = $1
	`
	record := &identity.RemoteAuthorRecord{}
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(
		&record.AuthorID, &record.Host, &record.DisplayName,
		&record.URL, &record.GitHub, &record.ResolvedAt,
	)
	if err == sql.ErrNoRows {
		return nil, identity.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached remote author: %w", err)
	}

	return record, nil
}

// Put inserts or refreshes a cached record
func (r *postgresRemoteAuthorRepo) Put(ctx context.Context, record *identity.RemoteAuthorRecord) error {
	query := `
		INSERT INTO remote_authors (author_id, host, display_name, url, github, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (author_id) DO UPDATE SET
			host = EXCLUDED.host,
			display_name = EXCLUDED.display_name,
			url = EXCLUDED.url,
			github = EXCLUDED.github,
			resolved_at = EXCLUDED.resolved_at
	`
	_, err := r.db.ExecContext(
		ctx, query,
		record.AuthorID, record.Host, record.DisplayName,
		record.URL, record.GitHub, record.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to cache remote author: %w", err)
	}
	return nil
}
