package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Tidepool/internal/core/identity"
)

type postgresAuthorRepo struct {
	db *sql.DB
}

// NewAuthorRepository creates a new PostgreSQL author directory
func NewAuthorRepository(db *sql.DB) identity.AuthorDirectory {
	return &postgresAuthorRepo{db: db}
}

// GetAuthor returns the authoritative local record for an author id
func (r *postgresAuthorRepo) GetAuthor(ctx context.Context, id string) (*identity.AuthorRecord, error) {
	query := `
		SELECT id, host, display_name, url, COALESCE(github, '')
		FROM authors
		WHERE id = $1
	`
	author := &identity.AuthorRecord{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&author.ID, &author.Host, &author.DisplayName, &author.URL, &author.GitHub,
	)
	if err == sql.ErrNoRows {
		return nil, identity.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return author, nil
}
