package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Tidepool/internal/core/identity"
)

type postgresCredentialRepo struct {
	db *sql.DB
}

// NewCredentialStore creates a new PostgreSQL federation credential store
func NewCredentialStore(db *sql.DB) identity.CredentialStore {
	return &postgresCredentialRepo{db: db}
}

// Lookup returns the credential whose identity prefix matches the author id.
// Prefixes let one credential cover a whole peer host while still allowing
// per-identity overrides; the longest match wins.
func (r *postgresCredentialRepo) Lookup(ctx context.Context, authorID string) (*identity.Credential, error) {
	query := `
		SELECT identity_prefix, username, password
		FROM remote_credentials
		WHERE $1 LIKE identity_prefix || '%'
		ORDER BY LENGTH(identity_prefix) DESC
		LIMIT 1
	`
	cred := &identity.Credential{}
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(
		&cred.IdentityPrefix, &cred.Username, &cred.Password,
	)
	if err == sql.ErrNoRows {
		return nil, identity.ErrNoCredential
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}

	return cred, nil
}
