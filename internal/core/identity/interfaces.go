package identity

import "context"

// AuthorDirectory looks up authoritative local author records.
type AuthorDirectory interface {
	// GetAuthor returns the local author with the given canonical id, or
	// ErrAuthorNotFound.
	GetAuthor(ctx context.Context, id string) (*AuthorRecord, error)
}

// RemoteAuthorCache stores previously confirmed remote identities.
type RemoteAuthorCache interface {
	// Get returns the cached record for an author id, or ErrCacheMiss.
	Get(ctx context.Context, authorID string) (*RemoteAuthorRecord, error)

	// Put inserts or refreshes a cached record.
	Put(ctx context.Context, record *RemoteAuthorRecord) error
}

// CredentialStore finds the credential used to authenticate a federation
// call for an author identifier.
type CredentialStore interface {
	// Lookup returns the credential whose identity prefix matches the
	// author id, or ErrNoCredential when the peer is unknown.
	Lookup(ctx context.Context, authorID string) (*Credential, error)
}
