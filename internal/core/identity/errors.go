package identity

import "errors"

// ErrAuthorNotFound is returned when an id does not match a local author.
var ErrAuthorNotFound = errors.New("author not found")

// ErrCacheMiss is returned when an author id is not in the remote cache.
var ErrCacheMiss = errors.New("remote author not cached")

// ErrNoCredential is returned when no stored credential matches an identity.
var ErrNoCredential = errors.New("no credential for identity")
