// Package author provides HTTP handlers for author profiles and the follow
// request lifecycle.
package author

import (
	"Tidepool/internal/core/follows"
	"Tidepool/internal/core/identity"
)

// Handler serves /authors/{aid} and its follow sub-resources.
type Handler struct {
	directory identity.AuthorDirectory
	resolver  *identity.Resolver
	follows   *follows.Service
	host      string
}

// NewHandler creates an author handler.
func NewHandler(directory identity.AuthorDirectory, resolver *identity.Resolver, followService *follows.Service, host string) *Handler {
	return &Handler{
		directory: directory,
		resolver:  resolver,
		follows:   followService,
		host:      host,
	}
}

// canonicalAuthorID expands a path identifier into the canonical author URL
// served by this host, mirroring the post id shape rules.
func (h *Handler) canonicalAuthorID(aid string) (string, error) {
	return identity.CanonicalAuthorID(h.host, aid)
}
