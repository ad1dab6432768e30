// Package post provides HTTP handlers for the federation-facing post
// resource: GET, POST and DELETE on /posts/{pid}.
package post

import (
	"Tidepool/internal/core/comments"
	"Tidepool/internal/core/identity"
	"Tidepool/internal/core/pagination"
	"Tidepool/internal/core/posts"
)

// Handler serves the post resource endpoints. Reads compose the post
// service with the comment service and the author resolver to build the
// full representation.
type Handler struct {
	posts           *posts.Service
	comments        *comments.Service
	resolver        *identity.Resolver
	host            string
	commentPageSize int
}

// NewHandler creates a post handler. commentPageSize controls the embedded
// first page of comments on single-post reads; zero selects the default.
func NewHandler(postService *posts.Service, commentService *comments.Service, resolver *identity.Resolver, host string, commentPageSize int) *Handler {
	if commentPageSize <= 0 {
		commentPageSize = pagination.DefaultSize
	}
	return &Handler{
		posts:           postService,
		comments:        commentService,
		resolver:        resolver,
		host:            host,
		commentPageSize: commentPageSize,
	}
}
