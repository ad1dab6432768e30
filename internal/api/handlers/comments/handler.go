// Package comments provides HTTP handlers for the comment list under a
// post: the paginated GET and the federation addComment POST.
package comments

import (
	"Tidepool/internal/core/comments"
	"Tidepool/internal/core/identity"
	"Tidepool/internal/core/posts"
)

// Handler serves /posts/{pid}/comments. The post service resolves the path
// post first, so comment operations inherit its MalformedId/NotFound
// behavior.
type Handler struct {
	posts    *posts.Service
	comments *comments.Service
	resolver *identity.Resolver
	host     string
}

// NewHandler creates a comment handler.
func NewHandler(postService *posts.Service, commentService *comments.Service, resolver *identity.Resolver, host string) *Handler {
	return &Handler{
		posts:    postService,
		comments: commentService,
		resolver: resolver,
		host:     host,
	}
}
