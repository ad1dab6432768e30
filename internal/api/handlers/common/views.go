package common

import (
	"context"
	"time"

	"Tidepool/internal/core/comments"
	"Tidepool/internal/core/identity"
)

// CommentView is the wire representation of a comment, with the author id
// expanded into a display record.
type CommentView struct {
	ID          string                `json:"id"`
	Author      identity.AuthorRecord `json:"author"`
	Comment     string                `json:"comment"`
	ContentType string                `json:"contentType"`
	Published   time.Time             `json:"published"`
}

// NewCommentViews expands a list of comments for serving. Author resolution
// degrades per identity, so one unreachable peer cannot sink the whole list.
func NewCommentViews(ctx context.Context, resolver *identity.Resolver, list []*comments.Comment) []CommentView {
	views := make([]CommentView, 0, len(list))
	for _, c := range list {
		views = append(views, CommentView{
			ID:          c.ID,
			Author:      resolver.Resolve(ctx, c.AuthorID),
			Comment:     c.Comment,
			ContentType: c.ContentType,
			Published:   c.Published,
		})
	}
	return views
}
