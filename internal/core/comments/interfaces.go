package comments

import "context"

// Repository defines the data access interface for comments.
type Repository interface {
	// Create inserts a new comment.
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment by id, or ErrCommentNotFound.
	GetByID(ctx context.Context, id string) (*Comment, error)

	// ListForPost returns a window of a post's comments ordered by
	// published time, newest first.
	ListForPost(ctx context.Context, postID string, limit, offset int) ([]*Comment, error)

	// CountForPost returns the total number of comments on a post.
	CountForPost(ctx context.Context, postID string) (int, error)

	// DeleteForPost removes every comment attached to a post.
	DeleteForPost(ctx context.Context, postID string) error
}
