package comments

import (
	"context"
	"errors"

	"Tidepool/internal/core/apperrors"
)

// Service implements comment creation and retrieval. Post existence is the
// caller's concern: handlers resolve the path post first and pass its
// canonical id in.
type Service struct {
	repo Repository
}

// NewService creates a comment service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add attaches a comment to the post resolved from the request path.
// Fails with ResourceConflict when the comment id is taken, and with
// DependencyError when the body's declared post disagrees with the path
// post; both ids are carried for diagnostics.
func (s *Service) Add(ctx context.Context, pathPostID string, req *AddRequest) (*Comment, error) {
	_, err := s.repo.GetByID(ctx, req.Comment.ID)
	if err == nil {
		return nil, apperrors.NewConflict("comment", req.Comment.ID)
	}
	if !errors.Is(err, ErrCommentNotFound) {
		return nil, err
	}

	if req.PostID != pathPostID {
		return nil, apperrors.NewDependency(map[string]string{
			"post.id":    pathPostID,
			"query.post": req.PostID,
		})
	}

	comment := req.Comment
	comment.PostID = pathPostID

	if err := s.repo.Create(ctx, &comment); err != nil {
		if errors.Is(err, ErrCommentExists) {
			return nil, apperrors.NewConflict("comment", comment.ID)
		}
		return nil, err
	}

	return &comment, nil
}

// CountForPost returns the total number of comments on a post.
func (s *Service) CountForPost(ctx context.Context, postID string) (int, error) {
	return s.repo.CountForPost(ctx, postID)
}

// ListForPost returns one window of a post's comments plus the total count.
func (s *Service) ListForPost(ctx context.Context, postID string, limit, offset int) ([]*Comment, int, error) {
	count, err := s.repo.CountForPost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}

	comments, err := s.repo.ListForPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return comments, count, nil
}
