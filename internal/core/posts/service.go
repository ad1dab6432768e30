package posts

import (
	"context"
	"errors"

	"Tidepool/internal/core/apperrors"
)

// Service implements the create/read/delete state machine for posts.
// There is no update transition on the federation surface: a post id moves
// from absent to present and back, and an id is never reused.
type Service struct {
	repo Repository
}

// NewService creates a post service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new post at the given canonical id. Fails with
// ResourceConflict when the id is already taken. Visibility grants in
// req.VisibleTo are only written for PRIVATE posts.
func (s *Service) Create(ctx context.Context, id string, req *CreateRequest) (*Post, error) {
	_, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return nil, apperrors.NewConflict("post", id)
	}
	if !errors.Is(err, ErrPostNotFound) {
		return nil, err
	}

	post := &Post{
		ID:          id,
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		ContentType: req.ContentType,
		Visibility:  req.Visibility,
		Unlisted:    req.Unlisted,
		Published:   req.Published,
	}

	visibleTo := req.VisibleTo
	if post.Visibility != VisibilityPrivate {
		visibleTo = nil
	}

	if err := s.repo.Create(ctx, post, req.Categories, visibleTo); err != nil {
		if errors.Is(err, ErrPostExists) {
			return nil, apperrors.NewConflict("post", id)
		}
		return nil, err
	}

	return post, nil
}

// Get returns the post at id together with its categories and grant list.
func (s *Service) Get(ctx context.Context, id string) (*Post, []string, []string, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return nil, nil, nil, apperrors.NewNotFound("post", id)
		}
		return nil, nil, nil, err
	}

	categories, err := s.repo.GetCategories(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	visibleTo, err := s.repo.GetVisibleTo(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	return post, categories, visibleTo, nil
}

// Delete removes the post at id and, through the store's cascade, its
// categories and grants. Returns the deleted id.
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return "", apperrors.NewNotFound("post", id)
		}
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return "", apperrors.NewNotFound("post", id)
		}
		return "", err
	}

	return id, nil
}
