package follows

import (
	"context"
	"errors"

	"Tidepool/internal/core/apperrors"
)

// Service manages follow edges and the friend (mutual follow) lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a follow service over the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Request records follower asking to follow followee. Self-follows and
// duplicate requests are rejected.
func (s *Service) Request(ctx context.Context, follower, followee string) (*Follow, error) {
	if follower == followee {
		return nil, apperrors.NewInvalidField("followee", followee)
	}

	if _, err := s.repo.Get(ctx, follower, followee); err == nil {
		return nil, apperrors.NewConflict("follow", follower+" -> "+followee)
	} else if !errors.Is(err, ErrFollowNotFound) {
		return nil, err
	}

	follow := &Follow{Follower: follower, Followee: followee}
	if err := s.repo.Create(ctx, follow); err != nil {
		if errors.Is(err, ErrFollowExists) {
			return nil, apperrors.NewConflict("follow", follower+" -> "+followee)
		}
		return nil, err
	}

	return follow, nil
}

// Accept marks the pending request from follower as mutual and mirrors a
// second bidirectional edge back, establishing the friend relationship.
func (s *Service) Accept(ctx context.Context, followee, follower string) error {
	follow, err := s.repo.Get(ctx, follower, followee)
	if err != nil {
		if errors.Is(err, ErrFollowNotFound) {
			return apperrors.NewNotFound("follow", follower+" -> "+followee)
		}
		return err
	}

	follow.Bidirectional = true
	follow.Rejected = false
	if err := s.repo.Update(ctx, follow); err != nil {
		return err
	}

	mirror := &Follow{Follower: followee, Followee: follower, Bidirectional: true}
	if err := s.repo.Create(ctx, mirror); err != nil {
		// The reverse edge may exist from an earlier request; flip it
		// instead of failing the accept.
		if !errors.Is(err, ErrFollowExists) {
			return err
		}
		existing, getErr := s.repo.Get(ctx, followee, follower)
		if getErr != nil {
			return getErr
		}
		existing.Bidirectional = true
		existing.Rejected = false
		return s.repo.Update(ctx, existing)
	}

	return nil
}

// Reject marks the pending request from follower as rejected. The edge is
// kept so repeat requests stay visible as rejected.
func (s *Service) Reject(ctx context.Context, followee, follower string) error {
	follow, err := s.repo.Get(ctx, follower, followee)
	if err != nil {
		if errors.Is(err, ErrFollowNotFound) {
			return apperrors.NewNotFound("follow", follower+" -> "+followee)
		}
		return err
	}

	follow.Rejected = true
	return s.repo.Update(ctx, follow)
}

// Relationships summarises an author's follow graph for display.
type Relationships struct {
	Following []*Follow `json:"following"`
	Friends   []*Follow `json:"friends"`
	Followers []*Follow `json:"followers"`
}

// ListRelationships splits an author's edges into one-way follows, mutual
// friends, and pending followers.
func (s *Service) ListRelationships(ctx context.Context, authorID string) (*Relationships, error) {
	outgoing, err := s.repo.ListByFollower(ctx, authorID)
	if err != nil {
		return nil, err
	}

	incoming, err := s.repo.ListByFollowee(ctx, authorID)
	if err != nil {
		return nil, err
	}

	rel := &Relationships{}
	for _, f := range outgoing {
		if f.Bidirectional {
			rel.Friends = append(rel.Friends, f)
		} else if !f.Rejected {
			rel.Following = append(rel.Following, f)
		}
	}
	for _, f := range incoming {
		if !f.Bidirectional && !f.Rejected {
			rel.Followers = append(rel.Followers, f)
		}
	}

	return rel, nil
}

// FriendIDs returns the ids of every author in a mutual relationship with
// authorID, for profile enrichment.
func (s *Service) FriendIDs(ctx context.Context, authorID string) ([]string, error) {
	outgoing, err := s.repo.ListByFollower(ctx, authorID)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, f := range outgoing {
		if f.Bidirectional {
			ids = append(ids, f.Followee)
		}
	}
	return ids, nil
}
