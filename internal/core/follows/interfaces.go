package follows

import "context"

// Repository defines the data access interface for follow edges.
type Repository interface {
	// Create inserts a new edge, or ErrFollowExists for a duplicate pair.
	Create(ctx context.Context, follow *Follow) error

	// Get returns the edge for a pair, or ErrFollowNotFound.
	Get(ctx context.Context, follower, followee string) (*Follow, error)

	// Update rewrites the flags on an existing edge.
	Update(ctx context.Context, follow *Follow) error

	// ListByFollower returns edges originating from an author.
	ListByFollower(ctx context.Context, follower string) ([]*Follow, error)

	// ListByFollowee returns edges pointing at an author.
	ListByFollowee(ctx context.Context, followee string) ([]*Follow, error)
}
