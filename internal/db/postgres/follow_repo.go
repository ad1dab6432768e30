package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Tidepool/internal/core/follows"
)

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow repository
func NewFollowRepository(db *sql.DB) follows.Repository {
	return &postgresFollowRepo{db: db}
}

// Create inserts a new follow edge
func (r *postgresFollowRepo) Create(ctx context.Context, follow *follows.Follow) error {
	query := `
		INSERT INTO follows (follower, followee, bidirectional, rejected)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		follow.Follower, follow.Followee, follow.Bidirectional, follow.Rejected)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return follows.ErrFollowExists
		}
		return fmt.Errorf("failed to insert follow: %w", err)
	}
	return nil
}

// Get returns the edge for a follower/followee pair
func (r *postgresFollowRepo) Get(ctx context.Context, follower, followee string) (*follows.Follow, error) {
	query := `
		SELECT follower, followee, bidirectional, rejected
		FROM follows
		WHERE follower = $1 AND followee = $2
	`
	follow := &follows.Follow{}
	err := r.db.QueryRowContext(ctx, query, follower, followee).Scan(
		&follow.Follower, &follow.Followee, &follow.Bidirectional, &follow.Rejected,
	)
	if err == sql.ErrNoRows {
		return nil, follows.ErrFollowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get follow: %w", err)
	}
	return follow, nil
}

// Update rewrites the flags on an existing edge
func (r *postgresFollowRepo) Update(ctx context.Context, follow *follows.Follow) error {
	query := `
		UPDATE follows
		SET bidirectional = $3, rejected = $4
		WHERE follower = $1 AND followee = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		follow.Follower, follow.Followee, follow.Bidirectional, follow.Rejected)
	if err != nil {
		return fmt.Errorf("failed to update follow: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return follows.ErrFollowNotFound
	}
	return nil
}

// ListByFollower returns edges originating from an author
func (r *postgresFollowRepo) ListByFollower(ctx context.Context, follower string) ([]*follows.Follow, error) {
	return r.queryFollows(ctx, `
		SELECT follower, followee, bidirectional, rejected
		FROM follows
		WHERE follower = $1
	`, follower)
}

// ListByFollowee returns edges pointing at an author
func (r *postgresFollowRepo) ListByFollowee(ctx context.Context, followee string) ([]*follows.Follow, error) {
	return r.queryFollows(ctx, `
		SELECT follower, followee, bidirectional, rejected
		FROM follows
		WHERE followee = $1
	`, followee)
}

func (r *postgresFollowRepo) queryFollows(ctx context.Context, query, arg string) ([]*follows.Follow, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	defer rows.Close()

	var out []*follows.Follow
	for rows.Next() {
		follow := &follows.Follow{}
		err := rows.Scan(&follow.Follower, &follow.Followee, &follow.Bidirectional, &follow.Rejected)
		if err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		out = append(out, follow)
	}
	return out, rows.Err()
}
