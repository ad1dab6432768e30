package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Tidepool/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author_id, comment, content_type, published)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(
		ctx, query,
		comment.ID, comment.PostID, comment.AuthorID,
		comment.Comment, comment.ContentType, comment.Published,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return comments.ErrCommentExists
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by id
func (r *postgresCommentRepo) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	query := `
		SELECT id, post_id, author_id, comment, content_type, published
		FROM comments
		WHERE id = $1
	`
	comment := &comments.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID,
		&comment.Comment, &comment.ContentType, &comment.Published,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListForPost returns a window of a post's comments, newest first
func (r *postgresCommentRepo) ListForPost(ctx context.Context, postID string, limit, offset int) ([]*comments.Comment, error) {
	query := `
		SELECT id, post_id, author_id, comment, content_type, published
		FROM comments
		WHERE post_id = $1
		ORDER BY published DESC, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var out []*comments.Comment
	for rows.Next() {
		comment := &comments.Comment{}
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID,
			&comment.Comment, &comment.ContentType, &comment.Published,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		out = append(out, comment)
	}
	return out, rows.Err()
}

// CountForPost counts a post's comments
func (r *postgresCommentRepo) CountForPost(ctx context.Context, postID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// DeleteForPost removes every comment attached to a post
func (r *postgresCommentRepo) DeleteForPost(ctx context.Context, postID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	return nil
}
