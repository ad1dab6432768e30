package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Tidepool/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a post together with its categories and visibility grants.
// The three writes share one transaction so a post can never land without
// its children.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post, categories, visibleTo []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin post transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (
			id, author_id, title, description, content,
			content_type, visibility, unlisted, published
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.ExecContext(
		ctx, query,
		post.ID, post.AuthorID, post.Title, post.Description, post.Content,
		post.ContentType, string(post.Visibility), post.Unlisted, post.Published,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return posts.ErrPostExists
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	for _, category := range categories {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO categories (post_id, category) VALUES ($1, $2)`,
			post.ID, category,
		)
		if err != nil {
			return fmt.Errorf("failed to insert category %q: %w", category, err)
		}
	}

	for _, grant := range visibleTo {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO can_see (post_id, visible_to) VALUES ($1, $2)`,
			post.ID, grant,
		)
		if err != nil {
			return fmt.Errorf("failed to insert visibility grant: %w", err)
		}
	}

	return tx.Commit()
}

// GetByID retrieves a post by its canonical id
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT id, author_id, title, description, content,
		       content_type, visibility, unlisted, published
		FROM posts
		WHERE id = $1
	`
	post := &posts.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Description, &post.Content,
		&post.ContentType, &post.Visibility, &post.Unlisted, &post.Published,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// Delete removes a post; categories and can_see rows cascade via FK
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// GetCategories returns the category strings attached to a post
func (r *postgresPostRepo) GetCategories(ctx context.Context, postID string) ([]string, error) {
	return r.queryStrings(ctx,
		`SELECT category FROM categories WHERE post_id = $1 ORDER BY category`, postID)
}

// GetVisibleTo returns the author ids granted access to a post
func (r *postgresPostRepo) GetVisibleTo(ctx context.Context, postID string) ([]string, error) {
	return r.queryStrings(ctx,
		`SELECT visible_to FROM can_see WHERE post_id = $1 ORDER BY visible_to`, postID)
}

func (r *postgresPostRepo) queryStrings(ctx context.Context, query, arg string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListListed returns non-unlisted PUBLIC and SERVERONLY posts
func (r *postgresPostRepo) ListListed(ctx context.Context) ([]*posts.Post, error) {
	query := selectPosts + `
		WHERE visibility IN ('PUBLIC', 'SERVERONLY') AND unlisted = FALSE
		ORDER BY published DESC
	`
	return r.queryPosts(ctx, query)
}

// ListByAuthor returns every post owned by an author
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*posts.Post, error) {
	query := selectPosts + `
		WHERE author_id = $1
		ORDER BY published DESC
	`
	return r.queryPosts(ctx, query, authorID)
}

// ListSharedWith returns non-unlisted PRIVATE posts granted to an author
func (r *postgresPostRepo) ListSharedWith(ctx context.Context, authorID string) ([]*posts.Post, error) {
	query := selectPosts + `
		WHERE visibility = 'PRIVATE' AND unlisted = FALSE
		  AND id IN (SELECT post_id FROM can_see WHERE visible_to = $1)
		ORDER BY published DESC
	`
	return r.queryPosts(ctx, query, authorID)
}

const selectPosts = `
	SELECT id, author_id, title, description, content,
	       content_type, visibility, unlisted, published
	FROM posts
`

func (r *postgresPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var out []*posts.Post
	for rows.Next() {
		post := &posts.Post{}
		err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title, &post.Description, &post.Content,
			&post.ContentType, &post.Visibility, &post.Unlisted, &post.Published,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		out = append(out, post)
	}
	return out, rows.Err()
}
