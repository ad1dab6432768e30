package posts

import "context"

// Repository defines the data access interface for posts and their owned
// category and access-grant children.
type Repository interface {
	// Create persists a post together with its categories and explicit
	// visibility grants in a single transaction.
	Create(ctx context.Context, post *Post, categories, visibleTo []string) error

	// GetByID retrieves a post by canonical id, or ErrPostNotFound.
	GetByID(ctx context.Context, id string) (*Post, error)

	// Delete removes a post; categories and grants cascade with it.
	// Returns ErrPostNotFound when no row matched.
	Delete(ctx context.Context, id string) error

	// GetCategories returns the category strings attached to a post.
	GetCategories(ctx context.Context, postID string) ([]string, error)

	// GetVisibleTo returns the author ids granted access to a post.
	GetVisibleTo(ctx context.Context, postID string) ([]string, error)

	// ListListed returns posts with PUBLIC or SERVERONLY visibility that
	// are not unlisted.
	ListListed(ctx context.Context) ([]*Post, error)

	// ListByAuthor returns every post owned by an author.
	ListByAuthor(ctx context.Context, authorID string) ([]*Post, error)

	// ListSharedWith returns non-unlisted PRIVATE posts carrying an
	// explicit grant for the given author.
	ListSharedWith(ctx context.Context, authorID string) ([]*Post, error)
}
