package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"Tidepool/internal/core/posts"
	"Tidepool/internal/db/postgres"
)

func testPost(id, authorID string, visibility posts.Visibility, published time.Time) *posts.Post {
	return &posts.Post{
		ID:          id,
		AuthorID:    authorID,
		Title:       "a title",
		Description: "a description",
		Content:     "some content",
		ContentType: "text/plain",
		Visibility:  visibility,
		Published:   published,
	}
}

func TestPostCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := postgres.NewPostRepository(db)
	ctx := context.Background()

	alice := "http://localhost:8080/authors/alice/"
	bob := "http://localhost:8080/authors/bob/"
	insertAuthor(t, db, alice, "alice")

	post := testPost("http://localhost:8080/posts/p1/", alice, posts.VisibilityPrivate, time.Now().UTC())
	if err := repo.Create(ctx, post, []string{"web", "tutorial"}, []string{bob}); err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	got, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("Failed to get post: %v", err)
	}
	if got.Title != post.Title || got.Visibility != posts.VisibilityPrivate {
		t.Errorf("Round trip mismatch: got %+v", got)
	}

	cats, err := repo.GetCategories(ctx, post.ID)
	if err != nil {
		t.Fatalf("Failed to get categories: %v", err)
	}
	if len(cats) != 2 {
		t.Errorf("Expected 2 categories, got %v", cats)
	}

	grants, err := repo.GetVisibleTo(ctx, post.ID)
	if err != nil {
		t.Fatalf("Failed to get grants: %v", err)
	}
	if len(grants) != 1 || grants[0] != bob {
		t.Errorf("Expected grant for %s, got %v", bob, grants)
	}
}

func TestPostCreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := postgres.NewPostRepository(db)
	ctx := context.Background()

	alice := "http://localhost:8080/authors/alice/"
	insertAuthor(t, db, alice, "alice")

	post := testPost("http://localhost:8080/posts/p1/", alice, posts.VisibilityPublic, time.Now().UTC())
	if err := repo.Create(ctx, post, nil, nil); err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	err := repo.Create(ctx, post, nil, nil)
	if !errors.Is(err, posts.ErrPostExists) {
		t.Errorf("Expected ErrPostExists, got %v", err)
	}
}

func TestPostDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := postgres.NewPostRepository(db)
	ctx := context.Background()

	alice := "http://localhost:8080/authors/alice/"
	insertAuthor(t, db, alice, "alice")

	post := testPost("http://localhost:8080/posts/p1/", alice, posts.VisibilityPrivate, time.Now().UTC())
	if err := repo.Create(ctx, post, []string{"web"}, []string{"http://peer.example/authors/7/"}); err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	if err := repo.Delete(ctx, post.ID); err != nil {
		t.Fatalf("Failed to delete post: %v", err)
	}

	if _, err := repo.GetByID(ctx, post.ID); !errors.Is(err, posts.ErrPostNotFound) {
		t.Errorf("Expected ErrPostNotFound after delete, got %v", err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected categories to cascade, found %d rows", n)
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM can_see`).Scan(&n); err != nil {
		t.Fatalf("Failed to count grants: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected grants to cascade, found %d rows", n)
	}

	if err := repo.Delete(ctx, post.ID); !errors.Is(err, posts.ErrPostNotFound) {
		t.Errorf("Expected ErrPostNotFound on double delete, got %v", err)
	}
}

func TestPostListQueries(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := postgres.NewPostRepository(db)
	ctx := context.Background()

	alice := "http://localhost:8080/authors/alice/"
	bob := "http://localhost:8080/authors/bob/"
	insertAuthor(t, db, alice, "alice")
	insertAuthor(t, db, bob, "bob")

	now := time.Now().UTC()

	listed := testPost("http://localhost:8080/posts/listed/", alice, posts.VisibilityPublic, now)
	unlisted := testPost("http://localhost:8080/posts/unlisted/", alice, posts.VisibilityPublic, now)
	unlisted.Unlisted = true
	shared := testPost("http://localhost:8080/posts/shared/", alice, posts.VisibilityPrivate, now)
	hidden := testPost("http://localhost:8080/posts/hidden/", alice, posts.VisibilityPrivate, now)

	for _, p := range []*posts.Post{listed, unlisted, hidden} {
		if err := repo.Create(ctx, p, nil, nil); err != nil {
			t.Fatalf("Failed to create post %s: %v", p.ID, err)
		}
	}
	if err := repo.Create(ctx, shared, nil, []string{bob}); err != nil {
		t.Fatalf("Failed to create shared post: %v", err)
	}

	got, err := repo.ListListed(ctx)
	if err != nil {
		t.Fatalf("ListListed failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != listed.ID {
		t.Errorf("ListListed: expected only %s, got %d posts", listed.ID, len(got))
	}

	got, err = repo.ListByAuthor(ctx, alice)
	if err != nil {
		t.Fatalf("ListByAuthor failed: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("ListByAuthor: expected 4 posts, got %d", len(got))
	}

	got, err = repo.ListSharedWith(ctx, bob)
	if err != nil {
		t.Fatalf("ListSharedWith failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != shared.ID {
		t.Errorf("ListSharedWith: expected only %s, got %d posts", shared.ID, len(got))
	}
}
