package post

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"Tidepool/internal/api/handlers/common"
	"Tidepool/internal/core/identity"
	"Tidepool/internal/core/pagination"
	"Tidepool/internal/core/posts"
)

// postView is the full wire representation of a post. source and origin are
// aliases of the canonical id, and the first page of comments is embedded.
type postView struct {
	ID          string                `json:"id"`
	Author      identity.AuthorRecord `json:"author"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Content     string                `json:"content"`
	ContentType string                `json:"contentType"`
	Visibility  posts.Visibility      `json:"visibility"`
	Unlisted    bool                  `json:"unlisted"`
	Published   time.Time             `json:"published"`
	Source      string                `json:"source"`
	Origin      string                `json:"origin"`
	Categories  []string              `json:"categories"`
	Count       int                   `json:"count"`
	Size        int                   `json:"size"`
	Comments    []common.CommentView  `json:"comments"`
	VisibleTo   []string              `json:"visibleTo"`
}

// HandleGet handles GET /posts/{pid}
// Serves the full post representation with the embedded first comment page.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := posts.CanonicalID(h.host, chi.URLParam(r, "pid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	post, categories, visibleTo, err := h.posts.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	firstPage, count, err := h.comments.ListForPost(r.Context(), id, h.commentPageSize, 0)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if categories == nil {
		categories = []string{}
	}
	if visibleTo == nil {
		visibleTo = []string{}
	}

	view := postView{
		ID:          post.ID,
		Author:      h.resolver.Resolve(r.Context(), post.AuthorID),
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		ContentType: post.ContentType,
		Visibility:  post.Visibility,
		Unlisted:    post.Unlisted,
		Published:   post.Published,
		Source:      post.ID,
		Origin:      post.ID,
		Categories:  categories,
		Count:       count,
		Size:        pagination.ClampSize(h.commentPageSize, count),
		Comments:    common.NewCommentViews(r.Context(), h.resolver, firstPage),
		VisibleTo:   visibleTo,
	}

	common.WriteJSON(w, http.StatusOK, view)
}
