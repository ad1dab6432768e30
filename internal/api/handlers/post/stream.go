package post

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"Tidepool/internal/api/handlers/common"
	"Tidepool/internal/core/identity"
	"Tidepool/internal/core/posts"
)

// streamEntry is the wire shape of one post in a visibility stream. The
// heavy embedded representation is reserved for single-post reads.
type streamEntry struct {
	ID          string                `json:"id"`
	Author      identity.AuthorRecord `json:"author"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	ContentType string                `json:"contentType"`
	Visibility  posts.Visibility      `json:"visibility"`
	Unlisted    bool                  `json:"unlisted"`
	Published   time.Time             `json:"published"`
}

type streamResponse struct {
	Query string        `json:"query"`
	Count int           `json:"count"`
	Posts []streamEntry `json:"posts"`
}

// HandleStream handles GET /authors/{aid}/stream
// Serves the ordered set of posts visible to the path author: listed
// posts, their own posts, and PRIVATE posts shared with them, newest
// first and deduplicated by id.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	requester, err := identity.CanonicalAuthorID(h.host, chi.URLParam(r, "aid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	visible, err := h.posts.VisibleTo(r.Context(), requester)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	resp := streamResponse{
		Query: "stream",
		Count: len(visible),
		Posts: make([]streamEntry, 0, len(visible)),
	}
	for _, p := range visible {
		resp.Posts = append(resp.Posts, streamEntry{
			ID:          p.ID,
			Author:      h.resolver.Resolve(r.Context(), p.AuthorID),
			Title:       p.Title,
			Description: p.Description,
			ContentType: p.ContentType,
			Visibility:  p.Visibility,
			Unlisted:    p.Unlisted,
			Published:   p.Published,
		})
	}

	common.WriteJSON(w, http.StatusOK, resp)
}
