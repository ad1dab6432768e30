package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Tidepool/internal/api/handlers/common"
	"Tidepool/internal/core/posts"
)

// maxBodySize bounds post creation payloads.
const maxBodySize = 1 * 1024 * 1024

// HandleCreate handles POST /posts/{pid}
// Creates a post at the canonical id derived from the path. The id must be
// free: there is no update-in-place on the federation surface.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, err := posts.CanonicalID(h.host, chi.URLParam(r, "pid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	data, err := common.DecodeBody(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	req, err := posts.ParseCreateRequest(data)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	post, err := h.posts.Create(r.Context(), id, req)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]string{"created": post.ID})
}
