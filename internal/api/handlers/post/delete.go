package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Tidepool/internal/api/handlers/common"
	"Tidepool/internal/core/posts"
)

// HandleDelete handles DELETE /posts/{pid}
// Removes the post and cascades its categories and visibility grants.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := posts.CanonicalID(h.host, chi.URLParam(r, "pid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	deleted, err := h.posts.Delete(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"deleted": deleted})
}
