package comments

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Tidepool/internal/api/handlers/common"
	"Tidepool/internal/core/comments"
	"Tidepool/internal/core/posts"
)

// maxBodySize bounds addComment payloads.
const maxBodySize = 1 * 1024 * 1024

// addCommentResponse is the success envelope for addComment.
type addCommentResponse struct {
	Query   string `json:"query"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleAddComment handles POST /posts/{pid}/comments
// Attaches a comment to the path post. The body's declared post id must
// agree with the path; a mismatch is a dependency error carrying both ids.
func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
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

	req, err := comments.ParseAddRequest(data)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if _, _, _, err := h.posts.Get(r.Context(), id); err != nil {
		common.WriteError(w, err)
		return
	}

	if _, err := h.comments.Add(r.Context(), id, req); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, addCommentResponse{
		Query:   "addComment",
		Success: true,
		Message: "Comment Added",
	})
}
