package comments

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Tidepool/internal/api/handlers/common"
	"Tidepool/internal/core/pagination"
	"Tidepool/internal/core/posts"
)

// commentsPage is the wire shape of one page of comments. Navigation links
// are emitted in external zero-indexed numbering and only when they apply.
type commentsPage struct {
	Query    string               `json:"query"`
	Count    int                  `json:"count"`
	Size     int                  `json:"size"`
	Comments []common.CommentView `json:"comments"`
	First    string               `json:"first,omitempty"`
	Last     string               `json:"last,omitempty"`
	Next     string               `json:"next,omitempty"`
	Previous string               `json:"previous,omitempty"`
}

// HandleGetComments handles GET /posts/{pid}/comments?page=N&size=M
// Serves the post's comments through the external pagination protocol.
// An out-of-range page is answered with an empty list and a single
// first/last recovery link rather than an error.
func (h *Handler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	id, err := posts.CanonicalID(h.host, chi.URLParam(r, "pid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	params, err := pagination.ParseQuery(r.URL.Query())
	if err != nil {
		common.WriteError(w, err)
		return
	}

	// The post must exist before any paging happens.
	if _, _, _, err := h.posts.Get(r.Context(), id); err != nil {
		common.WriteError(w, err)
		return
	}

	count, err := h.comments.CountForPost(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	page := pagination.Resolve(params, count)
	base := "http://" + r.Host + r.URL.Path
	links := page.Links(base)

	resp := commentsPage{
		Query:    "comments",
		Count:    count,
		Comments: []common.CommentView{},
		First:    links.First,
		Last:     links.Last,
		Next:     links.Next,
		Previous: links.Previous,
	}

	if !page.InRange {
		resp.Size = 0
		common.WriteJSON(w, http.StatusOK, resp)
		return
	}

	window, _, err := h.comments.ListForPost(r.Context(), id, page.Limit, page.Offset)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	resp.Comments = common.NewCommentViews(r.Context(), h.resolver, window)
	resp.Size = pagination.ClampSize(page.Size, len(resp.Comments))

	common.WriteJSON(w, http.StatusOK, resp)
}
