package author

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Tidepool/internal/api/handlers/common"
	"Tidepool/internal/core/apperrors"
	"Tidepool/internal/core/identity"
)

// authorView is an author profile with mutual follows expanded.
type authorView struct {
	identity.AuthorRecord
	Friends []identity.AuthorRecord `json:"friends"`
}

// HandleGetAuthor handles GET /authors/{aid}
// Serves a local author's profile with each friend resolved to a display
// record. Friend resolution degrades per peer, so a dead remote host only
// costs that one entry its confirmed name.
func (h *Handler) HandleGetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := h.canonicalAuthorID(chi.URLParam(r, "aid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	author, err := h.directory.GetAuthor(r.Context(), id)
	if err != nil {
		if errors.Is(err, identity.ErrAuthorNotFound) {
			common.WriteError(w, apperrors.NewNotFound("author", id))
			return
		}
		common.WriteError(w, err)
		return
	}

	friendIDs, err := h.follows.FriendIDs(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	view := authorView{
		AuthorRecord: *author,
		Friends:      make([]identity.AuthorRecord, 0, len(friendIDs)),
	}
	for _, friendID := range friendIDs {
		view.Friends = append(view.Friends, h.resolver.Resolve(r.Context(), friendID))
	}

	common.WriteJSON(w, http.StatusOK, view)
}
