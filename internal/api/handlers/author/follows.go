package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Tidepool/internal/api/handlers/common"
	"Tidepool/internal/core/apperrors"
)

// followResponse is the success envelope for follow mutations.
type followResponse struct {
	Query   string `json:"query"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleListFollows handles GET /authors/{aid}/follows
// Splits the author's edges into following, friends and pending followers.
func (h *Handler) HandleListFollows(w http.ResponseWriter, r *http.Request) {
	id, err := h.canonicalAuthorID(chi.URLParam(r, "aid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	rel, err := h.follows.ListRelationships(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, rel)
}

// HandleRequestFollow handles POST /authors/{aid}/follows
// The path author asks to follow the body's followee.
func (h *Handler) HandleRequestFollow(w http.ResponseWriter, r *http.Request) {
	id, err := h.canonicalAuthorID(chi.URLParam(r, "aid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	followee, err := h.peerFromBody(r, "followee")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if _, err := h.follows.Request(r.Context(), id, followee); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, followResponse{
		Query:   "followRequest",
		Success: true,
		Message: "Follow Requested",
	})
}

// HandleAcceptFollow handles POST /authors/{aid}/follows/accept
// Accepting marks the pending edge mutual and mirrors the reverse edge,
// which is what makes the pair friends.
func (h *Handler) HandleAcceptFollow(w http.ResponseWriter, r *http.Request) {
	id, err := h.canonicalAuthorID(chi.URLParam(r, "aid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	follower, err := h.peerFromBody(r, "follower")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.follows.Accept(r.Context(), id, follower); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, followResponse{
		Query:   "acceptFollow",
		Success: true,
		Message: "Follow Accepted",
	})
}

// HandleRejectFollow handles POST /authors/{aid}/follows/reject
func (h *Handler) HandleRejectFollow(w http.ResponseWriter, r *http.Request) {
	id, err := h.canonicalAuthorID(chi.URLParam(r, "aid"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	follower, err := h.peerFromBody(r, "follower")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.follows.Reject(r.Context(), id, follower); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, followResponse{
		Query:   "rejectFollow",
		Success: true,
		Message: "Follow Rejected",
	})
}

// peerFromBody pulls the named author id field out of a JSON body.
func (h *Handler) peerFromBody(r *http.Request, field string) (string, error) {
	data, err := common.DecodeBody(r)
	if err != nil {
		return "", err
	}

	raw, ok := data[field]
	if !ok {
		return "", apperrors.NewMissingFields([]string{field})
	}
	peer, ok := raw.(string)
	if !ok || peer == "" {
		return "", apperrors.NewInvalidField(field, "")
	}
	return peer, nil
}
