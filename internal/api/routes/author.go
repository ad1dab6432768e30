package routes

import (
	"github.com/go-chi/chi/v5"

	authorHandlers "Tidepool/internal/api/handlers/author"
)

// RegisterAuthorRoutes registers author profile and follow endpoints.
func RegisterAuthorRoutes(r chi.Router, authorHandler *authorHandlers.Handler) {
	r.Get("/authors/{aid}", authorHandler.HandleGetAuthor)

	r.Get("/authors/{aid}/follows", authorHandler.HandleListFollows)
	r.Post("/authors/{aid}/follows", authorHandler.HandleRequestFollow)
	r.Post("/authors/{aid}/follows/accept", authorHandler.HandleAcceptFollow)
	r.Post("/authors/{aid}/follows/reject", authorHandler.HandleRejectFollow)
}
