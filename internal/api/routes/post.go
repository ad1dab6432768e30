package routes

import (
	"github.com/go-chi/chi/v5"

	commentHandlers "Tidepool/internal/api/handlers/comments"
	postHandlers "Tidepool/internal/api/handlers/post"
)

// RegisterPostRoutes registers the federation-facing post and comment
// endpoints.
func RegisterPostRoutes(r chi.Router, postHandler *postHandlers.Handler, commentHandler *commentHandlers.Handler) {
	r.Get("/posts/{pid}", postHandler.HandleGet)
	r.Post("/posts/{pid}", postHandler.HandleCreate)
	r.Delete("/posts/{pid}", postHandler.HandleDelete)

	r.Get("/posts/{pid}/comments", commentHandler.HandleGetComments)
	r.Post("/posts/{pid}/comments", commentHandler.HandleAddComment)

	r.Get("/authors/{aid}/stream", postHandler.HandleStream)
}
