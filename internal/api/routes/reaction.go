package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/reaction"
	"Agora/internal/api/middleware"
	"Agora/internal/core/reactions"
)

// RegisterReactionRoutes registers the like/dislike toggle endpoints
func RegisterReactionRoutes(r chi.Router, service reactions.Service, authMiddleware *middleware.AuthMiddleware) {
	reactHandler := reaction.NewReactHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/posts/{postID}/reactions", reactHandler.HandleReactToPost)
	r.With(authMiddleware.RequireAuth).Post("/api/comments/{commentID}/reactions", reactHandler.HandleReactToComment)
}
