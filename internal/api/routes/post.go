package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/post"
	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints on the router. Reads are
// open with optional auth for viewer-specific hydration; writes require
// a session.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreatePostHandler(service)
	getHandler := post.NewGetPostHandler(service)
	updateHandler := post.NewUpdatePostHandler(service)
	deleteHandler := post.NewDeletePostHandler(service)
	listHandler := post.NewListPostsHandler(service)

	r.Get("/api/boards/{slug}/posts", listHandler.HandleListPosts)
	r.With(authMiddleware.OptionalAuth).Get("/api/posts/{postID}", getHandler.HandleGetPost)

	r.With(authMiddleware.RequireAuth).Post("/api/boards/{slug}/posts", createHandler.HandleCreatePost)
	r.With(authMiddleware.RequireAuth).Put("/api/posts/{postID}", updateHandler.HandleUpdatePost)
	r.With(authMiddleware.RequireAuth).Delete("/api/posts/{postID}", deleteHandler.HandleDeletePost)
}
