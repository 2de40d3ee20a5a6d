package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/comment"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints on the router
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comment.NewCreateCommentHandler(service)
	listHandler := comment.NewListCommentsHandler(service)
	updateHandler := comment.NewUpdateCommentHandler(service)
	deleteHandler := comment.NewDeleteCommentHandler(service)
	selectHandler := comment.NewSelectAnswerHandler(service)

	r.With(authMiddleware.OptionalAuth).Get("/api/posts/{postID}/comments", listHandler.HandleListComments)

	r.With(authMiddleware.RequireAuth).Post("/api/posts/{postID}/comments", createHandler.HandleCreateComment)
	r.With(authMiddleware.RequireAuth).Put("/api/comments/{commentID}", updateHandler.HandleUpdateComment)
	r.With(authMiddleware.RequireAuth).Delete("/api/comments/{commentID}", deleteHandler.HandleDeleteComment)
	r.With(authMiddleware.RequireAuth).Post("/api/comments/{commentID}/select", selectHandler.HandleSelect)
	r.With(authMiddleware.RequireAuth).Delete("/api/comments/{commentID}/select", selectHandler.HandleUnselect)
}
