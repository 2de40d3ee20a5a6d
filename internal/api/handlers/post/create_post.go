package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"
)

// CreatePostHandler handles post creation
type CreatePostHandler struct {
	service posts.Service
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(service posts.Service) *CreatePostHandler {
	return &CreatePostHandler{service: service}
}

// HandleCreatePost creates a post on a board
// POST /api/boards/{slug}/posts
func (h *CreatePostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "board slug is required")
		return
	}

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	authorID := middleware.GetUserID(r)

	post, err := h.service.Create(r.Context(), slug, authorID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, post)
}
