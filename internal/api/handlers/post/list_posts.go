package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/core/posts"
)

// ListPostsHandler handles board post listing
type ListPostsHandler struct {
	service posts.Service
}

// NewListPostsHandler creates a new list posts handler
func NewListPostsHandler(service posts.Service) *ListPostsHandler {
	return &ListPostsHandler{service: service}
}

// HandleListPosts returns a page of posts for a board, notices first
// GET /api/boards/{slug}/posts?page=0&size=20
func (h *ListPostsHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "board slug is required")
		return
	}

	page := parseQueryInt(r, "page", 0)
	size := parseQueryInt(r, "size", 20)

	result, err := h.service.List(r.Context(), slug, page, size)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

func parseQueryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
