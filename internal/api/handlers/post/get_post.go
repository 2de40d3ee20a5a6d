package post

import (
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"
)

// GetPostHandler handles post detail lookup
type GetPostHandler struct {
	service posts.Service
}

// NewGetPostHandler creates a new get post handler
func NewGetPostHandler(service posts.Service) *GetPostHandler {
	return &GetPostHandler{service: service}
}

// HandleGetPost returns the post detail view and counts the view
// GET /api/posts/{postID}
func (h *GetPostHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.Get(r.Context(), postID, middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, detail)
}
