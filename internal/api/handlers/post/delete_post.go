package post

import (
	"net/http"

	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"
)

// DeletePostHandler handles post deletion
type DeletePostHandler struct {
	service posts.Service
}

// NewDeletePostHandler creates a new delete post handler
func NewDeletePostHandler(service posts.Service) *DeletePostHandler {
	return &DeletePostHandler{service: service}
}

// HandleDeletePost soft-deletes a post (author only)
// DELETE /api/posts/{postID}
func (h *DeletePostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), postID, middleware.GetUserID(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
