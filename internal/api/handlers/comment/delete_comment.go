package comment

import (
	"net/http"

	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
)

// DeleteCommentHandler handles comment deletion
type DeleteCommentHandler struct {
	service comments.Service
}

// NewDeleteCommentHandler creates a new delete comment handler
func NewDeleteCommentHandler(service comments.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDeleteComment soft-deletes a comment (author only)
// DELETE /api/comments/{commentID}
func (h *DeleteCommentHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := parseCommentID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), commentID, middleware.GetUserID(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
