package comment

import (
	"encoding/json"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
)

// UpdateCommentHandler handles comment editing
type UpdateCommentHandler struct {
	service comments.Service
}

// NewUpdateCommentHandler creates a new update comment handler
func NewUpdateCommentHandler(service comments.Service) *UpdateCommentHandler {
	return &UpdateCommentHandler{service: service}
}

// HandleUpdateComment edits a comment's content (author only)
// PUT /api/comments/{commentID}
func (h *UpdateCommentHandler) HandleUpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := parseCommentID(w, r)
	if !ok {
		return
	}

	var req comments.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	comment, err := h.service.Update(r.Context(), commentID, middleware.GetUserID(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, comment)
}
