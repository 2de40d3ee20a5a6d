package comment

import (
	"net/http"

	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
)

// SelectAnswerHandler handles Q&A answer selection
type SelectAnswerHandler struct {
	service comments.Service
}

// NewSelectAnswerHandler creates a new select answer handler
func NewSelectAnswerHandler(service comments.Service) *SelectAnswerHandler {
	return &SelectAnswerHandler{service: service}
}

// HandleSelect marks a comment as the accepted answer on a Q&A post
// POST /api/comments/{commentID}/select
func (h *SelectAnswerHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	commentID, ok := parseCommentID(w, r)
	if !ok {
		return
	}

	if err := h.service.Select(r.Context(), commentID, middleware.GetUserID(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnselect clears the accepted answer
// DELETE /api/comments/{commentID}/select
func (h *SelectAnswerHandler) HandleUnselect(w http.ResponseWriter, r *http.Request) {
	commentID, ok := parseCommentID(w, r)
	if !ok {
		return
	}

	if err := h.service.Unselect(r.Context(), commentID, middleware.GetUserID(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
