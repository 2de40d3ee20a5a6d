package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
)

// CreateCommentHandler handles comment creation
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new create comment handler
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// HandleCreateComment adds a root comment or a reply to a post
// POST /api/posts/{postID}/comments
func (h *CreateCommentHandler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || postID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return
	}

	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	comment, err := h.service.Create(r.Context(), postID, middleware.GetUserID(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}
