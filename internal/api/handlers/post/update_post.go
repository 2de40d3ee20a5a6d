package post

import (
	"encoding/json"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"
)

// UpdatePostHandler handles post editing
type UpdatePostHandler struct {
	service posts.Service
}

// NewUpdatePostHandler creates a new update post handler
func NewUpdatePostHandler(service posts.Service) *UpdatePostHandler {
	return &UpdatePostHandler{service: service}
}

// HandleUpdatePost edits a post (author only)
// PUT /api/posts/{postID}
func (h *UpdatePostHandler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	post, err := h.service.Update(r.Context(), postID, middleware.GetUserID(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
