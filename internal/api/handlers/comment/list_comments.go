package comment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
)

// ListCommentsHandler handles comment tree retrieval
type ListCommentsHandler struct {
	service comments.Service
}

// NewListCommentsHandler creates a new list comments handler
func NewListCommentsHandler(service comments.Service) *ListCommentsHandler {
	return &ListCommentsHandler{service: service}
}

// HandleListComments returns the post's root comments with replies attached
// GET /api/posts/{postID}/comments
func (h *ListCommentsHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || postID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return
	}

	views, err := h.service.ListForPost(r.Context(), postID, middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if views == nil {
		views = []*comments.CommentView{}
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}
