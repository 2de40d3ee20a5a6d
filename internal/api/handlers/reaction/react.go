package reaction

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/reactions"
)

// ReactHandler handles the like/dislike toggle on posts and comments
type ReactHandler struct {
	service reactions.Service
}

// NewReactHandler creates a new react handler
func NewReactHandler(service reactions.Service) *ReactHandler {
	return &ReactHandler{service: service}
}

// HandleReactToPost toggles the user's reaction to a post
// POST /api/posts/{postID}/reactions
func (h *ReactHandler) HandleReactToPost(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, reactions.TargetPost, "postID")
}

// HandleReactToComment toggles the user's reaction to a comment
// POST /api/comments/{commentID}/reactions
func (h *ReactHandler) HandleReactToComment(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, reactions.TargetComment, "commentID")
}

func (h *ReactHandler) react(w http.ResponseWriter, r *http.Request, targetType reactions.TargetType, param string) {
	targetID, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || targetID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "invalid target id")
		return
	}

	var req reactions.ReactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.ReactionType == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "reactionType is required")
		return
	}

	response, err := h.service.React(r.Context(), middleware.GetUserID(r), targetType, targetID, req.ReactionType)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
