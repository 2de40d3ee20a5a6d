package board

import (
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/boards"
)

// ListBoardsHandler handles board listing
type ListBoardsHandler struct {
	service boards.Service
}

// NewListBoardsHandler creates a new list boards handler
func NewListBoardsHandler(service boards.Service) *ListBoardsHandler {
	return &ListBoardsHandler{service: service}
}

// HandleListBoards returns all boards, active ones first
// GET /api/boards
func (h *ListBoardsHandler) HandleListBoards(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
