package board

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/core/boards"
)

// GetBoardHandler handles single-board lookup
type GetBoardHandler struct {
	service boards.Service
}

// NewGetBoardHandler creates a new get board handler
func NewGetBoardHandler(service boards.Service) *GetBoardHandler {
	return &GetBoardHandler{service: service}
}

// HandleGetBoard returns one board by slug
// GET /api/boards/{slug}
func (h *GetBoardHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "board slug is required")
		return
	}

	board, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, board)
}
