package user

import (
	"encoding/json"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/users"
)

// RefreshHandler handles refresh-token rotation
type RefreshHandler struct {
	service users.Service
}

// NewRefreshHandler creates a new refresh handler
func NewRefreshHandler(service users.Service) *RefreshHandler {
	return &RefreshHandler{service: service}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// HandleRefresh rotates the refresh token and returns a new token pair
// POST /api/auth/refresh
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.RefreshToken == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "refreshToken is required")
		return
	}

	pair, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, pair)
}
