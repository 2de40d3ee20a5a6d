package user

import (
	"net/http"

	"Agora/internal/api/middleware"
	"Agora/internal/core/users"
)

// LogoutHandler handles session revocation
type LogoutHandler struct {
	service users.Service
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(service users.Service) *LogoutHandler {
	return &LogoutHandler{service: service}
}

// HandleLogout revokes all refresh tokens for the authenticated user
// POST /api/auth/logout
func (h *LogoutHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	if err := h.service.Logout(r.Context(), userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
