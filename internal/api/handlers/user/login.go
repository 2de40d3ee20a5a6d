package user

import (
	"encoding/json"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/users"
)

// LoginHandler handles credential authentication
type LoginHandler struct {
	service users.Service
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service) *LoginHandler {
	return &LoginHandler{service: service}
}

// HandleLogin verifies credentials and returns a token pair
// POST /api/auth/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "email and password are required")
		return
	}

	pair, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, pair)
}
