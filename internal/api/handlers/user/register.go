package user

import (
	"encoding/json"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/users"
)

// RegisterHandler handles account creation
type RegisterHandler struct {
	service users.Service
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service users.Service) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// HandleRegister creates a new account
// POST /api/users
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.Email == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "email is required")
		return
	}
	if req.Nickname == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "nickname is required")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, user)
}
