package user

import (
	"log/slog"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/users"
)

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case users.ErrUserNotFound:
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case users.ErrEmailTaken:
		handlers.WriteError(w, http.StatusConflict, "EmailTaken", "Email is already in use")
	case users.ErrNicknameTaken:
		handlers.WriteError(w, http.StatusConflict, "NicknameTaken", "Nickname is already in use")
	case users.ErrWeakPassword:
		handlers.WriteError(w, http.StatusBadRequest, "WeakPassword", "Password must be at least 8 characters")
	case users.ErrInvalidCredentials:
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid email or password")
	case users.ErrInvalidRefreshToken:
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidRefreshToken", "Invalid or expired refresh token")
	default:
		slog.Error("user handler error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
