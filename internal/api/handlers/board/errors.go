package board

import (
	"log/slog"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/boards"
)

// handleServiceError converts board service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case boards.ErrBoardNotFound:
		handlers.WriteError(w, http.StatusNotFound, "BoardNotFound", "Board not found")
	case boards.ErrBoardNotActive:
		handlers.WriteError(w, http.StatusForbidden, "BoardNotActive", "Board does not accept new posts")
	default:
		slog.Error("board handler error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
