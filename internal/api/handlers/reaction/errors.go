package reaction

import (
	"log/slog"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/reactions"
)

// handleServiceError converts reaction service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case reactions.ErrTargetNotFound:
		handlers.WriteError(w, http.StatusNotFound, "TargetNotFound", "Post or comment not found")
	case reactions.ErrTargetDeleted:
		handlers.WriteError(w, http.StatusGone, "TargetDeleted", "Cannot react to deleted content")
	case reactions.ErrOwnContent:
		handlers.WriteError(w, http.StatusForbidden, "OwnContent", "Cannot react to your own content")
	case reactions.ErrInvalidReactionType:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "reactionType must be LIKE or DISLIKE")
	case reactions.ErrInvalidTargetType:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid target type")
	case reactions.ErrDuplicateReaction:
		handlers.WriteError(w, http.StatusConflict, "DuplicateReaction", "Reaction already recorded, retry the request")
	case reactions.ErrStaleReaction:
		handlers.WriteError(w, http.StatusConflict, "StaleReaction", "Reaction changed concurrently, retry the request")
	default:
		slog.Error("reaction handler error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
