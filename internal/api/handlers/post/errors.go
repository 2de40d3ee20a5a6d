package post

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/core/boards"
	"Agora/internal/core/posts"
)

// handleServiceError converts post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var validation *posts.ValidationError
	if errors.As(err, &validation) {
		handlers.WriteError(w, http.StatusBadRequest, "ValidationFailed", validation.Error())
		return
	}

	switch err {
	case posts.ErrPostNotFound, posts.ErrPostDeleted:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case posts.ErrNotAuthor:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthor", "Only the author may modify this post")
	case boards.ErrBoardNotFound:
		handlers.WriteError(w, http.StatusNotFound, "BoardNotFound", "Board not found")
	case boards.ErrBoardNotActive:
		handlers.WriteError(w, http.StatusForbidden, "BoardNotActive", "Board does not accept new posts")
	default:
		// ErrUnknownBoardType lands here: a board row referencing a type
		// with no registered strategy is a deployment fault, not user error.
		slog.Error("post handler error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}

func parsePostID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil || postID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "invalid post id")
		return 0, false
	}
	return postID, true
}
