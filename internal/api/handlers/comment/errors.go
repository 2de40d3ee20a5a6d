package comment

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/core/comments"
)

// handleServiceError converts comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case comments.ErrCommentNotFound:
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case comments.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case comments.ErrParentNotFound:
		handlers.WriteError(w, http.StatusNotFound, "ParentNotFound", "Parent comment not found")
	case comments.ErrPostDeleted:
		handlers.WriteError(w, http.StatusGone, "PostDeleted", "Post was deleted")
	case comments.ErrCommentDeleted:
		handlers.WriteError(w, http.StatusGone, "CommentDeleted", "Comment was deleted")
	case comments.ErrParentDeleted:
		handlers.WriteError(w, http.StatusGone, "ParentDeleted", "Parent comment was deleted")
	case comments.ErrParentMismatch:
		handlers.WriteError(w, http.StatusBadRequest, "ParentMismatch", "Parent comment belongs to another post")
	case comments.ErrDepthExceeded:
		handlers.WriteError(w, http.StatusBadRequest, "DepthExceeded", "Replies cannot be replied to")
	case comments.ErrContentEmpty:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment content is required")
	case comments.ErrContentTooLong:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment content exceeds maximum length")
	case comments.ErrNotAuthor:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthor", "Only the author may modify this comment")
	case comments.ErrVersionConflict:
		handlers.WriteError(w, http.StatusConflict, "VersionConflict", "Comment was modified by another operation")
	case comments.ErrNotQnABoard:
		handlers.WriteError(w, http.StatusBadRequest, "NotQnABoard", "Answers can only be selected on Q&A boards")
	case comments.ErrSelectOwnComment:
		handlers.WriteError(w, http.StatusBadRequest, "SelectOwnComment", "Cannot select your own comment as the answer")
	case comments.ErrNotPostAuthor:
		handlers.WriteError(w, http.StatusForbidden, "NotPostAuthor", "Only the post author may select an answer")
	case comments.ErrAlreadySelected:
		handlers.WriteError(w, http.StatusConflict, "AlreadySelected", "An answer is already selected")
	case comments.ErrNotSelected:
		handlers.WriteError(w, http.StatusConflict, "NotSelected", "Comment is not the selected answer")
	default:
		slog.Error("comment handler error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}

func parseCommentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil || commentID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "invalid comment id")
		return 0, false
	}
	return commentID, true
}
