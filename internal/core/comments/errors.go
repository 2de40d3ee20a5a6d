package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound indicates the post being commented on doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrPostDeleted indicates the post was soft-deleted
	ErrPostDeleted = errors.New("post already deleted")

	// ErrCommentDeleted indicates the comment was already soft-deleted
	ErrCommentDeleted = errors.New("comment already deleted")

	// ErrParentNotFound indicates the parent comment doesn't exist
	ErrParentNotFound = errors.New("parent comment not found")

	// ErrParentDeleted indicates the parent comment was soft-deleted
	ErrParentDeleted = errors.New("parent comment already deleted")

	// ErrParentMismatch indicates the parent comment belongs to a different post
	ErrParentMismatch = errors.New("parent comment belongs to another post")

	// ErrDepthExceeded indicates a reply to a reply was attempted
	ErrDepthExceeded = errors.New("replies cannot be replied to")

	// ErrContentEmpty indicates comment content is blank
	ErrContentEmpty = errors.New("comment content is required")

	// ErrContentTooLong indicates comment content exceeds MaxContentLength
	ErrContentTooLong = errors.New("comment content exceeds maximum length")

	// ErrNotAuthor indicates the acting user doesn't own the comment
	ErrNotAuthor = errors.New("only the comment author may modify it")

	// ErrVersionConflict indicates the comment changed since it was loaded;
	// the caller should re-fetch and retry
	ErrVersionConflict = errors.New("comment was modified by another operation")

	// ErrNotQnABoard indicates answer selection was attempted outside a Q&A board
	ErrNotQnABoard = errors.New("answers can only be selected on Q&A boards")

	// ErrSelectOwnComment indicates the post author tried to select their own comment
	ErrSelectOwnComment = errors.New("cannot select own comment")

	// ErrNotPostAuthor indicates someone other than the post author tried to
	// select or unselect an answer
	ErrNotPostAuthor = errors.New("only the post author may select an answer")

	// ErrAlreadySelected indicates the post already has a selected answer
	ErrAlreadySelected = errors.New("an answer is already selected")

	// ErrNotSelected indicates the comment is not currently selected
	ErrNotSelected = errors.New("comment is not selected")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrParentNotFound)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return errors.Is(err, ErrCommentDeleted) ||
		errors.Is(err, ErrPostDeleted) ||
		errors.Is(err, ErrParentDeleted) ||
		errors.Is(err, ErrVersionConflict) ||
		errors.Is(err, ErrAlreadySelected)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentEmpty) ||
		errors.Is(err, ErrContentTooLong) ||
		errors.Is(err, ErrDepthExceeded) ||
		errors.Is(err, ErrParentMismatch) ||
		errors.Is(err, ErrNotQnABoard) ||
		errors.Is(err, ErrNotSelected)
}

// IsForbidden checks if an error is an ownership violation
func IsForbidden(err error) bool {
	return errors.Is(err, ErrNotAuthor) ||
		errors.Is(err, ErrNotPostAuthor) ||
		errors.Is(err, ErrSelectOwnComment)
}
