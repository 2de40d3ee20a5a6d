package reactions

import "errors"

var (
	// ErrReactionNotFound indicates no ledger row exists for the (user, target) pair
	ErrReactionNotFound = errors.New("reaction not found")

	// ErrTargetNotFound indicates the post/comment being reacted to doesn't exist
	ErrTargetNotFound = errors.New("reaction target not found")

	// ErrTargetDeleted indicates the target was soft-deleted and no longer accepts reactions
	ErrTargetDeleted = errors.New("reaction target already deleted")

	// ErrOwnContent indicates the user tried to react to their own post/comment
	ErrOwnContent = errors.New("cannot react to own content")

	// ErrInvalidReactionType indicates the reaction type is not LIKE or DISLIKE
	ErrInvalidReactionType = errors.New("invalid reaction type")

	// ErrInvalidTargetType indicates the target type is not POST or COMMENT
	ErrInvalidTargetType = errors.New("invalid target type")

	// ErrDuplicateReaction indicates a concurrent request created the ledger
	// row first; the unique constraint surfaced the race
	ErrDuplicateReaction = errors.New("reaction already exists")

	// ErrStaleReaction indicates the ledger row changed or vanished between
	// the read and the write of the same request
	ErrStaleReaction = errors.New("reaction state changed concurrently")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrReactionNotFound) || errors.Is(err, ErrTargetNotFound)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return errors.Is(err, ErrTargetDeleted) ||
		errors.Is(err, ErrDuplicateReaction) ||
		errors.Is(err, ErrStaleReaction)
}
