package reactions

import "context"

// Repository defines the data access interface for the reaction ledger.
//
// The three mutating operations are composite: each one writes the
// ledger row AND adjusts the target's denormalized counter inside a
// single database transaction, with the target row locked for the
// duration. Counter arithmetic happens in SQL (count = count +/- 1,
// floored at zero), so concurrent reactions against the same target
// cannot lose updates.
type Repository interface {
	// GetByUserAndTarget retrieves the user's current reaction to a target.
	// Returns ErrReactionNotFound when no ledger row exists.
	GetByUserAndTarget(ctx context.Context, userID int64, targetType TargetType, targetID int64) (*Reaction, error)

	// Create inserts a new ledger row and increments the matching counter.
	// A unique-constraint violation (two firsts racing) maps to
	// ErrDuplicateReaction.
	Create(ctx context.Context, reaction *Reaction) (*Counts, error)

	// Cancel deletes the ledger row and decrements the matching counter.
	// Returns ErrStaleReaction if the row no longer matches.
	Cancel(ctx context.Context, reaction *Reaction) (*Counts, error)

	// Switch updates the ledger row's type in place, decrementing the old
	// counter and incrementing the new one. Returns ErrStaleReaction if
	// the row no longer holds the old type.
	Switch(ctx context.Context, reaction *Reaction, newType Type) (*Counts, error)
}

// TargetStore loads the engine's snapshot of a reactable entity.
// Implementations dispatch on target type to the posts or comments
// table; the engine stays agnostic.
type TargetStore interface {
	// GetTarget returns ErrTargetNotFound when the entity doesn't exist.
	// Soft-deleted targets are returned with Deleted set, not hidden, so
	// the engine can report the precise failure.
	GetTarget(ctx context.Context, targetType TargetType, targetID int64) (*Target, error)
}

// Service defines the business logic interface for reactions
type Service interface {
	// React applies the toggle state machine for one (user, target) pair:
	//   - no existing reaction -> create with the requested type
	//   - same type            -> cancel (remove the reaction)
	//   - different type       -> switch to the requested type
	// The response carries the target's counters after the change and the
	// user's resulting reaction (nil after a cancel).
	React(ctx context.Context, userID int64, targetType TargetType, targetID int64, requested Type) (*ReactResponse, error)

	// Get returns the user's current reaction to a target, or nil when
	// none exists.
	Get(ctx context.Context, userID int64, targetType TargetType, targetID int64) (*Reaction, error)
}
