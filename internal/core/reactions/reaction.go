package reactions

import (
	"time"
)

// Type is the kind of reaction a user left on a target.
type Type string

const (
	TypeLike    Type = "LIKE"
	TypeDislike Type = "DISLIKE"
)

// Valid reports whether t is a known reaction type.
func (t Type) Valid() bool {
	return t == TypeLike || t == TypeDislike
}

// TargetType identifies what kind of entity a reaction points at.
type TargetType string

const (
	TargetPost    TargetType = "POST"
	TargetComment TargetType = "COMMENT"
)

// Valid reports whether tt is a known target type.
func (tt TargetType) Valid() bool {
	return tt == TargetPost || tt == TargetComment
}

// Reaction is the ledger row recording a user's current reaction to a
// single target. At most one row exists per (user, target type, target
// id); the database enforces this with a unique constraint.
type Reaction struct {
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
	Type       Type       `json:"reactionType" db:"reaction_type"`
	TargetType TargetType `json:"targetType" db:"target_type"`
	ID         int64      `json:"id" db:"id"`
	UserID     int64      `json:"userId" db:"user_id"`
	TargetID   int64      `json:"targetId" db:"target_id"`
}

// Target is the engine's view of a reactable entity. Posts and comments
// both satisfy it through their load adapters; the engine never touches
// the concrete aggregate.
type Target struct {
	ID           int64
	OwnerID      int64
	LikeCount    int
	DislikeCount int
	Deleted      bool
}

// Counts carries the target's denormalized counters after a ledger
// mutation. Values come straight from the updated row, never recomputed
// in memory.
type Counts struct {
	LikeCount    int `json:"likeCount"`
	DislikeCount int `json:"dislikeCount"`
}

// ReactRequest represents input for reacting to a post or comment
type ReactRequest struct {
	ReactionType Type `json:"reactionType"`
}

// ReactResponse is the outcome of a react call. MyReaction is nil when
// the call canceled an existing reaction.
type ReactResponse struct {
	MyReaction   *Type `json:"myReaction"`
	LikeCount    int   `json:"likeCount"`
	DislikeCount int   `json:"dislikeCount"`
	TargetID     int64 `json:"targetId"`
}
