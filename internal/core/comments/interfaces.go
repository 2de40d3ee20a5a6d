package comments

import (
	"context"
	"time"

	"Agora/internal/core/boards"
)

// Repository defines the data access interface for comments.
//
// Create and SoftDelete are composite: they adjust the owning post's
// denormalized comment_count inside the same transaction as the comment
// write, with the arithmetic done in SQL (floored at zero on the way
// down). Writes against an existing comment carry the loaded Version
// and must fail with ErrVersionConflict when the row has moved on.
type Repository interface {
	// GetByID retrieves a comment by id, including soft-deleted rows so
	// callers can distinguish "gone" from "never existed".
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Create inserts a comment and increments the post's comment_count
	Create(ctx context.Context, comment *Comment) error

	// ListRootsByPost retrieves live root comments (depth 0), oldest first
	ListRootsByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// ListRepliesByPost retrieves all live replies (depth 1) on the post
	// in one query, for grouping by parent in memory
	ListRepliesByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// UpdateContent persists an edited comment body via compare-and-swap
	// on Version
	UpdateContent(ctx context.Context, comment *Comment) error

	// SoftDelete marks the comment deleted (CAS on Version) and decrements
	// the post's comment_count
	SoftDelete(ctx context.Context, comment *Comment) error

	// MarkSelected flags the comment as the accepted answer and records
	// selectedCommentId/selectedAt in the post's extra fields, atomically
	MarkSelected(ctx context.Context, commentID, postID int64, selectedAt time.Time) error

	// ClearSelected removes the accepted-answer flag and the post's
	// selection entries, atomically
	ClearSelected(ctx context.Context, commentID, postID int64) error
}

// PostMeta is the slice of post state the comment service needs for its
// checks. Loaded through PostStore so the comments package doesn't
// depend on the post aggregate.
type PostMeta struct {
	SelectedCommentID *int64
	BoardType         boards.Type
	ID                int64
	AuthorID          int64
	Deleted           bool
}

// PostStore resolves post facts for comment operations
type PostStore interface {
	// GetPostMeta returns ErrPostNotFound when the post doesn't exist.
	// Soft-deleted posts are returned with Deleted set.
	GetPostMeta(ctx context.Context, postID int64) (*PostMeta, error)
}

// Service defines the business logic interface for the comment tree and
// the Q&A answer-selection workflow
type Service interface {
	// Create adds a root comment or a reply to a post
	Create(ctx context.Context, postID, authorID int64, req CreateCommentRequest) (*Comment, error)

	// ListForPost returns root comments with their replies attached,
	// grouped in a single pass over the fetched replies
	ListForPost(ctx context.Context, postID, viewerID int64) ([]*CommentView, error)

	// Update edits a comment's content (author only)
	Update(ctx context.Context, commentID, actorID int64, req UpdateCommentRequest) (*Comment, error)

	// Delete soft-deletes a comment (author only)
	Delete(ctx context.Context, commentID, actorID int64) error

	// Select marks a comment as the accepted answer on a Q&A post.
	// Only the post's author may select, never their own comment, and
	// only while no other answer is selected.
	Select(ctx context.Context, commentID, actorID int64) error

	// Unselect clears the accepted answer (post author only)
	Unselect(ctx context.Context, commentID, actorID int64) error
}
