package posts

import "context"

// Repository defines the data access interface for posts.
//
// Create and Update are composite writes: the post row, its images and
// its tag associations persist in one transaction (the post exclusively
// owns both collections; replacing a list deletes the old rows).
// Counter adjustments are made with atomic SQL arithmetic, never by
// writing back counts read earlier.
type Repository interface {
	// Create inserts the post with its images and tags; fills ID and
	// timestamps
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post with images and tags, including
	// soft-deleted rows
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Update persists title, content, extra fields, and replaces the
	// image and tag lists
	Update(ctx context.Context, post *Post) error

	// UpdateExtraFields persists only the extra-fields map; used after
	// lifecycle hooks that run post-persist
	UpdateExtraFields(ctx context.Context, id int64, extra map[string]any) error

	// SoftDelete marks the post deleted
	SoftDelete(ctx context.Context, id int64) error

	// IncrementViewCount bumps view_count atomically
	IncrementViewCount(ctx context.Context, id int64) error

	// ListByBoard retrieves a page of live non-notice posts for a board,
	// newest first, plus the total count
	ListByBoard(ctx context.Context, boardID int64, limit, offset int) ([]*Post, int, error)

	// ListNoticesByBoard retrieves live notice posts for a board
	ListNoticesByBoard(ctx context.Context, boardID int64) ([]*Post, error)
}

// Service defines the business logic interface for posts
type Service interface {
	// Create runs the board-type construction pipeline:
	// resolve strategy -> ValidateCreate -> build aggregate ->
	// BeforeCreate -> persist -> AfterCreate
	Create(ctx context.Context, boardSlug string, authorID int64, req CreatePostRequest) (*Post, error)

	// Update mirrors Create with the update hooks; extra fields merge
	// into the existing map instead of replacing it
	Update(ctx context.Context, postID, actorID int64, req UpdatePostRequest) (*Post, error)

	// Get returns the detail view and increments the view count.
	// viewerID 0 means anonymous.
	Get(ctx context.Context, postID, viewerID int64) (*PostDetail, error)

	// List returns a page of posts for a board, notices first
	List(ctx context.Context, boardSlug string, page, size int) (*PostPage, error)

	// Delete soft-deletes a post (author only)
	Delete(ctx context.Context, postID, actorID int64) error
}
