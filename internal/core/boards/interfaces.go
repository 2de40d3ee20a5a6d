package boards

import "context"

// Repository defines the data access interface for boards
type Repository interface {
	// GetByID retrieves a board by its id
	GetByID(ctx context.Context, id int64) (*Board, error)

	// GetBySlug retrieves a board by its URL slug
	GetBySlug(ctx context.Context, slug string) (*Board, error)

	// List retrieves all boards, active ones first
	List(ctx context.Context) ([]*Board, error)
}

// Service defines the board lookup boundary used by the post and
// comment services to gate type-specific behavior (e.g. Q&A answer
// selection)
type Service interface {
	GetByID(ctx context.Context, id int64) (*Board, error)
	GetBySlug(ctx context.Context, slug string) (*Board, error)
	List(ctx context.Context) ([]*Board, error)

	// RequireWritable returns the board only if it exists and accepts
	// new posts
	RequireWritable(ctx context.Context, slug string) (*Board, error)
}
