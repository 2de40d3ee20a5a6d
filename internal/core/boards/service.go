package boards

import (
	"context"
	"log/slog"
)

type boardService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new board service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &boardService{repo: repo, logger: logger}
}

func (s *boardService) GetByID(ctx context.Context, id int64) (*Board, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *boardService) GetBySlug(ctx context.Context, slug string) (*Board, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *boardService) List(ctx context.Context) ([]*Board, error) {
	return s.repo.List(ctx)
}

// RequireWritable resolves a board by slug and rejects boards that are
// disabled for new content.
func (s *boardService) RequireWritable(ctx context.Context, slug string) (*Board, error) {
	board, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !board.IsActive {
		return nil, ErrBoardNotActive
	}
	return board, nil
}
