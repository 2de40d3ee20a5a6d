package posts

import (
	"context"
	"fmt"
	"log/slog"

	"Agora/internal/core/boards"
	"Agora/internal/core/reactions"
)

// postService implements the Service interface for post operations
type postService struct {
	repo       Repository
	boards     boards.Service
	strategies StrategyRegistry
	reactions  reactions.Service
	logger     *slog.Logger
}

// NewService creates a new post service instance. reactionSvc may be
// nil; detail views then omit the viewer's reaction.
func NewService(repo Repository, boardSvc boards.Service, strategies StrategyRegistry, reactionSvc reactions.Service, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:       repo,
		boards:     boardSvc,
		strategies: strategies,
		reactions:  reactionSvc,
		logger:     logger,
	}
}

// Create runs the board-type construction pipeline. The strategy owns
// the extra-fields map from BeforeCreate on; AfterCreate runs against
// the persisted aggregate (with image ids filled) and its extra-field
// changes are flushed afterwards.
func (s *postService) Create(ctx context.Context, boardSlug string, authorID int64, req CreatePostRequest) (*Post, error) {
	board, err := s.boards.RequireWritable(ctx, boardSlug)
	if err != nil {
		return nil, err
	}

	strategy, err := s.strategies.Resolve(board.Type)
	if err != nil {
		return nil, err
	}

	if err := strategy.ValidateCreate(&req); err != nil {
		return nil, err
	}
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}
	if err := validateTags(req.Tags); err != nil {
		return nil, err
	}

	post := &Post{
		BoardID:     board.ID,
		AuthorID:    authorID,
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		IsAnonymous: req.IsAnonymous,
	}
	for i, url := range req.ImageURLs {
		post.Images = append(post.Images, PostImage{URL: url, SortOrder: i})
	}

	if err := strategy.BeforeCreate(post, &req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if err := strategy.AfterCreate(post); err != nil {
		return nil, err
	}
	if len(post.ExtraFields) > 0 {
		if err := s.repo.UpdateExtraFields(ctx, post.ID, post.ExtraFields); err != nil {
			return nil, fmt.Errorf("failed to save extra fields: %w", err)
		}
	}

	s.logger.Info("post created",
		"postId", post.ID,
		"boardSlug", boardSlug,
		"boardType", board.Type,
		"userId", authorID)

	return post, nil
}

// Update mirrors Create with the update hooks. Strategy extra-field
// changes merge into the existing map rather than replacing it.
func (s *postService) Update(ctx context.Context, postID, actorID int64, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsDeleted() {
		return nil, ErrPostDeleted
	}
	if !post.IsOwnedBy(actorID) {
		return nil, ErrNotAuthor
	}

	board, err := s.boards.GetByID(ctx, post.BoardID)
	if err != nil {
		return nil, err
	}
	strategy, err := s.strategies.Resolve(board.Type)
	if err != nil {
		return nil, err
	}

	if err := strategy.ValidateUpdate(&req); err != nil {
		return nil, err
	}
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}
	if err := validateTags(req.Tags); err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Tags = req.Tags
	post.Images = post.Images[:0]
	for i, url := range req.ImageURLs {
		post.Images = append(post.Images, PostImage{PostID: post.ID, URL: url, SortOrder: i})
	}

	if err := strategy.BeforeUpdate(post, &req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if err := strategy.AfterUpdate(post); err != nil {
		return nil, err
	}
	if len(post.ExtraFields) > 0 {
		if err := s.repo.UpdateExtraFields(ctx, post.ID, post.ExtraFields); err != nil {
			return nil, fmt.Errorf("failed to save extra fields: %w", err)
		}
	}

	s.logger.Info("post updated", "postId", post.ID, "userId", actorID)
	return post, nil
}

// Get returns the detail view, bumping the view count. Soft-deleted
// posts read as not found.
func (s *postService) Get(ctx context.Context, postID, viewerID int64) (*PostDetail, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsDeleted() {
		return nil, ErrPostNotFound
	}

	if err := s.repo.IncrementViewCount(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to increment view count: %w", err)
	}
	post.ViewCount++

	var myReaction *reactions.Type
	if s.reactions != nil && viewerID != 0 {
		reaction, err := s.reactions.Get(ctx, viewerID, reactions.TargetPost, postID)
		if err != nil {
			return nil, err
		}
		if reaction != nil {
			myReaction = &reaction.Type
		}
	}

	return newDetail(post, viewerID, myReaction), nil
}

// List returns a page of posts for a board, notices first.
func (s *postService) List(ctx context.Context, boardSlug string, page, size int) (*PostPage, error) {
	board, err := s.boards.GetBySlug(ctx, boardSlug)
	if err != nil {
		return nil, err
	}

	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	posts, total, err := s.repo.ListByBoard(ctx, board.ID, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	content := make([]*PostSummary, 0, len(posts))
	if page == 0 {
		notices, err := s.repo.ListNoticesByBoard(ctx, board.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list notices: %w", err)
		}
		for _, notice := range notices {
			content = append(content, newSummary(notice))
		}
	}
	for _, post := range posts {
		content = append(content, newSummary(post))
	}

	totalPages := (total + size - 1) / size
	return &PostPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       page+1 < totalPages,
	}, nil
}

// Delete soft-deletes a post.
func (s *postService) Delete(ctx context.Context, postID, actorID int64) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.IsDeleted() {
		return ErrPostDeleted
	}
	if !post.IsOwnedBy(actorID) {
		return ErrNotAuthor
	}

	if err := s.repo.SoftDelete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info("post deleted", "postId", postID, "userId", actorID)
	return nil
}
