package comments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"Agora/internal/core/boards"
)

// commentService implements the Service interface for comment operations
type commentService struct {
	repo   Repository
	posts  PostStore
	logger *slog.Logger
}

// NewService creates a new comment service instance
func NewService(repo Repository, posts PostStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:   repo,
		posts:  posts,
		logger: logger,
	}
}

// Create adds a root comment or a reply. The post's comment_count is
// incremented in the same transaction as the insert.
func (s *commentService) Create(ctx context.Context, postID, authorID int64, req CreateCommentRequest) (*Comment, error) {
	post, err := s.posts.GetPostMeta(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Deleted {
		return nil, ErrPostDeleted
	}

	var comment *Comment
	if req.ParentID == nil {
		comment, err = New(postID, authorID, req.Content, req.IsAnonymous)
	} else {
		var parent *Comment
		parent, err = s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if err == ErrCommentNotFound {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		comment, err = NewReply(postID, authorID, parent, req.Content, req.IsAnonymous)
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created",
		"postId", postID,
		"commentId", comment.ID,
		"userId", authorID,
		"depth", comment.Depth)

	return comment, nil
}

// ListForPost returns root comments with replies attached. Replies are
// fetched in one query and grouped by parent id in a single pass, so
// attaching them costs no per-root lookups.
func (s *commentService) ListForPost(ctx context.Context, postID, viewerID int64) ([]*CommentView, error) {
	if _, err := s.posts.GetPostMeta(ctx, postID); err != nil {
		return nil, err
	}

	roots, err := s.repo.ListRootsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list root comments: %w", err)
	}
	replies, err := s.repo.ListRepliesByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	repliesByParent := make(map[int64][]*Comment, len(roots))
	for _, reply := range replies {
		if reply.ParentID == nil {
			continue
		}
		repliesByParent[*reply.ParentID] = append(repliesByParent[*reply.ParentID], reply)
	}

	views := make([]*CommentView, 0, len(roots))
	for _, root := range roots {
		view := newView(root, viewerID)
		for _, reply := range repliesByParent[root.ID] {
			view.Replies = append(view.Replies, newView(reply, viewerID))
		}
		views = append(views, view)
	}
	return views, nil
}

// Update edits a comment's content. The write carries the loaded
// version token; a concurrent edit surfaces as ErrVersionConflict.
func (s *commentService) Update(ctx context.Context, commentID, actorID int64, req UpdateCommentRequest) (*Comment, error) {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.IsDeleted() {
		return nil, ErrCommentDeleted
	}
	if !comment.IsOwnedBy(actorID) {
		return nil, ErrNotAuthor
	}
	if err := validateContent(req.Content); err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.repo.UpdateContent(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment updated", "commentId", commentID, "userId", actorID)
	return comment, nil
}

// Delete soft-deletes a comment and decrements the post's
// comment_count (floored at zero) in the same transaction.
func (s *commentService) Delete(ctx context.Context, commentID, actorID int64) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.IsDeleted() {
		return ErrCommentDeleted
	}
	if !comment.IsOwnedBy(actorID) {
		return ErrNotAuthor
	}

	if err := s.repo.SoftDelete(ctx, comment); err != nil {
		return err
	}

	s.logger.Info("comment deleted", "commentId", commentID, "userId", actorID)
	return nil
}

// Select marks a comment as the accepted answer. Checks run in a fixed
// order so error precedence stays deterministic: not found, deleted,
// board type, self-selection, post ownership, existing selection.
func (s *commentService) Select(ctx context.Context, commentID, actorID int64) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.IsDeleted() {
		return ErrCommentDeleted
	}

	post, err := s.posts.GetPostMeta(ctx, comment.PostID)
	if err != nil {
		return err
	}
	if post.BoardType != boards.TypeQnA {
		return ErrNotQnABoard
	}
	if comment.IsOwnedBy(actorID) {
		return ErrSelectOwnComment
	}
	if post.AuthorID != actorID {
		return ErrNotPostAuthor
	}
	if post.SelectedCommentID != nil {
		return ErrAlreadySelected
	}

	if err := s.repo.MarkSelected(ctx, commentID, comment.PostID, time.Now().UTC()); err != nil {
		return err
	}

	s.logger.Info("comment selected",
		"commentId", commentID,
		"postId", comment.PostID,
		"userId", actorID)
	return nil
}

// Unselect clears the accepted answer so a different comment can be
// selected.
func (s *commentService) Unselect(ctx context.Context, commentID, actorID int64) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	post, err := s.posts.GetPostMeta(ctx, comment.PostID)
	if err != nil {
		return err
	}
	if post.BoardType != boards.TypeQnA {
		return ErrNotQnABoard
	}
	if post.AuthorID != actorID {
		return ErrNotPostAuthor
	}
	if !comment.IsSelected {
		return ErrNotSelected
	}

	if err := s.repo.ClearSelected(ctx, commentID, comment.PostID); err != nil {
		return err
	}

	s.logger.Info("comment unselected",
		"commentId", commentID,
		"postId", comment.PostID,
		"userId", actorID)
	return nil
}
