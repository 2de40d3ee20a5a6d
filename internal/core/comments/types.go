package comments

import "time"

// CreateCommentRequest represents input for creating a comment.
// ParentID is set for replies and nil for root comments.
type CreateCommentRequest struct {
	ParentID    *int64 `json:"parentId,omitempty"`
	Content     string `json:"content"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// UpdateCommentRequest represents input for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentView is the response shape for a single comment. Root views
// carry their direct replies; reply views have an empty Replies slice.
type CommentView struct {
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	ParentID     *int64         `json:"parentId,omitempty"`
	Content      string         `json:"content"`
	Replies      []*CommentView `json:"replies,omitempty"`
	ID           int64          `json:"id"`
	PostID       int64          `json:"postId"`
	AuthorID     int64          `json:"authorId"`
	Depth        int            `json:"depth"`
	LikeCount    int            `json:"likeCount"`
	DislikeCount int            `json:"dislikeCount"`
	IsAnonymous  bool           `json:"isAnonymous"`
	IsSelected   bool           `json:"isSelected"`
	IsMine       bool           `json:"isMine"`
}

// newView builds a CommentView for the given viewer. Anonymous comments
// hide the author id from everyone but the author.
func newView(c *Comment, viewerID int64) *CommentView {
	authorID := c.AuthorID
	if c.IsAnonymous && c.AuthorID != viewerID {
		authorID = 0
	}
	return &CommentView{
		ID:           c.ID,
		PostID:       c.PostID,
		ParentID:     c.ParentID,
		AuthorID:     authorID,
		Content:      c.Content,
		Depth:        c.Depth,
		LikeCount:    c.LikeCount,
		DislikeCount: c.DislikeCount,
		IsAnonymous:  c.IsAnonymous,
		IsSelected:   c.IsSelected,
		IsMine:       c.AuthorID == viewerID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
