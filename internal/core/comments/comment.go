package comments

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxContentLength is the maximum comment length in runes
	MaxContentLength = 10000

	// MaxDepth bounds the thread depth: 0 = root, 1 = reply.
	// Replies cannot themselves be replied to.
	MaxDepth = 1
)

// Comment represents a comment on a post. Roots have Depth 0 and no
// parent; replies have Depth 1 and reference a root on the same post.
//
// Version is the optimistic-concurrency token: every successful write
// increments it, and a write carrying a stale value is rejected with
// ErrVersionConflict instead of overwriting.
type Comment struct {
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	ParentID     *int64     `json:"parentId,omitempty" db:"parent_id"`
	Content      string     `json:"content" db:"content"`
	ID           int64      `json:"id" db:"id"`
	PostID       int64      `json:"postId" db:"post_id"`
	AuthorID     int64      `json:"authorId" db:"user_id"`
	Version      int64      `json:"version" db:"version"`
	Depth        int        `json:"depth" db:"depth"`
	LikeCount    int        `json:"likeCount" db:"like_count"`
	DislikeCount int        `json:"dislikeCount" db:"dislike_count"`
	IsAnonymous  bool       `json:"isAnonymous" db:"is_anonymous"`
	IsSelected   bool       `json:"isSelected" db:"is_selected"`
}

// New creates a root comment (depth 0).
func New(postID, authorID int64, content string, anonymous bool) (*Comment, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	return &Comment{
		PostID:      postID,
		AuthorID:    authorID,
		Content:     content,
		IsAnonymous: anonymous,
		Depth:       0,
	}, nil
}

// NewReply creates a reply to an existing comment. The parent must be a
// live comment on the same post and must itself be a root; depth is
// derived, never passed in.
func NewReply(postID, authorID int64, parent *Comment, content string, anonymous bool) (*Comment, error) {
	if parent == nil {
		return nil, ErrParentNotFound
	}
	if parent.IsDeleted() {
		return nil, ErrParentDeleted
	}
	if parent.PostID != postID {
		return nil, ErrParentMismatch
	}
	if parent.Depth+1 > MaxDepth {
		return nil, ErrDepthExceeded
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}
	parentID := parent.ID
	return &Comment{
		PostID:      postID,
		AuthorID:    authorID,
		ParentID:    &parentID,
		Content:     content,
		IsAnonymous: anonymous,
		Depth:       parent.Depth + 1,
	}, nil
}

// IsDeleted reports whether the comment was soft-deleted.
func (c *Comment) IsDeleted() bool {
	return c.DeletedAt != nil
}

// IsOwnedBy reports whether the given user authored the comment.
func (c *Comment) IsOwnedBy(userID int64) bool {
	return c.AuthorID == userID
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}
