package posts

import (
	"time"

	"Agora/internal/core/reactions"
)

// CreatePostRequest represents input for creating a post. ExtraFields
// carries the board-type-specific structured data the strategy
// validates (market price, coordinates, ...).
type CreatePostRequest struct {
	ExtraFields map[string]any `json:"extraFields,omitempty"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	ImageURLs   []string       `json:"imageUrls,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	IsAnonymous bool           `json:"isAnonymous"`
}

// UpdatePostRequest represents input for editing a post. ExtraFields
// merges into the existing map: only keys present here overwrite.
type UpdatePostRequest struct {
	ExtraFields map[string]any `json:"extraFields,omitempty"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	ImageURLs   []string       `json:"imageUrls,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

// PostDetail is the full view of a post, with the viewer's current
// reaction hydrated when a viewer is known.
type PostDetail struct {
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	MyReaction   *reactions.Type `json:"myReaction,omitempty"`
	ExtraFields  map[string]any  `json:"extraFields,omitempty"`
	Title        string          `json:"title"`
	Content      string          `json:"content"`
	Images       []PostImage     `json:"images,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	ID           int64           `json:"id"`
	BoardID      int64           `json:"boardId"`
	AuthorID     int64           `json:"authorId"`
	ViewCount    int             `json:"viewCount"`
	CommentCount int             `json:"commentCount"`
	LikeCount    int             `json:"likeCount"`
	DislikeCount int             `json:"dislikeCount"`
	IsNotice     bool            `json:"isNotice"`
	IsAnonymous  bool            `json:"isAnonymous"`
	IsMine       bool            `json:"isMine"`
}

// PostSummary is the list-view shape of a post
type PostSummary struct {
	CreatedAt    time.Time `json:"createdAt"`
	Title        string    `json:"title"`
	Tags         []string  `json:"tags,omitempty"`
	ID           int64     `json:"id"`
	AuthorID     int64     `json:"authorId"`
	ViewCount    int       `json:"viewCount"`
	CommentCount int       `json:"commentCount"`
	LikeCount    int       `json:"likeCount"`
	DislikeCount int       `json:"dislikeCount"`
	IsNotice     bool      `json:"isNotice"`
	IsAnonymous  bool      `json:"isAnonymous"`
}

// PostPage is a page of post summaries with notices prepended
type PostPage struct {
	Content       []*PostSummary `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	HasNext       bool           `json:"hasNext"`
}

func newDetail(p *Post, viewerID int64, myReaction *reactions.Type) *PostDetail {
	authorID := p.AuthorID
	if p.IsAnonymous && p.AuthorID != viewerID {
		authorID = 0
	}
	return &PostDetail{
		ID:           p.ID,
		BoardID:      p.BoardID,
		AuthorID:     authorID,
		Title:        p.Title,
		Content:      p.Content,
		Images:       p.Images,
		Tags:         p.Tags,
		ExtraFields:  p.ExtraFields,
		ViewCount:    p.ViewCount,
		CommentCount: p.CommentCount,
		LikeCount:    p.LikeCount,
		DislikeCount: p.DislikeCount,
		IsNotice:     p.IsNotice,
		IsAnonymous:  p.IsAnonymous,
		IsMine:       p.AuthorID == viewerID,
		MyReaction:   myReaction,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func newSummary(p *Post) *PostSummary {
	authorID := p.AuthorID
	if p.IsAnonymous {
		authorID = 0
	}
	return &PostSummary{
		ID:           p.ID,
		AuthorID:     authorID,
		Title:        p.Title,
		Tags:         p.Tags,
		ViewCount:    p.ViewCount,
		CommentCount: p.CommentCount,
		LikeCount:    p.LikeCount,
		DislikeCount: p.DislikeCount,
		IsNotice:     p.IsNotice,
		IsAnonymous:  p.IsAnonymous,
		CreatedAt:    p.CreatedAt,
	}
}
