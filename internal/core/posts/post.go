package posts

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxTitleLength is the maximum post title length in runes
	MaxTitleLength = 200

	// MaxTags is the maximum number of tags per post
	MaxTags = 10
)

// Extra-field keys shared between the strategies and the Q&A selection
// workflow. The permitted keys and their semantics belong to the board
// strategy, not to Post itself.
const (
	ExtraSelectedCommentID = "selectedCommentId"
	ExtraSelectedAt        = "selectedAt"
	ExtraThumbnailURL      = "thumbnailUrl"
	ExtraPrice             = "price"
	ExtraTradeStatus       = "tradeStatus"
	ExtraLocation          = "location"
	ExtraLatitude          = "latitude"
	ExtraLongitude         = "longitude"
	ExtraCategory          = "category"
)

// PostImage is an image owned by a post. Images live and die with the
// post; clearing the post's image list deletes the rows.
type PostImage struct {
	URL       string `json:"url" db:"url"`
	ID        int64  `json:"id" db:"id"`
	PostID    int64  `json:"postId" db:"post_id"`
	SortOrder int    `json:"sortOrder" db:"sort_order"`
}

// Post is the post aggregate: fixed columns, denormalized counters, and
// the open extra-fields map whose contents are owned by the board-type
// strategy (price/tradeStatus for market boards, selectedCommentId for
// Q&A, thumbnailUrl for galleries).
type Post struct {
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
	DeletedAt    *time.Time     `json:"deletedAt,omitempty" db:"deleted_at"`
	ExtraFields  map[string]any `json:"extraFields,omitempty" db:"extra_fields"`
	Title        string         `json:"title" db:"title"`
	Content      string         `json:"content" db:"content"`
	Images       []PostImage    `json:"images,omitempty" db:"-"`
	Tags         []string       `json:"tags,omitempty" db:"-"`
	ID           int64          `json:"id" db:"id"`
	BoardID      int64          `json:"boardId" db:"board_id"`
	AuthorID     int64          `json:"authorId" db:"user_id"`
	ViewCount    int            `json:"viewCount" db:"view_count"`
	CommentCount int            `json:"commentCount" db:"comment_count"`
	LikeCount    int            `json:"likeCount" db:"like_count"`
	DislikeCount int            `json:"dislikeCount" db:"dislike_count"`
	IsNotice     bool           `json:"isNotice" db:"is_notice"`
	IsAnonymous  bool           `json:"isAnonymous" db:"is_anonymous"`
}

// IsDeleted reports whether the post was soft-deleted.
func (p *Post) IsDeleted() bool {
	return p.DeletedAt != nil
}

// IsOwnedBy reports whether the given user authored the post.
func (p *Post) IsOwnedBy(userID int64) bool {
	return p.AuthorID == userID
}

// SelectedCommentID returns the accepted answer's comment id for Q&A
// posts, or nil when no answer is selected. Tolerates the numeric
// representations a jsonb round-trip can produce.
func (p *Post) SelectedCommentID() *int64 {
	if p.ExtraFields == nil {
		return nil
	}
	v, ok := p.ExtraFields[ExtraSelectedCommentID]
	if !ok || v == nil {
		return nil
	}
	id, err := asInt64(ExtraSelectedCommentID, v)
	if err != nil {
		return nil
	}
	return &id
}

// MergeExtraFields overlays src onto the post's extra fields: keys
// present in src overwrite, absent keys survive.
func (p *Post) MergeExtraFields(src map[string]any) {
	if len(src) == 0 {
		return
	}
	if p.ExtraFields == nil {
		p.ExtraFields = make(map[string]any, len(src))
	}
	for k, v := range src {
		p.ExtraFields[k] = v
	}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", "title exceeds maximum length")
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) > MaxTags {
		return NewValidationError("tags", "too many tags")
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return NewValidationError("tags", "tag names cannot be blank")
		}
	}
	return nil
}
