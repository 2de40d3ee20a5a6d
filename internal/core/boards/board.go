package boards

import (
	"time"
)

// Type identifies which kind of board a post belongs to.
// The type drives validation and lifecycle behavior at post creation
// time (see internal/core/posts strategy dispatch).
type Type string

const (
	TypeGeneral Type = "GENERAL"
	TypeGallery Type = "GALLERY"
	TypeMarket  Type = "MARKET"
	TypeQnA     Type = "QNA"
)

// Valid reports whether t is one of the known board types.
func (t Type) Valid() bool {
	switch t {
	case TypeGeneral, TypeGallery, TypeMarket, TypeQnA:
		return true
	}
	return false
}

// Board represents a posting board (general discussion, gallery,
// marketplace, Q&A). Boards are configured by operators, not created by
// end users.
type Board struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Slug        string    `json:"slug" db:"slug"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Type        Type      `json:"boardType" db:"board_type"`
	ID          int64     `json:"id" db:"id"`
	IsActive    bool      `json:"isActive" db:"is_active"`
}
