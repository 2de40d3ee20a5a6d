package users

import (
	"time"
)

// User represents a registered account
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	Email        string    `json:"email" db:"email"`
	Nickname     string    `json:"nickname" db:"nickname"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ID           int64     `json:"id" db:"id"`
}

// RefreshToken is a server-side refresh token row. Tokens are opaque
// UUIDs; rotation replaces the row on every refresh.
type RefreshToken struct {
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Token     string    `json:"token" db:"token"`
	UserID    int64     `json:"userId" db:"user_id"`
}

// RegisterRequest represents input for creating an account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// LoginRequest represents input for authenticating
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the response to a successful login or refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // seconds until the access token expires
}
