package users

import (
	"context"
	"time"
)

// Repository defines the data access interface for users and their
// refresh tokens
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	SaveRefreshToken(ctx context.Context, token *RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteRefreshTokensForUser(ctx context.Context, userID int64) error
}

// TokenIssuer mints access tokens for authenticated users. Implemented
// by the JWT provider in internal/auth; kept as an interface so this
// package carries no crypto dependency.
type TokenIssuer interface {
	Issue(userID int64) (token string, expiresAt time.Time, err error)
}

// Service defines the business logic interface for accounts
type Service interface {
	// Register creates an account with a bcrypt-hashed password
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies credentials and returns an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (*TokenPair, error)

	// Refresh rotates the refresh token and mints a new access token
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes all refresh tokens for the user
	Logout(ctx context.Context, userID int64) error

	// GetByID retrieves a user for handler hydration
	GetByID(ctx context.Context, id int64) (*User, error)
}
