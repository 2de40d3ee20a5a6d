package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	refreshTokenTTL   = 14 * 24 * time.Hour
)

// userService implements the Service interface for account operations
type userService struct {
	repo   Repository
	tokens TokenIssuer
	logger *slog.Logger
}

// NewService creates a new user service instance
func NewService(repo Repository, tokens TokenIssuer, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an account. Email and nickname uniqueness is
// enforced by the database; violations surface as the matching
// sentinel from the repository.
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	nickname := strings.TrimSpace(req.Nickname)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address: %w", ErrInvalidCredentials)
	}
	if nickname == "" {
		return nil, ErrInvalidCredentials
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Email:        email,
		Nickname:     nickname,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "userId", user.ID, "nickname", nickname)
	return user, nil
}

// Login verifies credentials and mints a token pair.
func (s *userService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "userId", user.ID)
	return pair, nil
}

// Refresh rotates the refresh token: the presented token is deleted
// and a new one stored, so a replayed token fails.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	stored, err := s.repo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.repo.DeleteRefreshToken(ctx, refreshToken)
		return nil, ErrInvalidRefreshToken
	}

	if err := s.repo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	pair, err := s.issuePair(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("token refreshed", "userId", stored.UserID)
	return pair, nil
}

// Logout revokes every refresh token the user holds.
func (s *userService) Logout(ctx context.Context, userID int64) error {
	if err := s.repo.DeleteRefreshTokensForUser(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user logged out", "userId", userID)
	return nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) issuePair(ctx context.Context, userID int64) (*TokenPair, error) {
	access, expiresAt, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh := &RefreshToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.repo.SaveRefreshToken(ctx, refresh); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		ExpiresIn:    int64(time.Until(expiresAt).Seconds()),
	}, nil
}
