package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user. Email and nickname uniqueness violations
// map to the matching sentinel.
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) error {
	query := `
		INSERT INTO users (email, nickname, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, user.Email, user.Nickname, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "uk_users_email") {
			return users.ErrEmailTaken
		}
		if isUniqueViolation(err, "uk_users_nickname") {
			return users.ErrNicknameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `
		SELECT id, email, nickname, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	query := `
		SELECT id, email, nickname, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *postgresUserRepo) SaveRefreshToken(ctx context.Context, token *users.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, token.Token, token.UserID, token.ExpiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *postgresUserRepo) GetRefreshToken(ctx context.Context, token string) (*users.RefreshToken, error) {
	query := `
		SELECT token, user_id, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var rt users.RefreshToken
	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &rt, nil
}

func (r *postgresUserRepo) DeleteRefreshToken(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *postgresUserRepo) DeleteRefreshTokensForUser(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	return nil
}

func (r *postgresUserRepo) scanUser(row rowScanner) (*users.User, error) {
	var user users.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Nickname, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
