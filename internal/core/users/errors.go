package users

import "errors"

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already in use")

	// ErrNicknameTaken indicates the nickname is already registered
	ErrNicknameTaken = errors.New("nickname already in use")

	// ErrInvalidCredentials indicates the email/password pair didn't match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRefreshToken indicates the refresh token is unknown or expired
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

	// ErrWeakPassword indicates the password fails the minimum policy
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)
