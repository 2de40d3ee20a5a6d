package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) SaveRefreshToken(ctx context.Context, token *RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockUserRepository) GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RefreshToken), args.Error(1)
}

func (m *mockUserRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockUserRepository) DeleteRefreshTokensForUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type staticIssuer struct{}

func (staticIssuer) Issue(userID int64) (string, time.Time, error) {
	return "access-token", time.Now().Add(time.Hour), nil
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
		return u.Email == "kim@example.com" && u.PasswordHash != "hunter2secret"
	})).Return(nil)

	user, err := service.Register(ctx, RegisterRequest{
		Email:    "Kim@Example.com",
		Nickname: "kim",
		Password: "hunter2secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "kim@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2secret")))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "kim@example.com",
		Nickname: "kim",
		Password: "short",
	})

	assert.ErrorIs(t, err, ErrWeakPassword)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(ErrEmailTaken)

	_, err := service.Register(ctx, RegisterRequest{
		Email:    "kim@example.com",
		Nickname: "kim",
		Password: "hunter2secret",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("GetByEmail", ctx, "kim@example.com").
		Return(&User{ID: 1, Email: "kim@example.com", PasswordHash: string(hash)}, nil)

	_, err = service.Login(ctx, LoginRequest{Email: "kim@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, ErrUserNotFound)

	_, err := service.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_IssuesPair(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("GetByEmail", ctx, "kim@example.com").
		Return(&User{ID: 1, Email: "kim@example.com", PasswordHash: string(hash)}, nil)
	repo.On("SaveRefreshToken", ctx, mock.MatchedBy(func(rt *RefreshToken) bool {
		return rt.UserID == 1 && rt.Token != "" && rt.ExpiresAt.After(time.Now())
	})).Return(nil)

	pair, err := service.Login(ctx, LoginRequest{Email: "kim@example.com", Password: "correct-password"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Greater(t, pair.ExpiresIn, int64(0))
	repo.AssertExpectations(t)
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)
	ctx := context.Background()

	repo.On("GetRefreshToken", ctx, "old-token").
		Return(&RefreshToken{Token: "old-token", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	repo.On("DeleteRefreshToken", ctx, "old-token").Return(nil)
	repo.On("SaveRefreshToken", ctx, mock.MatchedBy(func(rt *RefreshToken) bool {
		return rt.Token != "old-token"
	})).Return(nil)

	pair, err := service.Refresh(ctx, "old-token")

	require.NoError(t, err)
	assert.NotEqual(t, "old-token", pair.RefreshToken)
	repo.AssertExpectations(t)
}

func TestUserService_Refresh_ExpiredToken(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)
	ctx := context.Background()

	repo.On("GetRefreshToken", ctx, "stale").
		Return(&RefreshToken{Token: "stale", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}, nil)
	repo.On("DeleteRefreshToken", ctx, "stale").Return(nil)

	_, err := service.Refresh(ctx, "stale")

	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	repo.AssertNotCalled(t, "SaveRefreshToken", mock.Anything, mock.Anything)
}

func TestUserService_Logout_RevokesAll(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewService(repo, staticIssuer{}, nil)
	ctx := context.Background()

	repo.On("DeleteRefreshTokensForUser", ctx, int64(1)).Return(nil)

	require.NoError(t, service.Logout(ctx, 1))
	repo.AssertExpectations(t)
}
