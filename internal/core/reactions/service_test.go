package reactions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReactionRepository struct {
	mock.Mock
}

func (m *mockReactionRepository) GetByUserAndTarget(ctx context.Context, userID int64, targetType TargetType, targetID int64) (*Reaction, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reaction), args.Error(1)
}

func (m *mockReactionRepository) Create(ctx context.Context, reaction *Reaction) (*Counts, error) {
	args := m.Called(ctx, reaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Counts), args.Error(1)
}

func (m *mockReactionRepository) Cancel(ctx context.Context, reaction *Reaction) (*Counts, error) {
	args := m.Called(ctx, reaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Counts), args.Error(1)
}

func (m *mockReactionRepository) Switch(ctx context.Context, reaction *Reaction, newType Type) (*Counts, error) {
	args := m.Called(ctx, reaction, newType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Counts), args.Error(1)
}

type mockTargetStore struct {
	mock.Mock
}

func (m *mockTargetStore) GetTarget(ctx context.Context, targetType TargetType, targetID int64) (*Target, error) {
	args := m.Called(ctx, targetType, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Target), args.Error(1)
}

func newTestService(repo Repository, targets TargetStore) Service {
	return NewService(repo, targets, nil)
}

func TestReactionService_React_FirstReactionCreates(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	targets.On("GetTarget", ctx, TargetPost, int64(10)).
		Return(&Target{ID: 10, OwnerID: 2, LikeCount: 3, DislikeCount: 1}, nil)
	repo.On("GetByUserAndTarget", ctx, int64(1), TargetPost, int64(10)).
		Return(nil, ErrReactionNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(r *Reaction) bool {
		return r.UserID == 1 && r.TargetID == 10 && r.Type == TypeLike
	})).Return(&Counts{LikeCount: 4, DislikeCount: 1}, nil)

	resp, err := service.React(ctx, 1, TargetPost, 10, TypeLike)

	require.NoError(t, err)
	require.NotNil(t, resp.MyReaction)
	assert.Equal(t, TypeLike, *resp.MyReaction)
	assert.Equal(t, 4, resp.LikeCount)
	assert.Equal(t, 1, resp.DislikeCount)
	assert.Equal(t, int64(10), resp.TargetID)
	repo.AssertExpectations(t)
}

func TestReactionService_React_SameTypeCancels(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	existing := &Reaction{ID: 7, UserID: 1, TargetType: TargetPost, TargetID: 10, Type: TypeLike}

	targets.On("GetTarget", ctx, TargetPost, int64(10)).
		Return(&Target{ID: 10, OwnerID: 2, LikeCount: 4}, nil)
	repo.On("GetByUserAndTarget", ctx, int64(1), TargetPost, int64(10)).
		Return(existing, nil)
	repo.On("Cancel", ctx, existing).Return(&Counts{LikeCount: 3, DislikeCount: 0}, nil)

	resp, err := service.React(ctx, 1, TargetPost, 10, TypeLike)

	require.NoError(t, err)
	assert.Nil(t, resp.MyReaction)
	assert.Equal(t, 3, resp.LikeCount)
	repo.AssertExpectations(t)
}

func TestReactionService_React_DifferentTypeSwitches(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	existing := &Reaction{ID: 7, UserID: 1, TargetType: TargetComment, TargetID: 5, Type: TypeLike}

	targets.On("GetTarget", ctx, TargetComment, int64(5)).
		Return(&Target{ID: 5, OwnerID: 2, LikeCount: 1, DislikeCount: 0}, nil)
	repo.On("GetByUserAndTarget", ctx, int64(1), TargetComment, int64(5)).
		Return(existing, nil)
	repo.On("Switch", ctx, existing, TypeDislike).
		Return(&Counts{LikeCount: 0, DislikeCount: 1}, nil)

	resp, err := service.React(ctx, 1, TargetComment, 5, TypeDislike)

	require.NoError(t, err)
	require.NotNil(t, resp.MyReaction)
	assert.Equal(t, TypeDislike, *resp.MyReaction)
	assert.Equal(t, 0, resp.LikeCount)
	assert.Equal(t, 1, resp.DislikeCount)
	repo.AssertExpectations(t)
}

func TestReactionService_React_SwitchConservesTotal(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	existing := &Reaction{ID: 3, UserID: 1, TargetType: TargetPost, TargetID: 9, Type: TypeDislike}
	before := &Target{ID: 9, OwnerID: 2, LikeCount: 5, DislikeCount: 2}

	targets.On("GetTarget", ctx, TargetPost, int64(9)).Return(before, nil)
	repo.On("GetByUserAndTarget", ctx, int64(1), TargetPost, int64(9)).Return(existing, nil)
	repo.On("Switch", ctx, existing, TypeLike).
		Return(&Counts{LikeCount: 6, DislikeCount: 1}, nil)

	resp, err := service.React(ctx, 1, TargetPost, 9, TypeLike)

	require.NoError(t, err)
	assert.Equal(t, before.LikeCount+before.DislikeCount, resp.LikeCount+resp.DislikeCount)
}

func TestReactionService_React_OwnContentRejected(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	targets.On("GetTarget", ctx, TargetPost, int64(10)).
		Return(&Target{ID: 10, OwnerID: 1, LikeCount: 2}, nil)

	_, err := service.React(ctx, 1, TargetPost, 10, TypeLike)

	assert.ErrorIs(t, err, ErrOwnContent)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Switch", mock.Anything, mock.Anything, mock.Anything)
}

func TestReactionService_React_DeletedTarget(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	targets.On("GetTarget", ctx, TargetComment, int64(8)).
		Return(&Target{ID: 8, OwnerID: 2, Deleted: true}, nil)

	_, err := service.React(ctx, 1, TargetComment, 8, TypeDislike)

	assert.ErrorIs(t, err, ErrTargetDeleted)
	repo.AssertNotCalled(t, "GetByUserAndTarget", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReactionService_React_TargetNotFound(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	targets.On("GetTarget", ctx, TargetPost, int64(404)).
		Return(nil, ErrTargetNotFound)

	_, err := service.React(ctx, 1, TargetPost, 404, TypeLike)

	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestReactionService_React_InvalidInputs(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	_, err := service.React(ctx, 1, TargetPost, 10, Type("UPVOTE"))
	assert.ErrorIs(t, err, ErrInvalidReactionType)

	_, err = service.React(ctx, 1, TargetType("BOARD"), 10, TypeLike)
	assert.ErrorIs(t, err, ErrInvalidTargetType)

	targets.AssertNotCalled(t, "GetTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestReactionService_React_DuplicateRace(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	targets.On("GetTarget", ctx, TargetPost, int64(10)).
		Return(&Target{ID: 10, OwnerID: 2}, nil)
	repo.On("GetByUserAndTarget", ctx, int64(1), TargetPost, int64(10)).
		Return(nil, ErrReactionNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil, ErrDuplicateReaction)

	_, err := service.React(ctx, 1, TargetPost, 10, TypeLike)

	assert.ErrorIs(t, err, ErrDuplicateReaction)
}

func TestReactionService_Get_NoneIsNil(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	repo.On("GetByUserAndTarget", ctx, int64(1), TargetPost, int64(10)).
		Return(nil, ErrReactionNotFound)

	reaction, err := service.Get(ctx, 1, TargetPost, 10)

	require.NoError(t, err)
	assert.Nil(t, reaction)
}

func TestReactionService_Get_ReturnsExisting(t *testing.T) {
	repo := new(mockReactionRepository)
	targets := new(mockTargetStore)
	service := newTestService(repo, targets)
	ctx := context.Background()

	existing := &Reaction{ID: 1, UserID: 1, TargetType: TargetComment, TargetID: 3, Type: TypeDislike}
	repo.On("GetByUserAndTarget", ctx, int64(1), TargetComment, int64(3)).
		Return(existing, nil)

	reaction, err := service.Get(ctx, 1, TargetComment, 3)

	require.NoError(t, err)
	assert.Equal(t, TypeDislike, reaction.Type)
}
