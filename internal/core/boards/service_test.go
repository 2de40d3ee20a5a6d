package boards

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBoardRepository struct {
	mock.Mock
}

func (m *mockBoardRepository) GetByID(ctx context.Context, id int64) (*Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Board), args.Error(1)
}

func (m *mockBoardRepository) GetBySlug(ctx context.Context, slug string) (*Board, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Board), args.Error(1)
}

func (m *mockBoardRepository) List(ctx context.Context) ([]*Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Board), args.Error(1)
}

func TestBoardService_RequireWritable(t *testing.T) {
	repo := new(mockBoardRepository)
	service := NewService(repo, nil)
	ctx := context.Background()

	repo.On("GetBySlug", ctx, "free").Return(&Board{ID: 1, Slug: "free", Type: TypeGeneral, IsActive: true}, nil)
	repo.On("GetBySlug", ctx, "archive").Return(&Board{ID: 2, Slug: "archive", Type: TypeGeneral}, nil)
	repo.On("GetBySlug", ctx, "ghost").Return(nil, ErrBoardNotFound)

	board, err := service.RequireWritable(ctx, "free")
	require.NoError(t, err)
	assert.Equal(t, int64(1), board.ID)

	_, err = service.RequireWritable(ctx, "archive")
	assert.ErrorIs(t, err, ErrBoardNotActive)

	_, err = service.RequireWritable(ctx, "ghost")
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestType_Valid(t *testing.T) {
	for _, boardType := range []Type{TypeGeneral, TypeGallery, TypeMarket, TypeQnA} {
		assert.True(t, boardType.Valid(), "type %s", boardType)
	}
	assert.False(t, Type("POLL").Valid())
	assert.False(t, Type("").Valid())
}
