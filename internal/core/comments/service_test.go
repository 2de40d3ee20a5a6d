package comments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Agora/internal/core/boards"
)

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) ListRootsByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *mockCommentRepository) ListRepliesByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *mockCommentRepository) UpdateContent(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) SoftDelete(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) MarkSelected(ctx context.Context, commentID, postID int64, selectedAt time.Time) error {
	args := m.Called(ctx, commentID, postID, selectedAt)
	return args.Error(0)
}

func (m *mockCommentRepository) ClearSelected(ctx context.Context, commentID, postID int64) error {
	args := m.Called(ctx, commentID, postID)
	return args.Error(0)
}

type mockPostStore struct {
	mock.Mock
}

func (m *mockPostStore) GetPostMeta(ctx context.Context, postID int64) (*PostMeta, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PostMeta), args.Error(1)
}

func livePost(id int64, authorID int64, boardType boards.Type) *PostMeta {
	return &PostMeta{ID: id, AuthorID: authorID, BoardType: boardType}
}

func TestCommentService_Create_RootComment(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 9, boards.TypeGeneral), nil)
	repo.On("Create", ctx, mock.MatchedBy(func(c *Comment) bool {
		return c.PostID == 1 && c.AuthorID == 5 && c.Depth == 0 && c.ParentID == nil
	})).Return(nil)

	comment, err := service.Create(ctx, 1, 5, CreateCommentRequest{Content: "first"})

	require.NoError(t, err)
	assert.Equal(t, 0, comment.Depth)
	repo.AssertExpectations(t)
}

func TestCommentService_Create_Reply(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	parentID := int64(3)
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 9, boards.TypeGeneral), nil)
	repo.On("GetByID", ctx, parentID).Return(&Comment{ID: parentID, PostID: 1, Depth: 0}, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(c *Comment) bool {
		return c.Depth == 1 && c.ParentID != nil && *c.ParentID == parentID
	})).Return(nil)

	comment, err := service.Create(ctx, 1, 5, CreateCommentRequest{Content: "reply", ParentID: &parentID})

	require.NoError(t, err)
	assert.Equal(t, 1, comment.Depth)
}

func TestCommentService_Create_ReplyToReplyRejected(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	rootID := int64(3)
	parentID := int64(4)
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 9, boards.TypeGeneral), nil)
	repo.On("GetByID", ctx, parentID).Return(&Comment{ID: parentID, PostID: 1, ParentID: &rootID, Depth: 1}, nil)

	_, err := service.Create(ctx, 1, 5, CreateCommentRequest{Content: "too deep", ParentID: &parentID})

	assert.ErrorIs(t, err, ErrDepthExceeded)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Create_ParentOnAnotherPost(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	parentID := int64(3)
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 9, boards.TypeGeneral), nil)
	repo.On("GetByID", ctx, parentID).Return(&Comment{ID: parentID, PostID: 2, Depth: 0}, nil)

	_, err := service.Create(ctx, 1, 5, CreateCommentRequest{Content: "wrong thread", ParentID: &parentID})

	assert.ErrorIs(t, err, ErrParentMismatch)
}

func TestCommentService_Create_DeletedParent(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	parentID := int64(3)
	deletedAt := time.Now()
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 9, boards.TypeGeneral), nil)
	repo.On("GetByID", ctx, parentID).Return(&Comment{ID: parentID, PostID: 1, DeletedAt: &deletedAt}, nil)

	_, err := service.Create(ctx, 1, 5, CreateCommentRequest{Content: "orphan", ParentID: &parentID})

	assert.ErrorIs(t, err, ErrParentDeleted)
}

func TestCommentService_Create_MissingParent(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	parentID := int64(404)
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 9, boards.TypeGeneral), nil)
	repo.On("GetByID", ctx, parentID).Return(nil, ErrCommentNotFound)

	_, err := service.Create(ctx, 1, 5, CreateCommentRequest{Content: "ghost", ParentID: &parentID})

	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestCommentService_Create_DeletedPost(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	store.On("GetPostMeta", ctx, int64(1)).Return(&PostMeta{ID: 1, Deleted: true}, nil)

	_, err := service.Create(ctx, 1, 5, CreateCommentRequest{Content: "late"})

	assert.ErrorIs(t, err, ErrPostDeleted)
}

func TestCommentService_ListForPost_GroupsReplies(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	rootA := &Comment{ID: 1, PostID: 1, AuthorID: 5}
	rootB := &Comment{ID: 2, PostID: 1, AuthorID: 6}
	parentA := int64(1)
	parentB := int64(2)
	replies := []*Comment{
		{ID: 3, PostID: 1, ParentID: &parentA, Depth: 1},
		{ID: 4, PostID: 1, ParentID: &parentB, Depth: 1},
		{ID: 5, PostID: 1, ParentID: &parentA, Depth: 1},
	}

	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 9, boards.TypeGeneral), nil)
	repo.On("ListRootsByPost", ctx, int64(1)).Return([]*Comment{rootA, rootB}, nil)
	repo.On("ListRepliesByPost", ctx, int64(1)).Return(replies, nil)

	views, err := service.ListForPost(ctx, 1, 0)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Len(t, views[0].Replies, 2)
	assert.Len(t, views[1].Replies, 1)
	assert.Equal(t, int64(3), views[0].Replies[0].ID)
	assert.Equal(t, int64(5), views[0].Replies[1].ID)
}

func TestCommentService_ListForPost_AnonymousAuthorHidden(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	root := &Comment{ID: 1, PostID: 1, AuthorID: 5, IsAnonymous: true}
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 9, boards.TypeGeneral), nil)
	repo.On("ListRootsByPost", ctx, int64(1)).Return([]*Comment{root}, nil)
	repo.On("ListRepliesByPost", ctx, int64(1)).Return([]*Comment{}, nil)

	views, err := service.ListForPost(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), views[0].AuthorID)
	assert.False(t, views[0].IsMine)

	ownViews, err := service.ListForPost(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), ownViews[0].AuthorID)
	assert.True(t, ownViews[0].IsMine)
}

func TestCommentService_Update_NotAuthor(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&Comment{ID: 1, PostID: 1, AuthorID: 5}, nil)

	_, err := service.Update(ctx, 1, 6, UpdateCommentRequest{Content: "edit"})

	assert.ErrorIs(t, err, ErrNotAuthor)
}

func TestCommentService_Update_VersionConflict(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&Comment{ID: 1, PostID: 1, AuthorID: 5, Version: 2}, nil)
	repo.On("UpdateContent", ctx, mock.Anything).Return(ErrVersionConflict)

	_, err := service.Update(ctx, 1, 5, UpdateCommentRequest{Content: "edit"})

	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestCommentService_Delete_AlreadyDeleted(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	deletedAt := time.Now()
	repo.On("GetByID", ctx, int64(1)).Return(&Comment{ID: 1, AuthorID: 5, DeletedAt: &deletedAt}, nil)

	err := service.Delete(ctx, 1, 5)

	assert.ErrorIs(t, err, ErrCommentDeleted)
	repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestCommentService_Select_HappyPath(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(3)).Return(&Comment{ID: 3, PostID: 1, AuthorID: 6}, nil)
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 5, boards.TypeQnA), nil)
	repo.On("MarkSelected", ctx, int64(3), int64(1), mock.AnythingOfType("time.Time")).Return(nil)

	err := service.Select(ctx, 3, 5)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCommentService_Select_ErrorPrecedence(t *testing.T) {
	ctx := context.Background()
	deletedAt := time.Now()

	tests := []struct {
		name     string
		comment  *Comment
		post     *PostMeta
		actorID  int64
		expected error
	}{
		{
			name:     "deleted comment wins over board type",
			comment:  &Comment{ID: 3, PostID: 1, AuthorID: 6, DeletedAt: &deletedAt},
			post:     livePost(1, 5, boards.TypeGeneral),
			actorID:  5,
			expected: ErrCommentDeleted,
		},
		{
			name:     "board type wins over self-selection",
			comment:  &Comment{ID: 3, PostID: 1, AuthorID: 5},
			post:     livePost(1, 5, boards.TypeGeneral),
			actorID:  5,
			expected: ErrNotQnABoard,
		},
		{
			name:     "self-selection wins over post ownership",
			comment:  &Comment{ID: 3, PostID: 1, AuthorID: 7},
			post:     livePost(1, 5, boards.TypeQnA),
			actorID:  7,
			expected: ErrSelectOwnComment,
		},
		{
			name:     "post ownership wins over existing selection",
			comment:  &Comment{ID: 3, PostID: 1, AuthorID: 6},
			post:     &PostMeta{ID: 1, AuthorID: 5, BoardType: boards.TypeQnA, SelectedCommentID: ptr(int64(9))},
			actorID:  7,
			expected: ErrNotPostAuthor,
		},
		{
			name:     "existing selection checked last",
			comment:  &Comment{ID: 3, PostID: 1, AuthorID: 6},
			post:     &PostMeta{ID: 1, AuthorID: 5, BoardType: boards.TypeQnA, SelectedCommentID: ptr(int64(9))},
			actorID:  5,
			expected: ErrAlreadySelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockCommentRepository)
			store := new(mockPostStore)
			service := NewService(repo, store, nil)

			repo.On("GetByID", ctx, tt.comment.ID).Return(tt.comment, nil)
			store.On("GetPostMeta", ctx, tt.post.ID).Return(tt.post, nil)

			err := service.Select(ctx, tt.comment.ID, tt.actorID)

			assert.ErrorIs(t, err, tt.expected)
			repo.AssertNotCalled(t, "MarkSelected", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCommentService_Unselect_ThenReselect(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	selected := &Comment{ID: 3, PostID: 1, AuthorID: 6, IsSelected: true}
	repo.On("GetByID", ctx, int64(3)).Return(selected, nil)
	store.On("GetPostMeta", ctx, int64(1)).
		Return(&PostMeta{ID: 1, AuthorID: 5, BoardType: boards.TypeQnA, SelectedCommentID: ptr(int64(3))}, nil).Once()
	repo.On("ClearSelected", ctx, int64(3), int64(1)).Return(nil)

	require.NoError(t, service.Unselect(ctx, 3, 5))

	// After unselecting, a different comment can be selected.
	other := &Comment{ID: 4, PostID: 1, AuthorID: 7}
	repo.On("GetByID", ctx, int64(4)).Return(other, nil)
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 5, boards.TypeQnA), nil)
	repo.On("MarkSelected", ctx, int64(4), int64(1), mock.AnythingOfType("time.Time")).Return(nil)

	require.NoError(t, service.Select(ctx, 4, 5))
	repo.AssertExpectations(t)
}

func TestCommentService_Unselect_NotSelected(t *testing.T) {
	repo := new(mockCommentRepository)
	store := new(mockPostStore)
	service := NewService(repo, store, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(3)).Return(&Comment{ID: 3, PostID: 1, AuthorID: 6}, nil)
	store.On("GetPostMeta", ctx, int64(1)).Return(livePost(1, 5, boards.TypeQnA), nil)

	err := service.Unselect(ctx, 3, 5)

	assert.ErrorIs(t, err, ErrNotSelected)
}

func ptr[T any](v T) *T {
	return &v
}
