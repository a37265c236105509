package handler

import (
	"context"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
)

// MockBoardService is a mock implementation of service.BoardService
type MockBoardService struct {
	CreateBoardFunc                 func(ctx context.Context, req *dto.BoardCreateRequest) (*dto.BoardResponse, error)
	GetBoardFunc                    func(ctx context.Context, boardID int64) (*dto.BoardResponse, error)
	GetAllBoardsFunc                func(ctx context.Context) ([]dto.BoardResponse, error)
	GetBoardsByTypeFunc             func(ctx context.Context, boardType domain.BoardType) ([]dto.BoardResponse, error)
	GetBoardsPagedFunc              func(ctx context.Context, page, size int) (*dto.BoardPageResponse, error)
	GetBoardsPagedForUserFunc       func(ctx context.Context, userID int64, page, size int) (*dto.BoardPageResponse, error)
	GetBoardsByTypePagedFunc        func(ctx context.Context, boardType domain.BoardType, page, size int) (*dto.BoardPageResponse, error)
	GetBoardsByTypePagedForUserFunc func(ctx context.Context, userID int64, boardType domain.BoardType, page, size int) (*dto.BoardPageResponse, error)
	UpdateBoardFunc                 func(ctx context.Context, boardID int64, req *dto.BoardUpdateRequest) (*dto.BoardResponse, error)
	DeleteBoardFunc                 func(ctx context.Context, boardID int64) error
	GetBoardStatsFunc               func(ctx context.Context) (*dto.BoardStatsResponse, error)
}

func (m *MockBoardService) CreateBoard(ctx context.Context, req *dto.BoardCreateRequest) (*dto.BoardResponse, error) {
	return m.CreateBoardFunc(ctx, req)
}

func (m *MockBoardService) GetBoard(ctx context.Context, boardID int64) (*dto.BoardResponse, error) {
	return m.GetBoardFunc(ctx, boardID)
}

func (m *MockBoardService) GetAllBoards(ctx context.Context) ([]dto.BoardResponse, error) {
	return m.GetAllBoardsFunc(ctx)
}

func (m *MockBoardService) GetBoardsByType(ctx context.Context, boardType domain.BoardType) ([]dto.BoardResponse, error) {
	return m.GetBoardsByTypeFunc(ctx, boardType)
}

func (m *MockBoardService) GetBoardsPaged(ctx context.Context, page, size int) (*dto.BoardPageResponse, error) {
	return m.GetBoardsPagedFunc(ctx, page, size)
}

func (m *MockBoardService) GetBoardsPagedForUser(ctx context.Context, userID int64, page, size int) (*dto.BoardPageResponse, error) {
	return m.GetBoardsPagedForUserFunc(ctx, userID, page, size)
}

func (m *MockBoardService) GetBoardsByTypePaged(ctx context.Context, boardType domain.BoardType, page, size int) (*dto.BoardPageResponse, error) {
	return m.GetBoardsByTypePagedFunc(ctx, boardType, page, size)
}

func (m *MockBoardService) GetBoardsByTypePagedForUser(ctx context.Context, userID int64, boardType domain.BoardType, page, size int) (*dto.BoardPageResponse, error) {
	return m.GetBoardsByTypePagedForUserFunc(ctx, userID, boardType, page, size)
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, boardID int64, req *dto.BoardUpdateRequest) (*dto.BoardResponse, error) {
	return m.UpdateBoardFunc(ctx, boardID, req)
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, boardID int64) error {
	return m.DeleteBoardFunc(ctx, boardID)
}

func (m *MockBoardService) GetBoardStats(ctx context.Context) (*dto.BoardStatsResponse, error) {
	return m.GetBoardStatsFunc(ctx)
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	CreateCommentFunc        func(ctx context.Context, boardID, authorID int64, req *dto.CommentCreateRequest) (*dto.CommentResponse, error)
	UpdateCommentFunc        func(ctx context.Context, commentID int64, req *dto.CommentUpdateRequest) (*dto.CommentResponse, error)
	DeleteCommentFunc        func(ctx context.Context, commentID int64) error
	GetCommentsByBoardFunc   func(ctx context.Context, boardID int64) ([]dto.CommentResponse, error)
	CountCommentsByBoardFunc func(ctx context.Context, boardID int64) (int64, error)
}

func (m *MockCommentService) CreateComment(ctx context.Context, boardID, authorID int64, req *dto.CommentCreateRequest) (*dto.CommentResponse, error) {
	return m.CreateCommentFunc(ctx, boardID, authorID, req)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID int64, req *dto.CommentUpdateRequest) (*dto.CommentResponse, error) {
	return m.UpdateCommentFunc(ctx, commentID, req)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID int64) error {
	return m.DeleteCommentFunc(ctx, commentID)
}

func (m *MockCommentService) GetCommentsByBoard(ctx context.Context, boardID int64) ([]dto.CommentResponse, error) {
	return m.GetCommentsByBoardFunc(ctx, boardID)
}

func (m *MockCommentService) CountCommentsByBoard(ctx context.Context, boardID int64) (int64, error) {
	return m.CountCommentsByBoardFunc(ctx, boardID)
}

// MockBoardLikeService is a mock implementation of service.BoardLikeService
type MockBoardLikeService struct {
	ToggleLikeFunc    func(ctx context.Context, boardID int64, userIdentifier string) (*dto.LikeStatusResponse, error)
	GetLikeStatusFunc func(ctx context.Context, boardID int64, userIdentifier string) (*dto.LikeStatusResponse, error)
	GetLikeCountFunc  func(ctx context.Context, boardID int64) (int64, error)
}

func (m *MockBoardLikeService) ToggleLike(ctx context.Context, boardID int64, userIdentifier string) (*dto.LikeStatusResponse, error) {
	return m.ToggleLikeFunc(ctx, boardID, userIdentifier)
}

func (m *MockBoardLikeService) GetLikeStatus(ctx context.Context, boardID int64, userIdentifier string) (*dto.LikeStatusResponse, error) {
	return m.GetLikeStatusFunc(ctx, boardID, userIdentifier)
}

func (m *MockBoardLikeService) GetLikeCount(ctx context.Context, boardID int64) (int64, error) {
	return m.GetLikeCountFunc(ctx, boardID)
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	CreateUserFunc func(ctx context.Context, req *dto.UserCreateRequest) (*dto.UserResponse, error)
	GetUserFunc    func(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

func (m *MockUserService) CreateUser(ctx context.Context, req *dto.UserCreateRequest) (*dto.UserResponse, error) {
	return m.CreateUserFunc(ctx, req)
}

func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	return m.GetUserFunc(ctx, userID)
}
