package service

import (
	"context"

	"community-board-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *domain.User) error
	FindByIDFunc         func(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc           func(ctx context.Context, board *domain.Board) error
	FindByIDFunc         func(ctx context.Context, id int64) (*domain.Board, error)
	FindAllFunc          func(ctx context.Context) ([]*domain.Board, error)
	FindByTypeFunc       func(ctx context.Context, boardType domain.BoardType) ([]*domain.Board, error)
	FindAllPagedFunc     func(ctx context.Context, offset, limit int) ([]*domain.Board, int64, error)
	FindByTypePagedFunc  func(ctx context.Context, boardType domain.BoardType, offset, limit int) ([]*domain.Board, int64, error)
	FindByTypesPagedFunc func(ctx context.Context, boardTypes []domain.BoardType, offset, limit int) ([]*domain.Board, int64, error)
	UpdateFunc           func(ctx context.Context, board *domain.Board) error
	DeleteFunc           func(ctx context.Context, id int64) error
	CountByTypeFunc      func(ctx context.Context) (map[domain.BoardType]int64, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id int64) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindAll(ctx context.Context) ([]*domain.Board, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByType(ctx context.Context, boardType domain.BoardType) ([]*domain.Board, error) {
	if m.FindByTypeFunc != nil {
		return m.FindByTypeFunc(ctx, boardType)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindAllPaged(ctx context.Context, offset, limit int) ([]*domain.Board, int64, error) {
	if m.FindAllPagedFunc != nil {
		return m.FindAllPagedFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *MockBoardRepository) FindByTypePaged(ctx context.Context, boardType domain.BoardType, offset, limit int) ([]*domain.Board, int64, error) {
	if m.FindByTypePagedFunc != nil {
		return m.FindByTypePagedFunc(ctx, boardType, offset, limit)
	}
	return nil, 0, nil
}

func (m *MockBoardRepository) FindByTypesPaged(ctx context.Context, boardTypes []domain.BoardType, offset, limit int) ([]*domain.Board, int64, error) {
	if m.FindByTypesPagedFunc != nil {
		return m.FindByTypesPagedFunc(ctx, boardTypes, offset, limit)
	}
	return nil, 0, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) CountByType(ctx context.Context) (map[domain.BoardType]int64, error) {
	if m.CountByTypeFunc != nil {
		return m.CountByTypeFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc             func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc           func(ctx context.Context, id int64) (*domain.Comment, error)
	FindByBoardIDFunc      func(ctx context.Context, boardID int64) ([]*domain.Comment, error)
	FindIDsByParentIDsFunc func(ctx context.Context, parentIDs []int64) ([]int64, error)
	UpdateFunc             func(ctx context.Context, comment *domain.Comment) error
	DeleteBatchFunc        func(ctx context.Context, ids []int64) error
	CountByBoardIDFunc     func(ctx context.Context, boardID int64) (int64, error)
	CountByBoardIDsFunc    func(ctx context.Context, boardIDs []int64) (map[int64]int64, error)
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByBoardID(ctx context.Context, boardID int64) ([]*domain.Comment, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindIDsByParentIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	if m.FindIDsByParentIDsFunc != nil {
		return m.FindIDsByParentIDsFunc(ctx, parentIDs)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) DeleteBatch(ctx context.Context, ids []int64) error {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ctx, ids)
	}
	return nil
}

func (m *MockCommentRepository) CountByBoardID(ctx context.Context, boardID int64) (int64, error) {
	if m.CountByBoardIDFunc != nil {
		return m.CountByBoardIDFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockCommentRepository) CountByBoardIDs(ctx context.Context, boardIDs []int64) (map[int64]int64, error) {
	if m.CountByBoardIDsFunc != nil {
		return m.CountByBoardIDsFunc(ctx, boardIDs)
	}
	return nil, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockBoardLikeRepository is a mock implementation of BoardLikeRepository
type MockBoardLikeRepository struct {
	CreateFunc               func(ctx context.Context, like *domain.BoardLike) error
	FindByBoardAndUserFunc   func(ctx context.Context, boardID int64, userIdentifier string) (*domain.BoardLike, error)
	ExistsByBoardAndUserFunc func(ctx context.Context, boardID int64, userIdentifier string) (bool, error)
	DeleteFunc               func(ctx context.Context, id int64) error
	CountByBoardIDFunc       func(ctx context.Context, boardID int64) (int64, error)
	CountByBoardIDsFunc      func(ctx context.Context, boardIDs []int64) (map[int64]int64, error)
	CountFunc                func(ctx context.Context) (int64, error)
}

func (m *MockBoardLikeRepository) Create(ctx context.Context, like *domain.BoardLike) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, like)
	}
	return nil
}

func (m *MockBoardLikeRepository) FindByBoardAndUser(ctx context.Context, boardID int64, userIdentifier string) (*domain.BoardLike, error) {
	if m.FindByBoardAndUserFunc != nil {
		return m.FindByBoardAndUserFunc(ctx, boardID, userIdentifier)
	}
	return nil, nil
}

func (m *MockBoardLikeRepository) ExistsByBoardAndUser(ctx context.Context, boardID int64, userIdentifier string) (bool, error) {
	if m.ExistsByBoardAndUserFunc != nil {
		return m.ExistsByBoardAndUserFunc(ctx, boardID, userIdentifier)
	}
	return false, nil
}

func (m *MockBoardLikeRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardLikeRepository) CountByBoardID(ctx context.Context, boardID int64) (int64, error) {
	if m.CountByBoardIDFunc != nil {
		return m.CountByBoardIDFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockBoardLikeRepository) CountByBoardIDs(ctx context.Context, boardIDs []int64) (map[int64]int64, error) {
	if m.CountByBoardIDsFunc != nil {
		return m.CountByBoardIDsFunc(ctx, boardIDs)
	}
	return nil, nil
}

func (m *MockBoardLikeRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}
