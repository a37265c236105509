package repository

import (
	"context"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// BoardRepository defines the interface for board data access.
// Paged finders return the window plus the total row count for the
// same filter so the service can build the page envelope; listings
// are ordered by id descending (creation order, newest first).
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id int64) (*domain.Board, error)
	FindAll(ctx context.Context) ([]*domain.Board, error)
	FindByType(ctx context.Context, boardType domain.BoardType) ([]*domain.Board, error)
	FindAllPaged(ctx context.Context, offset, limit int) ([]*domain.Board, int64, error)
	FindByTypePaged(ctx context.Context, boardType domain.BoardType, offset, limit int) ([]*domain.Board, int64, error)
	FindByTypesPaged(ctx context.Context, boardTypes []domain.BoardType, offset, limit int) ([]*domain.Board, int64, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id int64) error
	CountByType(ctx context.Context) (map[domain.BoardType]int64, error)
	Count(ctx context.Context) (int64, error)
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create persists a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a board by its ID with the author attached
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Author").
		First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindAll returns every board, newest first
func (r *boardRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// FindByType returns every board of one type, newest first
func (r *boardRepositoryImpl) FindByType(ctx context.Context, boardType domain.BoardType) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("board_type = ?", boardType).
		Order("id DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// FindAllPaged returns one window over all boards plus the total count
func (r *boardRepositoryImpl) FindAllPaged(ctx context.Context, offset, limit int) ([]*domain.Board, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Board{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&boards).Error; err != nil {
		return nil, 0, err
	}
	return boards, total, nil
}

// FindByTypePaged returns one window over a single category plus the total count
func (r *boardRepositoryImpl) FindByTypePaged(ctx context.Context, boardType domain.BoardType, offset, limit int) ([]*domain.Board, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("board_type = ?", boardType).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("board_type = ?", boardType).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&boards).Error; err != nil {
		return nil, 0, err
	}
	return boards, total, nil
}

// FindByTypesPaged returns one window over the given categories plus the total count
func (r *boardRepositoryImpl) FindByTypesPaged(ctx context.Context, boardTypes []domain.BoardType, offset, limit int) ([]*domain.Board, int64, error) {
	if len(boardTypes) == 0 {
		return []*domain.Board{}, 0, nil
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("board_type IN ?", boardTypes).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("board_type IN ?", boardTypes).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&boards).Error; err != nil {
		return nil, 0, err
	}
	return boards, total, nil
}

// Update saves the full board row
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	if err := r.db.WithContext(ctx).Save(board).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes a board row; comments and likes are handled by the
// schema-level FK cascade, never here
func (r *boardRepositoryImpl) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Board{}, id).Error; err != nil {
		return err
	}
	return nil
}

// CountByType returns the board count per category
func (r *boardRepositoryImpl) CountByType(ctx context.Context) (map[domain.BoardType]int64, error) {
	var rows []struct {
		BoardType domain.BoardType
		Count     int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Select("board_type, COUNT(*) AS count").
		Group("board_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.BoardType]int64, len(rows))
	for _, row := range rows {
		counts[row.BoardType] = row.Count
	}
	return counts, nil
}

// Count returns the total number of boards
func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Board{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
