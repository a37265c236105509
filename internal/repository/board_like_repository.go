package repository

import (
	"context"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// BoardLikeRepository defines the interface for board like data access
type BoardLikeRepository interface {
	Create(ctx context.Context, like *domain.BoardLike) error
	FindByBoardAndUser(ctx context.Context, boardID int64, userIdentifier string) (*domain.BoardLike, error)
	ExistsByBoardAndUser(ctx context.Context, boardID int64, userIdentifier string) (bool, error)
	Delete(ctx context.Context, id int64) error
	CountByBoardID(ctx context.Context, boardID int64) (int64, error)
	CountByBoardIDs(ctx context.Context, boardIDs []int64) (map[int64]int64, error)
	Count(ctx context.Context) (int64, error)
}

// boardLikeRepositoryImpl is the GORM implementation of BoardLikeRepository
type boardLikeRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardLikeRepository creates a new instance of BoardLikeRepository
func NewBoardLikeRepository(db *gorm.DB) BoardLikeRepository {
	return &boardLikeRepositoryImpl{db: db}
}

// Create persists a new like
func (r *boardLikeRepositoryImpl) Create(ctx context.Context, like *domain.BoardLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return err
	}
	return nil
}

// FindByBoardAndUser finds the like one user identifier holds on a board
func (r *boardLikeRepositoryImpl) FindByBoardAndUser(ctx context.Context, boardID int64, userIdentifier string) (*domain.BoardLike, error) {
	var like domain.BoardLike
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_identifier = ?", boardID, userIdentifier).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// ExistsByBoardAndUser reports whether the user identifier liked the board
func (r *boardLikeRepositoryImpl) ExistsByBoardAndUser(ctx context.Context, boardID int64, userIdentifier string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.BoardLike{}).
		Where("board_id = ? AND user_identifier = ?", boardID, userIdentifier).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a like row
func (r *boardLikeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.BoardLike{}, id).Error; err != nil {
		return err
	}
	return nil
}

// CountByBoardID returns the like count for a board
func (r *boardLikeRepositoryImpl) CountByBoardID(ctx context.Context, boardID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.BoardLike{}).
		Where("board_id = ?", boardID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByBoardIDs returns per-board like counts in one query
func (r *boardLikeRepositoryImpl) CountByBoardIDs(ctx context.Context, boardIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(boardIDs))
	if len(boardIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		BoardID int64
		Count   int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.BoardLike{}).
		Select("board_id, COUNT(*) AS count").
		Where("board_id IN ?", boardIDs).
		Group("board_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.BoardID] = row.Count
	}
	return counts, nil
}

// Count returns the total number of likes
func (r *boardLikeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.BoardLike{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
