package repository

import (
	"context"

	"gorm.io/gorm"

	"community-board-api/internal/domain"
)

// CommentRepository defines the interface for comment data access.
// The reply tree is stored as an adjacency list: FindIDsByParentIDs
// resolves one level of children so callers can walk the tree
// breadth-first, and DeleteBatch removes a collected subtree in a
// single statement.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FindByBoardID(ctx context.Context, boardID int64) ([]*domain.Comment, error)
	FindIDsByParentIDs(ctx context.Context, parentIDs []int64) ([]int64, error)
	Update(ctx context.Context, comment *domain.Comment) error
	DeleteBatch(ctx context.Context, ids []int64) error
	CountByBoardID(ctx context.Context, boardID int64) (int64, error)
	CountByBoardIDs(ctx context.Context, boardIDs []int64) (map[int64]int64, error)
	Count(ctx context.Context) (int64, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create persists a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a comment by its ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByBoardID returns every comment on the board at all depths,
// ordered by creation time then id, with authors attached. Tree
// assembly happens in the service layer.
func (r *commentRepositoryImpl) FindByBoardID(ctx context.Context, boardID int64) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("board_id = ?", boardID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindIDsByParentIDs returns the ids of all direct children of the
// given parents (one tree level)
func (r *commentRepositoryImpl) FindIDsByParentIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	if len(parentIDs) == 0 {
		return []int64{}, nil
	}

	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("parent_id IN ?", parentIDs).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Update saves the full comment row
func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return err
	}
	return nil
}

// DeleteBatch removes the given comments in one atomic statement
func (r *commentRepositoryImpl) DeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	return nil
}

// CountByBoardID returns the flat comment count for a board across
// all depths
func (r *commentRepositoryImpl) CountByBoardID(ctx context.Context, boardID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("board_id = ?", boardID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByBoardIDs returns per-board comment counts in one query
func (r *commentRepositoryImpl) CountByBoardIDs(ctx context.Context, boardIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(boardIDs))
	if len(boardIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		BoardID int64
		Count   int64
	}
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
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

// Count returns the total number of comments
func (r *commentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
