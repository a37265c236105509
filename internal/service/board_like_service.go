package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// likeCountCacheTTL bounds staleness when a count is mutated by another
// instance that cannot reach the cache.
const likeCountCacheTTL = 5 * time.Minute

func likeCountCacheKey(boardID int64) string {
	return fmt.Sprintf("board:%d:like_count", boardID)
}

// BoardLikeService defines the interface for board like business logic.
// Likes are keyed by a caller-supplied user identifier, not by the users
// table, so anonymous visitors can like boards too.
type BoardLikeService interface {
	ToggleLike(ctx context.Context, boardID int64, userIdentifier string) (*dto.LikeStatusResponse, error)
	GetLikeStatus(ctx context.Context, boardID int64, userIdentifier string) (*dto.LikeStatusResponse, error)
	GetLikeCount(ctx context.Context, boardID int64) (int64, error)
}

// boardLikeServiceImpl is the implementation of BoardLikeService
type boardLikeServiceImpl struct {
	likeRepo  repository.BoardLikeRepository
	boardRepo repository.BoardRepository
	cache     *redis.Client
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBoardLikeService creates a new instance of BoardLikeService.
// cache may be nil, in which case every count goes to the database.
func NewBoardLikeService(
	likeRepo repository.BoardLikeRepository,
	boardRepo repository.BoardRepository,
	cache *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardLikeService {
	return &boardLikeServiceImpl{
		likeRepo:  likeRepo,
		boardRepo: boardRepo,
		cache:     cache,
		metrics:   m,
		logger:    logger,
	}
}

// ToggleLike flips the like state of one user for one board and returns the
// resulting state with the refreshed count.
func (s *boardLikeServiceImpl) ToggleLike(ctx context.Context, boardID int64, userIdentifier string) (*dto.LikeStatusResponse, error) {
	_, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	existing, err := s.likeRepo.FindByBoardAndUser(ctx, boardID, userIdentifier)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check like state", err.Error())
	}

	liked := existing == nil
	if existing != nil {
		if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to remove like", err.Error())
		}
	} else {
		like := &domain.BoardLike{BoardID: boardID, UserIdentifier: userIdentifier}
		if err := s.likeRepo.Create(ctx, like); err != nil {
			// 동시 토글 경합으로 유니크 제약에 걸린 경우 이미 좋아요 상태로 본다
			if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
				liked = true
			} else {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save like", err.Error())
			}
		}
	}

	count, err := s.likeRepo.CountByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}
	s.storeLikeCount(ctx, boardID, count)

	if s.metrics != nil {
		action := "liked"
		if !liked {
			action = "unliked"
		}
		s.metrics.IncrementLikeToggled(action)
	}

	return &dto.LikeStatusResponse{Liked: liked, LikeCount: count}, nil
}

// GetLikeStatus reports whether the identifier has liked the board, with the
// current count. The board itself is not resolved here.
func (s *boardLikeServiceImpl) GetLikeStatus(ctx context.Context, boardID int64, userIdentifier string) (*dto.LikeStatusResponse, error) {
	exists, err := s.likeRepo.ExistsByBoardAndUser(ctx, boardID, userIdentifier)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check like state", err.Error())
	}

	count, err := s.GetLikeCount(ctx, boardID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeStatusResponse{Liked: exists, LikeCount: count}, nil
}

// GetLikeCount returns the like count for a board, read through the cache
// when one is configured.
func (s *boardLikeServiceImpl) GetLikeCount(ctx context.Context, boardID int64) (int64, error) {
	if s.cache != nil {
		val, err := s.cache.Get(ctx, likeCountCacheKey(boardID)).Int64()
		if err == nil {
			if s.metrics != nil {
				s.metrics.IncrementCacheRequest("like_count", "hit")
			}
			return val, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Like count cache read failed",
				zap.Int64("board_id", boardID),
				zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.IncrementCacheRequest("like_count", "miss")
		}
	}

	count, err := s.likeRepo.CountByBoardID(ctx, boardID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}
	s.storeLikeCount(ctx, boardID, count)
	return count, nil
}

// storeLikeCount writes the count through to the cache, tolerating cache
// failures.
func (s *boardLikeServiceImpl) storeLikeCount(ctx context.Context, boardID int64, count int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, likeCountCacheKey(boardID), count, likeCountCacheTTL).Err(); err != nil {
		s.logger.Warn("Like count cache write failed",
			zap.Int64("board_id", boardID),
			zap.Error(err))
	}
}
