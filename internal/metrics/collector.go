package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector refreshes the table size gauges from the
// database. It is invoked by the scheduled stats job rather than owning
// its own ticker, so the refresh cadence lives in one place.
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
	}
}

// Collect gathers the current table sizes and updates the gauges
func (c *BusinessMetricsCollector) Collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Count boards per type
	type typeCount struct {
		BoardType string
		Count     int64
	}
	var boardCounts []typeCount
	if err := c.db.WithContext(ctx).
		Table("boards").
		Select("board_type, COUNT(*) AS count").
		Group("board_type").
		Scan(&boardCounts).Error; err != nil {
		c.logger.Error("Failed to count boards", zap.Error(err))
	} else {
		for _, bc := range boardCounts {
			c.metrics.SetBoardsTotal(bc.BoardType, bc.Count)
		}
	}

	// Count comments
	var commentCount int64
	if err := c.db.WithContext(ctx).Table("comments").Count(&commentCount).Error; err != nil {
		c.logger.Error("Failed to count comments", zap.Error(err))
	} else {
		c.metrics.SetCommentsTotal(commentCount)
	}

	// Count likes
	var likeCount int64
	if err := c.db.WithContext(ctx).Table("board_likes").Count(&likeCount).Error; err != nil {
		c.logger.Error("Failed to count likes", zap.Error(err))
	} else {
		c.metrics.SetLikesTotal(likeCount)
	}

	// Count users
	var userCount int64
	if err := c.db.WithContext(ctx).Table("users").Count(&userCount).Error; err != nil {
		c.logger.Error("Failed to count users", zap.Error(err))
	} else {
		c.metrics.SetUsersTotal(userCount)
	}
}
