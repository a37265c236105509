package job

import (
	"go.uber.org/zap"

	"community-board-api/internal/metrics"
)

// StatsJob refreshes the business metrics gauges on a cron schedule.
// It satisfies cron.Job via Run.
type StatsJob struct {
	collector *metrics.BusinessMetricsCollector
	logger    *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(collector *metrics.BusinessMetricsCollector, logger *zap.Logger) *StatsJob {
	return &StatsJob{
		collector: collector,
		logger:    logger,
	}
}

// Run executes one gauge refresh. Collection errors are logged inside
// the collector and never abort the schedule.
func (j *StatsJob) Run() {
	j.logger.Debug("Refreshing business stats gauges")
	j.collector.Collect()
}
