package activities

import (
	"context"
	"time"

	"adventura/internal/shared/config"
	"adventura/pkg/logger"
)

// JobProcessor runs the catalog background sweeps: expiring one_time listings
// and refreshing the trending flag from recent bookings.
type JobProcessor struct {
	service Service
	config  config.JobsConfig
	log     *logger.Logger
	done    chan struct{}
}

func NewJobProcessor(service Service, cfg config.JobsConfig) *JobProcessor {
	return &JobProcessor{
		service: service,
		config:  cfg,
		log:     logger.GetDefault(),
		done:    make(chan struct{}),
	}
}

// Start starts all background jobs
func (jp *JobProcessor) Start(ctx context.Context) {
	go jp.runExpirySweep(ctx)
	go jp.runTrendingRefresh(ctx)
	jp.log.Info("Catalog background jobs started")
}

// Stop stops all background jobs
func (jp *JobProcessor) Stop() {
	close(jp.done)
	jp.log.Info("Catalog background jobs stopped")
}

func (jp *JobProcessor) runExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(jp.config.ExpirySweepInterval)
	defer ticker.Stop()

	// Run once at startup so a restart doesn't leave stale listings active
	jp.sweepExpired(ctx)

	for {
		select {
		case <-ticker.C:
			jp.sweepExpired(ctx)
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (jp *JobProcessor) sweepExpired(ctx context.Context) {
	count, err := jp.service.DeactivateExpiredOneTime(ctx)
	if err != nil {
		jp.log.ErrorWithContext(ctx, "Expiry sweep failed", err, nil)
		return
	}
	if count > 0 {
		jp.log.InfoWithContext(ctx, "Expiry sweep deactivated listings", map[string]interface{}{
			"count": count,
		})
	}
}

func (jp *JobProcessor) runTrendingRefresh(ctx context.Context) {
	ticker := time.NewTicker(jp.config.TrendingRefreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count, err := jp.service.RefreshTrending(ctx, jp.config.TrendingWindow, jp.config.TrendingBookingMinimum)
			if err != nil {
				jp.log.ErrorWithContext(ctx, "Trending refresh failed", err, nil)
				continue
			}
			jp.log.InfoWithContext(ctx, "Trending flags refreshed", map[string]interface{}{
				"trending_count": count,
			})
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}
