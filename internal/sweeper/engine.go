package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/internal/eventlog"
)

// Retention is the slice of the retention manager the engine needs.
type Retention interface {
	ClearOld(ctx context.Context, daysToKeep int) (eventlog.SweepResult, error)
}

// Engine runs the retention sweep on a cron schedule. Retention is advisory
// housekeeping: a missed or failed run is caught up by the next one.
type Engine struct {
	retention  Retention
	logger     *zap.Logger
	cronSpec   string
	daysToKeep int
}

// NewEngine constructs a sweeper engine. cronSpec uses the standard 5-field
// cron syntax (e.g. "0 3 * * *" for daily at 03:00).
func NewEngine(retention Retention, cronSpec string, daysToKeep int, logger *zap.Logger) *Engine {
	return &Engine{
		retention:  retention,
		logger:     logger,
		cronSpec:   cronSpec,
		daysToKeep: daysToKeep,
	}
}

// Run schedules the sweep and blocks until ctx is canceled. An initial sweep
// runs immediately so a long cron interval does not delay catch-up after
// downtime.
func (e *Engine) Run(ctx context.Context) error {
	if _, err := cron.ParseStandard(e.cronSpec); err != nil {
		return fmt.Errorf("invalid sweep cron expression %q: %w", e.cronSpec, err)
	}

	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(e.cronSpec, func() { e.sweep(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	e.logger.Info("retention sweeper starting",
		zap.String("cron", e.cronSpec),
		zap.Int("days_to_keep", e.daysToKeep))

	e.sweep(ctx)
	c.Start()

	<-ctx.Done()

	// Let an in-flight sweep finish before returning.
	<-c.Stop().Done()
	e.logger.Info("retention sweeper stopped")
	return ctx.Err()
}

func (e *Engine) sweep(ctx context.Context) {
	result, err := e.retention.ClearOld(ctx, e.daysToKeep)
	if err != nil {
		e.logger.Error("retention sweep failed", zap.Error(err))
		return
	}

	e.logger.Info("retention sweep completed",
		zap.Int("deleted", result.DeletedCount),
		zap.Int("failed", result.FailedCount))
}
