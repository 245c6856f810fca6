package handlers

import (
	"context"

	"github.com/nbashore/connection-event-log/internal/eventlog"
	"github.com/nbashore/connection-event-log/internal/models"
)

// EventRecorder is the write-side surface handlers need.
type EventRecorder interface {
	Log(ctx context.Context, accountID, eventType, details string) (string, error)
}

// EventQuerier is the read-side surface handlers need.
type EventQuerier interface {
	GetRecent(ctx context.Context, accountID string, limit int) ([]models.ConnectionEvent, error)
	GetByEvent(ctx context.Context, accountID, eventType string, limit int) ([]models.ConnectionEvent, error)
}

// RetentionService exposes the maintenance operations.
type RetentionService interface {
	ClearOld(ctx context.Context, daysToKeep int) (eventlog.SweepResult, error)
	PurgeAccount(ctx context.Context, accountID string) (int64, error)
}

// StatsProvider exposes store-wide counters for the metrics endpoint.
type StatsProvider interface {
	Stats(ctx context.Context) (models.StoreStats, error)
}
