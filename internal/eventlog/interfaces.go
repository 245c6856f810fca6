package eventlog

import (
	"context"

	"github.com/nbashore/connection-event-log/internal/models"
	platformEvents "github.com/nbashore/connection-event-log/platform/events"
)

// EventStore defines the persistence required by the event-log services. The
// store is treated as opaque indexed storage: insert, account-scoped query,
// cutoff query, delete.
type EventStore interface {
	InsertConnectionEvent(ctx context.Context, event *models.ConnectionEvent) error
	QueryByAccount(ctx context.Context, q models.EventQuery) ([]models.ConnectionEvent, error)
	QueryOlderThan(ctx context.Context, cutoff int64) ([]models.ConnectionEvent, error)
	DeleteConnectionEvent(ctx context.Context, id string) (bool, error)
	DeleteAccountEvents(ctx context.Context, accountID string) (int64, error)
}

// EventPublisher abstracts the Kafka mirror for testability.
type EventPublisher interface {
	Publish(ctx context.Context, msg platformEvents.ConnectionEventMessage) error
}
