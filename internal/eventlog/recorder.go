package eventlog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/internal/models"
	platformEvents "github.com/nbashore/connection-event-log/platform/events"
	"github.com/nbashore/connection-event-log/pkg/clock"
)

// Recorder validates and records connection lifecycle events. It owns the
// write path: one durable insert per call, followed by a best-effort mirror to
// Kafka for downstream consumers.
type Recorder struct {
	store     EventStore
	publisher EventPublisher
	logger    *zap.Logger
	clock     clock.Clock
}

// NewRecorder creates a Recorder. The publisher may be nil when no Kafka
// mirror is configured.
func NewRecorder(store EventStore, publisher EventPublisher, logger *zap.Logger) *Recorder {
	return NewRecorderWithClock(store, publisher, logger, clock.RealClock{})
}

// NewRecorderWithClock creates a Recorder with an explicit clock. Used by
// tests to pin timestamps.
func NewRecorderWithClock(store EventStore, publisher EventPublisher, logger *zap.Logger, clk clock.Clock) *Recorder {
	return &Recorder{
		store:     store,
		publisher: publisher,
		logger:    logger,
		clock:     clk,
	}
}

// Log records one event for an account and returns the assigned id. It fails
// with ValidationError when accountID or eventType is blank, and with
// StorageError when the insert fails. The timestamp is stamped exactly once
// here, in epoch milliseconds.
//
// Details is optional; pass the empty string to omit it.
func (r *Recorder) Log(ctx context.Context, accountID, eventType, details string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	eventType = strings.TrimSpace(eventType)

	if accountID == "" {
		return "", NewValidationError("accountId is required")
	}
	if eventType == "" {
		return "", NewValidationError("event is required")
	}

	event := &models.ConnectionEvent{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Event:     eventType,
		Timestamp: r.clock.Now().UTC().UnixMilli(),
	}
	if details != "" {
		event.Details = &details
	}

	if err := r.store.InsertConnectionEvent(ctx, event); err != nil {
		r.logger.Error("failed to record connection event",
			zap.String("account_id", accountID),
			zap.String("event", eventType),
			zap.Error(err))
		return "", NewStorageError("insert", err)
	}

	r.logger.Info("connection event recorded",
		zap.String("event_id", event.ID),
		zap.String("account_id", accountID),
		zap.String("event", eventType))

	r.mirror(ctx, event)

	return event.ID, nil
}

// mirror publishes the recorded event to Kafka. The store is the system of
// record, so a publish failure never fails the Log call; the event simply does
// not reach downstream consumers.
func (r *Recorder) mirror(ctx context.Context, event *models.ConnectionEvent) {
	if r.publisher == nil {
		return
	}

	msg := platformEvents.ConnectionEventMessage{
		EventID:   event.ID,
		AccountID: event.AccountID,
		Event:     event.Event,
		Timestamp: event.Timestamp,
	}
	if event.Details != nil {
		msg.Details = *event.Details
	}

	if err := r.publisher.Publish(ctx, msg); err != nil {
		r.logger.Warn("failed to mirror connection event to kafka",
			zap.String("event_id", event.ID),
			zap.String("account_id", event.AccountID),
			zap.Error(err))
	}
}
