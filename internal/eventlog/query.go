package eventlog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/internal/models"
)

const (
	// DefaultRecentLimit caps GetRecent results when the caller does not pick
	// a limit.
	DefaultRecentLimit = 50
	// DefaultByEventLimit caps GetByEvent results when the caller does not
	// pick a limit.
	DefaultByEventLimit = 20
)

// QueryService answers read-only lookups against the event store.
type QueryService struct {
	store  EventStore
	logger *zap.Logger
}

// NewQueryService creates a QueryService.
func NewQueryService(store EventStore, logger *zap.Logger) *QueryService {
	return &QueryService{
		store:  store,
		logger: logger,
	}
}

// GetRecent returns the most recent events for an account, newest first. A
// non-positive limit falls back to DefaultRecentLimit.
func (s *QueryService) GetRecent(ctx context.Context, accountID string, limit int) ([]models.ConnectionEvent, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, NewValidationError("accountId is required")
	}
	if limit < 1 {
		limit = DefaultRecentLimit
	}

	events, err := s.store.QueryByAccount(ctx, models.EventQuery{
		AccountID: accountID,
		Order:     models.SortDescending,
		Limit:     limit,
	})
	if err != nil {
		s.logger.Error("failed to query recent events",
			zap.String("account_id", accountID),
			zap.Error(err))
		return nil, NewStorageError("query", err)
	}

	return events, nil
}

// GetByEvent returns the most recent events of one type for an account,
// newest first. The type filter runs inside the store query, so every true
// match among the account's events is eligible. A non-positive limit falls
// back to DefaultByEventLimit.
func (s *QueryService) GetByEvent(ctx context.Context, accountID, eventType string, limit int) ([]models.ConnectionEvent, error) {
	accountID = strings.TrimSpace(accountID)
	eventType = strings.TrimSpace(eventType)

	if accountID == "" {
		return nil, NewValidationError("accountId is required")
	}
	if eventType == "" {
		return nil, NewValidationError("event is required")
	}
	if limit < 1 {
		limit = DefaultByEventLimit
	}

	events, err := s.store.QueryByAccount(ctx, models.EventQuery{
		AccountID: accountID,
		Event:     eventType,
		Order:     models.SortDescending,
		Limit:     limit,
	})
	if err != nil {
		s.logger.Error("failed to query events by type",
			zap.String("account_id", accountID),
			zap.String("event", eventType),
			zap.Error(err))
		return nil, NewStorageError("query", err)
	}

	return events, nil
}
