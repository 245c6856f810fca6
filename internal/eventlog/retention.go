package eventlog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/pkg/clock"
)

const (
	// DefaultRetentionDays is the retention horizon used when the caller does
	// not pick one.
	DefaultRetentionDays = 7

	millisPerDay = int64(24 * 60 * 60 * 1000)
)

// SweepResult reports the outcome of one retention sweep.
type SweepResult struct {
	DeletedCount int
	FailedCount  int
}

// RetentionManager owns bulk expiration. ClearOld is a global maintenance
// operation across all accounts; PurgeAccount is the explicit account-scoped
// counterpart, kept separate so a sweep can never accidentally become a
// cross-tenant deletion or vice versa.
type RetentionManager struct {
	store  EventStore
	logger *zap.Logger
	clock  clock.Clock
}

// NewRetentionManager creates a RetentionManager.
func NewRetentionManager(store EventStore, logger *zap.Logger) *RetentionManager {
	return NewRetentionManagerWithClock(store, logger, clock.RealClock{})
}

// NewRetentionManagerWithClock creates a RetentionManager with an explicit
// clock. Used by tests to pin the cutoff computation.
func NewRetentionManagerWithClock(store EventStore, logger *zap.Logger, clk clock.Clock) *RetentionManager {
	return &RetentionManager{
		store:  store,
		logger: logger,
		clock:  clk,
	}
}

// ClearOld deletes every event older than daysToKeep days, across all
// accounts, and returns how many were deleted. A non-positive daysToKeep falls
// back to DefaultRetentionDays.
//
// The sweep is best-effort: a failed individual delete is logged, counted in
// FailedCount, and left for the next sweep to retry; it does not abort the
// batch. Only a failure of the candidate query itself returns an error. The
// sweep is not transactional across the batch, so an insert that lands behind
// the cutoff after the candidates were read is picked up next time.
func (m *RetentionManager) ClearOld(ctx context.Context, daysToKeep int) (SweepResult, error) {
	if daysToKeep < 1 {
		daysToKeep = DefaultRetentionDays
	}

	cutoff := m.clock.Now().UTC().UnixMilli() - int64(daysToKeep)*millisPerDay

	expired, err := m.store.QueryOlderThan(ctx, cutoff)
	if err != nil {
		m.logger.Error("failed to collect expired events",
			zap.Int64("cutoff", cutoff),
			zap.Error(err))
		return SweepResult{}, NewStorageError("query", err)
	}

	var result SweepResult
	for _, event := range expired {
		deleted, err := m.store.DeleteConnectionEvent(ctx, event.ID)
		if err != nil {
			result.FailedCount++
			m.logger.Error("failed to delete expired event, will retry next sweep",
				zap.String("event_id", event.ID),
				zap.String("account_id", event.AccountID),
				zap.Error(err))
			continue
		}
		if deleted {
			result.DeletedCount++
		}
	}

	m.logger.Info("retention sweep finished",
		zap.Int("days_to_keep", daysToKeep),
		zap.Int64("cutoff", cutoff),
		zap.Int("candidates", len(expired)),
		zap.Int("deleted", result.DeletedCount),
		zap.Int("failed", result.FailedCount))

	return result, nil
}

// PurgeAccount deletes every event owned by one account and returns the
// number of rows removed.
func (m *RetentionManager) PurgeAccount(ctx context.Context, accountID string) (int64, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return 0, NewValidationError("accountId is required")
	}

	deleted, err := m.store.DeleteAccountEvents(ctx, accountID)
	if err != nil {
		m.logger.Error("failed to purge account events",
			zap.String("account_id", accountID),
			zap.Error(err))
		return 0, NewStorageError("delete", err)
	}

	m.logger.Info("account events purged",
		zap.String("account_id", accountID),
		zap.Int64("deleted", deleted))

	return deleted, nil
}
