package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nbashore/connection-event-log/internal/models"
)

// InsertConnectionEvent appends a new connection event row. The id and
// timestamp are assigned here when the caller left them unset; once written
// they are never mutated.
func (c *MySQLClient) InsertConnectionEvent(ctx context.Context, event *models.ConnectionEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UTC().UnixMilli()
	}

	query := `
		INSERT INTO connection_events (id, account_id, event, details, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query,
		event.ID,
		event.AccountID,
		event.Event,
		event.Details,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert connection event: %w", err)
	}

	return nil
}

// QueryByAccount retrieves up to q.Limit events for one account, ordered by
// timestamp. The optional event-type filter is part of the WHERE clause, so
// matches are exact over the account's whole history rather than over a
// pre-limited candidate set.
func (c *MySQLClient) QueryByAccount(ctx context.Context, q models.EventQuery) ([]models.ConnectionEvent, error) {
	whereClauses := []string{"account_id = ?"}
	args := []interface{}{q.AccountID}

	if q.Event != "" {
		whereClauses = append(whereClauses, "event = ?")
		args = append(args, q.Event)
	}

	direction := "DESC"
	if q.Order == models.SortAscending {
		direction = "ASC"
	}

	limit := q.Limit
	if limit < 1 {
		limit = 50
	}
	args = append(args, limit)

	listQuery := fmt.Sprintf(`
		SELECT id, account_id, event, details, timestamp
		FROM connection_events
		WHERE %s
		ORDER BY timestamp %s
		LIMIT ?
	`, strings.Join(whereClauses, " AND "), direction)

	rows, err := c.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by account: %w", err)
	}
	defer rows.Close()

	return scanConnectionEvents(rows)
}

// QueryOlderThan retrieves every event, across all accounts, whose timestamp
// is strictly less than cutoff. Used exclusively by the retention sweep.
func (c *MySQLClient) QueryOlderThan(ctx context.Context, cutoff int64) ([]models.ConnectionEvent, error) {
	query := `
		SELECT id, account_id, event, details, timestamp
		FROM connection_events
		WHERE timestamp < ?
		ORDER BY timestamp ASC
	`

	rows, err := c.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired events: %w", err)
	}
	defer rows.Close()

	return scanConnectionEvents(rows)
}

// DeleteConnectionEvent removes a single event by id. Deleting an id that no
// longer exists is a no-op; the returned bool reports whether a row was
// actually removed.
func (c *MySQLClient) DeleteConnectionEvent(ctx context.Context, id string) (bool, error) {
	result, err := c.db.ExecContext(ctx, `DELETE FROM connection_events WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete connection event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}

// DeleteAccountEvents removes every event owned by one account and returns
// how many rows were deleted. This is the account-scoped counterpart of the
// global retention sweep.
func (c *MySQLClient) DeleteAccountEvents(ctx context.Context, accountID string) (int64, error) {
	result, err := c.db.ExecContext(ctx, `DELETE FROM connection_events WHERE account_id = ?`, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete account events: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected, nil
}

// Stats returns store-wide counters for the metrics endpoint.
func (c *MySQLClient) Stats(ctx context.Context) (models.StoreStats, error) {
	query := `
		SELECT COUNT(*), COUNT(DISTINCT account_id), COALESCE(MIN(timestamp), 0)
		FROM connection_events
	`

	var stats models.StoreStats
	err := c.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalEvents,
		&stats.DistinctAccounts,
		&stats.OldestTimestamp,
	)
	if err != nil {
		return models.StoreStats{}, fmt.Errorf("failed to read store stats: %w", err)
	}

	return stats, nil
}

func scanConnectionEvents(rows *sql.Rows) ([]models.ConnectionEvent, error) {
	events := []models.ConnectionEvent{}
	for rows.Next() {
		var event models.ConnectionEvent
		var details sql.NullString

		err := rows.Scan(
			&event.ID,
			&event.AccountID,
			&event.Event,
			&details,
			&event.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection event: %w", err)
		}

		if details.Valid {
			event.Details = &details.String
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating connection events: %w", err)
	}

	return events, nil
}
