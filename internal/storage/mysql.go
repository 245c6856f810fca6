package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// MySQLClient wraps direct SQL access for connection events.
type MySQLClient struct {
	db *sql.DB
}

// NewMySQLClient wires a sql.DB; pass a configured instance from main.
func NewMySQLClient(db *sql.DB) *MySQLClient {
	return &MySQLClient{db: db}
}

// EnsureSchema creates the connection_events table and its indexes when they
// do not exist yet. The composite (account_id, timestamp) index is what makes
// per-account recency queries avoid a full scan.
func (c *MySQLClient) EnsureSchema(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS connection_events (
			id         CHAR(36)     NOT NULL,
			account_id VARCHAR(191) NOT NULL,
			event      VARCHAR(191) NOT NULL,
			details    TEXT         NULL,
			timestamp  BIGINT       NOT NULL,
			PRIMARY KEY (id),
			INDEX idx_account_timestamp (account_id, timestamp),
			INDEX idx_timestamp (timestamp)
		)
	`

	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure connection_events schema: %w", err)
	}
	return nil
}
