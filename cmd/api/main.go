package main

import (
	"log"

	_ "github.com/nbashore/connection-event-log/docs" // Import generated docs
	"github.com/nbashore/connection-event-log/internal/api"
)

// @title Connection Event Log API
// @version 1.0
// @description Records connection lifecycle events ("connected", "qr-generated", "disconnected", ...) tagged to an account, serves recency and by-type queries, and prunes events past the retention window.
// @description
// @description ## Features
// @description - **Event recording**: single and schema-validated batch ingestion with store-assigned ids and millisecond timestamps
// @description - **Account-scoped queries**: most-recent and by-type lookups backed by an (account_id, timestamp) index
// @description - **Retention**: global sweep past a configurable horizon plus an explicit per-account purge
// @description - **Kafka mirror**: recorded events are published for downstream consumers (dashboards, notifiers)

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv := api.NewServer()
	if err := srv.Serve(); err != nil {
		log.Fatalf("api server stopped: %v", err)
	}
}
