package models

// SortOrder controls the timestamp ordering of account-scoped queries.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ConnectionEvent represents a single connection lifecycle occurrence for an
// account, e.g. "connected", "qr-generated" or "disconnected". Records are
// immutable after insert; only the retention sweep or an account purge removes
// them.
type ConnectionEvent struct {
	ID        string  `json:"id"`
	AccountID string  `json:"accountId"`
	Event     string  `json:"event"`
	Details   *string `json:"details,omitempty"`
	Timestamp int64   `json:"timestamp"` // milliseconds since epoch
}

// EventQuery describes an account-scoped store lookup. The Event filter, when
// set, is applied inside the store so the match is exact over the account's
// full history, never over a pre-limited candidate window.
type EventQuery struct {
	AccountID string
	Event     string
	Order     SortOrder
	Limit     int
}

// StoreStats aggregates store-wide counters for the metrics endpoint.
type StoreStats struct {
	TotalEvents      int64 `json:"total_events"`
	DistinctAccounts int64 `json:"distinct_accounts"`
	OldestTimestamp  int64 `json:"oldest_timestamp"`
}

// LogEventRequest is the payload for recording a single event.
type LogEventRequest struct {
	AccountID string `json:"accountId" binding:"required" example:"acct-42"`
	Event     string `json:"event" binding:"required" example:"connected"`
	Details   string `json:"details,omitempty" example:"session restored"`
} // @name LogEventRequest

// LogEventResponse carries the id assigned to a freshly recorded event.
type LogEventResponse struct {
	ID string `json:"id" example:"660e8400-e29b-41d4-a716-446655440000"`
} // @name LogEventResponse

// RecentEventsQuery represents query parameters for the recent-events lookup.
type RecentEventsQuery struct {
	AccountID string `form:"accountId" binding:"required" example:"acct-42"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500" example:"50"`
} // @name RecentEventsQuery

// ByEventQuery represents query parameters for the by-type lookup.
type ByEventQuery struct {
	AccountID string `form:"accountId" binding:"required" example:"acct-42"`
	Event     string `form:"event" binding:"required" example:"connected"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500" example:"20"`
} // @name ByEventQuery

// EventListResponse wraps a query result.
type EventListResponse struct {
	Events []ConnectionEvent `json:"events"`
	Count  int               `json:"count" example:"2"`
} // @name EventListResponse

// SweepRequest is the payload for an on-demand retention sweep.
type SweepRequest struct {
	DaysToKeep int `json:"daysToKeep" binding:"omitempty,min=1" example:"7"`
} // @name SweepRequest

// SweepResponse reports the outcome of a retention sweep.
type SweepResponse struct {
	DeletedCount int `json:"deletedCount" example:"128"`
	FailedCount  int `json:"failedCount,omitempty" example:"0"`
} // @name SweepResponse

// PurgeAccountResponse reports the outcome of an account-scoped purge.
type PurgeAccountResponse struct {
	AccountID    string `json:"accountId" example:"acct-42"`
	DeletedCount int64  `json:"deletedCount" example:"17"`
} // @name PurgeAccountResponse

// BatchIngestResponse reports how many events a batch ingest recorded.
type BatchIngestResponse struct {
	Recorded int      `json:"recorded" example:"3"`
	IDs      []string `json:"ids"`
} // @name BatchIngestResponse
