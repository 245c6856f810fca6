//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/internal/api/handlers"
	"github.com/nbashore/connection-event-log/internal/eventlog"
	"github.com/nbashore/connection-event-log/internal/logging"
	"github.com/nbashore/connection-event-log/internal/testutil/fakes"
	"github.com/nbashore/connection-event-log/pkg/clock"
)

// buildRouter wires the full handler stack against the in-memory store, the
// same way internal/api.Server does against MySQL.
func buildRouter(store *fakes.FakeEventStore, clk clock.Clock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	recorder := eventlog.NewRecorderWithClock(store, nil, logger, clk)
	queries := eventlog.NewQueryService(store, logger)
	retention := eventlog.NewRetentionManagerWithClock(store, logger, clk)

	eventHandler := handlers.NewEventHandler(recorder, queries, logging.NewNoOpLogger())
	retentionHandler := handlers.NewRetentionHandler(retention, logging.NewNoOpLogger())

	r := gin.New()
	r.POST("/api/v1/events", eventHandler.LogEvent)
	r.GET("/api/v1/events/recent", eventHandler.GetRecent)
	r.GET("/api/v1/events/by-type", eventHandler.GetByEvent)
	r.POST("/api/v1/retention/sweep", retentionHandler.Sweep)
	return r
}

func TestEventFlow_LogThenQueryThenSweep(t *testing.T) {
	store := fakes.NewFakeEventStore()
	clk := clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	r := buildRouter(store, clk)

	// Record one event
	body, _ := json.Marshal(map[string]string{
		"accountId": "acct-1",
		"event":     "connected",
		"details":   "session restored",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Read it back as the most recent event
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/events/recent?accountId=acct-1&limit=1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "connected")
	require.Contains(t, w.Body.String(), fmt.Sprintf("%d", clk.Now().UnixMilli()))

	// Fresh events survive a sweep
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/retention/sweep", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "\"deletedCount\":0")
	require.Equal(t, 1, store.Len())
}

func TestEventFlow_ByTypeFiltersAcrossAccounts(t *testing.T) {
	store := fakes.NewFakeEventStore()
	clk := clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	r := buildRouter(store, clk)

	post := func(accountID, event string) {
		body, _ := json.Marshal(map[string]string{"accountId": accountID, "event": event})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	post("A", "connected")
	post("A", "qr-generated")
	post("B", "connected")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/by-type?accountId=A&event=connected&limit=10", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "\"count\":1")
	require.NotContains(t, w.Body.String(), "qr-generated")
}
