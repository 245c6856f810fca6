package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nbashore/connection-event-log/internal/logging"
	"github.com/nbashore/connection-event-log/internal/models"
)

func TestHealth_ReturnsOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler(logging.NewNoOpLogger())
	r := gin.New()
	r.GET("/health", h.Health)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "connection-event-log")
	assert.Contains(t, w.Body.String(), "\"status\":\"ok\"")
}

type fakeStats struct {
	stats models.StoreStats
	err   error
}

func (f *fakeStats) Stats(_ context.Context) (models.StoreStats, error) {
	return f.stats, f.err
}

func TestMetrics_ReturnsStoreCounters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewMetricsHandler(&fakeStats{stats: models.StoreStats{
		TotalEvents:      1250,
		DistinctAccounts: 45,
		OldestTimestamp:  1700000000000,
	}}, logging.NewNoOpLogger())
	r := gin.New()
	r.GET("/metrics", h.Metrics)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"total_events\":1250")
	assert.Contains(t, w.Body.String(), "\"distinct_accounts\":45")
}

func TestMetrics_StoreFailureMapsTo500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewMetricsHandler(&fakeStats{err: assert.AnError}, logging.NewNoOpLogger())
	r := gin.New()
	r.GET("/metrics", h.Metrics)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
