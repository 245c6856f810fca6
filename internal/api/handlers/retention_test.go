package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nbashore/connection-event-log/internal/eventlog"
	"github.com/nbashore/connection-event-log/internal/logging"
)

type fakeRetention struct {
	result    eventlog.SweepResult
	sweepErr  error
	purged    int64
	purgeErr  error
	lastDays  int
	lastPurge string
}

func (f *fakeRetention) ClearOld(_ context.Context, daysToKeep int) (eventlog.SweepResult, error) {
	f.lastDays = daysToKeep
	return f.result, f.sweepErr
}

func (f *fakeRetention) PurgeAccount(_ context.Context, accountID string) (int64, error) {
	f.lastPurge = accountID
	return f.purged, f.purgeErr
}

func newRetentionRouter(ret RetentionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRetentionHandler(ret, logging.NewNoOpLogger())
	r := gin.New()
	r.POST("/api/v1/retention/sweep", h.Sweep)
	r.DELETE("/api/v1/accounts/:account_id/events", h.PurgeAccount)
	return r
}

func TestSweep_EmptyBodyUsesDefaultHorizon(t *testing.T) {
	ret := &fakeRetention{result: eventlog.SweepResult{DeletedCount: 4}}
	r := newRetentionRouter(ret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/retention/sweep", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"deletedCount\":4")
	// zero days forwarded; the manager resolves it to the default horizon
	assert.Equal(t, 0, ret.lastDays)
}

func TestSweep_ExplicitDaysForwarded(t *testing.T) {
	ret := &fakeRetention{result: eventlog.SweepResult{DeletedCount: 9}}
	r := newRetentionRouter(ret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/retention/sweep", bytes.NewReader([]byte(`{"daysToKeep":30}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 30, ret.lastDays)
}

func TestSweep_InvalidDaysRejected(t *testing.T) {
	r := newRetentionRouter(&fakeRetention{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/retention/sweep", bytes.NewReader([]byte(`{"daysToKeep":-2}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSweep_FailureMapsTo500(t *testing.T) {
	ret := &fakeRetention{sweepErr: eventlog.NewStorageError("query", assert.AnError)}
	r := newRetentionRouter(ret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/retention/sweep", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPurgeAccount_ReturnsDeletedCount(t *testing.T) {
	ret := &fakeRetention{purged: 17}
	r := newRetentionRouter(ret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/acct-9/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acct-9", ret.lastPurge)
	assert.Contains(t, w.Body.String(), "\"deletedCount\":17")
}

func TestPurgeAccount_ValidationErrorMapsTo400(t *testing.T) {
	ret := &fakeRetention{purgeErr: eventlog.NewValidationError("accountId is required")}
	r := newRetentionRouter(ret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/%20/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
