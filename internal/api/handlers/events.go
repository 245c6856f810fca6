package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/internal/api/response"
	"github.com/nbashore/connection-event-log/internal/eventlog"
	"github.com/nbashore/connection-event-log/internal/logging"
	"github.com/nbashore/connection-event-log/internal/models"
)

// EventHandler handles connection event recording and query requests.
type EventHandler struct {
	recorder EventRecorder
	queries  EventQuerier
	logger   logging.Logger
}

// NewEventHandler creates a new event handler.
func NewEventHandler(recorder EventRecorder, queries EventQuerier, logger logging.Logger) *EventHandler {
	return &EventHandler{
		recorder: recorder,
		queries:  queries,
		logger:   logger.With(zap.String("handler", "event")),
	}
}

// LogEvent godoc
// @Summary Record a connection event
// @Description Records one connection lifecycle event (e.g. connected, qr-generated, disconnected) for an account and returns the assigned id
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.LogEventRequest true "Event to record"
// @Success 201 {object} response.SuccessResponse{data=models.LogEventResponse}
// @Failure 400 {object} response.ErrorResponse "Missing accountId or event"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /events [post]
func (h *EventHandler) LogEvent(c *gin.Context) {
	var req models.LogEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid log event payload",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, "invalid payload", err.Error())
		return
	}

	id, err := h.recorder.Log(c.Request.Context(), req.AccountID, req.Event, req.Details)
	if err != nil {
		h.respondError(c, err, "failed to record event")
		return
	}

	response.Created(c, models.LogEventResponse{ID: id}, "event recorded")
}

// GetRecent godoc
// @Summary List recent events for an account
// @Description Returns the most recent connection events for one account, newest first. Limit defaults to 50.
// @Tags Events
// @Produce json
// @Param accountId query string true "Account ID"
// @Param limit query int false "Maximum events to return" default(50) minimum(1) maximum(500)
// @Success 200 {object} response.SuccessResponse{data=models.EventListResponse}
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /events/recent [get]
func (h *EventHandler) GetRecent(c *gin.Context) {
	var query models.RecentEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warn("invalid recent events query",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, "invalid query parameters", err.Error())
		return
	}

	events, err := h.queries.GetRecent(c.Request.Context(), query.AccountID, query.Limit)
	if err != nil {
		h.respondError(c, err, "failed to query recent events")
		return
	}

	response.OK(c, models.EventListResponse{Events: events, Count: len(events)})
}

// GetByEvent godoc
// @Summary List events of one type for an account
// @Description Returns the most recent connection events matching an exact event type, newest first. Limit defaults to 20.
// @Tags Events
// @Produce json
// @Param accountId query string true "Account ID"
// @Param event query string true "Event type to match exactly"
// @Param limit query int false "Maximum events to return" default(20) minimum(1) maximum(500)
// @Success 200 {object} response.SuccessResponse{data=models.EventListResponse}
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /events/by-type [get]
func (h *EventHandler) GetByEvent(c *gin.Context) {
	var query models.ByEventQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warn("invalid by-type events query",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, "invalid query parameters", err.Error())
		return
	}

	events, err := h.queries.GetByEvent(c.Request.Context(), query.AccountID, query.Event, query.Limit)
	if err != nil {
		h.respondError(c, err, "failed to query events by type")
		return
	}

	response.OK(c, models.EventListResponse{Events: events, Count: len(events)})
}

func (h *EventHandler) respondError(c *gin.Context, err error, msg string) {
	var verr eventlog.ValidationError
	if errors.As(err, &verr) {
		response.BadRequest(c, verr.Error(), nil)
		return
	}

	h.logger.Error(msg,
		zap.Error(err),
		zap.String("request_id", response.GetRequestID(c)),
	)
	response.InternalServerError(c, msg)
}
