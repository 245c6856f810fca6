package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/internal/api/response"
	"github.com/nbashore/connection-event-log/internal/logging"
)

// MetricsHandler reports store-wide event counters.
type MetricsHandler struct {
	stats  StatsProvider
	logger logging.Logger
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(stats StatsProvider, logger logging.Logger) *MetricsHandler {
	return &MetricsHandler{
		stats:  stats,
		logger: logger.With(zap.String("handler", "metrics")),
	}
}

// Metrics godoc
// @Summary Get event log metrics
// @Description Returns total stored events, distinct accounts, and the oldest retained timestamp
// @Tags System
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=models.StoreStats}
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to collect metrics",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "failed to collect metrics")
		return
	}

	response.OK(c, stats)
}
