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

// RetentionHandler exposes the maintenance operations: the global retention
// sweep and the account-scoped purge. They are deliberately separate routes so
// a housekeeping call can never silently become a cross-tenant deletion.
type RetentionHandler struct {
	retention RetentionService
	logger    logging.Logger
}

// NewRetentionHandler creates a new retention handler.
func NewRetentionHandler(retention RetentionService, logger logging.Logger) *RetentionHandler {
	return &RetentionHandler{
		retention: retention,
		logger:    logger.With(zap.String("handler", "retention")),
	}
}

// Sweep godoc
// @Summary Run a retention sweep
// @Description Deletes events older than daysToKeep days across all accounts and reports how many were removed. daysToKeep defaults to 7. Failed individual deletes are retried by the next sweep.
// @Tags Retention
// @Accept json
// @Produce json
// @Param request body models.SweepRequest false "Sweep options"
// @Success 200 {object} response.SuccessResponse{data=models.SweepResponse}
// @Failure 400 {object} response.ErrorResponse "Invalid payload"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /retention/sweep [post]
func (h *RetentionHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("invalid sweep payload",
				zap.Error(err),
				zap.String("request_id", response.GetRequestID(c)),
			)
			response.BadRequest(c, "invalid payload", err.Error())
			return
		}
	}

	result, err := h.retention.ClearOld(c.Request.Context(), req.DaysToKeep)
	if err != nil {
		h.logger.Error("retention sweep failed",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "retention sweep failed")
		return
	}

	response.OK(c, models.SweepResponse{
		DeletedCount: result.DeletedCount,
		FailedCount:  result.FailedCount,
	})
}

// PurgeAccount godoc
// @Summary Delete all events for one account
// @Description Removes every connection event owned by the given account and reports how many were deleted
// @Tags Retention
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} response.SuccessResponse{data=models.PurgeAccountResponse}
// @Failure 400 {object} response.ErrorResponse "Missing account id"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /accounts/{account_id}/events [delete]
func (h *RetentionHandler) PurgeAccount(c *gin.Context) {
	accountID := c.Param("account_id")

	deleted, err := h.retention.PurgeAccount(c.Request.Context(), accountID)
	if err != nil {
		var verr eventlog.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(c, verr.Error(), nil)
			return
		}
		h.logger.Error("account purge failed",
			zap.Error(err),
			zap.String("account_id", accountID),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "account purge failed")
		return
	}

	response.OK(c, models.PurgeAccountResponse{
		AccountID:    accountID,
		DeletedCount: deleted,
	})
}
