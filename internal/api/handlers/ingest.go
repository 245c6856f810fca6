package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/nbashore/connection-event-log/internal/api/response"
	"github.com/nbashore/connection-event-log/internal/logging"
	"github.com/nbashore/connection-event-log/internal/models"
)

// batchSchema constrains what connectors may push at the batch endpoint.
// Validation runs up front so a malformed batch is rejected before anything
// is written.
const batchSchema = `{
	"type": "object",
	"required": ["events"],
	"additionalProperties": false,
	"properties": {
		"events": {
			"type": "array",
			"minItems": 1,
			"maxItems": 500,
			"items": {
				"type": "object",
				"required": ["accountId", "event"],
				"additionalProperties": false,
				"properties": {
					"accountId": {"type": "string", "minLength": 1},
					"event":     {"type": "string", "minLength": 1},
					"details":   {"type": "string"}
				}
			}
		}
	}
}`

// BatchIngestRequest is the payload accepted by the batch endpoint.
type BatchIngestRequest struct {
	Events []models.LogEventRequest `json:"events"`
} // @name BatchIngestRequest

// IngestHandler handles bulk recording of connection events pushed by
// external connectors.
type IngestHandler struct {
	recorder EventRecorder
	schema   *gojsonschema.Schema
	logger   logging.Logger
}

// NewIngestHandler creates a new batch ingest handler.
func NewIngestHandler(recorder EventRecorder, logger logging.Logger) *IngestHandler {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(batchSchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a
		// programming error, not a runtime condition.
		panic("invalid batch ingest schema: " + err.Error())
	}

	return &IngestHandler{
		recorder: recorder,
		schema:   schema,
		logger:   logger.With(zap.String("handler", "ingest")),
	}
}

// BatchIngest godoc
// @Summary Record a batch of connection events
// @Description Validates a batch of events against a JSON schema, then records each one. The batch is validated as a whole before any write happens.
// @Tags Events
// @Accept json
// @Produce json
// @Param batch body BatchIngestRequest true "Batch of events (max 500)"
// @Success 202 {object} response.SuccessResponse{data=models.BatchIngestResponse}
// @Failure 400 {object} response.ErrorResponse "Schema validation failed"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /events/batch [post]
func (h *IngestHandler) BatchIngest(c *gin.Context) {
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.logger.Warn("invalid batch payload",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, "invalid payload", err.Error())
		return
	}

	result, err := h.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		h.logger.Warn("failed to validate batch payload",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, "invalid payload", err.Error())
		return
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, issue := range result.Errors() {
			details = append(details, issue.String())
		}
		h.logger.Warn("batch payload failed schema validation",
			zap.Strings("issues", details),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, "schema validation failed", details)
		return
	}

	var batch BatchIngestRequest
	if err := json.Unmarshal(raw, &batch); err != nil {
		response.BadRequest(c, "invalid payload", err.Error())
		return
	}

	ids := make([]string, 0, len(batch.Events))
	for _, item := range batch.Events {
		id, err := h.recorder.Log(c.Request.Context(), item.AccountID, item.Event, item.Details)
		if err != nil {
			h.logger.Error("batch ingest aborted mid-batch",
				zap.Int("recorded", len(ids)),
				zap.Int("total", len(batch.Events)),
				zap.Error(err),
				zap.String("request_id", response.GetRequestID(c)),
			)
			response.InternalServerError(c, "batch ingest failed after recording some events")
			return
		}
		ids = append(ids, id)
	}

	h.logger.Info("batch ingested",
		zap.Int("recorded", len(ids)),
		zap.String("request_id", response.GetRequestID(c)),
	)

	response.Accepted(c, models.BatchIngestResponse{Recorded: len(ids), IDs: ids}, "batch recorded")
}
