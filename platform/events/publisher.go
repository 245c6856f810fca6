package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConnectionEventMessage is the wire shape mirrored to Kafka for each recorded
// connection event. Downstream consumers (status dashboards, notifiers) read
// this topic; the database remains the system of record.
type ConnectionEventMessage struct {
	EventID   string `json:"event_id"`
	AccountID string `json:"account_id"`
	Event     string `json:"event"`
	Details   string `json:"details,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Publisher emits recorded connection events to Kafka.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewPublisher builds a Kafka publisher for the given brokers and topic.
// Messages are keyed by account id so each account's events stay ordered
// within a partition.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
	}

	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

// Publish writes one event message to the topic.
func (p *Publisher) Publish(ctx context.Context, msg ConnectionEventMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal connection event message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.AccountID),
		Value: value,
	})
	if err != nil {
		p.logger.Error("failed to publish connection event",
			zap.String("event_id", msg.EventID),
			zap.String("account_id", msg.AccountID),
			zap.Error(err))
		return fmt.Errorf("failed to publish connection event: %w", err)
	}

	p.logger.Debug("connection event published",
		zap.String("event_id", msg.EventID),
		zap.String("account_id", msg.AccountID))

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
