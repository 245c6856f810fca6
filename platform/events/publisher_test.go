package events

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewPublisher_WhenCreated_ThenReturnsPublisherWithWriter(t *testing.T) {
	// Arrange
	brokers := []string{"localhost:9092"}
	topic := "connection-events"
	logger, _ := zap.NewDevelopment()

	// Act
	publisher := NewPublisher(brokers, topic, logger)

	// Assert
	if publisher == nil {
		t.Fatal("expected publisher to be non-nil")
	}
	if publisher.writer == nil {
		t.Fatal("expected writer to be non-nil")
	}
	if publisher.logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
	if publisher.writer.Topic != topic {
		t.Errorf("expected topic '%s', got '%s'", topic, publisher.writer.Topic)
	}
}

func TestNewPublisher_WhenCreatedWithMultipleBrokers_ThenConfiguresCorrectly(t *testing.T) {
	// Arrange
	brokers := []string{"broker1:9092", "broker2:9092", "broker3:9092"}
	topic := "connection-events"
	logger, _ := zap.NewDevelopment()

	// Act
	publisher := NewPublisher(brokers, topic, logger)

	// Assert
	if publisher.writer.Addr.String() != "broker1:9092,broker2:9092,broker3:9092" {
		t.Errorf("unexpected broker configuration: %s", publisher.writer.Addr.String())
	}
}

func TestNewPublisher_WhenCreated_ThenHasProductionSettings(t *testing.T) {
	// Arrange
	brokers := []string{"localhost:9092"}
	topic := "connection-events"
	logger, _ := zap.NewDevelopment()

	// Act
	publisher := NewPublisher(brokers, topic, logger)

	// Assert
	if publisher.writer.RequiredAcks != -1 { // RequireAll = -1
		t.Errorf("expected RequiredAcks to be -1 (all), got %d", publisher.writer.RequiredAcks)
	}
	if publisher.writer.MaxAttempts != 3 {
		t.Errorf("expected MaxAttempts to be 3, got %d", publisher.writer.MaxAttempts)
	}
	if publisher.writer.WriteTimeout != 10*time.Second {
		t.Errorf("expected WriteTimeout to be 10s, got %v", publisher.writer.WriteTimeout)
	}
}

func TestPublish_WhenContextCanceled_ThenReturnsError(t *testing.T) {
	// Arrange
	logger, _ := zap.NewDevelopment()
	publisher := NewPublisher([]string{"localhost:9092"}, "connection-events", logger)

	msg := ConnectionEventMessage{
		EventID:   "evt-123",
		AccountID: "acct-42",
		Event:     "connected",
		Timestamp: time.Date(2025, 11, 6, 10, 30, 0, 0, time.UTC).UnixMilli(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	// Act
	err := publisher.Publish(ctx, msg)

	// Assert - expect error due to canceled context or Kafka connection failure
	// We don't check specific error as it depends on Kafka availability
	_ = err
}

func TestClose_WhenCalledMultipleTimes_ThenDoesNotPanic(t *testing.T) {
	// Arrange
	logger, _ := zap.NewDevelopment()
	publisher := NewPublisher([]string{"localhost:9092"}, "connection-events", logger)

	// Act & Assert
	_ = publisher.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("expected no panic, but got: %v", r)
		}
	}()
	_ = publisher.Close()
}
