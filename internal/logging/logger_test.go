package logging

import (
	"os"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_WhenDevelopmentEnvironment_ThenReturnsLogger(t *testing.T) {
	logger, err := NewLogger("development", "debug")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
	logger.Debug("dev logger works", zap.String("k", "v"))
}

func TestNewLogger_WhenProductionEnvironment_ThenReturnsLogger(t *testing.T) {
	logger, err := NewLogger("production", "info")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLogger_WhenInvalidLogLevel_ThenDefaultsToInfo(t *testing.T) {
	logger, err := NewLogger("production", "not-a-level")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewFromEnv_WhenVariablesUnset_ThenUsesProductionDefaults(t *testing.T) {
	originalEnv := os.Getenv("ENVIRONMENT")
	originalLevel := os.Getenv("LOG_LEVEL")
	defer func() {
		os.Setenv("ENVIRONMENT", originalEnv)
		os.Setenv("LOG_LEVEL", originalLevel)
	}()

	os.Unsetenv("ENVIRONMENT")
	os.Unsetenv("LOG_LEVEL")

	logger, err := NewFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestWith_WhenFieldsAttached_ThenReturnsChildLogger(t *testing.T) {
	logger, err := NewLogger("development", "debug")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	child := logger.With(zap.String("component", "test"))
	if child == nil {
		t.Fatal("expected child logger to be non-nil")
	}
	child.Info("child logger works")
}

func TestNoOpLogger_WhenUsed_ThenDoesNothing(t *testing.T) {
	logger := NewNoOpLogger()

	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")

	if logger.With(zap.String("k", "v")) == nil {
		t.Error("expected With to return a logger")
	}
	if err := logger.Sync(); err != nil {
		t.Errorf("expected nil sync error, got %v", err)
	}
}
