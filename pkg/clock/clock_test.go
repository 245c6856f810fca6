package clock

import (
	"testing"
	"time"
)

func TestFixedClock_WhenCreated_ThenAlwaysReturnsSameTime(t *testing.T) {
	// Arrange
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := NewFixed(fixed)

	// Act & Assert
	if !clk.Now().Equal(fixed) {
		t.Errorf("expected %v, got %v", fixed, clk.Now())
	}
	if !clk.Now().Equal(clk.Now()) {
		t.Error("expected FixedClock to be stable across calls")
	}
}

func TestFixedClock_WhenAdvanced_ThenReturnsShiftedCopy(t *testing.T) {
	// Arrange
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := NewFixed(fixed)

	// Act
	later := clk.Advance(48 * time.Hour)

	// Assert
	if !later.Now().Equal(fixed.Add(48 * time.Hour)) {
		t.Errorf("expected advanced clock to read %v, got %v", fixed.Add(48*time.Hour), later.Now())
	}
	if !clk.Now().Equal(fixed) {
		t.Error("expected original clock to be unchanged")
	}
}

func TestRealClock_WhenRead_ThenTracksWallTime(t *testing.T) {
	// Arrange
	before := time.Now().Add(-time.Second)

	// Act
	now := RealClock{}.Now()

	// Assert
	if now.Before(before) {
		t.Errorf("expected RealClock to be close to wall time, got %v", now)
	}
}
