package clock

import "time"

// Clock provides an abstraction over time retrieval for deterministic testing.
// Event timestamps and retention cutoffs are both derived from it.
type Clock interface {
	Now() time.Time
}

// RealClock returns the real current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns a fixed time. Useful for tests.
type FixedClock struct{ t time.Time }

func NewFixed(t time.Time) FixedClock { return FixedClock{t: t} }

func (f FixedClock) Now() time.Time { return f.t }

// Advance returns a copy of the clock shifted forward by d.
func (f FixedClock) Advance(d time.Duration) FixedClock {
	return FixedClock{t: f.t.Add(d)}
}
