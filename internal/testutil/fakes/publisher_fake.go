package fakes

import (
	"context"
	"errors"
	"sync"

	platformEvents "github.com/nbashore/connection-event-log/platform/events"
)

// FakePublisher captures published messages in memory.
type FakePublisher struct {
	mu       sync.Mutex
	Messages []platformEvents.ConnectionEventMessage
	FailNext bool
}

func (f *FakePublisher) Publish(_ context.Context, msg platformEvents.ConnectionEventMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailNext {
		f.FailNext = false
		return errors.New("fake publish failure")
	}
	f.Messages = append(f.Messages, msg)
	return nil
}

// Published returns a copy of the captured messages.
func (f *FakePublisher) Published() []platformEvents.ConnectionEventMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]platformEvents.ConnectionEventMessage, len(f.Messages))
	copy(out, f.Messages)
	return out
}
