package fakes

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nbashore/connection-event-log/internal/models"
)

// ErrStoreDown simulates an unavailable backing store.
var ErrStoreDown = errors.New("fake store unavailable")

// FakeEventStore is an in-memory eventlog.EventStore.
type FakeEventStore struct {
	mu     sync.Mutex
	events map[string]models.ConnectionEvent

	// Failure toggles for exercising error paths.
	FailInserts bool
	FailQueries bool
	FailDeletes bool
}

func NewFakeEventStore() *FakeEventStore {
	return &FakeEventStore{events: make(map[string]models.ConnectionEvent)}
}

func (f *FakeEventStore) InsertConnectionEvent(_ context.Context, e *models.ConnectionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailInserts {
		return ErrStoreDown
	}
	ev := *e
	if ev.ID == "" {
		ev.ID = uuid.New().String()
		e.ID = ev.ID
	}
	if ev.Timestamp == 0 {
		ev.Timestamp = time.Now().UTC().UnixMilli()
		e.Timestamp = ev.Timestamp
	}
	f.events[ev.ID] = ev
	return nil
}

func (f *FakeEventStore) QueryByAccount(_ context.Context, q models.EventQuery) ([]models.ConnectionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailQueries {
		return nil, ErrStoreDown
	}

	out := make([]models.ConnectionEvent, 0)
	for _, ev := range f.events {
		if ev.AccountID != q.AccountID {
			continue
		}
		if q.Event != "" && ev.Event != q.Event {
			continue
		}
		out = append(out, ev)
	}

	sort.Slice(out, func(i, j int) bool {
		if q.Order == models.SortAscending {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].Timestamp > out[j].Timestamp
	})

	limit := q.Limit
	if limit < 1 {
		limit = 50
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeEventStore) QueryOlderThan(_ context.Context, cutoff int64) ([]models.ConnectionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailQueries {
		return nil, ErrStoreDown
	}

	out := make([]models.ConnectionEvent, 0)
	for _, ev := range f.events {
		if ev.Timestamp < cutoff {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out, nil
}

func (f *FakeEventStore) DeleteConnectionEvent(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailDeletes {
		return false, ErrStoreDown
	}
	_, ok := f.events[id]
	delete(f.events, id)
	return ok, nil
}

func (f *FakeEventStore) DeleteAccountEvents(_ context.Context, accountID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailDeletes {
		return 0, ErrStoreDown
	}
	var deleted int64
	for id, ev := range f.events {
		if ev.AccountID == accountID {
			delete(f.events, id)
			deleted++
		}
	}
	return deleted, nil
}

// Len reports how many events the fake currently holds.
func (f *FakeEventStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// Get returns a stored event by id, if present.
func (f *FakeEventStore) Get(id string) (models.ConnectionEvent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, ok := f.events[id]
	return ev, ok
}
