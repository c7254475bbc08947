package memory

import (
	"context"
	"sync"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
)

// InMemoryStore keeps events in append order.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListBySubject(_ context.Context, subject string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []audit.Event
	for _, e := range s.events {
		if e.Subject == subject {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListRecent returns up to limit of the most recently appended events, oldest first.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := max(len(s.events)-limit, 0)
	return append([]audit.Event{}, s.events[start:]...), nil
}
