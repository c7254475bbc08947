// Package settings persists the registry configuration that must survive a
// restart: the registration fee and the bound authority contract.
package settings

import (
	"context"
	"sync"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	settings *models.Settings
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

// Load returns sentinel.ErrNotFound until the first Save.
func (s *InMemoryStore) Load(_ context.Context) (models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return models.Settings{}, sentinel.ErrNotFound
	}
	return *s.settings, nil
}

func (s *InMemoryStore) Save(_ context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}
