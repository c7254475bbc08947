package farm

import (
	"context"
	"fmt"
	"sync"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
)

// InMemoryStore keeps farms, the name index and update log behind one lock,
// so the three collections never diverge.
type InMemoryStore struct {
	mu        sync.RWMutex
	farms     map[domain.FarmID]*models.Farm
	byName    map[string]domain.FarmID
	updates   map[domain.FarmID]models.FarmUpdate
	highWater uint64
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		farms:   make(map[domain.FarmID]*models.Farm),
		byName:  make(map[string]domain.FarmID),
		updates: make(map[domain.FarmID]models.FarmUpdate),
	}
}

// Insert adds a farm and its index entry. It never overwrites.
func (s *InMemoryStore) Insert(_ context.Context, f *models.Farm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.farms[f.ID]; ok {
		return fmt.Errorf("farm id %s: %w", f.ID, sentinel.ErrAlreadyUsed)
	}
	if _, ok := s.byName[f.Name]; ok {
		return fmt.Errorf("farm name %q: %w", f.Name, sentinel.ErrAlreadyUsed)
	}

	stored := *f
	s.farms[f.ID] = &stored
	s.byName[f.Name] = f.ID
	if next := uint64(f.ID) + 1; next > s.highWater {
		s.highWater = next
	}
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.FarmID) (*models.Farm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.farms[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *f
	return &out, nil
}

func (s *InMemoryStore) FindIDByName(_ context.Context, name string) (domain.FarmID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[name]
	if !ok {
		return 0, sentinel.ErrNotFound
	}
	return id, nil
}

func (s *InMemoryStore) ExistsByName(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byName[name]
	return ok, nil
}

func (s *InMemoryStore) FindUpdate(_ context.Context, id domain.FarmID) (*models.FarmUpdate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.updates[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &u, nil
}

// Rename applies r to farm id, moves the index entry and replaces the
// update log entry, all under one lock.
func (s *InMemoryStore) Rename(_ context.Context, id domain.FarmID, r models.Rename) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.farms[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if holder, taken := s.byName[r.Name]; taken && holder != id {
		return fmt.Errorf("farm name %q: %w", r.Name, sentinel.ErrAlreadyUsed)
	}

	delete(s.byName, f.Name)
	f.ApplyRename(r)
	s.byName[f.Name] = id
	s.updates[id] = r.Update()
	return nil
}

// Count returns the id high-water mark: one past the largest id ever inserted.
func (s *InMemoryStore) Count(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highWater, nil
}

// LatestHeight returns the largest logical height recorded on any farm.
func (s *InMemoryStore) LatestHeight(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var h uint64
	for _, f := range s.farms {
		h = max(h, f.Timestamp)
	}
	return h, nil
}
