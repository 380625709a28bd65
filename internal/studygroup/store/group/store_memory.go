package group

import (
	"context"
	"sort"
	"sync"
	"time"

	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/sentinel"
)

// InMemory stores groups in a map guarded by a mutex. IncrementMembers is a
// compare-and-set under the lock.
type InMemory struct {
	mu     sync.RWMutex
	groups map[id.GroupID]*models.Group
}

func NewInMemory() *InMemory {
	return &InMemory{groups: make(map[id.GroupID]*models.Group)}
}

func (s *InMemory) Create(_ context.Context, g *models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.groups[g.ID]; exists {
		return sentinel.ErrConflict
	}
	s.groups[g.ID] = clone(g)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, groupID id.GroupID) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[groupID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(g), nil
}

// FindByIDForUpdate is FindByID; the memory transaction already serializes writers.
func (s *InMemory) FindByIDForUpdate(ctx context.Context, groupID id.GroupID) (*models.Group, error) {
	return s.FindByID(ctx, groupID)
}

// Update persists metadata and capacity. CurrentMembers is owned by IncrementMembers.
func (s *InMemory) Update(_ context.Context, g *models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.groups[g.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if g.MaxMembers < existing.CurrentMembers {
		return sentinel.ErrLimitExceeded
	}
	existing.Name = g.Name
	existing.Description = g.Description
	existing.MaxMembers = g.MaxMembers
	existing.UpdatedAt = g.UpdatedAt
	return nil
}

func (s *InMemory) IncrementMembers(_ context.Context, groupID id.GroupID, delta int, now time.Time) (*models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[groupID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	next := g.CurrentMembers + delta
	if next < 1 || next > g.MaxMembers {
		return nil, sentinel.ErrLimitExceeded
	}
	g.CurrentMembers = next
	g.UpdatedAt = now
	return clone(g), nil
}

func (s *InMemory) Delete(_ context.Context, groupID id.GroupID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[groupID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.groups, groupID)
	return nil
}

func (s *InMemory) ListByOwner(_ context.Context, ownerID id.UserID) ([]*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Group
	for _, g := range s.groups {
		if g.OwnerID == ownerID {
			out = append(out, clone(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Snapshot is an opaque copy of the store contents.
type Snapshot map[id.GroupID]models.Group

// Snapshot copies the current contents for a later Restore.
func (s *InMemory) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(Snapshot, len(s.groups))
	for k, g := range s.groups {
		snap[k] = *g
	}
	return snap
}

// Restore replaces the contents with a snapshot taken earlier.
func (s *InMemory) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = make(map[id.GroupID]*models.Group, len(snap))
	for k, g := range snap {
		s.groups[k] = &g
	}
}

func clone(g *models.Group) *models.Group {
	c := *g
	return &c
}
