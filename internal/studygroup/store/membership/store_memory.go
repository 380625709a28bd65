package membership

import (
	"context"
	"sort"
	"sync"

	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/sentinel"
)

type key struct {
	group id.GroupID
	user  id.UserID
}

// InMemory is the membership ledger keyed by (group, user).
type InMemory struct {
	mu      sync.RWMutex
	members map[key]models.Membership
}

func NewInMemory() *InMemory {
	return &InMemory{members: make(map[key]models.Membership)}
}

func (s *InMemory) Add(_ context.Context, m *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{m.GroupID, m.UserID}
	if _, exists := s.members[k]; exists {
		return sentinel.ErrConflict
	}
	s.members[k] = *m
	return nil
}

func (s *InMemory) Remove(_ context.Context, groupID id.GroupID, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{groupID, userID}
	if _, exists := s.members[k]; !exists {
		return sentinel.ErrNotFound
	}
	delete(s.members, k)
	return nil
}

func (s *InMemory) IsMember(_ context.Context, groupID id.GroupID, userID id.UserID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.members[key{groupID, userID}]
	return ok, nil
}

// ListMembers returns the ledger for a group ordered by join time.
func (s *InMemory) ListMembers(_ context.Context, groupID id.GroupID) ([]*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Membership
	for k, m := range s.members {
		if k.group == groupID {
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (s *InMemory) Count(_ context.Context, groupID id.GroupID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for k := range s.members {
		if k.group == groupID {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) DeleteByGroup(_ context.Context, groupID id.GroupID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.members {
		if k.group == groupID {
			delete(s.members, k)
			n++
		}
	}
	return n, nil
}

// Snapshot is an opaque copy of the ledger.
type Snapshot map[key]models.Membership

func (s *InMemory) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(Snapshot, len(s.members))
	for k, m := range s.members {
		snap[k] = m
	}
	return snap
}

func (s *InMemory) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = make(map[key]models.Membership, len(snap))
	for k, m := range snap {
		s.members[k] = m
	}
}
