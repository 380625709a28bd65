package joinrequest

import (
	"context"
	"sort"
	"sync"
	"time"

	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/sentinel"
)

// GroupLister resolves the groups an owner holds. The memory store keeps no
// copy of group ownership and asks the group store instead.
type GroupLister interface {
	ListByOwner(ctx context.Context, ownerID id.UserID) ([]*models.Group, error)
}

// InMemory keeps join requests in insertion order. At most one PENDING
// request per (group, user) is accepted.
type InMemory struct {
	mu       sync.RWMutex
	requests map[id.JoinRequestID]*models.JoinRequest
	groups   GroupLister
}

func NewInMemory(groups GroupLister) *InMemory {
	return &InMemory{
		requests: make(map[id.JoinRequestID]*models.JoinRequest),
		groups:   groups,
	}
}

func (s *InMemory) Create(_ context.Context, r *models.JoinRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[r.ID]; exists {
		return sentinel.ErrConflict
	}
	if r.IsPending() {
		for _, existing := range s.requests {
			if existing.IsPending() && existing.GroupID == r.GroupID && existing.UserID == r.UserID {
				return sentinel.ErrConflict
			}
		}
	}
	c := *r
	s.requests[r.ID] = &c
	return nil
}

func (s *InMemory) FindByID(_ context.Context, requestID id.JoinRequestID) (*models.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := *r
	return &c, nil
}

// ListPendingForOwner returns PENDING requests across every group ownerID
// owns, oldest first.
func (s *InMemory) ListPendingForOwner(ctx context.Context, ownerID id.UserID) ([]*models.JoinRequest, error) {
	owned, err := s.groups.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	groupIDs := make(map[id.GroupID]struct{}, len(owned))
	for _, g := range owned {
		groupIDs[g.ID] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.JoinRequest
	for _, r := range s.requests {
		if _, ok := groupIDs[r.GroupID]; ok && r.IsPending() {
			c := *r
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// SetStatus moves a PENDING request to a terminal status. A request that
// already left PENDING yields ErrInvalidState.
func (s *InMemory) SetStatus(_ context.Context, requestID id.JoinRequestID, status models.JoinRequestStatus, now time.Time) (*models.JoinRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !r.Status.CanTransitionTo(status) {
		return nil, sentinel.ErrInvalidState
	}
	r.Status = status
	r.UpdatedAt = now
	c := *r
	return &c, nil
}

// LatestForUser returns the most recent request userID made for groupID. A
// PENDING request is always the newest one, so it wins over terminal
// requests carrying the same timestamp.
func (s *InMemory) LatestForUser(_ context.Context, groupID id.GroupID, userID id.UserID) (*models.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *models.JoinRequest
	for _, r := range s.requests {
		if r.GroupID != groupID || r.UserID != userID {
			continue
		}
		if latest == nil || newer(r, latest) {
			latest = r
		}
	}
	if latest == nil {
		return nil, sentinel.ErrNotFound
	}
	c := *latest
	return &c, nil
}

func newer(a, b *models.JoinRequest) bool {
	aPending := a.Status == models.JoinRequestPending
	bPending := b.Status == models.JoinRequestPending
	if aPending != bPending {
		return aPending
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (s *InMemory) DeleteByGroup(_ context.Context, groupID id.GroupID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, r := range s.requests {
		if r.GroupID == groupID {
			delete(s.requests, k)
			n++
		}
	}
	return n, nil
}

// Snapshot is an opaque copy of the stored requests.
type Snapshot map[id.JoinRequestID]models.JoinRequest

func (s *InMemory) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(Snapshot, len(s.requests))
	for k, r := range s.requests {
		snap[k] = *r
	}
	return snap
}

func (s *InMemory) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = make(map[id.JoinRequestID]*models.JoinRequest, len(snap))
	for k, r := range snap {
		s.requests[k] = &r
	}
}
