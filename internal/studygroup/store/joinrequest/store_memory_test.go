package joinrequest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"studyhub/internal/studygroup/models"
	"studyhub/internal/studygroup/store/group"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/sentinel"
)

type JoinRequestStoreSuite struct {
	suite.Suite
	ctx    context.Context
	groups *group.InMemory
	store  *InMemory
	owner  id.UserID
	group  *models.Group
	now    time.Time
}

func TestJoinRequestStoreSuite(t *testing.T) {
	suite.Run(t, new(JoinRequestStoreSuite))
}

func (s *JoinRequestStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.groups = group.NewInMemory()
	s.store = NewInMemory(s.groups)
	s.owner = id.UserID(uuid.New())
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	g, err := models.NewGroup(id.NewGroupID(), s.owner, "Compilers", "", 4, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.groups.Create(s.ctx, g))
	s.group = g
}

func (s *JoinRequestStoreSuite) newRequest(groupID id.GroupID, userID id.UserID, at time.Time) *models.JoinRequest {
	r, err := models.NewJoinRequest(id.NewJoinRequestID(), groupID, userID, "want to learn", "none", at)
	s.Require().NoError(err)
	return r
}

func (s *JoinRequestStoreSuite) TestCreate() {
	user := id.UserID(uuid.New())
	first := s.newRequest(s.group.ID, user, s.now)
	s.Require().NoError(s.store.Create(s.ctx, first))

	s.Run("second pending request for same pair conflicts", func() {
		err := s.store.Create(s.ctx, s.newRequest(s.group.ID, user, s.now.Add(time.Minute)))
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("new request allowed once the previous one is resolved", func() {
		_, err := s.store.SetStatus(s.ctx, first.ID, models.JoinRequestRejected, s.now.Add(time.Minute))
		s.Require().NoError(err)
		s.NoError(s.store.Create(s.ctx, s.newRequest(s.group.ID, user, s.now.Add(2*time.Minute))))
	})
}

func (s *JoinRequestStoreSuite) TestSetStatus() {
	r := s.newRequest(s.group.ID, id.UserID(uuid.New()), s.now)
	s.Require().NoError(s.store.Create(s.ctx, r))

	updated, err := s.store.SetStatus(s.ctx, r.ID, models.JoinRequestApproved, s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(models.JoinRequestApproved, updated.Status)
	s.Equal(s.now.Add(time.Hour), updated.UpdatedAt)

	_, err = s.store.SetStatus(s.ctx, r.ID, models.JoinRequestRejected, s.now.Add(2*time.Hour))
	s.ErrorIs(err, sentinel.ErrInvalidState)

	_, err = s.store.SetStatus(s.ctx, id.NewJoinRequestID(), models.JoinRequestApproved, s.now)
	s.ErrorIs(err, sentinel.ErrNotFound)

	found, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(models.JoinRequestApproved, found.Status)
}

func (s *JoinRequestStoreSuite) TestListPendingForOwner() {
	other, err := models.NewGroup(id.NewGroupID(), id.UserID(uuid.New()), "Other", "", 3, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.groups.Create(s.ctx, other))

	later := s.newRequest(s.group.ID, id.UserID(uuid.New()), s.now.Add(time.Minute))
	earlier := s.newRequest(s.group.ID, id.UserID(uuid.New()), s.now)
	resolved := s.newRequest(s.group.ID, id.UserID(uuid.New()), s.now)
	foreign := s.newRequest(other.ID, id.UserID(uuid.New()), s.now)
	for _, r := range []*models.JoinRequest{later, earlier, resolved, foreign} {
		s.Require().NoError(s.store.Create(s.ctx, r))
	}
	_, err = s.store.SetStatus(s.ctx, resolved.ID, models.JoinRequestRejected, s.now)
	s.Require().NoError(err)

	pending, err := s.store.ListPendingForOwner(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Require().Len(pending, 2)
	s.Equal(earlier.ID, pending[0].ID)
	s.Equal(later.ID, pending[1].ID)

	none, err := s.store.ListPendingForOwner(s.ctx, id.UserID(uuid.New()))
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *JoinRequestStoreSuite) TestLatestForUser() {
	user := id.UserID(uuid.New())
	_, err := s.store.LatestForUser(s.ctx, s.group.ID, user)
	s.ErrorIs(err, sentinel.ErrNotFound)

	old := s.newRequest(s.group.ID, user, s.now)
	s.Require().NoError(s.store.Create(s.ctx, old))
	_, err = s.store.SetStatus(s.ctx, old.ID, models.JoinRequestRejected, s.now.Add(time.Minute))
	s.Require().NoError(err)

	fresh := s.newRequest(s.group.ID, user, s.now.Add(time.Hour))
	s.Require().NoError(s.store.Create(s.ctx, fresh))

	latest, err := s.store.LatestForUser(s.ctx, s.group.ID, user)
	s.Require().NoError(err)
	s.Equal(fresh.ID, latest.ID)
	s.True(latest.IsPending())
}

func (s *JoinRequestStoreSuite) TestLatestForUser_SameTimestampPrefersPending() {
	for range 20 {
		user := id.UserID(uuid.New())
		old := s.newRequest(s.group.ID, user, s.now)
		s.Require().NoError(s.store.Create(s.ctx, old))
		_, err := s.store.SetStatus(s.ctx, old.ID, models.JoinRequestRejected, s.now)
		s.Require().NoError(err)

		fresh := s.newRequest(s.group.ID, user, s.now)
		s.Require().NoError(s.store.Create(s.ctx, fresh))

		latest, err := s.store.LatestForUser(s.ctx, s.group.ID, user)
		s.Require().NoError(err)
		s.Require().Equal(fresh.ID, latest.ID)
	}
}

func (s *JoinRequestStoreSuite) TestDeleteByGroupAndRestore() {
	r := s.newRequest(s.group.ID, id.UserID(uuid.New()), s.now)
	s.Require().NoError(s.store.Create(s.ctx, r))
	snap := s.store.Snapshot()

	n, err := s.store.DeleteByGroup(s.ctx, s.group.ID)
	s.Require().NoError(err)
	s.Equal(1, n)
	_, err = s.store.FindByID(s.ctx, r.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.store.Restore(snap)
	_, err = s.store.FindByID(s.ctx, r.ID)
	s.NoError(err)
}
