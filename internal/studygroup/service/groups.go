package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"studyhub/internal/notification"
	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
	"studyhub/pkg/platform/sentinel"
)

// CreateGroup creates a group owned by ownerID. The owner holds the first seat.
func (s *Service) CreateGroup(ctx context.Context, ownerID id.UserID, req models.CreateGroupRequest) (_ *models.Group, err error) {
	ctx, end := s.begin(ctx, "create_group", actorAttr(ownerID))
	defer func() { end(err) }()

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	g, err := models.NewGroup(id.NewGroupID(), ownerID, req.Name, req.Description, req.MaxMembers, nowFrom(ctx))
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		if err := st.Groups.Create(ctx, g); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, "group already exists")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create group")
		}
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}

	s.logAudit(ctx, "group_created",
		"group_id", g.ID.String(),
		"user_id", ownerID.String(),
		"max_members", g.MaxMembers,
	)
	return g, nil
}

// GetGroup returns a group with its current headcount.
func (s *Service) GetGroup(ctx context.Context, groupID id.GroupID) (_ *models.Group, err error) {
	ctx, end := s.begin(ctx, "get_group", groupAttr(groupID))
	defer func() { end(err) }()

	var g *models.Group
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		var err error
		g, err = loadGroup(ctx, st, groupID, false)
		return err
	})
	if err != nil {
		return nil, txError(err)
	}
	return g, nil
}

// ListMembers returns the group and its ledger read in one transaction, so
// the headcount and the member list agree.
func (s *Service) ListMembers(ctx context.Context, groupID id.GroupID) (_ *models.Roster, err error) {
	ctx, end := s.begin(ctx, "list_members", groupAttr(groupID))
	defer func() { end(err) }()

	roster := &models.Roster{}
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, err := loadGroup(ctx, st, groupID, false)
		if err != nil {
			return err
		}
		members, err := st.Members.ListMembers(ctx, groupID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list members")
		}
		roster.Group = g
		roster.Members = members
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	if roster.Members == nil {
		roster.Members = []*models.Membership{}
	}
	return roster, nil
}

// ListOwnedGroups returns the groups ownerID created, oldest first.
func (s *Service) ListOwnedGroups(ctx context.Context, ownerID id.UserID) (_ []*models.Group, err error) {
	ctx, end := s.begin(ctx, "list_owned_groups", actorAttr(ownerID))
	defer func() { end(err) }()

	groups := []*models.Group{}
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		owned, err := st.Groups.ListByOwner(ctx, ownerID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list groups")
		}
		groups = append(groups, owned...)
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return groups, nil
}

// UpdateGroup changes name, description or capacity. Only the owner may
// update, and capacity may never drop below the current headcount.
func (s *Service) UpdateGroup(ctx context.Context, groupID id.GroupID, actorID id.UserID, req models.UpdateGroupRequest) (_ *models.Group, err error) {
	ctx, end := s.begin(ctx, "update_group", groupAttr(groupID), actorAttr(actorID))
	defer func() { end(err) }()

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated *models.Group
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, err := loadGroup(ctx, st, groupID, true)
		if err != nil {
			return err
		}
		if !g.IsOwner(actorID) {
			return dErrors.New(dErrors.CodeForbidden, "only the owner can update the group")
		}
		if req.Name != nil {
			g.Name = *req.Name
		}
		if req.Description != nil {
			g.Description = *req.Description
		}
		if req.MaxMembers != nil {
			if err := g.CanResize(*req.MaxMembers); err != nil {
				return err
			}
			g.MaxMembers = *req.MaxMembers
		}
		g.UpdatedAt = nowFrom(ctx)

		if err := st.Groups.Update(ctx, g); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrLimitExceeded):
				return dErrors.New(dErrors.CodeInvalidCapacity, "max members cannot be below the current headcount")
			case errors.Is(err, sentinel.ErrNotFound):
				return dErrors.New(dErrors.CodeNotFound, "group not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update group")
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}

	s.logAudit(ctx, "group_updated",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
		"max_members", updated.MaxMembers,
	)
	return updated, nil
}

// DeleteGroup removes the group together with its ledger and join requests.
// Former members are told after commit.
func (s *Service) DeleteGroup(ctx context.Context, groupID id.GroupID, actorID id.UserID) (err error) {
	ctx, end := s.begin(ctx, "delete_group", groupAttr(groupID), actorAttr(actorID))
	defer func() { end(err) }()

	var (
		name    string
		members []*models.Membership
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, err := loadGroup(ctx, st, groupID, true)
		if err != nil {
			return err
		}
		if !g.IsOwner(actorID) {
			return dErrors.New(dErrors.CodeForbidden, "only the owner can delete the group")
		}
		name = g.Name
		members, err = st.Members.ListMembers(ctx, groupID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list members")
		}
		if _, err := st.Members.DeleteByGroup(ctx, groupID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete members")
		}
		if _, err := st.Requests.DeleteByGroup(ctx, groupID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete join requests")
		}
		if err := st.Groups.Delete(ctx, groupID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "group not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete group")
		}
		return nil
	})
	if err != nil {
		return txError(err)
	}

	s.logAudit(ctx, "group_deleted",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
		"members_removed", len(members),
	)
	for _, m := range members {
		s.notify(ctx, notification.KindGroupDeleted, m.UserID, groupID, "Group "+name+" was deleted by its owner")
	}
	return nil
}

// AnnounceSchedule sends message to every member of the group. Only the
// owner may announce. Returns the number of members notified.
func (s *Service) AnnounceSchedule(ctx context.Context, groupID id.GroupID, actorID id.UserID, message string) (_ int, err error) {
	ctx, end := s.begin(ctx, "announce_schedule", groupAttr(groupID), actorAttr(actorID))
	defer func() { end(err) }()

	if message == "" {
		return 0, dErrors.New(dErrors.CodeValidation, "message is required")
	}

	var members []*models.Membership
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, err := loadGroup(ctx, st, groupID, false)
		if err != nil {
			return err
		}
		if !g.IsOwner(actorID) {
			return dErrors.New(dErrors.CodeForbidden, "only the owner can announce a schedule")
		}
		members, err = st.Members.ListMembers(ctx, groupID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list members")
		}
		return nil
	})
	if err != nil {
		return 0, txError(err)
	}

	for _, m := range members {
		s.notify(ctx, notification.KindSchedule, m.UserID, groupID, message)
	}
	s.logAudit(ctx, "schedule_announced",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
		"recipients", len(members),
	)
	return len(members), nil
}

// VerifyHeadcount checks that the stored headcount equals one seat for the
// owner plus one per ledger entry, within [1, MaxMembers].
func (s *Service) VerifyHeadcount(ctx context.Context, groupID id.GroupID) (err error) {
	ctx, end := s.begin(ctx, "verify_headcount", groupAttr(groupID))
	defer func() { end(err) }()

	var (
		g      *models.Group
		ledger int
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		var err error
		g, err = loadGroup(ctx, st, groupID, false)
		if err != nil {
			return err
		}
		ledger, err = st.Members.Count(ctx, groupID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to count members")
		}
		return nil
	})
	if err != nil {
		return txError(err)
	}

	expected := models.ExpectedMembers(ledger)
	if g.CurrentMembers == expected && g.CurrentMembers >= 1 && g.CurrentMembers <= g.MaxMembers {
		return nil
	}
	if s.logger != nil {
		s.logger.ErrorContext(ctx, "headcount drift detected",
			"group_id", groupID.String(),
			"current_members", g.CurrentMembers,
			"ledger_members", ledger,
			"max_members", g.MaxMembers,
		)
	}
	return dErrors.New(dErrors.CodeInvariantViolation, "group headcount does not match membership ledger")
}

func requestAttr(requestID id.JoinRequestID) attribute.KeyValue {
	return attribute.String("studygroup.request_id", requestID.String())
}
