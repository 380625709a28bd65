package service

import (
	"context"

	"studyhub/internal/notification"
	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
)

// JoinGroup admits actorID directly. Two joins racing for the last seat are
// serialized by the group lock; the loser sees group_full.
func (s *Service) JoinGroup(ctx context.Context, groupID id.GroupID, actorID id.UserID) (err error) {
	ctx, end := s.begin(ctx, "join_group", groupAttr(groupID), actorAttr(actorID))
	defer func() { end(err) }()

	var ownerID id.UserID
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, err := loadGroup(ctx, st, groupID, true)
		if err != nil {
			return err
		}
		if err := checkNotMember(ctx, st, g, actorID); err != nil {
			return err
		}
		ownerID = g.OwnerID
		_, err = admit(ctx, st, groupID, actorID)
		return err
	})
	if err != nil {
		return txError(err)
	}

	s.logAudit(ctx, "member_joined",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
	)
	s.notify(ctx, notification.KindMemberJoined, ownerID, groupID, "A new member joined your group")
	return nil
}

// LeaveGroup removes actorID from the ledger. The owner can never leave.
func (s *Service) LeaveGroup(ctx context.Context, groupID id.GroupID, actorID id.UserID) (err error) {
	ctx, end := s.begin(ctx, "leave_group", groupAttr(groupID), actorAttr(actorID))
	defer func() { end(err) }()

	var ownerID id.UserID
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, err := loadGroup(ctx, st, groupID, true)
		if err != nil {
			return err
		}
		if g.IsOwner(actorID) {
			return dErrors.New(dErrors.CodeOwnerCannotLeave, "the owner cannot leave their own group")
		}
		ownerID = g.OwnerID
		_, err = release(ctx, st, groupID, actorID)
		return err
	})
	if err != nil {
		return txError(err)
	}

	s.logAudit(ctx, "member_left",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
	)
	s.notify(ctx, notification.KindMemberLeft, ownerID, groupID, "A member left your group")
	return nil
}

// RemoveMember lets the owner force memberID out of the group.
func (s *Service) RemoveMember(ctx context.Context, groupID id.GroupID, memberID, actorID id.UserID) (err error) {
	ctx, end := s.begin(ctx, "remove_member", groupAttr(groupID), actorAttr(actorID))
	defer func() { end(err) }()

	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, err := loadGroup(ctx, st, groupID, true)
		if err != nil {
			return err
		}
		if !g.IsOwner(actorID) {
			return dErrors.New(dErrors.CodeForbidden, "only the owner can remove members")
		}
		if g.IsOwner(memberID) {
			return dErrors.New(dErrors.CodeCannotRemoveOwner, "the owner cannot be removed")
		}
		_, err = release(ctx, st, groupID, memberID)
		return err
	})
	if err != nil {
		return txError(err)
	}

	s.logAudit(ctx, "member_removed",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
		"member_id", memberID.String(),
	)
	s.notify(ctx, notification.KindMemberRemoved, memberID, groupID, "You were removed from the group")
	return nil
}
