package service

import (
	"context"
	"errors"

	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
	"studyhub/pkg/platform/sentinel"
)

// loadGroup reads a group inside a transaction. With lock set the group row
// stays locked until the transaction ends.
func loadGroup(ctx context.Context, st Stores, groupID id.GroupID, lock bool) (*models.Group, error) {
	var (
		g   *models.Group
		err error
	)
	if lock {
		g, err = st.Groups.FindByIDForUpdate(ctx, groupID)
	} else {
		g, err = st.Groups.FindByID(ctx, groupID)
	}
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "group not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load group")
	}
	return g, nil
}

// loadRequest reads a join request and checks that it belongs to groupID.
// A request filed against another group is reported as not found.
func loadRequest(ctx context.Context, st Stores, groupID id.GroupID, requestID id.JoinRequestID) (*models.JoinRequest, error) {
	r, err := st.Requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "join request not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load join request")
	}
	if r.GroupID != groupID {
		return nil, dErrors.New(dErrors.CodeNotFound, "join request not found")
	}
	return r, nil
}

func checkNotMember(ctx context.Context, st Stores, g *models.Group, userID id.UserID) error {
	if g.IsOwner(userID) {
		return dErrors.New(dErrors.CodeAlreadyMember, "owner is already a member of the group")
	}
	member, err := st.Members.IsMember(ctx, g.ID, userID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check membership")
	}
	if member {
		return dErrors.New(dErrors.CodeAlreadyMember, "user is already a member of the group")
	}
	return nil
}

// admit adds userID to the ledger and takes a seat. Both writes happen in
// the caller's transaction.
func admit(ctx context.Context, st Stores, groupID id.GroupID, userID id.UserID) (*models.Group, error) {
	now := nowFrom(ctx)
	g, err := st.Groups.IncrementMembers(ctx, groupID, 1, now)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrLimitExceeded):
			return nil, dErrors.New(dErrors.CodeGroupFull, "group is full")
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "group not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update headcount")
	}
	err = st.Members.Add(ctx, &models.Membership{GroupID: groupID, UserID: userID, JoinedAt: now})
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrConflict):
			return nil, dErrors.New(dErrors.CodeAlreadyMember, "user is already a member of the group")
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "group not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add member")
	}
	return g, nil
}

// release removes userID from the ledger and frees a seat.
func release(ctx context.Context, st Stores, groupID id.GroupID, userID id.UserID) (*models.Group, error) {
	if err := st.Members.Remove(ctx, groupID, userID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotMember, "user is not a member of the group")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove member")
	}
	g, err := st.Groups.IncrementMembers(ctx, groupID, -1, nowFrom(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrLimitExceeded) {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, "headcount out of step with membership ledger")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update headcount")
	}
	return g, nil
}

func setStatus(ctx context.Context, st Stores, requestID id.JoinRequestID, status models.JoinRequestStatus) (*models.JoinRequest, error) {
	r, err := st.Requests.SetStatus(ctx, requestID, status, nowFrom(ctx))
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrInvalidState):
			return nil, dErrors.New(dErrors.CodeAlreadyTerminal, "join request is already resolved")
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "join request not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update join request")
	}
	return r, nil
}

// txError turns a failure from RunInTx into a coded error. Coded errors from
// the transaction body pass through unchanged.
func txError(err error) error {
	if err == nil {
		return nil
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "operation cancelled")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "transaction failed")
}
