package service

import (
	"context"
	"errors"

	"studyhub/internal/notification"
	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
	"studyhub/pkg/platform/sentinel"
)

// RequestToJoin files a PENDING request for the owner to review.
func (s *Service) RequestToJoin(ctx context.Context, groupID id.GroupID, actorID id.UserID, input models.JoinRequestInput) (_ *models.JoinRequest, err error) {
	ctx, end := s.begin(ctx, "request_to_join", groupAttr(groupID), actorAttr(actorID))
	defer func() { end(err) }()

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		request *models.JoinRequest
		ownerID id.UserID
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, err := loadGroup(ctx, st, groupID, true)
		if err != nil {
			return err
		}
		if err := checkNotMember(ctx, st, g, actorID); err != nil {
			return err
		}
		r, err := models.NewJoinRequest(id.NewJoinRequestID(), groupID, actorID, input.Reason, input.Experience, nowFrom(ctx))
		if err != nil {
			return err
		}
		if err := st.Requests.Create(ctx, r); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrConflict):
				return dErrors.New(dErrors.CodeDuplicatePending, "a pending request for this group already exists")
			case errors.Is(err, sentinel.ErrNotFound):
				return dErrors.New(dErrors.CodeNotFound, "group not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create join request")
		}
		request = r
		ownerID = g.OwnerID
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}

	s.logAudit(ctx, "join_requested",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
		"request_id", request.ID.String(),
	)
	s.notify(ctx, notification.KindJoinRequested, ownerID, groupID, "New join request awaiting your review")
	return request, nil
}

// ListPendingRequests returns the PENDING requests across every group
// actorID owns, oldest first.
func (s *Service) ListPendingRequests(ctx context.Context, actorID id.UserID) (_ []*models.JoinRequest, err error) {
	ctx, end := s.begin(ctx, "list_pending_requests", actorAttr(actorID))
	defer func() { end(err) }()

	pending := []*models.JoinRequest{}
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		found, err := st.Requests.ListPendingForOwner(ctx, actorID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pending requests")
		}
		pending = append(pending, found...)
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return pending, nil
}

// ApproveRequest admits the requester. The status change, ledger insert and
// seat increment commit together; on group_full the request stays PENDING.
func (s *Service) ApproveRequest(ctx context.Context, groupID id.GroupID, requestID id.JoinRequestID, actorID id.UserID) (_ *models.JoinRequest, err error) {
	ctx, end := s.begin(ctx, "approve_request", groupAttr(groupID), requestAttr(requestID), actorAttr(actorID))
	defer func() { end(err) }()

	var approved *models.JoinRequest
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		g, r, err := loadForResolution(ctx, st, groupID, requestID, actorID, models.JoinRequestApproved)
		if err != nil {
			return err
		}
		if err := checkNotMember(ctx, st, g, r.UserID); err != nil {
			return err
		}
		if _, err := admit(ctx, st, groupID, r.UserID); err != nil {
			return err
		}
		approved, err = setStatus(ctx, st, requestID, models.JoinRequestApproved)
		return err
	})
	if err != nil {
		return nil, txError(err)
	}

	s.logAudit(ctx, "join_request_approved",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
		"request_id", requestID.String(),
		"member_id", approved.UserID.String(),
	)
	s.notify(ctx, notification.KindRequestApproved, approved.UserID, groupID, "Your join request was approved")
	return approved, nil
}

// RejectRequest declines a PENDING request. Nothing else changes.
func (s *Service) RejectRequest(ctx context.Context, groupID id.GroupID, requestID id.JoinRequestID, actorID id.UserID) (_ *models.JoinRequest, err error) {
	ctx, end := s.begin(ctx, "reject_request", groupAttr(groupID), requestAttr(requestID), actorAttr(actorID))
	defer func() { end(err) }()

	var rejected *models.JoinRequest
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		if _, _, err := loadForResolution(ctx, st, groupID, requestID, actorID, models.JoinRequestRejected); err != nil {
			return err
		}
		var err error
		rejected, err = setStatus(ctx, st, requestID, models.JoinRequestRejected)
		return err
	})
	if err != nil {
		return nil, txError(err)
	}

	s.logAudit(ctx, "join_request_rejected",
		"group_id", groupID.String(),
		"user_id", actorID.String(),
		"request_id", requestID.String(),
	)
	s.notify(ctx, notification.KindRequestRejected, rejected.UserID, groupID, "Your join request was declined")
	return rejected, nil
}

// loadForResolution applies the checks shared by approve and reject in
// order: existence, ownership, then request state.
func loadForResolution(ctx context.Context, st Stores, groupID id.GroupID, requestID id.JoinRequestID, actorID id.UserID, next models.JoinRequestStatus) (*models.Group, *models.JoinRequest, error) {
	g, err := loadGroup(ctx, st, groupID, true)
	if err != nil {
		return nil, nil, err
	}
	r, err := loadRequest(ctx, st, groupID, requestID)
	if err != nil {
		return nil, nil, err
	}
	if !g.IsOwner(actorID) {
		return nil, nil, dErrors.New(dErrors.CodeForbidden, "only the owner can resolve join requests")
	}
	if err := r.CanResolve(groupID, next); err != nil {
		return nil, nil, err
	}
	return g, r, nil
}

// CheckRequestStatus returns the status of actorID's latest request for the
// group, or nil when the actor never applied.
func (s *Service) CheckRequestStatus(ctx context.Context, groupID id.GroupID, actorID id.UserID) (_ *models.JoinRequestStatus, err error) {
	ctx, end := s.begin(ctx, "check_request_status", groupAttr(groupID), actorAttr(actorID))
	defer func() { end(err) }()

	var status *models.JoinRequestStatus
	err = s.tx.RunInTx(ctx, func(ctx context.Context, st Stores) error {
		if _, err := loadGroup(ctx, st, groupID, false); err != nil {
			return err
		}
		r, err := st.Requests.LatestForUser(ctx, groupID, actorID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return nil
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load join request")
		}
		current := r.Status
		status = &current
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}
	return status, nil
}
