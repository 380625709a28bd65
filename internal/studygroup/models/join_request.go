package models

import (
	"time"

	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
)

// JoinRequestStatus is the lifecycle state of a join request.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "PENDING"
	JoinRequestApproved JoinRequestStatus = "APPROVED"
	JoinRequestRejected JoinRequestStatus = "REJECTED"
)

func (s JoinRequestStatus) IsValid() bool {
	switch s {
	case JoinRequestPending, JoinRequestApproved, JoinRequestRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s JoinRequestStatus) IsTerminal() bool {
	return s == JoinRequestApproved || s == JoinRequestRejected
}

// CanTransitionTo allows only PENDING -> APPROVED and PENDING -> REJECTED.
func (s JoinRequestStatus) CanTransitionTo(next JoinRequestStatus) bool {
	return s == JoinRequestPending && next.IsTerminal()
}

// JoinRequest is a user's application to join a group.
//
// Invariants:
//   - at most one PENDING request per (GroupID, UserID), enforced by the store
//   - APPROVED and REJECTED are terminal
//   - requests are kept as an audit trail and only removed with their group
type JoinRequest struct {
	ID         id.JoinRequestID  `json:"id"`
	GroupID    id.GroupID        `json:"group_id"`
	UserID     id.UserID         `json:"user_id"`
	Reason     string            `json:"reason"`
	Experience string            `json:"experience"`
	Status     JoinRequestStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewJoinRequest constructs a PENDING request.
func NewJoinRequest(requestID id.JoinRequestID, groupID id.GroupID, userID id.UserID, reason, experience string, now time.Time) (*JoinRequest, error) {
	if groupID.IsNil() || userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "join request requires group and user")
	}
	return &JoinRequest{
		ID:         requestID,
		GroupID:    groupID,
		UserID:     userID,
		Reason:     reason,
		Experience: experience,
		Status:     JoinRequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (r *JoinRequest) IsPending() bool {
	return r.Status == JoinRequestPending
}

// CanResolve checks that the request belongs to groupID and is still PENDING.
func (r *JoinRequest) CanResolve(groupID id.GroupID, next JoinRequestStatus) error {
	if r.GroupID != groupID {
		return dErrors.New(dErrors.CodeNotFound, "join request not found")
	}
	if !r.Status.CanTransitionTo(next) {
		return dErrors.New(dErrors.CodeAlreadyTerminal, "join request is already "+string(r.Status))
	}
	return nil
}
