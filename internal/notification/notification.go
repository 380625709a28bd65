// Package notification delivers membership notices to users after the
// admission change that caused them has committed. Delivery is best effort:
// failures are logged and never reach the caller.
package notification

import (
	"context"
	"time"

	id "studyhub/pkg/domain"
)

// Kind names what happened.
type Kind string

const (
	KindSchedule        Kind = "SCHEDULE"
	KindJoinRequested   Kind = "JOIN_REQUESTED"
	KindRequestApproved Kind = "REQUEST_APPROVED"
	KindRequestRejected Kind = "REQUEST_REJECTED"
	KindMemberJoined    Kind = "MEMBER_JOINED"
	KindMemberLeft      Kind = "MEMBER_LEFT"
	KindMemberRemoved   Kind = "MEMBER_REMOVED"
	KindGroupDeleted    Kind = "GROUP_DELETED"
)

// Notification is a single message for one recipient.
type Notification struct {
	Kind        Kind       `json:"kind"`
	RecipientID id.UserID  `json:"recipient_id"`
	GroupID     id.GroupID `json:"group_id"`
	Message     string     `json:"message"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Notifier delivers a notification.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Recorder observes delivery outcomes. Implemented by the admission metrics.
type Recorder interface {
	NotificationDelivered(kind string)
	NotificationFailed(kind string)
	NotificationFellBack(kind string)
	NotificationDropped(kind string)
}
