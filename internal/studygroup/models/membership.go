package models

import (
	"time"

	id "studyhub/pkg/domain"
)

// Membership is a ledger entry for a non-owner member.
// Keyed by (GroupID, UserID); the owner of GroupID never has an entry.
type Membership struct {
	GroupID  id.GroupID `json:"group_id"`
	UserID   id.UserID  `json:"user_id"`
	JoinedAt time.Time  `json:"joined_at"`
}

// Role distinguishes the implicit owner seat from ledger members in listings.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleMember Role = "MEMBER"
)

// Roster is the full membership view of a group: the owner plus the ledger.
type Roster struct {
	Group   *Group        `json:"group"`
	Members []*Membership `json:"members"`
}

// Headcount returns the number of seats the roster accounts for.
func (r *Roster) Headcount() int {
	return ExpectedMembers(len(r.Members))
}

// Seat is one occupied place in a group, tagged with how it is held.
type Seat struct {
	UserID   id.UserID `json:"user_id"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// Seats lists the owner first, then the ledger members in roster order.
func (r *Roster) Seats() []Seat {
	seats := make([]Seat, 0, r.Headcount())
	if r.Group != nil {
		seats = append(seats, Seat{UserID: r.Group.OwnerID, Role: RoleOwner, JoinedAt: r.Group.CreatedAt})
	}
	for _, m := range r.Members {
		seats = append(seats, Seat{UserID: m.UserID, Role: RoleMember, JoinedAt: m.JoinedAt})
	}
	return seats
}
