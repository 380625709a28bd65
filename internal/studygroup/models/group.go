package models

import (
	"time"

	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
)

// MinCapacity is the smallest allowed MaxMembers: the owner plus one seat.
const MinCapacity = 2

// MaxNameLength bounds group names.
const MaxNameLength = 128

// Group is the aggregate root for a study group.
//
// Invariants:
//   - OwnerID is immutable after construction
//   - MaxMembers >= MinCapacity
//   - 1 <= CurrentMembers <= MaxMembers
//   - CurrentMembers == 1 + number of ledger entries for the group; the owner
//     is counted but never stored in the ledger
//
// CurrentMembers is only changed by the store's conditional increment inside
// an admission transaction.
type Group struct {
	ID             id.GroupID `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	OwnerID        id.UserID  `json:"owner_id"`
	MaxMembers     int        `json:"max_members"`
	CurrentMembers int        `json:"current_members"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewGroup constructs a group with the owner occupying the first seat.
func NewGroup(groupID id.GroupID, ownerID id.UserID, name, description string, maxMembers int, now time.Time) (*Group, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "group owner is required")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if maxMembers < MinCapacity {
		return nil, dErrors.New(dErrors.CodeInvalidCapacity, "max members must be at least 2")
	}
	return &Group{
		ID:             groupID,
		Name:           name,
		Description:    description,
		OwnerID:        ownerID,
		MaxMembers:     maxMembers,
		CurrentMembers: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (g *Group) IsOwner(userID id.UserID) bool {
	return g.OwnerID == userID
}

func (g *Group) IsFull() bool {
	return g.CurrentMembers >= g.MaxMembers
}

func (g *Group) FreeSlots() int {
	return g.MaxMembers - g.CurrentMembers
}

// ExpectedMembers returns the headcount implied by a ledger of the given size.
func ExpectedMembers(ledgerSize int) int {
	return 1 + ledgerSize
}

// CanResize reports whether maxMembers is acceptable for the current headcount.
func (g *Group) CanResize(maxMembers int) error {
	if maxMembers < MinCapacity {
		return dErrors.New(dErrors.CodeInvalidCapacity, "max members must be at least 2")
	}
	if maxMembers < g.CurrentMembers {
		return dErrors.New(dErrors.CodeInvalidCapacity, "max members cannot be below the current headcount")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "group name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return dErrors.New(dErrors.CodeInvariantViolation, "group name must be 128 characters or less")
	}
	return nil
}
