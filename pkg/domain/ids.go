package domain

import (
	"github.com/google/uuid"

	dErrors "studyhub/pkg/domain-errors"
)

// Typed identifiers keep user, group and request ids from being swapped at
// call sites. All are UUIDs on the wire and in storage.
type (
	UserID        uuid.UUID
	GroupID       uuid.UUID
	JoinRequestID uuid.UUID
)

func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id GroupID) String() string       { return uuid.UUID(id).String() }
func (id JoinRequestID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id GroupID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id JoinRequestID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// Text marshaling makes the ids render as canonical UUID strings in JSON.
func (id UserID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }
func (id GroupID) MarshalText() ([]byte, error)       { return uuid.UUID(id).MarshalText() }
func (id JoinRequestID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error        { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *GroupID) UnmarshalText(b []byte) error       { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *JoinRequestID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// NewGroupID returns a random group id.
func NewGroupID() GroupID { return GroupID(uuid.New()) }

// NewJoinRequestID returns a random join request id.
func NewJoinRequestID() JoinRequestID { return JoinRequestID(uuid.New()) }

// ParseUserID parses a non-nil user id at a trust boundary.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user id")
	return UserID(u), err
}

// ParseGroupID parses a non-nil group id at a trust boundary.
func ParseGroupID(s string) (GroupID, error) {
	u, err := parseUUID(s, "group id")
	return GroupID(u), err
}

// ParseJoinRequestID parses a non-nil join request id at a trust boundary.
func ParseJoinRequestID(s string) (JoinRequestID, error) {
	u, err := parseUUID(s, "join request id")
	return JoinRequestID(u), err
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" must not be nil")
	}
	return u, nil
}
