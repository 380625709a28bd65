package models

import (
	"strings"

	dErrors "studyhub/pkg/domain-errors"
)

const (
	maxDescriptionLength = 2000
	maxReasonLength      = 1000
)

// CreateGroupRequest carries the metadata for a new group.
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members"`
}

func (r *CreateGroupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateGroupRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if len(r.Name) > MaxNameLength {
		return dErrors.New(dErrors.CodeValidation, "name must be 128 characters or less")
	}
	if len(r.Description) > maxDescriptionLength {
		return dErrors.New(dErrors.CodeValidation, "description is too long")
	}
	if r.MaxMembers < MinCapacity {
		return dErrors.New(dErrors.CodeInvalidCapacity, "max members must be at least 2")
	}
	return nil
}

// UpdateGroupRequest changes group metadata. Nil fields are left untouched.
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	MaxMembers  *int    `json:"max_members,omitempty"`
}

func (r *UpdateGroupRequest) Normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
	if r.Description != nil {
		desc := strings.TrimSpace(*r.Description)
		r.Description = &desc
	}
}

func (r *UpdateGroupRequest) Validate() error {
	if r.Name != nil {
		if *r.Name == "" {
			return dErrors.New(dErrors.CodeValidation, "name cannot be empty")
		}
		if len(*r.Name) > MaxNameLength {
			return dErrors.New(dErrors.CodeValidation, "name must be 128 characters or less")
		}
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLength {
		return dErrors.New(dErrors.CodeValidation, "description is too long")
	}
	if r.MaxMembers != nil && *r.MaxMembers < MinCapacity {
		return dErrors.New(dErrors.CodeInvalidCapacity, "max members must be at least 2")
	}
	return nil
}

// JoinRequestInput is the applicant's free-text payload.
type JoinRequestInput struct {
	Reason     string `json:"reason"`
	Experience string `json:"experience"`
}

func (r *JoinRequestInput) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
	r.Experience = strings.TrimSpace(r.Experience)
}

func (r *JoinRequestInput) Validate() error {
	if len(r.Reason) > maxReasonLength || len(r.Experience) > maxReasonLength {
		return dErrors.New(dErrors.CodeValidation, "reason and experience must be 1000 characters or less")
	}
	return nil
}
