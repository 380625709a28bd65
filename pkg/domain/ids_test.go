package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "studyhub/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// ids must be valid, non-empty, non-nil UUIDs.
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseGroupID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseGroupID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseUserID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseJoinRequestID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, JoinRequestID(valid), id)
		assert.Equal(t, valid.String(), id.String())
	})
}

func TestParseID_HostileInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE study_groups;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUserID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	valid := uuid.New().String()
	for _, input := range []string{valid, "", "invalid", uuid.Nil.String()} {
		_, errUser := ParseUserID(input)
		_, errGroup := ParseGroupID(input)
		_, errRequest := ParseJoinRequestID(input)

		assert.Equal(t, errUser == nil, errGroup == nil, "input %q", input)
		assert.Equal(t, errUser == nil, errRequest == nil, "input %q", input)
	}
}

func TestIsNil(t *testing.T) {
	assert.True(t, GroupID{}.IsNil())
	assert.False(t, NewGroupID().IsNil())
	assert.False(t, NewJoinRequestID().IsNil())
}

func TestIDsEncodeAsUUIDStrings(t *testing.T) {
	groupID := NewGroupID()
	payload := struct {
		Group GroupID `json:"group_id"`
	}{Group: groupID}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"group_id":"`+groupID.String()+`"}`, string(raw))

	var decoded struct {
		Group GroupID `json:"group_id"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, groupID, decoded.Group)
}
