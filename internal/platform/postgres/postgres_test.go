package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "group_memberships_pkey"}
	deadlock := &pq.Error{Code: "40P01"}
	serialization := &pq.Error{Code: "40001"}
	fk := &pq.Error{Code: "23503"}

	t.Run("unique violation matches any or named constraint", func(t *testing.T) {
		assert.True(t, IsUniqueViolation(unique, ""))
		assert.True(t, IsUniqueViolation(unique, "group_memberships_pkey"))
		assert.False(t, IsUniqueViolation(unique, "join_requests_one_pending"))
		assert.True(t, IsUniqueViolation(fmt.Errorf("add member: %w", unique), ""))
	})

	t.Run("retryable codes", func(t *testing.T) {
		assert.True(t, IsRetryable(deadlock))
		assert.True(t, IsRetryable(serialization))
		assert.False(t, IsRetryable(unique))
		assert.False(t, IsRetryable(errors.New("connection refused")))
	})

	t.Run("foreign key", func(t *testing.T) {
		assert.True(t, IsForeignKeyViolation(fk))
		assert.False(t, IsForeignKeyViolation(unique))
	})
}
