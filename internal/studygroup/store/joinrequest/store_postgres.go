package joinrequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studyhub/internal/platform/postgres"
	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/sentinel"
	txcontext "studyhub/pkg/platform/tx"
)

// onePendingIndex is the partial unique index allowing a single PENDING
// request per (group_id, user_id).
const onePendingIndex = "join_requests_one_pending"

// PostgresStore persists join requests in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const requestColumns = `id, group_id, user_id, reason, experience, status, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, r *models.JoinRequest) error {
	query := `
		INSERT INTO join_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := txcontext.Q(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(r.ID),
		uuid.UUID(r.GroupID),
		uuid.UUID(r.UserID),
		r.Reason,
		r.Experience,
		string(r.Status),
		r.CreatedAt,
		r.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, onePendingIndex) {
			return sentinel.ErrConflict
		}
		if postgres.IsForeignKeyViolation(err) {
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("create join request: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, requestID id.JoinRequestID) (*models.JoinRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM join_requests WHERE id = $1`
	r, err := scanRequest(txcontext.Q(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(requestID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find join request: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) ListPendingForOwner(ctx context.Context, ownerID id.UserID) ([]*models.JoinRequest, error) {
	query := `
		SELECT jr.id, jr.group_id, jr.user_id, jr.reason, jr.experience, jr.status, jr.created_at, jr.updated_at
		FROM join_requests jr
		JOIN study_groups g ON g.id = jr.group_id
		WHERE g.owner_id = $1 AND jr.status = 'PENDING'
		ORDER BY jr.created_at
	`
	rows, err := txcontext.Q(ctx, s.db).QueryContext(ctx, query, uuid.UUID(ownerID))
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	defer rows.Close()

	var out []*models.JoinRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan join request: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate join requests: %w", err)
	}
	return out, nil
}

// SetStatus resolves a PENDING request. The status guard in the WHERE clause
// makes a second resolution of the same request a no-op that reports
// ErrInvalidState.
func (s *PostgresStore) SetStatus(ctx context.Context, requestID id.JoinRequestID, status models.JoinRequestStatus, now time.Time) (*models.JoinRequest, error) {
	query := `
		UPDATE join_requests
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'PENDING'
		RETURNING ` + requestColumns
	r, err := scanRequest(txcontext.Q(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(requestID), string(status), now))
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("set join request status: %w", err)
	}
	var exists bool
	err = txcontext.Q(ctx, s.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM join_requests WHERE id = $1)`, uuid.UUID(requestID)).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check join request exists: %w", err)
	}
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	return nil, sentinel.ErrInvalidState
}

func (s *PostgresStore) LatestForUser(ctx context.Context, groupID id.GroupID, userID id.UserID) (*models.JoinRequest, error) {
	query := `
		SELECT ` + requestColumns + ` FROM join_requests
		WHERE group_id = $1 AND user_id = $2
		ORDER BY (status = 'PENDING') DESC, created_at DESC
		LIMIT 1
	`
	r, err := scanRequest(txcontext.Q(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(groupID), uuid.UUID(userID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("latest join request: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) DeleteByGroup(ctx context.Context, groupID id.GroupID) (int, error) {
	res, err := txcontext.Q(ctx, s.db).ExecContext(ctx, `DELETE FROM join_requests WHERE group_id = $1`, uuid.UUID(groupID))
	if err != nil {
		return 0, fmt.Errorf("delete join requests: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete join requests rows affected: %w", err)
	}
	return int(rows), nil
}

type requestRow interface {
	Scan(dest ...any) error
}

func scanRequest(row requestRow) (*models.JoinRequest, error) {
	var (
		r               models.JoinRequest
		reqID, gID, uID uuid.UUID
		status          string
	)
	if err := row.Scan(&reqID, &gID, &uID, &r.Reason, &r.Experience, &status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.ID = id.JoinRequestID(reqID)
	r.GroupID = id.GroupID(gID)
	r.UserID = id.UserID(uID)
	r.Status = models.JoinRequestStatus(status)
	return &r, nil
}
