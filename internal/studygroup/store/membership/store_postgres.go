package membership

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"studyhub/internal/platform/postgres"
	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/sentinel"
	txcontext "studyhub/pkg/platform/tx"
)

// PostgresStore keeps the ledger in group_memberships. The primary key on
// (group_id, user_id) rejects duplicate admissions.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Add(ctx context.Context, m *models.Membership) error {
	query := `INSERT INTO group_memberships (group_id, user_id, joined_at) VALUES ($1, $2, $3)`
	_, err := txcontext.Q(ctx, s.db).ExecContext(ctx, query, uuid.UUID(m.GroupID), uuid.UUID(m.UserID), m.JoinedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err, "group_memberships_pkey") {
			return sentinel.ErrConflict
		}
		if postgres.IsForeignKeyViolation(err) {
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("add membership: %w", err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, groupID id.GroupID, userID id.UserID) error {
	res, err := txcontext.Q(ctx, s.db).ExecContext(ctx,
		`DELETE FROM group_memberships WHERE group_id = $1 AND user_id = $2`,
		uuid.UUID(groupID), uuid.UUID(userID))
	if err != nil {
		return fmt.Errorf("remove membership: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove membership rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) IsMember(ctx context.Context, groupID id.GroupID, userID id.UserID) (bool, error) {
	var exists bool
	err := txcontext.Q(ctx, s.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM group_memberships WHERE group_id = $1 AND user_id = $2)`,
		uuid.UUID(groupID), uuid.UUID(userID)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) ListMembers(ctx context.Context, groupID id.GroupID) ([]*models.Membership, error) {
	rows, err := txcontext.Q(ctx, s.db).QueryContext(ctx,
		`SELECT group_id, user_id, joined_at FROM group_memberships WHERE group_id = $1 ORDER BY joined_at`,
		uuid.UUID(groupID))
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Membership
	for rows.Next() {
		var (
			m        models.Membership
			gID, uID uuid.UUID
		)
		if err := rows.Scan(&gID, &uID, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		m.GroupID = id.GroupID(gID)
		m.UserID = id.UserID(uID)
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

func (s *PostgresStore) Count(ctx context.Context, groupID id.GroupID) (int, error) {
	var n int
	err := txcontext.Q(ctx, s.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM group_memberships WHERE group_id = $1`, uuid.UUID(groupID)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) DeleteByGroup(ctx context.Context, groupID id.GroupID) (int, error) {
	res, err := txcontext.Q(ctx, s.db).ExecContext(ctx,
		`DELETE FROM group_memberships WHERE group_id = $1`, uuid.UUID(groupID))
	if err != nil {
		return 0, fmt.Errorf("delete memberships: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete memberships rows affected: %w", err)
	}
	return int(rows), nil
}
