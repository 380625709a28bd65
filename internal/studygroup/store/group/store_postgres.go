package group

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studyhub/internal/platform/postgres"
	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	"studyhub/pkg/platform/sentinel"
	txcontext "studyhub/pkg/platform/tx"

	"github.com/google/uuid"
)

// PostgresStore persists groups in PostgreSQL. Methods join the transaction
// carried by ctx when there is one.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const groupColumns = `id, name, description, owner_id, max_members, current_members, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, g *models.Group) error {
	query := `
		INSERT INTO study_groups (` + groupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := txcontext.Q(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(g.ID),
		g.Name,
		g.Description,
		uuid.UUID(g.OwnerID),
		g.MaxMembers,
		g.CurrentMembers,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, "") {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, groupID id.GroupID) (*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM study_groups WHERE id = $1`
	return s.findOne(ctx, query, groupID)
}

// FindByIDForUpdate locks the group row until the surrounding transaction ends.
// Concurrent admissions for the same group queue behind this lock.
func (s *PostgresStore) FindByIDForUpdate(ctx context.Context, groupID id.GroupID) (*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM study_groups WHERE id = $1 FOR UPDATE`
	return s.findOne(ctx, query, groupID)
}

func (s *PostgresStore) findOne(ctx context.Context, query string, groupID id.GroupID) (*models.Group, error) {
	g, err := scanGroup(txcontext.Q(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(groupID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return g, nil
}

// Update persists metadata and capacity. The capacity change is guarded so it
// can never drop below the live headcount.
func (s *PostgresStore) Update(ctx context.Context, g *models.Group) error {
	query := `
		UPDATE study_groups
		SET name = $2, description = $3, max_members = $4, updated_at = $5
		WHERE id = $1 AND current_members <= $4
	`
	res, err := txcontext.Q(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(g.ID), g.Name, g.Description, g.MaxMembers, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update group rows affected: %w", err)
	}
	if rows == 0 {
		return s.missOrLimit(ctx, g.ID)
	}
	return nil
}

// IncrementMembers applies delta in one conditional UPDATE. A row outside
// [1, max_members] after the change is never written.
func (s *PostgresStore) IncrementMembers(ctx context.Context, groupID id.GroupID, delta int, now time.Time) (*models.Group, error) {
	query := `
		UPDATE study_groups
		SET current_members = current_members + $2, updated_at = $3
		WHERE id = $1
		  AND current_members + $2 >= 1
		  AND current_members + $2 <= max_members
		RETURNING ` + groupColumns
	g, err := scanGroup(txcontext.Q(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(groupID), delta, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.missOrLimit(ctx, groupID)
		}
		return nil, fmt.Errorf("increment members: %w", err)
	}
	return g, nil
}

func (s *PostgresStore) Delete(ctx context.Context, groupID id.GroupID) error {
	res, err := txcontext.Q(ctx, s.db).ExecContext(ctx, `DELETE FROM study_groups WHERE id = $1`, uuid.UUID(groupID))
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete group rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID id.UserID) ([]*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM study_groups WHERE owner_id = $1 ORDER BY created_at`
	rows, err := txcontext.Q(ctx, s.db).QueryContext(ctx, query, uuid.UUID(ownerID))
	if err != nil {
		return nil, fmt.Errorf("list groups by owner: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	return groups, nil
}

// missOrLimit explains a conditional write that matched no row.
func (s *PostgresStore) missOrLimit(ctx context.Context, groupID id.GroupID) error {
	var exists bool
	err := txcontext.Q(ctx, s.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM study_groups WHERE id = $1)`, uuid.UUID(groupID)).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check group exists: %w", err)
	}
	if !exists {
		return sentinel.ErrNotFound
	}
	return sentinel.ErrLimitExceeded
}

type groupRow interface {
	Scan(dest ...any) error
}

func scanGroup(row groupRow) (*models.Group, error) {
	var (
		g       models.Group
		groupID uuid.UUID
		ownerID uuid.UUID
	)
	if err := row.Scan(&groupID, &g.Name, &g.Description, &ownerID, &g.MaxMembers, &g.CurrentMembers, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.ID = id.GroupID(groupID)
	g.OwnerID = id.UserID(ownerID)
	return &g, nil
}
