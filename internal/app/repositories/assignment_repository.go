package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// AssignmentRepository handles assignment database operations
type AssignmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db DBTX) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanAssignment(row pgx.CollectableRow) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(&a.ID, &a.UnitID, &a.Title, &a.Description, &a.Type, &a.CreatedAt)
	return a, err
}

// CreateMany inserts assignments in one statement
func (r *AssignmentRepository) CreateMany(ctx context.Context, assignments []*models.Assignment) ([]*models.Assignment, error) {
	if len(assignments) == 0 {
		return []*models.Assignment{}, nil
	}

	q := r.sb.Insert("assignments").Columns("id", "unit_id", "title", "description", "type")
	for _, a := range assignments {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		q = q.Values(a.ID, a.UnitID, a.Title, a.Description, a.Type)
	}

	sql, args, err := q.Suffix("RETURNING id, unit_id, title, description, type, created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error creating assignments: %w", err)
	}
	created, err := pgx.CollectRows(rows, scanAssignment)
	if err != nil {
		logger.Error().Err(err).Int("count", len(assignments)).Msg("Error creating assignments")
		return nil, fmt.Errorf("error creating assignments: %w", err)
	}
	return created, nil
}

// ListByUnitIDs returns the assignments of the given units, oldest first
func (r *AssignmentRepository) ListByUnitIDs(ctx context.Context, unitIDs []uuid.UUID) ([]*models.Assignment, error) {
	if len(unitIDs) == 0 {
		return []*models.Assignment{}, nil
	}

	sql, args, err := r.sb.Select("id", "unit_id", "title", "description", "type", "created_at").
		From("assignments").
		Where(squirrel.Eq{"unit_id": unitIDs}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	assignments, err := pgx.CollectRows(rows, scanAssignment)
	if err != nil {
		return nil, fmt.Errorf("error scanning assignments: %w", err)
	}
	return assignments, nil
}

// DeleteAll removes every assignment
func (r *AssignmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, r.sb, "assignments")
}
