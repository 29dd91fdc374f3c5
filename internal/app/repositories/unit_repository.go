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

// UnitRepository handles unit database operations
type UnitRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewUnitRepository creates a new UnitRepository
func NewUnitRepository(db DBTX) *UnitRepository {
	return &UnitRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanUnit(row pgx.CollectableRow) (*models.Unit, error) {
	u := &models.Unit{}
	err := row.Scan(&u.ID, &u.CourseID, &u.Title, &u.Description, &u.Position, &u.CreatedAt)
	return u, err
}

// CreateMany inserts units in one statement
func (r *UnitRepository) CreateMany(ctx context.Context, units []*models.Unit) ([]*models.Unit, error) {
	if len(units) == 0 {
		return []*models.Unit{}, nil
	}

	q := r.sb.Insert("units").Columns("id", "course_id", "title", "description", "position")
	for _, u := range units {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		q = q.Values(u.ID, u.CourseID, u.Title, u.Description, u.Position)
	}

	sql, args, err := q.Suffix("RETURNING id, course_id, title, description, position, created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create units query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error creating units: %w", err)
	}
	created, err := pgx.CollectRows(rows, scanUnit)
	if err != nil {
		logger.Error().Err(err).Int("count", len(units)).Msg("Error creating units")
		return nil, fmt.Errorf("error creating units: %w", err)
	}
	return created, nil
}

// ListByCourseID returns the units of a course in position order
func (r *UnitRepository) ListByCourseID(ctx context.Context, courseID uuid.UUID) ([]*models.Unit, error) {
	sql, args, err := r.sb.Select("id", "course_id", "title", "description", "position", "created_at").
		From("units").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list units query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing units: %w", err)
	}
	units, err := pgx.CollectRows(rows, scanUnit)
	if err != nil {
		return nil, fmt.Errorf("error scanning units: %w", err)
	}
	return units, nil
}

// DeleteAll removes every unit
func (r *UnitRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, r.sb, "units")
}
