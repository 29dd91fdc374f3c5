package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateManyForInstructor inserts courses owned by instructor. Every course
// gets the instructor's id and the returned rows carry the instructor relation.
func (r *CourseRepository) CreateManyForInstructor(ctx context.Context, instructor *models.User, courses []*models.Course) ([]*models.Course, error) {
	if len(courses) == 0 {
		return []*models.Course{}, nil
	}

	q := r.sb.Insert("courses").Columns("id", "title", "description", "image", "instructor_id")
	for _, c := range courses {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		c.InstructorID = instructor.ID
		q = q.Values(c.ID, c.Title, c.Description, c.Image, c.InstructorID)
	}

	sql, args, err := q.Suffix("RETURNING id, title, description, image, instructor_id, created_at, updated_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error creating courses: %w", err)
	}
	created, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Course, error) {
		c := &models.Course{}
		err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Image, &c.InstructorID, &c.CreatedAt, &c.UpdatedAt)
		c.Instructor = instructor
		return c, err
	})
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("instructor_id", instructor.ID.String()).Msg("Error creating courses")
		return nil, fmt.Errorf("error creating courses: %w", err)
	}
	return created, nil
}

func (r *CourseRepository) selectWithInstructor() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.title", "c.description", "c.image", "c.instructor_id", "c.created_at", "c.updated_at",
		"u.id", "u.email", "u.name", "u.image", "u.role", "u.created_at", "u.updated_at",
	).
		From("courses c").
		Join("users u ON u.id = c.instructor_id")
}

func scanCourseWithInstructor(row pgx.CollectableRow) (*models.Course, error) {
	c := &models.Course{Instructor: &models.User{}}
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Image, &c.InstructorID, &c.CreatedAt, &c.UpdatedAt,
		&c.Instructor.ID, &c.Instructor.Email, &c.Instructor.Name, &c.Instructor.Image,
		&c.Instructor.Role, &c.Instructor.CreatedAt, &c.Instructor.UpdatedAt,
	)
	return c, err
}

// List returns a page of courses with their instructor, newest first
func (r *CourseRepository) List(ctx context.Context, limit, offset int) ([]*models.Course, error) {
	q := r.selectWithInstructor().OrderBy("c.created_at DESC", "c.id ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	courses, err := pgx.CollectRows(rows, scanCourseWithInstructor)
	if err != nil {
		return nil, fmt.Errorf("error scanning courses: %w", err)
	}
	return courses, nil
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// GetByID retrieves a course with its instructor
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sql, args, err := r.selectWithInstructor().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	course, err := pgx.CollectExactlyOneRow(rows, scanCourseWithInstructor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}

// DeleteAll removes every course
func (r *CourseRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, r.sb, "courses")
}
