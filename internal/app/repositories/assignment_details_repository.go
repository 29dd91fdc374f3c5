package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
)

// ReadingAssignmentRepository handles the READING satellite table
type ReadingAssignmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewReadingAssignmentRepository creates a new ReadingAssignmentRepository
func NewReadingAssignmentRepository(db DBTX) *ReadingAssignmentRepository {
	return &ReadingAssignmentRepository{db: db, sb: statementBuilder()}
}

// CreateMany inserts reading details in one statement
func (r *ReadingAssignmentRepository) CreateMany(ctx context.Context, details []*models.ReadingAssignment) error {
	if len(details) == 0 {
		return nil
	}
	q := r.sb.Insert("reading_assignments").Columns("assignment_id", "content")
	for _, d := range details {
		q = q.Values(d.AssignmentID, d.Content)
	}
	return execInsert(ctx, r.db, q, "reading assignments")
}

// ListByAssignmentIDs returns reading details keyed by assignment id
func (r *ReadingAssignmentRepository) ListByAssignmentIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.ReadingAssignment, error) {
	out := make(map[uuid.UUID]*models.ReadingAssignment)
	if len(ids) == 0 {
		return out, nil
	}

	sql, args, err := r.sb.Select("assignment_id", "content").
		From("reading_assignments").
		Where(squirrel.Eq{"assignment_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reading assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reading assignments: %w", err)
	}
	details, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.ReadingAssignment, error) {
		d := &models.ReadingAssignment{}
		return d, row.Scan(&d.AssignmentID, &d.Content)
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning reading assignments: %w", err)
	}
	for _, d := range details {
		out[d.AssignmentID] = d
	}
	return out, nil
}

// DeleteAll removes every reading detail
func (r *ReadingAssignmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, r.sb, "reading_assignments")
}

// VideoAssignmentRepository handles the VIDEO satellite table
type VideoAssignmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewVideoAssignmentRepository creates a new VideoAssignmentRepository
func NewVideoAssignmentRepository(db DBTX) *VideoAssignmentRepository {
	return &VideoAssignmentRepository{db: db, sb: statementBuilder()}
}

// CreateMany inserts video details in one statement
func (r *VideoAssignmentRepository) CreateMany(ctx context.Context, details []*models.VideoAssignment) error {
	if len(details) == 0 {
		return nil
	}
	q := r.sb.Insert("video_assignments").Columns("assignment_id", "video_url", "duration_seconds")
	for _, d := range details {
		q = q.Values(d.AssignmentID, d.VideoURL, d.DurationSeconds)
	}
	return execInsert(ctx, r.db, q, "video assignments")
}

// ListByAssignmentIDs returns video details keyed by assignment id
func (r *VideoAssignmentRepository) ListByAssignmentIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.VideoAssignment, error) {
	out := make(map[uuid.UUID]*models.VideoAssignment)
	if len(ids) == 0 {
		return out, nil
	}

	sql, args, err := r.sb.Select("assignment_id", "video_url", "duration_seconds").
		From("video_assignments").
		Where(squirrel.Eq{"assignment_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list video assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing video assignments: %w", err)
	}
	details, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.VideoAssignment, error) {
		d := &models.VideoAssignment{}
		return d, row.Scan(&d.AssignmentID, &d.VideoURL, &d.DurationSeconds)
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning video assignments: %w", err)
	}
	for _, d := range details {
		out[d.AssignmentID] = d
	}
	return out, nil
}

// DeleteAll removes every video detail
func (r *VideoAssignmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, r.sb, "video_assignments")
}

// QuizAssignmentRepository handles the QUIZ satellite table
type QuizAssignmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewQuizAssignmentRepository creates a new QuizAssignmentRepository
func NewQuizAssignmentRepository(db DBTX) *QuizAssignmentRepository {
	return &QuizAssignmentRepository{db: db, sb: statementBuilder()}
}

// CreateMany inserts quiz details in one statement
func (r *QuizAssignmentRepository) CreateMany(ctx context.Context, details []*models.QuizAssignment) error {
	if len(details) == 0 {
		return nil
	}
	q := r.sb.Insert("quiz_assignments").Columns("assignment_id", "passing_score")
	for _, d := range details {
		q = q.Values(d.AssignmentID, d.PassingScore)
	}
	return execInsert(ctx, r.db, q, "quiz assignments")
}

// ListByAssignmentIDs returns quiz details keyed by assignment id
func (r *QuizAssignmentRepository) ListByAssignmentIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.QuizAssignment, error) {
	out := make(map[uuid.UUID]*models.QuizAssignment)
	if len(ids) == 0 {
		return out, nil
	}

	sql, args, err := r.sb.Select("assignment_id", "passing_score").
		From("quiz_assignments").
		Where(squirrel.Eq{"assignment_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list quiz assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing quiz assignments: %w", err)
	}
	details, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.QuizAssignment, error) {
		d := &models.QuizAssignment{}
		return d, row.Scan(&d.AssignmentID, &d.PassingScore)
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning quiz assignments: %w", err)
	}
	for _, d := range details {
		out[d.AssignmentID] = d
	}
	return out, nil
}

// DeleteAll removes every quiz detail
func (r *QuizAssignmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, r.sb, "quiz_assignments")
}

func execInsert(ctx context.Context, db DBTX, q squirrel.InsertBuilder, what string) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create %s query: %w", what, err)
	}
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating %s: %w", what, err)
	}
	return nil
}
