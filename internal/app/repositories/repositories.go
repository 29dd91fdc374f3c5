package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so every
// repository can run either on the pool or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	Users       *UserRepository
	Accounts    *AccountRepository
	Courses     *CourseRepository
	Units       *UnitRepository
	Assignments *AssignmentRepository
	Readings    *ReadingAssignmentRepository
	Videos      *VideoAssignmentRepository
	Quizzes     *QuizAssignmentRepository
}

// NewRepositories initializes all repositories over the same executor
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Accounts:    NewAccountRepository(db),
		Courses:     NewCourseRepository(db),
		Units:       NewUnitRepository(db),
		Assignments: NewAssignmentRepository(db),
		Readings:    NewReadingAssignmentRepository(db),
		Videos:      NewVideoAssignmentRepository(db),
		Quizzes:     NewQuizAssignmentRepository(db),
	}
}

// WithTx returns a copy of the repositories bound to tx
func (r *Repositories) WithTx(tx pgx.Tx) *Repositories {
	return NewRepositories(tx)
}

// statementBuilder is the squirrel builder used by every repository
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// deleteAll removes every row of table and returns the number of rows deleted
func deleteAll(ctx context.Context, db DBTX, sb squirrel.StatementBuilderType, table string) (int64, error) {
	sql, args, err := sb.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete %s query: %w", table, err)
	}
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}
