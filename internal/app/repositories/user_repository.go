package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

var userColumns = []string{
	"id", "email", "name", "image", "password", "role", "email_verified_at", "created_at", "updated_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanUser(row pgx.CollectableRow) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Image, &u.Password, &u.Role, &u.EmailVerifiedAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateMany inserts users in one statement and returns the stored rows in input order
func (r *UserRepository) CreateMany(ctx context.Context, users []*models.User) ([]*models.User, error) {
	if len(users) == 0 {
		return []*models.User{}, nil
	}

	q := r.sb.Insert("users").Columns("id", "email", "name", "image", "password", "role", "email_verified_at")
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		q = q.Values(u.ID, u.Email, u.Name, u.Image, u.Password, u.Role, u.EmailVerifiedAt)
	}

	sql, args, err := q.Suffix("RETURNING " + strings.Join(userColumns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error creating users: %w", err)
	}
	created, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int("count", len(users)).Msg("Error creating users")
		return nil, fmt.Errorf("error creating users: %w", err)
	}
	return created, nil
}

// Create inserts a single user
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	created, err := r.CreateMany(ctx, []*models.User{user})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	user, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// ListByRole returns every user with the given role, oldest first
func (r *UserRepository) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": role}).
		OrderBy("created_at ASC", "email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("error scanning users: %w", err)
	}
	return users, nil
}

// DeleteAll removes every user
func (r *UserRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, r.sb, "users")
}
