// Package seed fills the database with synthetic users, courses, units and
// assignments for tests and local development.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/db"
)

// instructorsPerBatch is the number of instructors created for every course batch
const instructorsPerBatch = 3

// Seeder writes factory fixtures through the repositories
type Seeder struct {
	database *db.PostgresDB
	repos    *repositories.Repositories
	factory  *Factory
	logger   zerolog.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(database *db.PostgresDB, repos *repositories.Repositories, factory *Factory, logger zerolog.Logger) *Seeder {
	return &Seeder{
		database: database,
		repos:    repos,
		factory:  factory,
		logger:   logger.With().Str("component", "seeder").Logger(),
	}
}

// CleanDatabase deletes every row, children before parents, in one
// transaction. Running it on an empty database is a no-op.
func (s *Seeder) CleanDatabase(ctx context.Context) error {
	if s.database == nil {
		return errors.New("seeder has no database handle")
	}

	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := s.repos.WithTx(tx)
		steps := []struct {
			table string
			run   func(context.Context) (int64, error)
		}{
			{"quiz_assignments", repos.Quizzes.DeleteAll},
			{"video_assignments", repos.Videos.DeleteAll},
			{"reading_assignments", repos.Readings.DeleteAll},
			{"assignments", repos.Assignments.DeleteAll},
			{"units", repos.Units.DeleteAll},
			{"courses", repos.Courses.DeleteAll},
			{"accounts", repos.Accounts.DeleteAll},
			{"users", repos.Users.DeleteAll},
		}

		for _, step := range steps {
			deleted, err := step.run(ctx)
			if err != nil {
				return fmt.Errorf("failed to clean %s: %w", step.table, err)
			}
			s.logger.Debug().Str("table", step.table).Int64("deleted", deleted).Msg("Table cleaned")
		}
		return nil
	})
}

// CreatePersistentCourse creates three instructors, picks one of them as the
// owner of every course in the batch and stores amount courses, each with
// 1 to 10 units of 1 to 5 assignments. Courses are returned with their
// instructor attached.
func (s *Seeder) CreatePersistentCourse(ctx context.Context, amount int) ([]*models.Course, error) {
	amount = normalizeAmount(amount)

	candidates := make([]*models.User, instructorsPerBatch)
	for i := range candidates {
		candidates[i] = s.factory.User(models.RoleInstructor)
	}
	instructors, err := s.repos.Users.CreateMany(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to create instructors: %w", err)
	}
	instructor := instructors[s.factory.Pick(len(instructors))]

	drafts := make([]*models.Course, amount)
	for i := range drafts {
		drafts[i] = s.factory.Course()
	}
	courses, err := s.repos.Courses.CreateManyForInstructor(ctx, instructor, drafts)
	if err != nil {
		return nil, fmt.Errorf("failed to create courses: %w", err)
	}

	for _, course := range courses {
		if err := s.createCourseContent(ctx, s.factory.CourseTree(course)); err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Int("courses", len(courses)).
		Str("instructor_id", instructor.ID.String()).
		Msg("Courses seeded")
	return courses, nil
}

// createCourseContent stores the units of course, then the assignments and
// detail records of each unit.
func (s *Seeder) createCourseContent(ctx context.Context, course *models.Course) error {
	if _, err := s.repos.Units.CreateMany(ctx, course.Units); err != nil {
		return fmt.Errorf("failed to create units for course %s: %w", course.ID, err)
	}

	for _, unit := range course.Units {
		planned := unit.Assignments
		if _, err := s.repos.Assignments.CreateMany(ctx, planned); err != nil {
			return fmt.Errorf("failed to create assignments for unit %s: %w", unit.ID, err)
		}

		var readings []*models.ReadingAssignment
		var videos []*models.VideoAssignment
		for _, a := range planned {
			switch a.Type {
			case models.AssignmentReading:
				readings = append(readings, a.Reading)
			case models.AssignmentVideo:
				videos = append(videos, a.Video)
			}
		}
		if err := s.repos.Readings.CreateMany(ctx, readings); err != nil {
			return fmt.Errorf("failed to create reading assignments for unit %s: %w", unit.ID, err)
		}
		if err := s.repos.Videos.CreateMany(ctx, videos); err != nil {
			return fmt.Errorf("failed to create video assignments for unit %s: %w", unit.ID, err)
		}
	}
	return nil
}

// CreatePersistentStudent stores amount students and returns them
func (s *Seeder) CreatePersistentStudent(ctx context.Context, amount int) ([]*models.User, error) {
	return s.createPersistentUsers(ctx, models.RoleStudent, amount)
}

// CreatePersistentInstructor stores amount instructors and returns them
func (s *Seeder) CreatePersistentInstructor(ctx context.Context, amount int) ([]*models.User, error) {
	return s.createPersistentUsers(ctx, models.RoleInstructor, amount)
}

func (s *Seeder) createPersistentUsers(ctx context.Context, role models.Role, amount int) ([]*models.User, error) {
	amount = normalizeAmount(amount)

	drafts := make([]*models.User, amount)
	for i := range drafts {
		drafts[i] = s.factory.User(role)
	}
	users, err := s.repos.Users.CreateMany(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s users: %w", role, err)
	}

	s.logger.Info().Int("count", len(users)).Str("role", string(role)).Msg("Users seeded")
	return users, nil
}

// CreateInstructor returns an unsaved instructor
func (s *Seeder) CreateInstructor() *models.User {
	return s.factory.User(models.RoleInstructor)
}

// CreateStudent returns amount unsaved students
func (s *Seeder) CreateStudent(amount int) []*models.User {
	amount = normalizeAmount(amount)
	students := make([]*models.User, amount)
	for i := range students {
		students[i] = s.factory.User(models.RoleStudent)
	}
	return students
}

// CreateCourses returns amount unsaved courses, each with its own instructor
func (s *Seeder) CreateCourses(amount int) []*models.Course {
	amount = normalizeAmount(amount)
	courses := make([]*models.Course, amount)
	for i := range courses {
		courses[i] = s.factory.CourseWithInstructor()
	}
	return courses
}

// normalizeAmount treats a missing or non-positive amount as one
func normalizeAmount(amount int) int {
	if amount < 1 {
		return 1
	}
	return amount
}
