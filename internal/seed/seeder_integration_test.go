//go:build integration

package seed

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/testutil"
)

var seededTables = []string{
	"quiz_assignments", "video_assignments", "reading_assignments",
	"assignments", "units", "courses", "accounts", "users",
}

func TestSeeder_Integration(t *testing.T) {
	database := testutil.SetupPostgres(t)
	repos := repositories.NewRepositories(database.Pool)
	factory, err := NewFactory(2024)
	require.NoError(t, err)
	seeder := NewSeeder(database, repos, factory, zerolog.Nop())
	ctx := context.Background()

	t.Run("persistent students have no accounts", func(t *testing.T) {
		require.NoError(t, seeder.CleanDatabase(ctx))

		students, err := seeder.CreatePersistentStudent(ctx, 4)
		require.NoError(t, err)
		require.Len(t, students, 4)

		for _, s := range students {
			assert.Equal(t, models.RoleStudent, s.Role)
			accounts, err := repos.Accounts.ListByUserID(ctx, s.ID)
			require.NoError(t, err)
			assert.Empty(t, accounts)
		}
		assert.Equal(t, int64(0), testutil.CountRows(t, database, "accounts"))

		stored, err := repos.Users.ListByRole(ctx, models.RoleStudent)
		require.NoError(t, err)
		assert.Len(t, stored, 4)
	})

	t.Run("persistent instructors", func(t *testing.T) {
		require.NoError(t, seeder.CleanDatabase(ctx))

		instructors, err := seeder.CreatePersistentInstructor(ctx, 0)
		require.NoError(t, err)
		require.Len(t, instructors, 1)
		assert.Equal(t, models.RoleInstructor, instructors[0].Role)
	})

	t.Run("course trees are consistent", func(t *testing.T) {
		require.NoError(t, seeder.CleanDatabase(ctx))

		courses, err := seeder.CreatePersistentCourse(ctx, 3)
		require.NoError(t, err)
		require.Len(t, courses, 3)

		owner := courses[0].InstructorID
		for _, c := range courses {
			require.NotNil(t, c.Instructor)
			assert.Equal(t, owner, c.InstructorID, "one instructor owns the whole batch")
			assert.Equal(t, models.RoleInstructor, c.Instructor.Role)
		}
		assert.Equal(t, int64(instructorsPerBatch), testutil.CountRows(t, database, "users"))

		for _, c := range courses {
			units, err := repos.Units.ListByCourseID(ctx, c.ID)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(units), 1)
			require.LessOrEqual(t, len(units), maxUnitsPerCourse)

			unitIDs := make([]uuid.UUID, len(units))
			for i, u := range units {
				unitIDs[i] = u.ID
			}
			assignments, err := repos.Assignments.ListByUnitIDs(ctx, unitIDs)
			require.NoError(t, err)

			perUnit := map[uuid.UUID]int{}
			ids := make([]uuid.UUID, len(assignments))
			for i, a := range assignments {
				perUnit[a.UnitID]++
				ids[i] = a.ID
			}
			for _, id := range unitIDs {
				assert.GreaterOrEqual(t, perUnit[id], 1)
				assert.LessOrEqual(t, perUnit[id], maxAssignmentsPerUnit)
			}

			readings, err := repos.Readings.ListByAssignmentIDs(ctx, ids)
			require.NoError(t, err)
			videos, err := repos.Videos.ListByAssignmentIDs(ctx, ids)
			require.NoError(t, err)
			quizzes, err := repos.Quizzes.ListByAssignmentIDs(ctx, ids)
			require.NoError(t, err)

			for _, a := range assignments {
				_, hasReading := readings[a.ID]
				_, hasVideo := videos[a.ID]
				assert.Equal(t, a.Type == models.AssignmentReading, hasReading)
				assert.Equal(t, a.Type == models.AssignmentVideo, hasVideo)
			}
			assert.Empty(t, quizzes)
		}
	})

	t.Run("clean database empties every table and is idempotent", func(t *testing.T) {
		_, err := seeder.CreatePersistentCourse(ctx, 2)
		require.NoError(t, err)
		_, err = seeder.CreatePersistentStudent(ctx, 2)
		require.NoError(t, err)

		require.NoError(t, seeder.CleanDatabase(ctx))
		for _, table := range seededTables {
			assert.Equal(t, int64(0), testutil.CountRows(t, database, table), table)
		}

		require.NoError(t, seeder.CleanDatabase(ctx))
		for _, table := range seededTables {
			assert.Equal(t, int64(0), testutil.CountRows(t, database, table), table)
		}
	})
}
