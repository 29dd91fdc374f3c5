package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

func newTestFactory(t *testing.T, seed uint64) *Factory {
	t.Helper()
	f, err := NewFactory(seed)
	require.NoError(t, err)
	return f
}

func TestFactory_SameSeedSameValues(t *testing.T) {
	a := newTestFactory(t, 42)
	b := newTestFactory(t, 42)

	for i := 0; i < 5; i++ {
		ua, ub := a.User(models.RoleStudent), b.User(models.RoleStudent)
		assert.Equal(t, ua.ID, ub.ID)
		assert.Equal(t, ua.Email, ub.Email)
		assert.Equal(t, ua.Name, ub.Name)
	}

	ca := a.CourseTree(a.Course())
	cb := b.CourseTree(b.Course())
	assert.Equal(t, ca.Title, cb.Title)
	require.Len(t, cb.Units, len(ca.Units))
	for i := range ca.Units {
		assert.Equal(t, ca.Units[i].ID, cb.Units[i].ID)
		assert.Len(t, cb.Units[i].Assignments, len(ca.Units[i].Assignments))
	}
}

func TestFactory_User(t *testing.T) {
	f := newTestFactory(t, 7)

	u := f.User(models.RoleInstructor)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, models.RoleInstructor, u.Role)
	assert.Regexp(t, `^[a-z]+\.[a-z]+\.\d+@coursehub\.test$`, u.Email)
	require.NotNil(t, u.Password)
	assert.True(t, auth.CheckPassword(*u.Password, DefaultPassword))
	assert.Nil(t, u.EmailVerifiedAt)
}

func TestFactory_CourseTreeShape(t *testing.T) {
	f := newTestFactory(t, 1234)

	for n := 0; n < 25; n++ {
		course := f.CourseTree(f.CourseWithInstructor())

		require.NotNil(t, course.Instructor)
		assert.Equal(t, course.Instructor.ID, course.InstructorID)
		assert.Equal(t, models.RoleInstructor, course.Instructor.Role)

		require.GreaterOrEqual(t, len(course.Units), 1)
		require.LessOrEqual(t, len(course.Units), maxUnitsPerCourse)

		for i, unit := range course.Units {
			assert.Equal(t, course.ID, unit.CourseID)
			assert.Equal(t, i+1, unit.Position)
			require.GreaterOrEqual(t, len(unit.Assignments), 1)
			require.LessOrEqual(t, len(unit.Assignments), maxAssignmentsPerUnit)

			for _, a := range unit.Assignments {
				assert.Equal(t, unit.ID, a.UnitID)
				switch a.Type {
				case models.AssignmentReading:
					require.NotNil(t, a.Reading)
					assert.Equal(t, a.ID, a.Reading.AssignmentID)
					assert.Nil(t, a.Video)
				case models.AssignmentVideo:
					require.NotNil(t, a.Video)
					assert.Equal(t, a.ID, a.Video.AssignmentID)
					assert.Nil(t, a.Reading)
				case models.AssignmentQuiz:
					assert.Nil(t, a.Reading)
					assert.Nil(t, a.Video)
					assert.Nil(t, a.Quiz)
				default:
					t.Fatalf("unexpected assignment type %q", a.Type)
				}
			}
		}
	}
}

func TestFactory_Pick(t *testing.T) {
	f := newTestFactory(t, 99)

	assert.Equal(t, 0, f.Pick(0))
	assert.Equal(t, 0, f.Pick(1))

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		n := f.Pick(3)
		require.True(t, n >= 0 && n < 3)
		seen[n] = true
	}
	assert.Len(t, seen, 3)
}

func TestSeeder_InMemoryFixtures(t *testing.T) {
	s := NewSeeder(nil, nil, newTestFactory(t, 5), zerolog.Nop())

	assert.Equal(t, models.RoleInstructor, s.CreateInstructor().Role)

	students := s.CreateStudent(4)
	assert.Len(t, students, 4)
	for _, st := range students {
		assert.Equal(t, models.RoleStudent, st.Role)
	}

	assert.Len(t, s.CreateStudent(0), 1)

	courses := s.CreateCourses(2)
	require.Len(t, courses, 2)
	assert.NotEqual(t, courses[0].InstructorID, courses[1].InstructorID)
}

func TestSeeder_CleanDatabaseWithoutHandle(t *testing.T) {
	s := NewSeeder(nil, nil, newTestFactory(t, 5), zerolog.Nop())
	assert.Error(t, s.CleanDatabase(t.Context()))
}
