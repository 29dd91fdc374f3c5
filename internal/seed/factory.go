package seed

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain-text password every seeded user can sign in with.
const DefaultPassword = "password123"

const (
	maxUnitsPerCourse     = 10
	maxAssignmentsPerUnit = 5
)

// Factory builds in-memory fixtures from a seedable random source.
// Two factories built with the same non-zero seed produce the same values
// in the same order. A zero seed picks a random one.
type Factory struct {
	faker        *gofakeit.Faker
	passwordHash string
}

// NewFactory creates a Factory. The default password is hashed once here
// with the minimum bcrypt cost so bulk seeding stays fast.
func NewFactory(seed uint64) (*Factory, error) {
	hash, err := auth.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}
	return &Factory{
		faker:        gofakeit.New(seed),
		passwordHash: hash,
	}, nil
}

// PasswordHash returns the hash stored for every seeded user
func (f *Factory) PasswordHash() string {
	return f.passwordHash
}

// IntRange returns a value in [min, max]
func (f *Factory) IntRange(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Pick returns a uniformly random index in [0, n)
func (f *Factory) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return f.faker.IntRange(0, n-1)
}

func (f *Factory) id() uuid.UUID {
	return uuid.MustParse(f.faker.UUID())
}

func (f *Factory) words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.faker.Word()
	}
	return strings.Join(parts, " ")
}

func (f *Factory) sentence(n int) string {
	return capitalize(f.words(n)) + "."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// emailPart lowercases s and drops everything but ASCII letters
func emailPart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, s)
}

func (f *Factory) paragraph(sentences int) string {
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = f.sentence(f.faker.IntRange(6, 14))
	}
	return strings.Join(parts, " ")
}

// User returns an unsaved user with the given role
func (f *Factory) User(role models.Role) *models.User {
	first := f.faker.FirstName()
	last := f.faker.LastName()
	email := fmt.Sprintf("%s.%s.%d@coursehub.test",
		emailPart(first), emailPart(last), f.faker.IntRange(1, 999999))
	image := f.faker.URL()
	password := f.passwordHash

	return &models.User{
		ID:       f.id(),
		Email:    email,
		Name:     first + " " + last,
		Image:    &image,
		Password: &password,
		Role:     role,
	}
}

// Course returns an unsaved course without an owner
func (f *Factory) Course() *models.Course {
	image := f.faker.URL()
	title := capitalize(f.faker.Adjective()) + " " + capitalize(f.faker.Noun())
	return &models.Course{
		ID:          f.id(),
		Title:       title,
		Description: f.paragraph(2),
		Image:       &image,
	}
}

// CourseWithInstructor returns an unsaved course owned by a fresh instructor
func (f *Factory) CourseWithInstructor() *models.Course {
	instructor := f.User(models.RoleInstructor)
	course := f.Course()
	course.InstructorID = instructor.ID
	course.Instructor = instructor
	return course
}

// Unit returns an unsaved unit of course at position
func (f *Factory) Unit(courseID uuid.UUID, position int) *models.Unit {
	return &models.Unit{
		ID:          f.id(),
		CourseID:    courseID,
		Title:       fmt.Sprintf("Unit %d: %s", position, f.sentence(3)),
		Description: f.paragraph(1),
		Position:    position,
	}
}

// AssignmentType returns a uniformly random assignment type
func (f *Factory) AssignmentType() models.AssignmentType {
	types := models.AssignmentTypes()
	return types[f.Pick(len(types))]
}

// Assignment returns an unsaved assignment of the given type. READING and
// VIDEO assignments carry their detail record; QUIZ assignments carry none.
func (f *Factory) Assignment(unitID uuid.UUID, t models.AssignmentType) *models.Assignment {
	a := &models.Assignment{
		ID:          f.id(),
		UnitID:      unitID,
		Title:       f.sentence(4),
		Description: f.paragraph(1),
		Type:        t,
	}
	switch t {
	case models.AssignmentReading:
		a.Reading = &models.ReadingAssignment{
			AssignmentID: a.ID,
			Content:      f.paragraph(f.faker.IntRange(3, 6)),
		}
	case models.AssignmentVideo:
		a.Video = &models.VideoAssignment{
			AssignmentID:    a.ID,
			VideoURL:        f.faker.URL(),
			DurationSeconds: f.faker.IntRange(60, 3600),
		}
	}
	return a
}

// CourseTree fills course.Units with 1 to 10 units, each holding 1 to 5
// assignments of random type.
func (f *Factory) CourseTree(course *models.Course) *models.Course {
	unitCount := f.faker.IntRange(1, maxUnitsPerCourse)
	course.Units = make([]*models.Unit, 0, unitCount)
	for i := 1; i <= unitCount; i++ {
		unit := f.Unit(course.ID, i)
		assignmentCount := f.faker.IntRange(1, maxAssignmentsPerUnit)
		unit.Assignments = make([]*models.Assignment, 0, assignmentCount)
		for j := 0; j < assignmentCount; j++ {
			unit.Assignments = append(unit.Assignments, f.Assignment(unit.ID, f.AssignmentType()))
		}
		course.Units = append(course.Units, unit)
	}
	return course
}
