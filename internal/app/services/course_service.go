package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
)

// CourseService reads the course catalogue
type CourseService struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(repos *repositories.Repositories, logger zerolog.Logger) *CourseService {
	return &CourseService{
		repos:  repos,
		logger: logger,
	}
}

// List returns a page of courses with their instructor and the total count
func (s *CourseService) List(ctx context.Context, limit, offset int) ([]*models.Course, int64, error) {
	courses, err := s.repos.Courses.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}
	total, err := s.repos.Courses.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return courses, total, nil
}

// Get returns a course with its units, assignments and assignment details
func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.repos.Courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	units, err := s.repos.Units.ListByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	course.Units = units
	if len(units) == 0 {
		return course, nil
	}

	byUnit := make(map[uuid.UUID]*models.Unit, len(units))
	unitIDs := make([]uuid.UUID, len(units))
	for i, u := range units {
		byUnit[u.ID] = u
		unitIDs[i] = u.ID
	}

	assignments, err := s.repos.Assignments.ListByUnitIDs(ctx, unitIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	ids := make([]uuid.UUID, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}
	readings, err := s.repos.Readings.ListByAssignmentIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading assignments: %w", err)
	}
	videos, err := s.repos.Videos.ListByAssignmentIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load video assignments: %w", err)
	}
	quizzes, err := s.repos.Quizzes.ListByAssignmentIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz assignments: %w", err)
	}

	for _, a := range assignments {
		a.Reading = readings[a.ID]
		a.Video = videos[a.ID]
		a.Quiz = quizzes[a.ID]
		if unit, ok := byUnit[a.UnitID]; ok {
			unit.Assignments = append(unit.Assignments, a)
		}
	}

	s.logger.Debug().
		Str("course_id", id.String()).
		Int("units", len(units)).
		Int("assignments", len(assignments)).
		Msg("Course tree loaded")
	return course, nil
}
